package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// APIKey authenticates callers; identity and roles are validated by an
	// external collaborator before requests reach this service.
	APIKey string

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored.
	TrustedProxies []string

	// SigningSecret keys the HMAC over draw records. Loaded once at process
	// start and never mutated.
	SigningSecret string

	// SessionIdleTTL is how long an ACTIVE session may sit idle before it is
	// reclaimable. Zero disables reclaim entirely.
	SessionIdleTTL time.Duration

	DBMaxConns       int
	DBMaxIdleTime    time.Duration
	DBMaxConnLife    time.Duration
	RouletteCacheTTL time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "roulette"),
		APIKey:      getEnv("API_KEY", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if raw := getEnv("TRUSTED_PROXIES", ""); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	cfg.SigningSecret = getEnv("DRAW_SIGNING_SECRET", "")
	if cfg.SigningSecret == "" {
		return nil, fmt.Errorf("DRAW_SIGNING_SECRET environment variable must be set")
	}

	cfg.SessionIdleTTL, err = getEnvDuration("SESSION_IDLE_TTL", 0)
	if err != nil {
		return nil, err
	}

	cfg.DBMaxConns, err = getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxIdleTime, err = getEnvDuration("DB_MAX_IDLE_TIME", DefaultDBMaxIdleTime)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxConnLife, err = getEnvDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLife)
	if err != nil {
		return nil, err
	}
	cfg.RouletteCacheTTL, err = getEnvDuration("ROULETTE_CACHE_TTL", DefaultRouletteCacheTTL)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
