package config

import "time"

// Database pool defaults
const (
	DefaultDBMaxConns    = 25
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxConnLife = 30 * time.Minute
)

// Cache defaults
const (
	DefaultRouletteCacheTTL = 30 * time.Second
)

// ServiceName identifies this service in logs and metrics
const ServiceName = "roulette-go"
