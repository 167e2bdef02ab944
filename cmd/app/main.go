package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kioskworks/roulette-go/internal/audit"
	"github.com/kioskworks/roulette-go/internal/config"
	"github.com/kioskworks/roulette-go/internal/database"
	"github.com/kioskworks/roulette-go/internal/database/postgres"
	"github.com/kioskworks/roulette-go/internal/draw"
	"github.com/kioskworks/roulette-go/internal/handler"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/roulette"
	"github.com/kioskworks/roulette-go/internal/server"
	"github.com/kioskworks/roulette-go/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, config.ServiceName, cfg.Version, cfg.Environment, false))

	handler.InitValidator()

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxConnLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	rouletteRepo := postgres.NewRouletteRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	drawRepo := postgres.NewDrawRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)

	auditService := audit.NewService(auditRepo)
	sessionService := session.NewService(sessionRepo, rouletteRepo, auditService, cfg.SessionIdleTTL)
	rouletteService := roulette.NewService(rouletteRepo, auditService, cfg.RouletteCacheTTL)
	drawService := draw.NewService(drawRepo, sessionService, draw.NewSelector(), draw.NewSigner(cfg.SigningSecret))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, drawService, sessionService, rouletteService, auditService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Idle session reclaim runs only when a TTL is configured
	if cfg.SessionIdleTTL > 0 {
		reaper := session.NewReaper(sessionService, cfg.SessionIdleTTL)
		go reaper.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
