package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tpemanager/tpe-manager/internal/api"
	"github.com/tpemanager/tpe-manager/internal/core/domain"
	"github.com/tpemanager/tpe-manager/internal/core/service"
	mongodb "github.com/tpemanager/tpe-manager/internal/infrastructure/db/mongo"
	redisdb "github.com/tpemanager/tpe-manager/internal/infrastructure/db/redis"
	"github.com/tpemanager/tpe-manager/internal/infrastructure/export"
	"github.com/tpemanager/tpe-manager/internal/pkg/config"
	"github.com/tpemanager/tpe-manager/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := openDatabase(ctx, cfg.Mongo, log)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	var (
		statsCache service.StatsCache
		cachePing  func(context.Context) error
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// The cache is optional; run without it.
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("stats cache unavailable")
		} else {
			defer rdb.Close()
			statsCache = redisdb.NewStatsCache(rdb, cfg.Redis.StatsTTL)
			cachePing = func(ctx context.Context) error { return redisdb.Ping(ctx, rdb) }
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.StatsTTL).Msg("stats cache enabled")
		}
	}

	userRepo := mongodb.NewUserRepository(db)
	terminalRepo := mongodb.NewTerminalRepository(db)

	userService := service.NewUserService(userRepo, logger.Component("users"))
	authService := service.NewAuthService(userRepo, service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()), logger.Component("auth"))
	terminalService := service.NewTerminalService(terminalRepo, statsCache, logger.Component("terminals"))
	reportService := service.NewReportService(terminalRepo)

	if cfg.Seed.Enabled {
		if err := service.SeedAccounts(ctx, userService, seedAccounts(cfg.Seed), logger.Component("seed")); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Dependencies{
		Logger:            log,
		CORSOrigins:       cfg.CORSOrigins,
		Auth:              authService,
		Users:             userService,
		Terminals:         terminalService,
		Reports:           reportService,
		Encoder:           export.NewXLSXEncoder(),
		ExportContentType: export.ContentType,
		DatabasePing:      func(ctx context.Context) error { return mongodb.Ping(ctx, db) },
		CachePing:         cachePing,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := net.JoinHostPort("", cfg.Port)
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func seedAccounts(cfg config.SeedConfig) []service.SeedAccount {
	return []service.SeedAccount{
		{Username: cfg.AdminUsername, Email: cfg.AdminEmail, Password: cfg.AdminPassword, Role: domain.RoleAdmin},
		{Username: cfg.UserUsername, Email: cfg.UserEmail, Password: cfg.UserPassword, Role: domain.RoleUser},
	}
}
