package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/tpemanager/tpe-manager/internal/infrastructure/db/mongo"
	"github.com/tpemanager/tpe-manager/internal/pkg/config"
	"github.com/tpemanager/tpe-manager/pkg/logger"
)

const serviceName = "tpe-manager"

// loadConfig reads and validates the environment, then initialises logging.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		return nil, zerolog.Logger{}, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("config: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})
	return cfg, log, nil
}

// openDatabase connects to MongoDB and makes sure the unique indexes exist.
func openDatabase(ctx context.Context, cfg config.MongoConfig, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.URI, Database: cfg.Database})
	if err != nil {
		return nil, nil, err
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	log.Info().Str("database", cfg.Database).Msg("connected to mongodb")
	return client, db, nil
}
