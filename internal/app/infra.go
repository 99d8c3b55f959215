package app

import (
	"context"

	"travel-service/internal/config"
	"travel-service/internal/db"
	"travel-service/internal/logger"
	"travel-service/internal/redis"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client // nil when no cache is configured
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	database, err := db.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, database.DB); err != nil {
		return nil, err
	}

	logger.Info("database ready", map[string]any{
		"driver": cfg.DatabaseDriver,
	})

	infra := &Infra{DB: database}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		infra.Redis = redisClient
		logger.Info("redis ready", nil)
	}

	return infra, nil
}
