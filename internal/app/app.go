package app

import (
	"context"
	"database/sql"

	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/config"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/connection"
	"github.com/gnat1399/globant-data-engineering-challenge-gn/internal/shared/migrations"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infra struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
}

func (i *infra) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

// connect opens postgres, applies migrations and, when configured, redis.
func connect(ctx context.Context, cfg config.Config, logger *zap.Logger) (*infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	deps := &infra{gormDB: gormDB, sqlDB: sqlDB}

	if err := migrations.Up(ctx, sqlDB); err != nil {
		deps.Close()
		return nil, err
	}
	logger.Info("database ready")

	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, report caching disabled")
		return deps, nil
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5, logger)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.rdb = rdb
	logger.Info("redis ready")

	return deps, nil
}

// BuildApp wires every module onto router. The returned func releases connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	deps, err := connect(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	registerModules(router, cfg, deps, logger)

	return deps.Close, nil
}
