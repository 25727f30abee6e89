package config

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// DB is nil when no DATABASE_URL is configured.
	DB *gorm.DB
	// PgPool is only opened for the postgres driver.
	PgPool *pgxpool.Pool
)

// InitDB opens the GORM connection and, for postgres, a pgx pool.
func InitDB(cfg *AppConfig) error {
	log := zap.L().Named("config.db")
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, running without a database")
		return nil
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("connect %s database: %w", cfg.DBDriver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	DB = db
	log.Info("database connected (GORM)", zap.String("driver", cfg.DBDriver))

	if cfg.DBDriver != "postgres" {
		return nil
	}

	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("pgx ping: %w", err)
	}
	PgPool = pool
	log.Info("database connected (pgx)")
	return nil
}

func CloseDB() {
	log := zap.L().Named("config.db")
	if PgPool != nil {
		PgPool.Close()
		log.Info("database connection closed (pgx)")
	}
	if DB != nil {
		if sqlDB, _ := DB.DB(); sqlDB != nil {
			_ = sqlDB.Close()
			log.Info("database connection closed (GORM)")
		}
	}
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
