// @title Craft Art Market API
// @version 1.0
// @description Catalog, favorites and app download API of the Craft Art Market storefront, plus the admin moderation panel
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/cache"
	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	_ "github.com/capoeira360/Craft-Art-Market-sub000/docs"
	"github.com/capoeira360/Craft-Art-Market-sub000/routes"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sessionCleanupInterval = time.Hour

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	config.SetCurrent(cfg)

	logger, err := config.InitLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig) error {
	log := zap.L().Named("main")

	if err := config.InitDB(cfg); err != nil {
		return err
	}
	defer config.CloseDB()

	if err := config.ConnectRedis(cfg); err != nil {
		return err
	}
	defer config.CloseRedis()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := initServices(ctx, cfg); err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	var limiter redis.Cmdable
	if config.RedisClient != nil {
		limiter = config.RedisClient
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(cfg, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server is running", zap.String("addr", cfg.BaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				n, err := services.GetAdminSessionService().CleanupExpiredSessions(gctx)
				if err != nil {
					log.Warn("session cleanup failed", zap.Error(err))
					continue
				}
				log.Debug("expired sessions removed", zap.Int64("count", n))
			}
		}
	})
	return g.Wait()
}

// initServices wires the global services to whatever backing stores are
// configured, falling back to in-memory implementations.
func initServices(ctx context.Context, cfg *config.AppConfig) error {
	log := zap.L().Named("main")

	// Catalog
	var repo catalog.Repository
	seed, err := catalog.LoadSeedRepository(cfg.CatalogMatchModes)
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}
	repo = seed
	if cfg.CatalogSource == config.SourceDatabase {
		gormRepo := catalog.NewGormRepository(config.DB)
		if err := gormRepo.Migrate(); err != nil {
			return fmt.Errorf("migrate catalog: %w", err)
		}
		repo = gormRepo
	}
	if config.RedisClient != nil {
		repo = cache.NewCollectionCache(repo, config.RedisClient, cfg.CatalogCacheTTL)
	}
	catalogService := services.NewCatalogService(repo, cache.NewProjectionCache(cfg.CatalogCacheTTL, cache.DefaultMaxEntries))
	services.InitCatalogService(catalogService)
	log.Info("catalog ready", zap.String("source", cfg.CatalogSource))

	// Moderation
	activity := services.NewActivityLogService(config.DB)
	if err := activity.Migrate(); err != nil {
		return fmt.Errorf("migrate activity logs: %w", err)
	}
	services.InitActivityLogService(activity)
	services.InitCatalogAdminService(services.NewSimulatedAdminService(catalogService, activity))

	// Admin auth
	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return errors.New("JWT_SECRET environment variable not set")
		}
		log.Warn("JWT_SECRET not set, using the development secret")
	} else if err := services.InitJWTService(cfg.JWTSecret); err != nil {
		return fmt.Errorf("initialize JWT service: %w", err)
	}

	sessions := services.NewAdminSessionService(config.DB)
	if err := sessions.Migrate(); err != nil {
		return fmt.Errorf("migrate admin sessions: %w", err)
	}
	services.InitAdminSessionService(sessions)

	var directory services.AdminDirectory
	if config.DB != nil {
		admins := services.NewGormAdminDirectory(config.DB)
		if err := admins.Migrate(); err != nil {
			return fmt.Errorf("migrate admins: %w", err)
		}
		directory = admins
	} else {
		directory = services.NewStaticAdminDirectory(cfg.AdminEmail, cfg.AdminPasswordHash)
	}
	services.InitAdminAuthService(services.NewAdminAuthService(directory))

	// Favorites
	if config.RedisClient != nil {
		services.InitFavoritesStore(services.NewRedisFavoritesStore(config.RedisClient, 0))
	} else {
		services.InitFavoritesStore(services.NewMemoryFavoritesStore())
	}

	// Download analytics
	switch {
	case config.PgPool != nil:
		recorder := services.NewPgxDownloadRecorder(config.PgPool)
		if err := recorder.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate download events: %w", err)
		}
		services.InitDownloadRecorder(recorder)
	case config.DB != nil:
		recorder := services.NewGormDownloadRecorder(config.DB)
		if err := recorder.Migrate(); err != nil {
			return fmt.Errorf("migrate download events: %w", err)
		}
		services.InitDownloadRecorder(recorder)
	default:
		services.InitDownloadRecorder(services.NewLogDownloadRecorder())
	}

	return nil
}
