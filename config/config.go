package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/capoeira360/Craft-Art-Market-sub000/device"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/joho/godotenv"
)

// Catalog sources
const (
	SourceStatic   = "static"
	SourceDatabase = "database"
)

// AppConfig is read once at startup from the environment (and .env).
type AppConfig struct {
	Port    string
	AppEnv  string
	BaseURL string

	DBDriver    string // postgres | sqlite
	DatabaseURL string
	RedisURL    string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	CatalogSource     string
	CatalogMatchModes map[models.CatalogKind]models.MatchMode
	CatalogCacheTTL   time.Duration

	StoreURLs        device.StoreURLs
	CountdownSeconds int

	CORSOrigins []string
	RateLimit   int
}

// LoadEnv reads .env when present; a missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load builds the AppConfig from the environment.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:              getEnv("PORT", "8081"),
		AppEnv:            getEnv("APP_ENV", "development"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8081"),
		DBDriver:          getEnv("DB_DRIVER", "postgres"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CatalogSource:     getEnv("CATALOG_SOURCE", SourceStatic),
		StoreURLs: device.StoreURLs{
			IOS:     getEnv("IOS_STORE_URL", "https://apps.apple.com/tz/app/craft-art-market/id0000000000"),
			Android: getEnv("ANDROID_STORE_URL", "https://play.google.com/store/apps/details?id=tz.craftartmarket"),
		},
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
	}

	var err error
	if cfg.CatalogMatchModes, err = ParseMatchModes(os.Getenv("CATALOG_MATCH_MODES")); err != nil {
		return nil, err
	}
	if cfg.CatalogCacheTTL, err = time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "5m")); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
	}
	if cfg.CountdownSeconds, err = strconv.Atoi(getEnv("COUNTDOWN_SECONDS", "3")); err != nil {
		return nil, fmt.Errorf("invalid COUNTDOWN_SECONDS: %w", err)
	}
	if cfg.RateLimit, err = strconv.Atoi(getEnv("ADMIN_RATE_LIMIT", "100")); err != nil {
		return nil, fmt.Errorf("invalid ADMIN_RATE_LIMIT: %w", err)
	}

	switch cfg.CatalogSource {
	case SourceStatic:
	case SourceDatabase:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("CATALOG_SOURCE=database requires DATABASE_URL")
		}
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	return cfg, nil
}

var current *AppConfig

// SetCurrent installs the config handlers read through Current.
func SetCurrent(cfg *AppConfig) {
	current = cfg
}

// Current returns the config installed at startup, falling back to the
// environment defaults.
func Current() *AppConfig {
	if current == nil {
		cfg, err := Load()
		if err != nil {
			cfg = &AppConfig{
				AppEnv:           "development",
				CatalogSource:    SourceStatic,
				CountdownSeconds: device.DefaultSeconds,
			}
		}
		current = cfg
	}
	return current
}

func (c *AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// ParseMatchModes reads "crafts=exact,artisans=substring".
func ParseMatchModes(raw string) (map[models.CatalogKind]models.MatchMode, error) {
	modes := make(map[models.CatalogKind]models.MatchMode)
	for _, pair := range splitList(raw) {
		kindRaw, modeRaw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid CATALOG_MATCH_MODES entry %q", pair)
		}
		kind, ok := models.ParseCatalogKind(kindRaw)
		if !ok {
			return nil, fmt.Errorf("invalid CATALOG_MATCH_MODES kind %q", kindRaw)
		}
		mode, err := models.ParseMatchMode(modeRaw)
		if err != nil {
			return nil, err
		}
		modes[kind] = mode
	}
	return modes, nil
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
