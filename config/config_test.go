package config

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchModes(t *testing.T) {
	modes, err := ParseMatchModes(" crafts=exact , artisans=Substring ")
	require.NoError(t, err)
	assert.Equal(t, map[models.CatalogKind]models.MatchMode{
		models.KindCrafts:   models.MatchExact,
		models.KindArtisans: models.MatchSubstring,
	}, modes)

	empty, err := ParseMatchModes("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, raw := range []string{"crafts", "sculptures=exact", "crafts=fuzzy"} {
		_, err := ParseMatchModes(raw)
		assert.Error(t, err, raw)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_SOURCE", "CATALOG_MATCH_MODES", "CATALOG_CACHE_TTL", "COUNTDOWN_SECONDS", "ADMIN_RATE_LIMIT", "CORS_ORIGINS", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, SourceStatic, cfg.CatalogSource)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 3, cfg.CountdownSeconds)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.CORSOrigins)
	assert.NotEmpty(t, cfg.StoreURLs.IOS)
	assert.NotEmpty(t, cfg.StoreURLs.Android)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"cache ttl", map[string]string{"CATALOG_CACHE_TTL": "soon"}},
		{"countdown", map[string]string{"COUNTDOWN_SECONDS": "three"}},
		{"rate limit", map[string]string{"ADMIN_RATE_LIMIT": "lots"}},
		{"match modes", map[string]string{"CATALOG_MATCH_MODES": "crafts=fuzzy"}},
		{"catalog source", map[string]string{"CATALOG_SOURCE": "s3"}},
		{"database source without url", map[string]string{"CATALOG_SOURCE": SourceDatabase, "DATABASE_URL": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestInitDBSqlite(t *testing.T) {
	t.Cleanup(func() {
		CloseDB()
		DB = nil
	})

	err := InitDB(&AppConfig{AppEnv: "production", DBDriver: "sqlite", DatabaseURL: "file::memory:"})
	require.NoError(t, err)
	require.NotNil(t, DB)
	assert.Nil(t, PgPool, "pgx pool is postgres only")

	sqlDB, err := DB.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestInitDBWithoutURL(t *testing.T) {
	require.NoError(t, InitDB(&AppConfig{DBDriver: "postgres"}))
	assert.Nil(t, DB)

	assert.Error(t, InitDB(&AppConfig{DBDriver: "mysql", DatabaseURL: "root@/craft"}))
}

func TestConnectRedis(t *testing.T) {
	t.Cleanup(func() {
		CloseRedis()
		RedisClient = nil
	})

	require.NoError(t, ConnectRedis(&AppConfig{}))
	assert.Nil(t, RedisClient)

	assert.Error(t, ConnectRedis(&AppConfig{RedisURL: "not a url"}))

	mr := miniredis.RunT(t)
	require.NoError(t, ConnectRedis(&AppConfig{RedisURL: "redis://" + mr.Addr()}))
	assert.NotNil(t, RedisClient)
}
