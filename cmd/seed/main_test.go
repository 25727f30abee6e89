package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func withConfig(t *testing.T) {
	t.Helper()
	config.SetCurrent(&config.AppConfig{AppEnv: "test", CatalogSource: config.SourceDatabase})
	t.Cleanup(func() { config.SetCurrent(nil) })
}

func TestImportCatalogClearsCachedCollections(t *testing.T) {
	withConfig(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, mr.Set("catalog:collection:crafts", `{"kind":"crafts"}`))
	require.NoError(t, mr.Set("catalog:collection:artisans", `{"kind":"artisans"}`))

	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, importCatalog(ctx, db, client, []string{"crafts"}))

	assert.False(t, mr.Exists("catalog:collection:crafts"), "imported kind is cleared")
	assert.True(t, mr.Exists("catalog:collection:artisans"), "other kinds stay cached")

	crafts, err := catalog.NewGormRepository(db).Collection(ctx, models.KindCrafts)
	require.NoError(t, err)
	assert.Len(t, crafts.Items, 6)
}

func TestImportCatalogWithoutRedis(t *testing.T) {
	withConfig(t)
	db := openTestDB(t)
	require.NoError(t, importCatalog(context.Background(), db, nil, nil))

	for _, kind := range models.CatalogKinds {
		_, err := catalog.NewGormRepository(db).Collection(context.Background(), kind)
		assert.NoError(t, err, kind)
	}
}

func TestImportCatalogUnknownKind(t *testing.T) {
	withConfig(t)
	err := importCatalog(context.Background(), openTestDB(t), nil, []string{"paintings"})
	assert.ErrorContains(t, err, `unknown catalog kind "paintings"`)
}
