package services

import (
	"testing"

	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/glebarez/sqlite"
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

func seedCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	repo, err := catalog.LoadSeedRepository(nil)
	require.NoError(t, err)
	return NewCatalogService(repo, nil)
}
