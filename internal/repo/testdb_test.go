package repo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/makeitweb/studio-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One in-memory sqlite database per connection; pin the pool to a
	// single connection so every query sees the same data.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, title string) *models.Category {
	t.Helper()
	cat := &models.Category{Title: title}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func seedCase(t *testing.T, db *gorm.DB, section, name string) *models.Case {
	t.Helper()
	c := &models.Case{Section: section, Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}
