package services

import (
	"testing"

	"guest-companion-backend/config"
	"guest-companion-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTenant(t *testing.T, db *gorm.DB, slug, name string) *models.Tenant {
	t.Helper()
	tenant := &models.Tenant{Slug: slug, Name: name, Active: true}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }
