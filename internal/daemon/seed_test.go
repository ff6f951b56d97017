package daemon

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/engine"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, engine.Migrate(db, false))

	return db
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, seed(&config.Config{}, db))

	var perms int64
	require.NoError(t, db.Model(&models.AdminPermission{}).Count(&perms).Error)
	assert.EqualValues(t, len(auth.AllPermissions()), perms)

	var admin models.AdminUser
	require.NoError(t, db.Preload("Role").Where("username = ?", defaultAdminName).First(&admin).Error)
	assert.True(t, admin.Active)
	assert.True(t, admin.Role.IsSuperAdmin)

	has, err := auth.NewService(db).HasPermission(admin.ID, auth.PermNotificationsSend)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestSeedIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, seed(&config.Config{}, db))

	var first models.AdminUser
	require.NoError(t, db.First(&first).Error)

	require.NoError(t, seed(&config.Config{}, db))

	var admins, roles, perms int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&admins).Error)
	require.NoError(t, db.Model(&models.AdminRole{}).Count(&roles).Error)
	require.NoError(t, db.Model(&models.AdminPermission{}).Count(&perms).Error)

	assert.EqualValues(t, 1, admins)
	assert.EqualValues(t, 1, roles)
	assert.EqualValues(t, len(auth.AllPermissions()), perms)

	var again models.AdminUser
	require.NoError(t, db.First(&again).Error)
	assert.Equal(t, first.Password, again.Password)
}

func TestSessionStorageSQLite(t *testing.T) {
	cfg := &config.Config{DB: config.DB{GormEngine: config.EngineSQLite}}

	assert.Nil(t, sessionStorage(cfg))
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrConfigNil)
}
