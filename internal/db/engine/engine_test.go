package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

func TestDialector(t *testing.T) {
	testCases := []struct {
		engine  string
		name    string
		wantErr error
	}{
		{engine: config.EngineMySQL, name: "mysql"},
		{engine: config.EnginePostgres, name: "postgres"},
		{engine: config.EngineSQLite, name: "sqlite"},
		{engine: "oracle", wantErr: ErrUnsupportedEngine},
	}

	for _, tc := range testCases {
		t.Run(tc.engine, func(t *testing.T) {
			d, err := Dialector(&config.Config{DB: config.DB{GormEngine: tc.engine, Host: "localhost", Port: 1}})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}

	_, err := Dialector(nil)
	require.ErrorIs(t, err, ErrConfigNil)
}

func TestOpenAndMigrate(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		GormEngine: config.EngineSQLite,
		Path:       filepath.Join(t.TempDir(), "admin.db"),
	}}

	db, err := Open(cfg)
	require.NoError(t, err)

	require.NoError(t, Migrate(db, false))

	for _, m := range AdminModels() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	// the social network tables are left alone without legacy
	assert.False(t, db.Migrator().HasTable(&models.Setting{}))
	assert.False(t, db.Migrator().HasTable(&models.Report{}))

	require.NoError(t, Migrate(db, true))

	for _, m := range LegacyModels() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	// migrating twice is harmless
	require.NoError(t, Migrate(db, true))

	require.Error(t, Migrate(nil, false))
}
