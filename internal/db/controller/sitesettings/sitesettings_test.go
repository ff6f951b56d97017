package sitesettings

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/setting"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

func setupTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	if migrate {
		require.NoError(t, db.AutoMigrate(&models.Setting{}, &models.StoreSetting{}))
	}

	return db
}

func TestGeneralLoadDefaultsWithoutTable(t *testing.T) {
	r := setting.NewResolver(setting.NewSiteStore(setupTestDB(t, false)))

	var g General
	require.NoError(t, g.Load(r))
	assert.Equal(t, DefaultGeneral(), g)

	// saving before the migration is silent
	g.SiteName = "Gophers"
	assert.NotPanics(t, func() { g.Save(r) })
}

func TestGeneralSaveLoad(t *testing.T) {
	db := setupTestDB(t, true)
	r := setting.NewResolver(setting.NewSiteStore(db))

	in := DefaultGeneral()
	in.SiteName = "Gophers"
	in.MaintenanceMode = true
	in.UserRegistration = false
	in.MaxUpload = 1024
	in.Save(r)

	var out General
	require.NoError(t, out.Load(r))
	assert.Equal(t, in, out)

	// legacy rows hold "1"/"0" and the original key spelling
	var maintenance, language models.Setting
	require.NoError(t, db.Where("name = ?", KeyMaintenanceMode).First(&maintenance).Error)
	assert.Equal(t, "1", maintenance.Value)

	require.NoError(t, db.Where("name = ?", KeyLanguage).First(&language).Error)
	assert.Equal(t, "english", language.Value)
}

func TestGeneralPartialRows(t *testing.T) {
	r := setting.NewResolver(setting.NewMemory(map[string]string{
		KeySiteName:        "Legacy",
		KeyMaintenanceMode: "1",
		KeyMaxUpload:       "oops",
	}))

	var g General
	require.NoError(t, g.Load(r))

	assert.Equal(t, "Legacy", g.SiteName)
	assert.True(t, g.MaintenanceMode)
	assert.Equal(t, DefaultGeneral().MaxUpload, g.MaxUpload)
	assert.Equal(t, DefaultGeneral().SiteEmail, g.SiteEmail)
}

func TestGeneralValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(g *General)
		fields []string
	}{
		{name: "defaults are valid", mutate: func(*General) {}},
		{name: "missing name", mutate: func(g *General) { g.SiteName = "" }, fields: []string{"siteName"}},
		{name: "bad email", mutate: func(g *General) { g.SiteEmail = "nope" }, fields: []string{"siteEmail"}},
		{
			name:   "several fields",
			mutate: func(g *General) { g.Language = ""; g.MaxUpload = -1 },
			fields: []string{"language", "maxUpload"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := DefaultGeneral()
			tc.mutate(&g)

			err := g.Validate()
			if tc.fields == nil {
				require.NoError(t, err)

				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))

			got := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}

			assert.ElementsMatch(t, tc.fields, got)
		})
	}
}

func TestStoreSettings(t *testing.T) {
	db := setupTestDB(t, true)
	r := setting.NewResolver(setting.NewMarketStore(db))

	var s Store
	require.NoError(t, s.Load(r))
	assert.Equal(t, DefaultStore(), s)

	s.Enabled = true
	s.Currency = "EUR"
	s.Commission = 7.5
	s.Save(r)

	var out Store
	require.NoError(t, out.Load(r))
	assert.Equal(t, s, out)

	// the marketplace never writes into Wo_Config
	var count int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStoreValidate(t *testing.T) {
	s := DefaultStore()
	require.NoError(t, s.Validate())

	s.Currency = "eu"
	s.Commission = 120

	err := s.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, err.Error(), "currency")
	assert.Contains(t, err.Error(), "commission")
}
