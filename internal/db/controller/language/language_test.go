package language

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err, "failed to create test database")

	// every pooled connection to :memory: is a database of its own
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Language{}, &models.LanguageKey{}))

	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)

	return n
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	lang := &models.Language{Code: " DE ", Name: "German"}
	key := &models.LanguageKey{Key: "home", Value: "Startseite"}

	require.NoError(t, Create(db, lang, key))

	assert.Equal(t, "de", lang.Code)
	assert.NotZero(t, lang.ID)
	assert.Equal(t, lang.ID, key.LanguageID)

	var loaded models.Language
	require.NoError(t, db.Preload("Keys").First(&loaded, lang.ID).Error)
	require.Len(t, loaded.Keys, 1)
	assert.Equal(t, "Startseite", loaded.Keys[0].Value)
	assert.Equal(t, "ltr", loaded.Direction)
}

func TestCreateRollsBack(t *testing.T) {
	testCases := []struct {
		name  string
		prep  func(t *testing.T, db *gorm.DB)
		lang  models.Language
		key   models.LanguageKey
		langs int64
	}{
		{
			name:  "key fails after language insert",
			lang:  models.Language{Code: "fr", Name: "French"},
			key:   models.LanguageKey{Key: ""},
			langs: 0,
		},
		{
			name: "duplicate language",
			prep: func(t *testing.T, db *gorm.DB) {
				t.Helper()
				require.NoError(t, Create(db, &models.Language{Code: "fr", Name: "French"}, &models.LanguageKey{Key: "home"}))
			},
			lang:  models.Language{Code: "fr", Name: "Français"},
			key:   models.LanguageKey{Key: "home", Value: "Accueil"},
			langs: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)
			if tc.prep != nil {
				tc.prep(t, db)
			}

			keysBefore := count(t, db, &models.LanguageKey{})

			err := Create(db, &tc.lang, &tc.key)
			require.ErrorIs(t, err, ErrCreateFailed)
			assert.Zero(t, tc.lang.ID)
			assert.Zero(t, tc.key.LanguageID)

			assert.Equal(t, tc.langs, count(t, db, &models.Language{}))
			assert.Equal(t, keysBefore, count(t, db, &models.LanguageKey{}))
		})
	}
}

func TestCreateKeepsCause(t *testing.T) {
	db := setupTestDB(t)

	err := Create(db, &models.Language{Code: "it", Name: "Italian"}, &models.LanguageKey{Key: " "})
	require.ErrorIs(t, err, ErrCreateFailed)
	require.ErrorIs(t, err, models.ErrEmptyLanguageKey)
}

func TestCreateValidation(t *testing.T) {
	require.ErrorIs(t, Create(nil, &models.Language{Code: "x"}, &models.LanguageKey{}), ErrDBNil)
	require.ErrorIs(t, Create(setupTestDB(t), &models.Language{Code: "  "}, &models.LanguageKey{}), ErrLanguageCodeEmpty)
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Create(db, &models.Language{Code: "nl", Name: "Dutch"}, &models.LanguageKey{Key: "home"}))
	require.NoError(t, Create(db, &models.Language{Code: "ar", Name: "Arabic", Direction: "rtl"}, &models.LanguageKey{Key: "home"}))

	languages, err := List(db)
	require.NoError(t, err)
	require.Len(t, languages, 2)
	assert.Equal(t, "ar", languages[0].Code)
	assert.Equal(t, "rtl", languages[0].Direction)

	_, err = List(nil)
	require.ErrorIs(t, err, ErrDBNil)
}
