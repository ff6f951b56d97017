// Package language manages the interface languages of the site.
package language

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

var (
	// ErrCreateFailed is returned when a language and its first key could not be stored together.
	ErrCreateFailed = errors.New("failed to create language")
	// ErrLanguageCodeEmpty is returned when a language without a code is created.
	ErrLanguageCodeEmpty = errors.New("language code cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores lang and its first key in one transaction.
// On any failure nothing is stored and the error wraps ErrCreateFailed and the cause.
func Create(db *gorm.DB, lang *models.Language, key *models.LanguageKey) error {
	if db == nil {
		return ErrDBNil
	}

	lang.Code = strings.ToLower(strings.TrimSpace(lang.Code))
	if lang.Code == "" {
		return ErrLanguageCodeEmpty
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Keys").Create(lang).Error; err != nil {
			return fmt.Errorf("language %q: %w", lang.Code, err)
		}

		key.LanguageID = lang.ID

		if err := tx.Create(key).Error; err != nil {
			return fmt.Errorf("key %q: %w", key.Key, err)
		}

		return nil
	})
	if err != nil {
		lang.ID = 0
		key.ID = 0
		key.LanguageID = 0

		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	return nil
}

// List returns every language ordered by code.
func List(db *gorm.DB) ([]models.Language, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var languages []models.Language
	if err := db.Order("code").Find(&languages).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return languages, nil
}
