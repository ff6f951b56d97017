// Package setting provides the key/value setting store of the site.
//
// Store talks to a name/value table, Memory keeps the values in process and
// Resolver wraps either one with the default-on-fault read and write contract
// the settings pages depend on.
package setting

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when attempting to read or write a setting with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrStorageUnavailable wraps any fault of the backing storage, e.g. a table that was never migrated.
	ErrStorageUnavailable = errors.New("setting storage unavailable")
)

// Repository is a name to string value store.
type Repository interface {
	// Get returns the stored value or ErrSettingNotFound.
	Get(name string) (string, error)
	// Set upserts name. The value is normalized with Stringify.
	Set(name string, value any) error
	// All returns every stored setting.
	All() (map[string]string, error)
}

// Store is a Repository on a gorm table with the layout of models.Setting.
type Store struct {
	db    *gorm.DB
	table string
}

// New returns a Store on table.
func New(db *gorm.DB, table string) *Store {
	return &Store{db: db, table: table}
}

// NewSiteStore returns the Store of the site settings (Wo_Config).
func NewSiteStore(db *gorm.DB) *Store {
	return New(db, models.SettingTable)
}

// NewMarketStore returns the Store of the marketplace settings.
func NewMarketStore(db *gorm.DB) *Store {
	return New(db, models.StoreSettingTable)
}

// Table is the backing table name.
func (s *Store) Table() string {
	return s.table
}

// Get retrieves a setting value by its name.
func (s *Store) Get(name string) (string, error) {
	if s == nil || s.db == nil {
		return "", ErrDBNil
	}

	if name == "" {
		return "", ErrSettingNameEmpty
	}

	var row models.Setting

	result := s.db.Table(s.table).Where(nameQueryPattern, name).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrSettingNotFound
		}

		return "", unavailable(result.Error)
	}

	return row.Value, nil
}

// Set creates or updates a setting by name (upsert operation).
func (s *Store) Set(name string, value any) error {
	if s == nil || s.db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	row := models.Setting{Name: name, Value: Stringify(value)}

	result := s.db.Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row)
	if result.Error != nil {
		return unavailable(result.Error)
	}

	return nil
}

// All retrieves all settings of the table.
func (s *Store) All() (map[string]string, error) {
	if s == nil || s.db == nil {
		return nil, ErrDBNil
	}

	var rows []models.Setting

	result := s.db.Table(s.table).Order("name").Find(&rows)
	if result.Error != nil {
		return nil, unavailable(result.Error)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}

	return values, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
