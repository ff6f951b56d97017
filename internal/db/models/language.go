package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrEmptyLanguageKey is returned when a language key without a name is created.
var ErrEmptyLanguageKey = errors.New("language key name can not be empty")

// Language is an interface language offered by the site.
type Language struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"unique;size:20;not null" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"`
	// Direction is ltr or rtl.
	Direction string        `gorm:"size:3;not null;default:'ltr'" json:"direction"`
	Keys      []LanguageKey `json:"keys,omitempty"`
}

// TableName specifies the database table name for the Language model.
func (Language) TableName() string {
	return "languages"
}

// LanguageKey is one translated phrase of a language.
type LanguageKey struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	LanguageID uint   `gorm:"not null;index" json:"languageId"`
	Key        string `gorm:"column:lang_key;size:160;not null" json:"key"`
	Value      string `gorm:"type:text" json:"value"`
}

// TableName specifies the database table name for the LanguageKey model.
func (LanguageKey) TableName() string {
	return "language_keys"
}

// BeforeCreate rejects keys without a name.
func (k *LanguageKey) BeforeCreate(*gorm.DB) error {
	if strings.TrimSpace(k.Key) == "" {
		return ErrEmptyLanguageKey
	}

	return nil
}
