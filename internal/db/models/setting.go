// Package models contains database model definitions.
//
// Tables prefixed Wo_ belong to the social network and are shared with the PHP
// front end. Their epoch and coded columns keep the stored form through the
// legacy adapter types; admin_* and store_settings are owned by this service.
package models

// SettingTable is the key/value table of the social network.
const SettingTable = "Wo_Config"

// StoreSettingTable is the key/value table of the marketplace settings.
const StoreSettingTable = "store_settings"

// Setting represents a configuration setting stored in the database.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:100;not null"`
	Value string `gorm:"type:text"`
}

// TableName specifies the database table name for the Setting model.
func (Setting) TableName() string {
	return SettingTable
}

// StoreSetting is a marketplace setting. It shares the layout of Setting.
type StoreSetting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:100;not null"`
	Value string `gorm:"type:text"`
}

// TableName specifies the database table name for the StoreSetting model.
func (StoreSetting) TableName() string {
	return StoreSettingTable
}
