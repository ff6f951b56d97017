package models

import "time"

// AdminPermission represents a specific permission of the back-office.
// Permissions are assigned to admin roles, which are assigned to admin users.
type AdminPermission struct {
	// ID is the unique identifier for the permission.
	ID uint `gorm:"primaryKey"`
	// Name is the unique permission identifier in resource.action format (e.g., "reports.manage").
	Name string `gorm:"unique;size:100;not null"`
	// Resource is the resource this permission applies to (e.g., "settings", "reports").
	Resource string `gorm:"size:100;not null"`
	// Description provides a human-readable explanation of what this permission grants.
	Description string `gorm:"size:255"`
	// CreatedAt is the timestamp when the permission was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the permission was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the AdminPermission model.
// This overrides GORM's default pluralized table naming.
func (AdminPermission) TableName() string {
	return "admin_permissions"
}
