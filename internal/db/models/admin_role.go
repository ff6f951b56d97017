package models

import "time"

// AdminRole represents a role in the back-office RBAC system.
// A super admin role holds every permission without any permission rows.
type AdminRole struct {
	// ID is the unique identifier for the role.
	ID uint `gorm:"primaryKey"`
	// Name is the unique name of the role (e.g., "Super Admin", "Moderator").
	Name string `gorm:"unique;size:100;not null"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255"`
	// IsSuperAdmin grants every permission, checked before the join table.
	IsSuperAdmin bool `gorm:"column:is_super_admin;default:false"`
	// Permissions are the permissions granted through admin_role_permissions.
	Permissions []AdminPermission `gorm:"many2many:admin_role_permissions;joinForeignKey:RoleID;joinReferences:PermissionID"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the AdminRole model.
// This overrides GORM's default pluralized table naming.
func (AdminRole) TableName() string {
	return "admin_roles"
}

// HasPermission reports whether the role grants the named permission.
// Super admins short-circuit; other roles need Permissions to be loaded.
func (r *AdminRole) HasPermission(name string) bool {
	if r == nil {
		return false
	}

	if r.IsSuperAdmin {
		return true
	}

	for i := range r.Permissions {
		if r.Permissions[i].Name == name {
			return true
		}
	}

	return false
}

// AdminRolePermission represents the many-to-many relationship between admin roles and permissions.
type AdminRolePermission struct {
	// RoleID is the ID of the role in this mapping.
	RoleID uint `gorm:"primaryKey;column:role_id"`
	// PermissionID is the ID of the permission in this mapping.
	PermissionID uint `gorm:"primaryKey;column:permission_id"`
}

// TableName specifies the database table name for the AdminRolePermission model.
func (AdminRolePermission) TableName() string {
	return "admin_role_permissions"
}
