package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

// Service provides authorization functionality.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// HasPermission checks if an admin has a specific permission through its role.
// Unknown and disabled admins have no permissions.
func (s *Service) HasPermission(adminID uint64, permission string) (bool, error) {
	var admin models.AdminUser

	err := s.db.Select("id", "role_id", "active").First(&admin, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to load admin: %w", err)
	}

	if !admin.Active {
		return false, nil
	}

	return s.RoleHasPermission(admin.RoleID, permission)
}

// RoleHasPermission checks a role. A super admin role is granted every
// permission before the join table is queried.
func (s *Service) RoleHasPermission(roleID uint, permission string) (bool, error) {
	var role models.AdminRole

	err := s.db.Select("id", "is_super_admin").First(&role, roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to load role: %w", err)
	}

	if role.IsSuperAdmin {
		return true, nil
	}

	var count int64

	err = s.db.Table("admin_permissions").
		Joins("JOIN admin_role_permissions ON admin_role_permissions.permission_id = admin_permissions.id").
		Where("admin_role_permissions.role_id = ? AND admin_permissions.name = ?", roleID, permission).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role permission: %w", err)
	}

	return count > 0, nil
}

// HasAnyPermission checks if an admin has at least one of the given permissions.
func (s *Service) HasAnyPermission(adminID uint64, permissions []string) (bool, error) {
	if len(permissions) == 0 {
		return false, nil
	}

	for _, perm := range permissions {
		has, err := s.HasPermission(adminID, perm)
		if err != nil {
			return false, err
		}

		if has {
			return true, nil
		}
	}

	return false, nil
}

// HasAllPermissions checks if an admin has all of the given permissions.
func (s *Service) HasAllPermissions(adminID uint64, permissions []string) (bool, error) {
	if len(permissions) == 0 {
		return true, nil
	}

	for _, perm := range permissions {
		has, err := s.HasPermission(adminID, perm)
		if err != nil {
			return false, err
		}

		if !has {
			return false, nil
		}
	}

	return true, nil
}

// GetAdminPermissions retrieves all permission names of an admin.
// Super admins get every known permission.
func (s *Service) GetAdminPermissions(adminID uint64) ([]string, error) {
	var admin models.AdminUser

	err := s.db.Preload("Role").First(&admin, adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if !admin.Active {
		return []string{}, nil
	}

	if admin.Role.IsSuperAdmin {
		all := AllPermissions()
		names := make([]string, 0, len(all))

		for _, p := range all {
			names = append(names, p.Name)
		}

		return names, nil
	}

	var permissions []string

	err = s.db.Table("admin_permissions").
		Joins("JOIN admin_role_permissions ON admin_role_permissions.permission_id = admin_permissions.id").
		Where("admin_role_permissions.role_id = ?", admin.RoleID).
		Order("admin_permissions.name").
		Pluck("admin_permissions.name", &permissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get admin permissions: %w", err)
	}

	return permissions, nil
}

// AssignPermissions grants the named permissions to a role. Already granted
// permissions are left alone.
func (s *Service) AssignPermissions(roleID uint, names ...string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var role models.AdminRole
		if err := tx.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoleNotFound
			}

			return fmt.Errorf("failed to load role: %w", err)
		}

		var permissions []models.AdminPermission
		if err := tx.Where("name IN ?", names).Find(&permissions).Error; err != nil {
			return fmt.Errorf("failed to load permissions: %w", err)
		}

		if len(permissions) != len(uniq(names)) {
			return fmt.Errorf("%w: %v", ErrUnknownPermission, names)
		}

		if err := tx.Model(&role).Association("Permissions").Append(&permissions); err != nil {
			return fmt.Errorf("failed to assign permissions: %w", err)
		}

		return nil
	})
}

// AssignRoleToAdmin assigns a role to an admin.
func (s *Service) AssignRoleToAdmin(adminID uint64, roleID uint) error {
	return s.db.Model(&models.AdminUser{}).
		Where("id = ?", adminID).
		Update("role_id", roleID).Error
}

func uniq(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}
