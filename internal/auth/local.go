package auth

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

// LocalProvider handles admin authentication against the admin_users table.
type LocalProvider struct {
	db *gorm.DB
}

const whereID = "id = ?"

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate checks the credentials of an admin and records the login time.
func (p *LocalProvider) Authenticate(username, password string) (*models.AdminUser, error) {
	var admin models.AdminUser

	err := p.db.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	if !admin.Active {
		return nil, ErrUserAccountDisabled
	}

	if !admin.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	now := time.Now()
	admin.LastLoginAt = &now

	if err := p.db.Model(&admin).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return &admin, nil
}

// CreateAdmin creates a new active admin account.
func (p *LocalProvider) CreateAdmin(username, email, password string, roleID uint) (*models.AdminUser, error) {
	var existing models.AdminUser

	err := p.db.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, ErrUserNameOrEmailExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}

	hashedPassword, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := models.AdminUser{
		Active:   true,
		Username: username,
		Email:    email,
		Password: hashedPassword,
		RoleID:   roleID,
	}

	if err := p.db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return &admin, nil
}

// ChangePassword changes an admin's password after checking the old one.
func (p *LocalProvider) ChangePassword(adminID uint64, oldPassword, newPassword string) error {
	var admin models.AdminUser
	if err := p.db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("failed to load admin: %w", err)
	}

	if !admin.VerifyPassword(oldPassword) {
		return ErrInvalidOldPassword
	}

	hashedPassword, err := models.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return p.db.Model(&models.AdminUser{}).
		Where(whereID, adminID).
		Update("password", hashedPassword).Error
}

// DeactivateAdmin disables an admin account.
func (p *LocalProvider) DeactivateAdmin(adminID uint64) error {
	return p.db.Model(&models.AdminUser{}).
		Where(whereID, adminID).
		Update("active", false).Error
}

// GetAdminByID retrieves an admin with its role.
func (p *LocalProvider) GetAdminByID(adminID uint64) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := p.db.Preload("Role").First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &admin, nil
}
