package models

import (
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// AdminUser represents a back-office account.
// Admin accounts are separate from the social network users in Wo_Users.
type AdminUser struct {
	// ID is the unique identifier for the admin.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the account is active and can log in.
	Active bool
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null"`
	// Email is the admin's email address.
	Email string `gorm:"size:255;not null"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// RoleID is the ID of the role assigned to this admin.
	RoleID uint `gorm:"column:role_id;not null"`
	// Role is the associated role.
	Role AdminRole `gorm:"foreignKey:RoleID;references:ID"`
	// LastLoginAt is set on every successful login.
	LastLoginAt *time.Time
	// CreatedAt is the timestamp when the admin was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the admin was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the AdminUser model.
// This overrides GORM's default pluralized table naming.
func (AdminUser) TableName() string {
	return "admin_users"
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters.
func HashPassword(password string) (string, error) {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hashedPassword, nil
}

// VerifyPassword verifies a plaintext password against the admin's stored hashed password.
// Returns true if the password matches, false otherwise.
func (u *AdminUser) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
