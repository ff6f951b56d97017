package daemon

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/auth"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/config"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
)

const (
	superAdminRole    = "Super Admin"
	defaultAdminName  = "admin"
	defaultAdminEmail = "admin@localhost"
)

// seed creates the permissions and the super admin role, and a first admin
// account with a random password when there is none. Existing rows are kept.
func seed(_ *config.Config, db *gorm.DB) error {
	for _, p := range auth.AllPermissions() {
		perm := models.AdminPermission{Name: p.Name}
		err := db.Where(models.AdminPermission{Name: p.Name}).
			Attrs(models.AdminPermission{Resource: p.Resource, Description: p.Description}).
			FirstOrCreate(&perm).Error
		if err != nil {
			return fmt.Errorf("failed to seed permission %q: %w", p.Name, err)
		}
	}

	role := models.AdminRole{Name: superAdminRole}
	err := db.Where(models.AdminRole{Name: superAdminRole}).
		Attrs(models.AdminRole{Description: "Every permission", IsSuperAdmin: true}).
		FirstOrCreate(&role).Error
	if err != nil {
		return fmt.Errorf("failed to seed super admin role: %w", err)
	}

	var count int64
	if err = db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}

	if count > 0 {
		return nil
	}

	password, err := randomPassword()
	if err != nil {
		return err
	}

	_, err = auth.NewLocalProvider(db).CreateAdmin(defaultAdminName, defaultAdminEmail, password, role.ID)
	if err != nil && !errors.Is(err, auth.ErrUserNameOrEmailExists) {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	log.Warn().Str("username", defaultAdminName).Str("password", password).
		Msg("created the first admin account, change its password")

	return nil
}

func randomPassword() (string, error) {
	b := make([]byte, 12) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}

	return hex.EncodeToString(b), nil
}
