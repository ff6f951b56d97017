package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/models"
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/web/session"
)

type fixture struct {
	db       *gorm.DB
	service  *Service
	provider *LocalProvider
	super    *models.AdminUser
	editor   *models.AdminUser
	viewer   *models.AdminUser
}

// setupTestDB creates an in-memory SQLite database with seeded roles and admins.
func setupTestDB(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.AdminPermission{},
		&models.AdminRole{},
		&models.AdminRolePermission{},
		&models.AdminUser{},
	))

	for _, p := range AllPermissions() {
		require.NoError(t, db.Create(&models.AdminPermission{
			Name: p.Name, Resource: p.Resource, Description: p.Description,
		}).Error)
	}

	superRole := models.AdminRole{Name: "Super Admin", IsSuperAdmin: true}
	require.NoError(t, db.Create(&superRole).Error)

	editorRole := models.AdminRole{Name: "Editor"}
	require.NoError(t, db.Create(&editorRole).Error)

	viewerRole := models.AdminRole{Name: "Viewer"}
	require.NoError(t, db.Create(&viewerRole).Error)

	f := &fixture{db: db, service: NewService(db), provider: NewLocalProvider(db)}

	require.NoError(t, f.service.AssignPermissions(editorRole.ID, PermSettingsView, PermSettingsUpdate))
	require.NoError(t, f.service.AssignPermissions(viewerRole.ID, PermSettingsView))

	f.super, err = f.provider.CreateAdmin("root", "root@example.com", "secret", superRole.ID)
	require.NoError(t, err)

	f.editor, err = f.provider.CreateAdmin("editor", "editor@example.com", "secret", editorRole.ID)
	require.NoError(t, err)

	f.viewer, err = f.provider.CreateAdmin("viewer", "viewer@example.com", "secret", viewerRole.ID)
	require.NoError(t, err)

	return f
}

func TestHasPermission(t *testing.T) {
	f := setupTestDB(t)

	testCases := []struct {
		name       string
		adminID    uint64
		permission string
		expected   bool
	}{
		{name: "super admin any permission", adminID: f.super.ID, permission: PermNotificationsSend, expected: true},
		{name: "super admin unseeded permission", adminID: f.super.ID, permission: "anything.at.all", expected: true},
		{name: "editor granted", adminID: f.editor.ID, permission: PermSettingsUpdate, expected: true},
		{name: "editor not granted", adminID: f.editor.ID, permission: PermReportsManage, expected: false},
		{name: "viewer read only", adminID: f.viewer.ID, permission: PermSettingsUpdate, expected: false},
		{name: "unknown admin", adminID: 9999, permission: PermSettingsView, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			has, err := f.service.HasPermission(tc.adminID, tc.permission)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, has)
		})
	}
}

func TestSuperAdminSkipsJoinTable(t *testing.T) {
	f := setupTestDB(t)

	require.NoError(t, f.db.Migrator().DropTable("admin_role_permissions"))

	has, err := f.service.HasPermission(f.super.ID, PermReportsManage)
	require.NoError(t, err)
	assert.True(t, has)

	_, err = f.service.HasPermission(f.editor.ID, PermSettingsView)
	assert.Error(t, err)
}

func TestDisabledAdminHasNoPermissions(t *testing.T) {
	f := setupTestDB(t)

	require.NoError(t, f.provider.DeactivateAdmin(f.super.ID))

	has, err := f.service.HasPermission(f.super.ID, PermSettingsView)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestHasAnyAllPermissions(t *testing.T) {
	f := setupTestDB(t)

	has, err := f.service.HasAnyPermission(f.viewer.ID, []string{PermReportsView, PermSettingsView})
	require.NoError(t, err)
	assert.True(t, has)

	has, err = f.service.HasAnyPermission(f.viewer.ID, nil)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = f.service.HasAllPermissions(f.editor.ID, []string{PermSettingsView, PermSettingsUpdate})
	require.NoError(t, err)
	assert.True(t, has)

	has, err = f.service.HasAllPermissions(f.viewer.ID, []string{PermSettingsView, PermSettingsUpdate})
	require.NoError(t, err)
	assert.False(t, has)
}

func TestGetAdminPermissions(t *testing.T) {
	f := setupTestDB(t)

	perms, err := f.service.GetAdminPermissions(f.editor.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{PermSettingsUpdate, PermSettingsView}, perms)

	perms, err = f.service.GetAdminPermissions(f.super.ID)
	require.NoError(t, err)
	assert.Len(t, perms, len(AllPermissions()))

	_, err = f.service.GetAdminPermissions(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAssignPermissions(t *testing.T) {
	f := setupTestDB(t)

	assert.ErrorIs(t, f.service.AssignPermissions(9999, PermSettingsView), ErrRoleNotFound)
	assert.ErrorIs(t, f.service.AssignPermissions(f.viewer.RoleID, "nope"), ErrUnknownPermission)

	require.NoError(t, f.service.AssignPermissions(f.viewer.RoleID, PermSettingsView, PermReportsView))

	has, err := f.service.HasPermission(f.viewer.ID, PermReportsView)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestAuthenticate(t *testing.T) {
	f := setupTestDB(t)

	admin, err := f.provider.Authenticate("editor", "secret")
	require.NoError(t, err)
	assert.Equal(t, f.editor.ID, admin.ID)
	require.NotNil(t, admin.LastLoginAt)

	_, err = f.provider.Authenticate("editor", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = f.provider.Authenticate("ghost", "secret")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, f.provider.DeactivateAdmin(f.viewer.ID))

	_, err = f.provider.Authenticate("viewer", "secret")
	assert.ErrorIs(t, err, ErrUserAccountDisabled)
}

func TestCreateAdminDuplicate(t *testing.T) {
	f := setupTestDB(t)

	_, err := f.provider.CreateAdmin("root", "other@example.com", "x", f.super.RoleID)
	assert.ErrorIs(t, err, ErrUserNameOrEmailExists)
}

func TestChangePassword(t *testing.T) {
	f := setupTestDB(t)

	assert.ErrorIs(t, f.provider.ChangePassword(f.editor.ID, "wrong", "new"), ErrInvalidOldPassword)
	assert.ErrorIs(t, f.provider.ChangePassword(9999, "secret", "new"), ErrUserNotFound)

	require.NoError(t, f.provider.ChangePassword(f.editor.ID, "secret", "new"))

	_, err := f.provider.Authenticate("editor", "new")
	require.NoError(t, err)
}

func TestRequirePermission(t *testing.T) {
	f := setupTestDB(t)
	session.Init(nil)

	app := fiber.New()
	app.Get("/settings", RequirePermission(f.service, PermSettingsUpdate), func(c *fiber.Ctx) error {
		admin, ok := AdminFromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}

		return c.SendString(admin.Username)
	})

	login := func(admin *models.AdminUser) string {
		id, err := session.GenerateSessionID()
		require.NoError(t, err)

		data := session.Data{Admin: session.Admin{ID: admin.ID, Username: admin.Username, RoleID: admin.RoleID}}
		require.NoError(t, data.Write(id, time.Minute))

		return id
	}

	testCases := []struct {
		name     string
		cookie   string
		expected int
	}{
		{name: "no cookie", expected: fiber.StatusUnauthorized},
		{name: "unknown session", cookie: "nope", expected: fiber.StatusUnauthorized},
		{name: "viewer forbidden", cookie: login(f.viewer), expected: fiber.StatusForbidden},
		{name: "editor allowed", cookie: login(f.editor), expected: fiber.StatusOK},
		{name: "super admin allowed", cookie: login(f.super), expected: fiber.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/settings", nil)
			if tc.cookie != "" {
				req.Header.Set("Cookie", session.CookieName+"="+tc.cookie)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, tc.expected, resp.StatusCode)
		})
	}
}
