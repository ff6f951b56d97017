// Package auth provides authentication and authorization for the back-office.
//
// Admin accounts (admin_users) log in with a username and an Argon2id hashed
// password. Each account has one role; a role either is a super admin role or
// holds a set of permissions through admin_role_permissions.
//
// # Permission Checking
//
// The Service type provides methods for checking admin permissions:
//   - HasPermission: Check if an admin has a specific permission
//   - RoleHasPermission: Check a role directly
//   - HasAnyPermission: Check if an admin has at least one permission from a list
//   - HasAllPermissions: Check if an admin has all permissions from a list
//   - GetAdminPermissions: Retrieve all permissions of an admin
//
// A super admin role passes every check without consulting the join table.
//
// # Middleware
//
// Fiber middleware functions are provided for route protection:
//   - RequirePermission: Protect routes requiring a specific permission
//   - RequireAnyPermission: Protect routes requiring any of several permissions
//
// Example usage:
//
//	authService := auth.NewService(db)
//
//	app.Put("/api/admin/settings/general",
//	    auth.RequirePermission(authService, auth.PermSettingsUpdate),
//	    handler,
//	)
package auth
