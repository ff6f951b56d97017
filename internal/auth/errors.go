package auth

import "errors"

var (
	// ErrInvalidOldPassword is returned when the provided old password does not match the admin's current password.
	ErrInvalidOldPassword = errors.New("invalid old password")

	// ErrUserNameOrEmailExists is returned when attempting to create an admin with a username or email that already exists.
	ErrUserNameOrEmailExists = errors.New("admin with username or email already exists")

	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled admin account.
	ErrUserAccountDisabled = errors.New("admin account is disabled")

	// ErrInvalidPassword is returned when the provided password is incorrect during authentication.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserNotFound is returned when an admin cannot be found in the database.
	ErrUserNotFound = errors.New("admin not found")

	// ErrRoleNotFound is returned when a role cannot be found in the database.
	ErrRoleNotFound = errors.New("role not found")

	// ErrUnknownPermission is returned when assigning a permission that was never seeded.
	ErrUnknownPermission = errors.New("unknown permission")
)
