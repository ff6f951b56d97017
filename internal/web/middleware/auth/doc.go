// Package auth provides the session middleware of the admin API.
//
// Requests below /api/admin need a valid session cookie; others pass
// untouched. The admin of a valid session is stored in fiber.Locals so that
// handlers and the access log can name who issued the request. Permission
// checks stay on the routes themselves.
//
// Usage:
//
//	app.Use(authmiddleware.Middleware)
package auth
