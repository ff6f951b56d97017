package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root path inside a route group.
	RouterRootPath = "/"

	// APIPath prefixes every JSON endpoint.
	APIPath = "/api"

	// AdminPath prefixes every endpoint that needs a logged-in admin.
	AdminPath = APIPath + "/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
