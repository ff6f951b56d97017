// Package sitesettings holds the typed settings groups edited from the back-office.
package sitesettings

import (
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/setting"
)

// Setting names of the general group. Language keeps the spelling of the
// existing Wo_Config rows.
const (
	KeySiteName         = "siteName"
	KeySiteTitle        = "siteTitle"
	KeySiteEmail        = "siteEmail"
	KeyLanguage         = "defualtLang"
	KeyMaintenanceMode  = "maintenance_mode"
	KeyUserRegistration = "user_registration"
	KeyMaxUpload        = "maxUpload"
)

type (
	// General represents the site wide settings.
	General struct {
		SiteName         string `form:"site_name"         json:"siteName"         setting:"siteName"          validate:"required,max=100"`
		SiteTitle        string `form:"site_title"        json:"siteTitle"        setting:"siteTitle"         validate:"max=255"`
		SiteEmail        string `form:"site_email"        json:"siteEmail"        setting:"siteEmail"         validate:"required,email"`
		Language         string `form:"language"          json:"language"         setting:"defualtLang"       validate:"required,max=20"`
		MaintenanceMode  bool   `form:"maintenance_mode"  json:"maintenanceMode"  setting:"maintenance_mode"`
		UserRegistration bool   `form:"user_registration" json:"userRegistration" setting:"user_registration"`
		MaxUpload        int64  `form:"max_upload"        json:"maxUpload"        setting:"maxUpload"         validate:"gte=0"`
	}
)

// DefaultGeneral returns the values shown before anything was saved.
func DefaultGeneral() General {
	return General{
		SiteName:         "WoWonder",
		SiteTitle:        "WoWonder Social Network",
		SiteEmail:        "admin@example.com",
		Language:         "english",
		MaintenanceMode:  false,
		UserRegistration: true,
		MaxUpload:        96000000, //nolint:mnd
	}
}

// Load fills g from r. Settings that are not stored keep the defaults.
func (g *General) Load(r *setting.Resolver) error {
	*g = DefaultGeneral()

	return setting.Bind(r, g)
}

// Save writes g through r. Storage faults are logged, not returned.
func (g *General) Save(r *setting.Resolver) {
	r.Persist(g)
}

// Validate checks g.
func (g *General) Validate() error {
	return ValidateStruct(g)
}
