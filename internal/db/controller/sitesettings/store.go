package sitesettings

import (
	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/db/controller/setting"
)

type (
	// Store represents the marketplace settings kept in store_settings.
	Store struct {
		Enabled      bool    `form:"store_system"   json:"enabled"      setting:"store_system"`
		Currency     string  `form:"currency"       json:"currency"     setting:"store_currency"   validate:"required,len=3,uppercase"`
		Commission   float64 `form:"commission"     json:"commission"   setting:"store_commission" validate:"gte=0,lte=100"`
		ReviewSystem bool    `form:"review_system"  json:"reviewSystem" setting:"store_review_system"`
		MaxProducts  int     `form:"max_products"   json:"maxProducts"  setting:"store_max_products" validate:"gte=0"`
	}
)

// DefaultStore returns the marketplace defaults.
func DefaultStore() Store {
	return Store{
		Enabled:      false,
		Currency:     "USD",
		Commission:   0,
		ReviewSystem: true,
		MaxProducts:  0,
	}
}

// Load fills s from r. Settings that are not stored keep the defaults.
func (s *Store) Load(r *setting.Resolver) error {
	*s = DefaultStore()

	return setting.Bind(r, s)
}

// Save writes s through r. Storage faults are logged, not returned.
func (s *Store) Save(r *setting.Resolver) {
	r.Persist(s)
}

// Validate checks s.
func (s *Store) Validate() error {
	return ValidateStruct(s)
}
