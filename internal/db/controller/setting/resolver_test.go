package setting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

func TestResolverGetReturnsDefault(t *testing.T) {
	testCases := []struct {
		name     string
		resolver *Resolver
		def      string
		expected string
	}{
		{
			name:     "stored value wins",
			resolver: NewResolver(NewMemory(map[string]string{"siteName": "Gophers"})),
			def:      "WoWonder",
			expected: "Gophers",
		},
		{
			name:     "missing name",
			resolver: NewResolver(NewMemory(nil)),
			def:      "WoWonder",
			expected: "WoWonder",
		},
		{
			name:     "missing table",
			resolver: NewResolver(NewSiteStore(setupTestDB(t, false))),
			def:      "WoWonder",
			expected: "WoWonder",
		},
		{
			name:     "no database",
			resolver: NewResolver(New(nil, "Wo_Config")),
			def:      "WoWonder",
			expected: "WoWonder",
		},
		{
			name:     "nil resolver",
			resolver: nil,
			def:      "WoWonder",
			expected: "WoWonder",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.expected, tc.resolver.Get("siteName", tc.def))
			})
		})
	}
}

func TestResolverFaultingRepository(t *testing.T) {
	mem := NewMemory(map[string]string{"siteName": "Gophers"})
	r := NewResolver(mem)

	mem.Fail(errDown)

	assert.Equal(t, "fallback", r.Get("siteName", "fallback"))
	assert.True(t, r.Bool("maintenance_mode", true))
	assert.Equal(t, 7, r.Int("maxUpload", 7))
	assert.Empty(t, r.All())

	assert.NotPanics(t, func() { r.Set("siteName", "ignored") })

	mem.Fail(nil)
	assert.Equal(t, "Gophers", r.Get("siteName", "fallback"))
}

func TestResolverSetThenValue(t *testing.T) {
	for name, repo := range map[string]Repository{
		"memory": NewMemory(nil),
		"sqlite": NewSiteStore(setupTestDB(t, true)),
	} {
		t.Run(name, func(t *testing.T) {
			r := NewResolver(repo)

			r.Set("maintenance_mode", true)
			assert.Equal(t, "1", r.Value("maintenance_mode", false))
			assert.True(t, r.Bool("maintenance_mode", false))

			r.Set("maintenance_mode", false)
			assert.Equal(t, "0", r.Value("maintenance_mode", true))
			assert.False(t, r.Bool("maintenance_mode", true))

			// an absent name hands back the default unchanged
			assert.Equal(t, false, r.Value("user_registration", false))
		})
	}
}

func TestResolverSetWithoutTableIsSilent(t *testing.T) {
	r := NewResolver(NewSiteStore(setupTestDB(t, false)))

	assert.NotPanics(t, func() {
		r.Set("siteName", "x")
		r.Persist(&struct {
			Name string `setting:"siteName"`
		}{Name: "x"})
	})

	var nilResolver *Resolver
	assert.NotPanics(t, func() { nilResolver.Set("siteName", "x") })
}

func TestResolverTypedReads(t *testing.T) {
	r := NewResolver(NewMemory(map[string]string{
		"maxUpload":  " 96000000 ",
		"commission": "12.5",
		"broken":     "lots",
		"on":         "on",
	}))

	assert.Equal(t, 96000000, r.Int("maxUpload", 1))
	assert.Equal(t, 3, r.Int("broken", 3))
	assert.InDelta(t, 12.5, r.Float("commission", 0), 0.0001)
	assert.InDelta(t, 1.5, r.Float("broken", 1.5), 0.0001)
	assert.True(t, r.Bool("on", false))

	v, ok := r.Lookup("maxUpload")
	require.True(t, ok)
	assert.Equal(t, " 96000000 ", v)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}
