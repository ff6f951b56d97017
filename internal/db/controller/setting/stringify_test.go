package setting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GoWoWonder-Admin/GoWoWonder-Admin/internal/legacy"
)

type onOff bool

func TestStringify(t *testing.T) {
	s := "pointer"

	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"true", true, "1"},
		{"false", false, "0"},
		{"named bool", onOff(true), "1"},
		{"string", "WoWonder", "WoWonder"},
		{"bytes", []byte("raw"), "raw"},
		{"int", 10, "10"},
		{"negative int64", int64(-3), "-3"},
		{"uint", uint(7), "7"},
		{"float", 0.25, "0.25"},
		{"flag", legacy.FlagOn, "1"},
		{"stringer", time.Duration(90) * time.Second, "1m30s"},
		{"pointer", &s, "pointer"},
		{"nil pointer", (*string)(nil), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Stringify(tc.value))
		})
	}
}
