package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"0", "12", "-3", "+4", "1.5", ".5", "5.", "1e10", "1E-2", " 7", "8 "} {
		assert.True(t, IsNumeric(s), s)
	}

	for _, s := range []string{"", " ", "abc", "1a", "0x10", "NaN", "Inf", "1e", "--1", "1_000"} {
		assert.False(t, IsNumeric(s), s)
	}
}
