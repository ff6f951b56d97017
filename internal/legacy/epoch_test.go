package legacy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEpochAt(t *testing.T) {
	now := time.Unix(1700000000, 0)

	testCases := []struct {
		name  string
		input any
		want  Epoch
	}{
		{name: "numeric string", input: "1690000000", want: "1690000000"},
		{name: "numeric string kept verbatim", input: "1690000000.5", want: "1690000000.5"},
		{name: "int", input: 1690000000, want: "1690000000"},
		{name: "int64", input: int64(42), want: "42"},
		{name: "uint32", input: uint32(7), want: "7"},
		{name: "float", input: 12.25, want: "12.25"},
		{name: "time", input: time.Unix(1600000000, 0), want: "1600000000"},
		{name: "existing epoch", input: Epoch("1234"), want: "1234"},
		{name: "empty string falls back to now", input: "", want: "1700000000"},
		{name: "text falls back to now", input: "yesterday", want: "1700000000"},
		{name: "hex falls back to now", input: "0x1F", want: "1700000000"},
		{name: "nil falls back to now", input: nil, want: "1700000000"},
		{name: "zero time falls back to now", input: time.Time{}, want: "1700000000"},
		{name: "bool falls back to now", input: true, want: "1700000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewEpochAt(tc.input, now))
		})
	}
}

func TestNewEpochDefaultsToCurrentTime(t *testing.T) {
	before := time.Now().Unix()
	e := NewEpoch("")
	after := time.Now().Unix()

	sec, ok := e.Seconds()
	require.True(t, ok)
	assert.GreaterOrEqual(t, sec, before)
	assert.LessOrEqual(t, sec, after)
}

func TestEpochRoundTrip(t *testing.T) {
	for _, input := range []string{"0", "1", "1690000000", "2147483647"} {
		e := NewEpoch(input)

		stored, err := e.Value()
		require.NoError(t, err)
		assert.Equal(t, input, stored)

		var scanned Epoch
		require.NoError(t, scanned.Scan(stored))
		assert.Equal(t, input, scanned.Raw())
	}
}

func TestEpochSeconds(t *testing.T) {
	testCases := []struct {
		raw    Epoch
		want   int64
		wantOK bool
	}{
		{raw: "1690000000", want: 1690000000, wantOK: true},
		{raw: " 15 ", want: 15, wantOK: true},
		{raw: "12.9", want: 12, wantOK: true},
		{raw: "1e3", want: 1000, wantOK: true},
		{raw: "", wantOK: false},
		{raw: "abc", wantOK: false},
		{raw: "NaN", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.raw), func(t *testing.T) {
			got, ok := tc.raw.Seconds()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEpochTimeAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Unix(1600000000, 0).UTC(), Epoch("1600000000").TimeAt(now))
	assert.Equal(t, now, Epoch("garbage").TimeAt(now), "non-numeric degrades to now")
}

func TestEpochScan(t *testing.T) {
	testCases := []struct {
		name    string
		src     any
		want    Epoch
		wantErr bool
	}{
		{name: "string", src: "123", want: "123"},
		{name: "bytes", src: []byte("456"), want: "456"},
		{name: "int64", src: int64(789), want: "789"},
		{name: "float64", src: float64(10), want: "10"},
		{name: "nil", src: nil, want: ""},
		{name: "time", src: time.Unix(99, 0), want: "99"},
		{name: "zero time", src: time.Time{}, want: ""},
		{name: "unsupported", src: struct{}{}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var e Epoch

			err := e.Scan(tc.src)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedScan)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, e)
		})
	}
}

func TestEpochValueDefaultsToCurrentTime(t *testing.T) {
	stored, err := Epoch("1690000000").Value()
	require.NoError(t, err)
	assert.Equal(t, "1690000000", stored)

	for _, raw := range []Epoch{"", "yesterday", " "} {
		before := time.Now().Unix()

		stored, err = raw.Value()
		require.NoError(t, err)

		sec, ok := Epoch(stored.(string)).Seconds()
		require.True(t, ok, "stored %q for %q", stored, raw)
		assert.GreaterOrEqual(t, sec, before)
		assert.LessOrEqual(t, sec, time.Now().Unix())
	}
}

func TestEpochMarshalsAsStored(t *testing.T) {
	out, err := json.Marshal(struct {
		Time Epoch `json:"time"`
	}{Time: "1690000000"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"1690000000"}`, string(out))
}

func TestEpochAgo(t *testing.T) {
	now := time.Unix(1700000000, 0)

	testCases := []struct {
		name string
		ago  int64
		want string
	}{
		{name: "future", ago: -30, want: "Just now"},
		{name: "now", ago: 0, want: "Just now"},
		{name: "59 seconds", ago: 59, want: "Just now"},
		{name: "60 seconds", ago: 60, want: "1 minutes ago"},
		{name: "119 seconds", ago: 119, want: "1 minutes ago"},
		{name: "3599 seconds", ago: 3599, want: "59 minutes ago"},
		{name: "3600 seconds", ago: 3600, want: "1 hours ago"},
		{name: "86399 seconds", ago: 86399, want: "23 hours ago"},
		{name: "86400 seconds", ago: 86400, want: "1 days ago"},
		{name: "2591999 seconds", ago: 2591999, want: "29 days ago"},
		{name: "2592000 seconds", ago: 2592000, want: "1 months ago"},
		{name: "31535999 seconds", ago: 31535999, want: "12 months ago"},
		{name: "31536000 seconds", ago: 31536000, want: "1 years ago"},
		{name: "ten years", ago: 315360000, want: "10 years ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := EpochAt(now.Add(-time.Duration(tc.ago) * time.Second))
			assert.Equal(t, tc.want, e.Ago(now))
		})
	}

	assert.Equal(t, "Just now", Epoch("not a time").Ago(now))
}
