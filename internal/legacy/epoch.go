package legacy

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupportedScan is returned when a database value can not be scanned into an adapter type.
var ErrUnsupportedScan = errors.New("unsupported scan source")

// Epoch is a Unix timestamp in seconds persisted as a decimal string.
type Epoch string

// NewEpoch converts v into an Epoch. Numeric input is kept in its string form,
// anything else (empty, nil, text) is replaced by the current time.
func NewEpoch(v any) Epoch {
	return NewEpochAt(v, time.Now())
}

// NewEpochAt is NewEpoch with an explicit clock.
func NewEpochAt(v any, now time.Time) Epoch {
	if s, ok := numericString(v); ok {
		return Epoch(s)
	}

	return EpochAt(now)
}

// EpochAt returns the Epoch of t.
func EpochAt(t time.Time) Epoch {
	return Epoch(strconv.FormatInt(t.Unix(), 10))
}

// Raw returns the as-stored representation.
func (e Epoch) Raw() string {
	return string(e)
}

// Valid reports whether the stored value is numeric.
func (e Epoch) Valid() bool {
	_, ok := e.Seconds()
	return ok
}

// Seconds returns the stored value as whole seconds. Fractions are truncated.
func (e Epoch) Seconds() (int64, bool) {
	s := strings.TrimSpace(string(e))
	if !IsNumeric(s) {
		return 0, false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || math.Abs(f) >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

// TimeAt returns the stored time in UTC, or now when the stored value is not numeric.
func (e Epoch) TimeAt(now time.Time) time.Time {
	if sec, ok := e.Seconds(); ok {
		return time.Unix(sec, 0).UTC()
	}

	return now.UTC()
}

// Time is TimeAt(time.Now()).
func (e Epoch) Time() time.Time {
	return e.TimeAt(time.Now())
}

// Ago returns the human relative time between the stored value and now.
func (e Epoch) Ago(now time.Time) string {
	return TimeAgo(now.Unix() - e.TimeAt(now).Unix())
}

// Scan implements sql.Scanner.
func (e *Epoch) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*e = ""
	case string:
		*e = Epoch(v)
	case []byte:
		*e = Epoch(string(v))
	case int64:
		*e = Epoch(strconv.FormatInt(v, 10))
	case float64:
		*e = Epoch(strconv.FormatFloat(v, 'f', -1, 64))
	case time.Time:
		if v.IsZero() {
			*e = ""
		} else {
			*e = EpochAt(v)
		}
	default:
		return fmt.Errorf("%w: %T into Epoch", ErrUnsupportedScan, src)
	}

	return nil
}

// Value implements driver.Valuer. Numeric values are written unchanged, anything
// else is written as the current time, on updates as well as on inserts.
func (e Epoch) Value() (driver.Value, error) {
	return string(NewEpoch(string(e))), nil
}
