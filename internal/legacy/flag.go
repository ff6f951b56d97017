package legacy

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
)

// Flag is a boolean column stored as "0" or "1".
type Flag string

const (
	// FlagOff is the stored form of false.
	FlagOff Flag = "0"
	// FlagOn is the stored form of true.
	FlagOn Flag = "1"
)

// NormalizeFlag maps truthy input to "1" and falsy input to "0".
//
// Falsy are nil, false, numeric zero, "", "0", nil pointers and empty slices or maps.
// Everything else is truthy.
func NormalizeFlag(v any) string {
	if truthy(v) {
		return string(FlagOn)
	}

	return string(FlagOff)
}

// NewFlag returns the normalized Flag of v.
func NewFlag(v any) Flag {
	return Flag(NormalizeFlag(v))
}

// Bool returns the display form.
func (f Flag) Bool() bool {
	return f == FlagOn
}

// Raw returns the as-stored representation.
func (f Flag) Raw() string {
	return string(f)
}

// Scan implements sql.Scanner. Stored values are normalized on read.
func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case nil, string, []byte, int64, float64, bool:
		*f = NewFlag(v)
	default:
		return fmt.Errorf("%w: %T into Flag", ErrUnsupportedScan, src)
	}

	return nil
}

// Value implements driver.Valuer.
func (f Flag) Value() (driver.Value, error) {
	return NormalizeFlag(string(f)), nil
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case []byte:
		return truthy(string(b))
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive // remaining kinds are truthy
	case reflect.String:
		s := rv.String()
		return s != "" && s != "0"
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}

		return truthy(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	default:
		return true
	}
}

// ParseFlag parses a form value ("on", "true", "1", ...) into a Flag.
// Values strconv.ParseBool does not understand fall back to NormalizeFlag.
func ParseFlag(s string) Flag {
	if s == "on" {
		return FlagOn
	}

	if b, err := strconv.ParseBool(s); err == nil {
		return NewFlag(b)
	}

	return NewFlag(s)
}
