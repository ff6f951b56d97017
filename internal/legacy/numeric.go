package legacy

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"time"
)

var numericPattern = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

// IsNumeric reports whether s is a decimal number. Signs, fractions, exponents and
// surrounding whitespace are accepted; hexadecimal, NaN and Inf are not.
func IsNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

// numericString returns the string form of v if v is numeric.
func numericString(v any) (string, bool) {
	switch n := v.(type) {
	case nil:
		return "", false
	case []byte:
		return numericString(string(n))
	case time.Time:
		if n.IsZero() {
			return "", false
		}

		return strconv.FormatInt(n.Unix(), 10), true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive // everything else is not numeric
	case reflect.String:
		if s := rv.String(); IsNumeric(s) {
			return s, true
		}

		return "", false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}

		return strconv.FormatFloat(f, 'f', -1, 64), true
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false
		}

		return numericString(rv.Elem().Interface())
	default:
		return "", false
	}
}
