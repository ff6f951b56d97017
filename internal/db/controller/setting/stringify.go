package setting

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Stringify converts a setting value to its stored form.
// Booleans become "1" or "0", nil becomes "" and everything else its string form.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		return boolString(v)
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return boolString(rv.Bool())
	case reflect.String:
		return rv.String()
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}

		return Stringify(rv.Elem().Interface())
	}

	if s, err := cast.ToStringE(value); err == nil {
		return s
	}

	return fmt.Sprint(value)
}

func boolString(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
