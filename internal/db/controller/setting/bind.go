package setting

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog/log"
)

// tagName is the struct tag naming the setting a field is bound to.
const tagName = "setting"

// ErrInvalidTarget is returned when Bind or Persist get something other than a pointer to a struct.
var ErrInvalidTarget = errors.New("setting target must be a non-nil pointer to a struct")

// Bind fills every field tagged `setting:"name"` of dst from r. The current
// field value is the default of its setting. Stored values that do not fit the
// field keep the default.
func Bind(r *Resolver, dst any) error {
	rv, err := target(dst)
	if err != nil {
		return err
	}

	return eachField(rv, func(name string, field reflect.Value) error {
		switch field.Kind() { //nolint:exhaustive
		case reflect.String:
			field.SetString(r.Get(name, field.String()))
		case reflect.Bool:
			field.SetBool(r.Bool(name, field.Bool()))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := int64(r.Int(name, int(field.Int())))
			if !field.OverflowInt(v) {
				field.SetInt(v)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v := r.Int(name, int(field.Uint())) //nolint:gosec
			if v >= 0 && !field.OverflowUint(uint64(v)) {
				field.SetUint(uint64(v))
			}
		case reflect.Float32, reflect.Float64:
			v := r.Float(name, field.Float())
			if !field.OverflowFloat(v) {
				field.SetFloat(v)
			}
		default:
			return fmt.Errorf("%w: field for %q has unsupported kind %s", ErrInvalidTarget, name, field.Kind())
		}

		return nil
	})
}

// Persist writes every tagged field of src to repo, one key at a time and
// without a transaction. A failing key does not stop the others; all failures
// are returned joined.
func Persist(repo Repository, src any) error {
	rv, err := target(src)
	if err != nil {
		return err
	}

	if repo == nil {
		return ErrDBNil
	}

	var errs []error

	_ = eachField(rv, func(name string, field reflect.Value) error {
		if err := repo.Set(name, field.Interface()); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}

		return nil
	})

	return errors.Join(errs...)
}

// Persist writes every tagged field of src. Failures are logged and swallowed.
func (r *Resolver) Persist(src any) {
	if err := Persist(r.Repository(), src); err != nil {
		log.Warn().Err(err).Msg("settings were not fully saved")
	}
}

func target(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}

	return rv.Elem(), nil
}

func eachField(rv reflect.Value, fn func(name string, field reflect.Value) error) error {
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)

		name := sf.Tag.Get(tagName)
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}

		if err := fn(name, rv.Field(i)); err != nil {
			return err
		}
	}

	return nil
}
