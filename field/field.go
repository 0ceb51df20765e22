// Package field builds typed context accessors from string-named path
// segments.
//
// A Registry holds, per accessible type, named getter closures. A
// multi-segment path chains getters: each segment is resolved against
// the runtime type of the value the previous segment produced, short
// circuiting on the first incompatible or absent intermediate value.
// map[string]any values and slices are indexable without registration.
package field

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/verdicthq/verdict/expr"
)

// ErrAbsent reports that a path segment named a value that was not
// present in an otherwise compatible context, such as a missing map key
// or a getter that reported no value. It is distinct from
// expr.InvalidContextError, which reports a type mismatch.
var ErrAbsent = errors.New("absent value")

// A getter extracts a named value from a context instance. The bool
// reports whether the value was present.
type getter func(v any) (any, bool, error)

// Registry maps segment names to getters, per accessible type. The
// zero value is not usable; create one with NewRegistry. Register all
// getters before building accessors; a Registry must not be modified
// once accessors built from it are being evaluated.
type Registry struct {
	types map[reflect.Type]map[string]getter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]map[string]getter)}
}

// Register adds a named getter for contexts of type T. The getter's
// bool reports presence: returning false stops a chained accessor with
// ErrAbsent rather than a type error.
func Register[T any](r *Registry, name string, get func(T) (any, bool)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	fields, ok := r.types[t]
	if !ok {
		fields = make(map[string]getter)
		r.types[t] = fields
	}
	fields[name] = func(v any) (any, bool, error) {
		tv, ok := v.(T)
		if !ok {
			return nil, false, &expr.InvalidContextError{
				Expected: t.String(),
				Got:      fmt.Sprintf("%T", v),
			}
		}
		val, present := get(tv)
		return val, present, nil
	}
}

// Path returns an expression that walks the segments from the context
// root and yields the final value. Evaluation fails with
// expr.InvalidContextError when an intermediate value's type has no
// getter for a segment, and with ErrAbsent when a compatible
// intermediate value is missing.
func (r *Registry) Path(segments ...string) expr.Expression[any] {
	segs := make([]string, len(segments))
	copy(segs, segments)
	return expr.Func[any](func(ctx any) (any, error) {
		v := ctx
		for _, s := range segs {
			var err error
			v, err = r.resolve(v, s)
			if err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

// Bool is Path constrained to a boolean result, for use as a rule
// condition or assertion.
func (r *Registry) Bool(segments ...string) expr.Expression[bool] {
	path := r.Path(segments...)
	return expr.Func[bool](func(ctx any) (bool, error) {
		v, err := path.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		b, ok := v.(bool)
		if !ok {
			return false, &expr.InvalidContextError{
				Expected: "bool",
				Got:      fmt.Sprintf("%T", v),
			}
		}
		return b, nil
	})
}

// resolve applies one segment to a value: map key for map[string]any,
// decimal index for slices and arrays, registered getter otherwise.
func (r *Registry) resolve(v any, segment string) (any, error) {
	if v == nil {
		return nil, &expr.InvalidContextError{
			Expected: fmt.Sprintf("a value with field %q", segment),
			Got:      "nil",
		}
	}
	if m, ok := v.(map[string]any); ok {
		val, ok := m[segment]
		if !ok {
			return nil, fmt.Errorf("%w: key %q", ErrAbsent, segment)
		}
		return val, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		i, err := strconv.Atoi(segment)
		if err != nil {
			return nil, &expr.InvalidContextError{
				Expected: fmt.Sprintf("integer index into %s", rv.Type()),
				Got:      fmt.Sprintf("segment %q", segment),
			}
		}
		if i < 0 || i >= rv.Len() {
			return nil, fmt.Errorf("%w: index %d out of range", ErrAbsent, i)
		}
		return rv.Index(i).Interface(), nil
	}
	fields, ok := r.types[rv.Type()]
	if !ok {
		return nil, &expr.InvalidContextError{
			Expected: fmt.Sprintf("a registered type with field %q", segment),
			Got:      rv.Type().String(),
		}
	}
	get, ok := fields[segment]
	if !ok {
		return nil, &expr.InvalidContextError{
			Expected: fmt.Sprintf("%s with field %q", rv.Type(), segment),
		}
	}
	val, present, err := get(v)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, fmt.Errorf("%w: field %q", ErrAbsent, segment)
	}
	return val, nil
}
