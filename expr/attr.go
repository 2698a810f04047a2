package expr

import (
	"fmt"
	"reflect"
	"strings"
)

// KeywordCaller is implemented by callees that accept keyword arguments in
// addition to positional ones. Plain Go functions have no keyword calling
// convention, so a call node carrying keyword arguments can only be
// satisfied by a KeywordCaller.
type KeywordCaller interface {
	CallKw(args []any, kwargs map[string]any) (any, error)
}

// getAttr resolves a possibly dotted attribute path against a dynamic
// value. Each segment tries, in order: exported method (producing a bound
// method value), map index for string-keyed maps, then exported struct
// field. Pointers and interfaces are dereferenced along the way.
func getAttr(v any, path string) (any, error) {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		next, err := getAttrSeg(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

func getAttrSeg(v any, name string) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %q on nil", ErrNoAttr, name)
	}

	rv := reflect.ValueOf(v)

	// A method on the value (or pointer) receiver binds before any
	// dereferencing, mirroring how method sets work.
	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface(), nil
	}

	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		entry := rv.MapIndex(reflect.ValueOf(name))
		if !entry.IsValid() {
			return nil, fmt.Errorf("%w: map key %q", ErrNoAttr, name)
		}
		return entry.Interface(), nil
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: %q on nil", ErrNoAttr, name)
		}
		rv = rv.Elem()

		if m := rv.MethodByName(name); m.IsValid() {
			return m.Interface(), nil
		}
	}

	if rv.Kind() == reflect.Struct {
		f := rv.FieldByName(name)
		if f.IsValid() && f.CanInterface() {
			return f.Interface(), nil
		}
	}

	return nil, fmt.Errorf("%w: %q on %T", ErrNoAttr, name, v)
}

// callValue invokes a dynamic callee with evaluated arguments. Functions
// returning (T, error) have the error unwrapped into the evaluation error;
// a single return value is passed through; a void function yields nil.
func callValue(callee any, args []any, kwargs map[string]any) (any, error) {
	if kc, ok := callee.(KeywordCaller); ok {
		return kc.CallKw(args, kwargs)
	}
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%w: keyword arguments on %T",
			ErrNotCallable, callee)
	}

	rv := reflect.ValueOf(callee)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, callee)
	}

	rt := rv.Type()
	if rt.IsVariadic() {
		if len(args) < rt.NumIn()-1 {
			return nil, fmt.Errorf("%w: want at least %d args, "+
				"got %d", ErrNotCallable, rt.NumIn()-1,
				len(args))
		}
	} else if rt.NumIn() != len(args) {
		return nil, fmt.Errorf("%w: want %d args, got %d",
			ErrNotCallable, rt.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(rt, i)
		av, err := coerceArg(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i, err)
		}
		in[i] = av
	}

	out := rv.Call(in)
	return unpackResults(out)
}

func paramType(rt reflect.Type, i int) reflect.Type {
	if rt.IsVariadic() && i >= rt.NumIn()-1 {
		return rt.In(rt.NumIn() - 1).Elem()
	}
	return rt.In(i)
}

func coerceArg(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(pt), nil
	}

	av := reflect.ValueOf(arg)
	switch {
	case av.Type().AssignableTo(pt):
		return av, nil
	case numericKind(av.Kind()) && numericKind(pt.Kind()) &&
		av.Type().ConvertibleTo(pt):

		return av.Convert(pt), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: cannot pass %T as %v",
			ErrBadOperand, arg, pt)
	}
}

// numericKind reports whether a kind takes part in implicit numeric
// argument conversion. Other convertible pairs are rejected: Go's
// conversions between, say, int and string are lossy.
func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:

		return true

	default:
		return false
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func unpackResults(out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil

	case 1:
		if out[0].Type().Implements(errType) {
			return nil, errValue(out[0])
		}
		return out[0].Interface(), nil

	case 2:
		if out[1].Type().Implements(errType) {
			if err := errValue(out[1]); err != nil {
				return nil, err
			}
			return out[0].Interface(), nil
		}
	}

	return nil, fmt.Errorf("%w: too many return values", ErrNotCallable)
}

// errValue extracts the error held in a return value, mapping "no error"
// to nil. Only nilable kinds can be nil-checked; a concrete error type
// counts as absent when it is its zero value.
func errValue(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
	default:
		if v.IsZero() {
			return nil
		}
	}

	return v.Interface().(error)
}
