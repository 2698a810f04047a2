package union

import (
	"fmt"
	"reflect"
	"strings"
)

// Value is one instance of a union. It belongs to exactly one case for its
// whole lifetime and its field tuple is fixed at construction.
type Value struct {
	t    *Type
	tag  int
	args []any
}

// Type returns the union the value belongs to.
func (v *Value) Type() *Type {
	return v.t
}

// Tag returns the declaration-order index of the value's case.
func (v *Value) Tag() int {
	return v.tag
}

// CaseName returns the name of the value's case.
func (v *Value) CaseName() string {
	return v.t.cases[v.tag].name
}

// Is reports whether the value holds the named case.
func (v *Value) Is(name string) bool {
	return v.t.cases[v.tag].name == name
}

// Args returns the field tuple if the value holds the named case. A value
// in a different case fails with ErrWrongCase: the fields are not present,
// which is different from being present and empty. An unknown name fails
// with ErrUnknownCase.
func (v *Value) Args(name string) ([]any, error) {
	tag, err := v.t.tagOf(name)
	if err != nil {
		return nil, err
	}

	if v.tag != tag {
		return nil, fmt.Errorf("%w: want %s, value is %s",
			ErrWrongCase, name, v.CaseName())
	}

	return v.Fields(), nil
}

// Fields returns a copy of the value's field tuple. Singleton cases return
// an empty tuple.
func (v *Value) Fields() []any {
	fields := make([]any, len(v.args))
	copy(fields, v.args)

	return fields
}

// Equal reports structural equality: both values belong to the same union,
// hold the same case, and carry deeply equal field tuples. For singleton
// cases this coincides with pointer identity.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}

	return v.t == o.t && v.tag == o.tag &&
		reflect.DeepEqual(v.args, o.args)
}

// String renders the value as its case name, with the field tuple in
// parentheses for data-carrying cases.
func (v *Value) String() string {
	name := v.CaseName()
	if len(v.args) == 0 {
		return name
	}

	parts := make([]string, len(v.args))
	for i, a := range v.args {
		parts[i] = fmt.Sprintf("%v", a)
	}

	return name + "(" + strings.Join(parts, ", ") + ")"
}
