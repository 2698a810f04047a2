// Package union synthesizes closed sum types at runtime. A union is
// declared once as a fixed set of named cases, each carrying zero or more
// fields. Zero-field cases are singletons: every construction hands back
// the same shared instance. Instances are immutable, compare structurally,
// and support exhaustive pattern matching where the handler set must name
// exactly the declared cases.
//
//	maybe := union.MustNew("Maybe", union.C("Just", 1), union.C("Nothing", 0))
//	v := maybe.MustNew("Just", 42)
//	doubled, err := v.Match(union.Handlers{
//		"Just":    func(args ...any) any { return args[0].(int) * 2 },
//		"Nothing": func(args ...any) any { return 0 },
//	})
package union

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Case describes one alternative of a union before it is defined: a name
// plus its ordered field list.
type Case struct {
	name     string
	fields   []string
	badArity bool
}

// C declares a case by name and field count. Field names are synthesized
// and only show up in rendering; use CFields to control them.
func C(name string, arity int) Case {
	if arity < 0 {
		return Case{name: name, badArity: true}
	}

	fields := make([]string, arity)
	for i := range fields {
		fields[i] = "_" + strconv.Itoa(i)
	}

	return Case{name: name, fields: fields}
}

// CFields declares a case with named fields.
func CFields(name string, fields ...string) Case {
	return Case{name: name, fields: fields}
}

type caseInfo struct {
	name   string
	fields []string

	// singleton is the one shared instance for zero-field cases, nil
	// otherwise.
	singleton *Value
}

// Type is a defined union. It is sealed on construction: the case set can
// never change afterwards, so values and match functions built from it stay
// valid for the life of the process.
type Type struct {
	name  string
	cases []caseInfo
	index map[string]int
}

// New defines a union from an ordered case list. Definition fails for an
// empty case list, duplicate case names, names that are not exported
// identifiers, or a negative arity smuggled in through a hand-built Case.
func New(name string, cases ...Case) (*Type, error) {
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCases, name)
	}

	t := &Type{
		name:  name,
		cases: make([]caseInfo, 0, len(cases)),
		index: make(map[string]int, len(cases)),
	}

	for i, c := range cases {
		if !exportedName(c.name) {
			return nil, fmt.Errorf("%w: %q", ErrBadCaseName,
				c.name)
		}
		if c.badArity {
			return nil, fmt.Errorf("%w: %q", ErrBadArity, c.name)
		}
		if _, ok := t.index[c.name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCase,
				c.name)
		}

		info := caseInfo{name: c.name, fields: c.fields}
		if len(c.fields) == 0 {
			info.singleton = &Value{t: t, tag: i}
		}

		t.index[c.name] = i
		t.cases = append(t.cases, info)
	}

	return t, nil
}

// MustNew is like New but panics on definition errors. Union definitions
// are static configuration, so this is the common entry point.
func MustNew(name string, cases ...Case) *Type {
	t, err := New(name, cases...)
	if err != nil {
		panic(err)
	}

	return t
}

func exportedName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return name != "" && unicode.IsUpper(r)
}

// Name returns the union's name.
func (t *Type) Name() string {
	return t.name
}

// Cases returns the case names in declaration order.
func (t *Type) Cases() []string {
	names := make([]string, len(t.cases))
	for i, c := range t.cases {
		names[i] = c.name
	}

	return names
}

// HasCase reports whether the union declares the named case.
func (t *Type) HasCase(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Arity returns the number of fields of the named case.
func (t *Type) Arity(name string) (int, error) {
	tag, err := t.tagOf(name)
	if err != nil {
		return 0, err
	}

	return len(t.cases[tag].fields), nil
}

func (t *Type) tagOf(name string) (int, error) {
	tag, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s", ErrUnknownCase, t.name, name)
	}

	return tag, nil
}

// New constructs an instance of the named case. The argument count must
// equal the case's field count. Zero-field cases always return the same
// shared singleton instance.
func (t *Type) New(name string, args ...any) (*Value, error) {
	tag, err := t.tagOf(name)
	if err != nil {
		return nil, err
	}

	info := t.cases[tag]
	if len(args) != len(info.fields) {
		return nil, fmt.Errorf("%w: %s.%s wants %d, got %d",
			ErrArity, t.name, name, len(info.fields), len(args))
	}

	if info.singleton != nil {
		return info.singleton, nil
	}

	fields := make([]any, len(args))
	copy(fields, args)

	return &Value{t: t, tag: tag, args: fields}, nil
}

// MustNew is like New but panics on unknown cases or wrong arity.
func (t *Type) MustNew(name string, args ...any) *Value {
	v, err := t.New(name, args...)
	if err != nil {
		panic(err)
	}

	return v
}

// Ctor returns a reusable constructor function for the named case. Arity
// is still checked per call.
func (t *Type) Ctor(name string) (func(args ...any) (*Value, error), error) {
	if _, err := t.tagOf(name); err != nil {
		return nil, err
	}

	return func(args ...any) (*Value, error) {
		return t.New(name, args...)
	}, nil
}

// Unit returns the shared singleton instance of a zero-field case. It
// fails for data-carrying cases.
func (t *Type) Unit(name string) (*Value, error) {
	tag, err := t.tagOf(name)
	if err != nil {
		return nil, err
	}

	s := t.cases[tag].singleton
	if s == nil {
		return nil, fmt.Errorf("%w: %s.%s carries %d fields",
			ErrArity, t.name, name, len(t.cases[tag].fields))
	}

	return s, nil
}
