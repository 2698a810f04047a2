package union

import (
	"fmt"
	"sort"
	"strings"
)

// Handler consumes one case's field tuple, spread as positional arguments.
type Handler func(args ...any) any

// Handlers maps case names to their handlers for a pattern match.
type Handlers map[string]Handler

// MatchFunc is a reusable, pre-checked pattern match over one union.
type MatchFunc func(v *Value) any

// checkHandlers enforces exact exhaustiveness: every case has a non-nil
// handler and every handler names a case. Violations report the offending
// names.
func (t *Type) checkHandlers(handlers Handlers) error {
	var missing, extra, nilh []string

	for _, c := range t.cases {
		h, ok := handlers[c.name]
		switch {
		case !ok:
			missing = append(missing, c.name)
		case h == nil:
			nilh = append(nilh, c.name)
		}
	}
	for name := range handlers {
		if !t.HasCase(name) {
			extra = append(extra, name)
		}
	}

	if len(missing) == 0 && len(extra) == 0 && len(nilh) == 0 {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(extra)
	sort.Strings(nilh)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts,
			"missing "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		parts = append(parts,
			"extra "+strings.Join(extra, ", "))
	}
	if len(nilh) > 0 {
		parts = append(parts,
			"nil handler for "+strings.Join(nilh, ", "))
	}

	return fmt.Errorf("%w of %s: %s", ErrBadHandlers, t.name,
		strings.Join(parts, "; "))
}

// MatchFn builds a reusable match function from one handler per case.
// Exhaustiveness is checked here, eagerly, not at invocation time.
func (t *Type) MatchFn(handlers Handlers) (MatchFunc, error) {
	if err := t.checkHandlers(handlers); err != nil {
		return nil, err
	}

	// Resolve the dispatch table by tag up front so invocation is a
	// slice index away.
	table := make([]Handler, len(t.cases))
	for i, c := range t.cases {
		table[i] = handlers[c.name]
	}

	return func(v *Value) any {
		// The table is indexed by this union's tags, so a value from
		// another union must never reach it.
		if v.t != t {
			panic(fmt.Sprintf("match over %s applied to a %s "+
				"value", t.name, v.t.name))
		}

		return table[v.tag](v.args...)
	}, nil
}

// MustMatchFn is like MatchFn but panics on non-exhaustive handler sets.
func (t *Type) MustMatchFn(handlers Handlers) MatchFunc {
	fn, err := t.MatchFn(handlers)
	if err != nil {
		panic(err)
	}

	return fn
}

// Match dispatches on the value's case immediately, after the same exact
// exhaustiveness check performed by MatchFn.
func (v *Value) Match(handlers Handlers) (any, error) {
	if err := v.t.checkHandlers(handlers); err != nil {
		return nil, err
	}

	return handlers[v.CaseName()](v.args...), nil
}
