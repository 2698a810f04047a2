package union

// Builder declares a union incrementally. It is one-shot: Define seals it,
// and any use after that fails with ErrSealed. A defined union can never
// grow another case.
type Builder struct {
	name   string
	cases  []Case
	sealed bool
	err    error
}

// Build starts declaring a union with the given name.
func Build(name string) *Builder {
	return &Builder{name: name}
}

// Case adds a case with the given field count.
func (b *Builder) Case(name string, arity int) *Builder {
	return b.add(C(name, arity))
}

// CaseFields adds a case with named fields.
func (b *Builder) CaseFields(name string, fields ...string) *Builder {
	return b.add(CFields(name, fields...))
}

func (b *Builder) add(c Case) *Builder {
	if b.sealed {
		b.err = ErrSealed
		return b
	}

	b.cases = append(b.cases, c)
	return b
}

// Define validates the declaration and seals the builder. Calling Define a
// second time, or adding cases after it, fails with ErrSealed.
func (b *Builder) Define() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.sealed {
		return nil, ErrSealed
	}
	b.sealed = true

	return New(b.name, b.cases...)
}
