package union

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func shape(t *testing.T) *Type {
	t.Helper()

	return MustNew("Shape",
		CFields("Circle", "radius"),
		CFields("Rect", "width", "height"),
		C("Empty", 0),
	)
}

// TestDefinitionErrors ensures every malformed declaration is rejected at
// definition time with its dedicated error.
func TestDefinitionErrors(t *testing.T) {
	tests := []struct {
		name  string
		cases []Case
		err   error
	}{
		{
			name:  "no cases",
			cases: nil,
			err:   ErrNoCases,
		},
		{
			name: "duplicate case",
			cases: []Case{
				C("Leaf", 1), C("Node", 2), C("Leaf", 0),
			},
			err: ErrDuplicateCase,
		},
		{
			name:  "unexported case name",
			cases: []Case{C("leaf", 1)},
			err:   ErrBadCaseName,
		},
		{
			name:  "empty case name",
			cases: []Case{C("", 0)},
			err:   ErrBadCaseName,
		},
		{
			name:  "negative arity",
			cases: []Case{C("Leaf", -1)},
			err:   ErrBadArity,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			u, err := New("Tree", test.cases...)
			require.Nil(t, u)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestTypeIntrospection(t *testing.T) {
	u := shape(t)

	require.Equal(t, "Shape", u.Name())
	require.Equal(t, []string{"Circle", "Rect", "Empty"}, u.Cases())
	require.True(t, u.HasCase("Rect"))
	require.False(t, u.HasCase("Triangle"))

	arity, err := u.Arity("Rect")
	require.NoError(t, err)
	require.Equal(t, 2, arity)

	_, err = u.Arity("Triangle")
	require.ErrorIs(t, err, ErrUnknownCase)
}

func TestConstructionArity(t *testing.T) {
	u := shape(t)

	v, err := u.New("Circle", 3.0)
	require.NoError(t, err)
	require.Equal(t, "Circle", v.CaseName())
	require.Equal(t, []any{3.0}, v.Fields())

	_, err = u.New("Circle")
	require.ErrorIs(t, err, ErrArity)

	_, err = u.New("Circle", 3.0, 4.0)
	require.ErrorIs(t, err, ErrArity)

	_, err = u.New("Triangle", 1, 2, 3)
	require.ErrorIs(t, err, ErrUnknownCase)
}

// TestSingletonIdentity checks that zero-field cases always hand back the
// one shared instance, while data cases allocate fresh values.
func TestSingletonIdentity(t *testing.T) {
	u := shape(t)

	a := u.MustNew("Empty")
	b := u.MustNew("Empty")
	require.Same(t, a, b)

	unit, err := u.Unit("Empty")
	require.NoError(t, err)
	require.Same(t, a, unit)

	c1 := u.MustNew("Circle", 1.0)
	c2 := u.MustNew("Circle", 1.0)
	require.NotSame(t, c1, c2)

	// Unit only applies to zero-field cases.
	_, err = u.Unit("Circle")
	require.ErrorIs(t, err, ErrArity)

	// Distinct unions keep distinct singletons even for same-named
	// cases.
	other := MustNew("Other", C("Empty", 0))
	require.NotSame(t, a, other.MustNew("Empty"))
}

func TestStructuralEquality(t *testing.T) {
	u := shape(t)

	require.True(t, u.MustNew("Circle", 1.0).Equal(u.MustNew("Circle", 1.0)))
	require.False(t, u.MustNew("Circle", 1.0).Equal(u.MustNew("Circle", 2.0)))
	require.False(t, u.MustNew("Circle", 1.0).Equal(u.MustNew("Rect", 1.0, 1.0)))
	require.True(t, u.MustNew("Empty").Equal(u.MustNew("Empty")))

	// Field tuples compare deeply.
	r1 := u.MustNew("Rect", []int{1, 2}, 3)
	r2 := u.MustNew("Rect", []int{1, 2}, 3)
	require.True(t, r1.Equal(r2))

	// Same case shape under a different union never compares equal.
	other := MustNew("Other", CFields("Circle", "radius"))
	require.False(t, u.MustNew("Circle", 1.0).Equal(other.MustNew("Circle", 1.0)))

	var nilValue *Value
	require.False(t, u.MustNew("Empty").Equal(nilValue))
	require.True(t, nilValue.Equal(nilValue))
}

// TestArgsAccessor covers the case-isolation rule: fields of a case are
// only reachable while the value holds that case.
func TestArgsAccessor(t *testing.T) {
	u := shape(t)
	v := u.MustNew("Rect", 3, 4)

	args, err := v.Args("Rect")
	require.NoError(t, err)
	require.Equal(t, []any{3, 4}, args)

	_, err = v.Args("Circle")
	require.ErrorIs(t, err, ErrWrongCase)

	_, err = v.Args("Triangle")
	require.ErrorIs(t, err, ErrUnknownCase)

	require.True(t, v.Is("Rect"))
	require.False(t, v.Is("Circle"))
	require.Equal(t, 1, v.Tag())
	require.Same(t, u, v.Type())
}

func TestFieldsAreCopies(t *testing.T) {
	u := shape(t)
	v := u.MustNew("Rect", 3, 4)

	fields := v.Fields()
	fields[0] = 99

	require.Equal(t, []any{3, 4}, v.Fields())
}

func TestCtor(t *testing.T) {
	u := shape(t)

	circle, err := u.Ctor("Circle")
	require.NoError(t, err)

	v, err := circle(2.5)
	require.NoError(t, err)
	require.True(t, v.Is("Circle"))

	_, err = circle(1, 2)
	require.ErrorIs(t, err, ErrArity)

	_, err = u.Ctor("Triangle")
	require.ErrorIs(t, err, ErrUnknownCase)
}

func TestValueString(t *testing.T) {
	u := shape(t)

	require.Equal(t, "Empty", u.MustNew("Empty").String())
	require.Equal(t, "Rect(3, 4)", u.MustNew("Rect", 3, 4).String())
}

func TestBuilderSealing(t *testing.T) {
	b := Build("Color").Case("Red", 0).Case("Green", 0)

	u, err := b.Define()
	require.NoError(t, err)
	require.Equal(t, []string{"Red", "Green"}, u.Cases())

	// The builder is spent: no second definition, no late cases.
	_, err = b.Define()
	require.ErrorIs(t, err, ErrSealed)

	_, err = b.Case("Blue", 0).Define()
	require.ErrorIs(t, err, ErrSealed)

	// The defined union is unaffected by post-seal abuse.
	require.Equal(t, []string{"Red", "Green"}, u.Cases())
}

func TestBuilderValidation(t *testing.T) {
	_, err := Build("Tree").Case("leaf", 1).Define()
	require.ErrorIs(t, err, ErrBadCaseName)

	_, err = Build("Tree").Define()
	require.ErrorIs(t, err, ErrNoCases)

	u, err := Build("Pair").CaseFields("P", "fst", "snd").Define()
	require.NoError(t, err)

	arity, err := u.Arity("P")
	require.NoError(t, err)
	require.Equal(t, 2, arity)
}
