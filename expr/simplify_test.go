package expr

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestSimplifyMergesAttrChains(t *testing.T) {
	e := X.Attr("Foo").Attr("Bar").Attr("Baz").Simplified()

	n, ok := e.node.(attrNode)
	if !ok {
		t.Fatalf("expected a single attribute node, got:\n%# v",
			pretty.Formatter(e.String()))
	}

	require.Equal(t, "Foo.Bar.Baz", n.name)
	require.IsType(t, varNode{}, n.base)
}

func TestSimplifyFoldsConstAttr(t *testing.T) {
	p := payload{Foo: inner{Bar: 42}}

	// A lookup on a constant of a simple immutable kind is pre-evaluated
	// into a constant, without touching the rest of the tree.
	e := Const(p).Attr("Foo").Simplified()
	v, ok := e.AsConst()
	require.True(t, ok, "expected constant, got %s", e.String())
	require.Equal(t, inner{Bar: 42}, v)

	// Folding runs bottom-up, so chains collapse all the way down.
	e = Const(p).Attr("Foo").Attr("Bar").Simplified()
	v, ok = e.AsConst()
	require.True(t, ok, "expected constant, got %s", e.String())
	require.Equal(t, 42, v)

	// The folded tree still evaluates to the captured value whatever the
	// argument is.
	require.Equal(t, 42, eval(t, Const(p).Attr("Foo").Attr("Bar"), nil))
	require.Equal(t, 42, eval(t, Const(p).Attr("Foo").Attr("Bar"), "x"))
}

func TestSimplifyLeavesUnfoldableAlone(t *testing.T) {
	// Lookups on a mutable base (a pointer) must not be pre-evaluated:
	// the pointee can change between compilation and the call.
	p := &payload{Foo: inner{Bar: 1}}
	e := Const(p).Attr("Foo").Attr("Bar")

	_, ok := e.Simplified().AsConst()
	require.False(t, ok)

	f := e.MustFunc()

	v, err := f(nil)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	p.Foo.Bar = 2
	v, err = f(nil)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestSimplifyFailedLookupDefers(t *testing.T) {
	// A missing attribute on a foldable constant is left in place and
	// only fails at evaluation time.
	e := Const(payload{}).Attr("Missing")

	_, ok := e.Simplified().AsConst()
	require.False(t, ok)

	_, err := e.Eval(nil)
	require.ErrorIs(t, err, ErrNoAttr)
}

func TestSimplifyRecursesThroughOperators(t *testing.T) {
	e := X.Attr("Foo").Attr("Bar").Add(Const(inner{Bar: 1}).Attr("Bar"))
	s := e.Simplified()

	n, ok := s.node.(binaryNode)
	if !ok {
		t.Fatalf("expected binary node, got:\n%# v",
			pretty.Formatter(s.String()))
	}

	left, ok := n.left.(attrNode)
	require.True(t, ok)
	require.Equal(t, "Foo.Bar", left.name)

	right, ok := n.right.(constNode)
	require.True(t, ok)
	require.Equal(t, 1, right.value)
}
