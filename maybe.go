package quickfn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Maybe represents a value which may or may not be there. This is very often
// preferable to nil-able pointers.
type Maybe[A any] struct {
	isJust bool
	just   A
}

// Just trivially injects a value into a Maybe context.
//
// Just : A -> Maybe[A].
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{
		isJust: true,
		just:   a,
	}
}

// NothingOf trivially constructs an empty Maybe.
//
// NothingOf : Maybe[A].
func NothingOf[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromPtr constructs a Maybe from a pointer, mapping nil to Nothing.
//
// FromPtr : *A -> Maybe[A].
func FromPtr[A any](a *A) Maybe[A] {
	if a == nil {
		return NothingOf[A]()
	}

	return Just[A](*a)
}

// Elim is the universal Maybe eliminator. It can be used to safely handle
// all possible values inside the Maybe by supplying two continuations, the
// first for the Nothing case and the second for the Just case.
//
// Elim : (Maybe[A], () -> B, A -> B) -> B.
func Elim[A, B any](m Maybe[A], n func() B, j func(A) B) B {
	if m.isJust {
		return j(m.just)
	}

	return n()
}

// GetOr is used to extract a value from a Maybe, and we supply the default
// value in the case when the Maybe is empty.
//
// GetOr : (Maybe[A], A) -> A.
func (m Maybe[A]) GetOr(a A) A {
	if m.isJust {
		return m.just
	}

	return a
}

// GetOrFunc is used to extract a value from a Maybe, and we supply a thunk
// to be evaluated in the case when the Maybe is empty.
func (m Maybe[A]) GetOrFunc(f func() A) A {
	return Elim(m, f, func(a A) A { return a })
}

// GetOrFail is used to extract a value from a Maybe within a test context.
// If the Maybe is Nothing, then the test fails.
func (m Maybe[A]) GetOrFail(t *testing.T) A {
	t.Helper()

	require.True(t, m.isJust, "Maybe[%T] was Nothing", m.just)

	return m.just
}

// GetOrErr is used to extract a value from a Maybe, if the Maybe is empty,
// then the specified error is returned directly.
func (m Maybe[A]) GetOrErr(err error) (A, error) {
	if !m.isJust {
		var zero A
		return zero, err
	}

	return m.just, nil
}

// WhenJust is used to conditionally perform a side-effecting function that
// accepts a value of the type that parameterizes the Maybe. If this function
// performs no side effects, WhenJust is useless.
//
// WhenJust : (Maybe[A], A -> ()) -> ().
func (m Maybe[A]) WhenJust(f func(A)) {
	if m.isJust {
		f(m.just)
	}
}

// IsJust returns true if the Maybe contains a value.
//
// IsJust : Maybe[A] -> bool.
func (m Maybe[A]) IsJust() bool {
	return m.isJust
}

// IsNothing returns true if the Maybe is empty.
//
// IsNothing : Maybe[A] -> bool.
func (m Maybe[A]) IsNothing() bool {
	return !m.isJust
}

// FlattenMaybe joins two layers of Maybe together such that if either layer
// is Nothing, then the joined value is Nothing. Otherwise the innermost Just
// value is returned.
//
// FlattenMaybe : Maybe[Maybe[A]] -> Maybe[A].
func FlattenMaybe[A any](mm Maybe[Maybe[A]]) Maybe[A] {
	if mm.IsNothing() {
		return NothingOf[A]()
	}
	if mm.just.IsNothing() {
		return NothingOf[A]()
	}

	return mm.just
}

// FlatMapMaybe transforms a function A -> Maybe[B] into one that accepts a
// Maybe[A] as an argument.
//
// FlatMapMaybe : (A -> Maybe[B]) -> Maybe[A] -> Maybe[B].
func FlatMapMaybe[A, B any](f func(A) Maybe[B]) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		if m.isJust {
			return f(m.just)
		}

		return NothingOf[B]()
	}
}

// MapMaybe transforms a pure function A -> B into one that will operate
// inside the Maybe context.
//
// MapMaybe : (A -> B) -> Maybe[A] -> Maybe[B].
func MapMaybe[A, B any](f func(A) B) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		if m.isJust {
			return Just(f(m.just))
		}

		return NothingOf[B]()
	}
}

// MapMaybeZ transforms a pure function A -> B into one that will operate
// inside the Maybe context. Unlike MapMaybe, this function will return the
// default/zero argument of the return type if the Maybe is empty.
func MapMaybeZ[A, B any](m Maybe[A], f func(A) B) B {
	var zero B

	if m.IsNothing() {
		return zero
	}

	return f(m.just)
}

// LiftA2Maybe transforms a pure function (A, B) -> C into one that will
// operate in a Maybe context. For the returned function, if either of its
// arguments are Nothing, then the result will be Nothing.
//
// LiftA2Maybe : ((A, B) -> C) -> (Maybe[A], Maybe[B]) -> Maybe[C].
func LiftA2Maybe[A, B, C any](
	f func(A, B) C,
) func(Maybe[A], Maybe[B]) Maybe[C] {

	return func(m1 Maybe[A], m2 Maybe[B]) Maybe[C] {
		if m1.isJust && m2.isJust {
			return Just(f(m1.just, m2.just))
		}

		return NothingOf[C]()
	}
}

// Alt chooses the left Maybe if it is full, otherwise it chooses the right
// one. This can be useful in a long chain if you want to choose between
// many different ways of producing the needed value.
//
// Alt : Maybe[A] -> Maybe[A] -> Maybe[A].
func (m Maybe[A]) Alt(m2 Maybe[A]) Maybe[A] {
	if m.isJust {
		return m
	}

	return m2
}

// UnsafeGet can be used to extract the internal value. This will panic if
// the value is Nothing though.
func (m Maybe[A]) UnsafeGet() A {
	if m.isJust {
		return m.just
	}
	panic("Maybe was Nothing")
}

// JustToLeft can be used to convert a Maybe value into an Either, by
// providing the Right value that should be used if the Maybe value is
// Nothing.
func JustToLeft[O, R any](m Maybe[O], r R) Either[O, R] {
	if m.IsJust() {
		return Left[O, R](m.just)
	}

	return Right[O, R](r)
}

// JustToRight can be used to convert a Maybe value into an Either, by
// providing the Left value that should be used if the Maybe value is
// Nothing.
func JustToRight[O, L any](m Maybe[O], l L) Either[L, O] {
	if m.IsJust() {
		return Right[L, O](m.just)
	}

	return Left[L, O](l)
}

// JustToOk allows you to convert a Maybe value to an Outcome with your own
// error. If the Maybe contained a Just, then the supplied error is ignored
// and Just is converted to Ok.
func (m Maybe[A]) JustToOk(err error) Outcome[A] {
	return Outcome[A]{
		JustToLeft(m, err),
	}
}

// JustToOkf allows you to convert a Maybe value to an Outcome with your own
// error message. If the Maybe contains a Just, then the supplied message is
// ignored and Just is converted to Ok.
func (m Maybe[A]) JustToOkf(errString string, args ...interface{}) Outcome[A] {
	return Outcome[A]{
		JustToLeft(m, fmt.Errorf(errString, args...)),
	}
}

// TransposeMaybeOut transposes a Maybe[Outcome[A]] into an
// Outcome[Maybe[A]]. This has the effect of leaving an A value alone while
// inverting the Maybe and Outcome layers. If there is no internal A value,
// it will convert the non-success value to the proper one in the
// transposition.
func TransposeMaybeOut[A any](m Maybe[Outcome[A]]) Outcome[Maybe[A]] {
	if m.IsNothing() {
		return Ok(NothingOf[A]())
	}

	return Outcome[Maybe[A]]{
		Either: MapLeft[A, error](Just[A])(m.just.Either),
	}
}

// TransposeOutMaybe transposes an Outcome[Maybe[A]] into a
// Maybe[Outcome[A]]. An Ok(Nothing) becomes Nothing, an Ok(Just) becomes
// Just(Ok) and an error becomes Just(Fail).
func TransposeOutMaybe[A any](o Outcome[Maybe[A]]) Maybe[Outcome[A]] {
	if o.IsErr() {
		return Just(Fail[A](o.right.just))
	}

	inner := o.left.just
	if inner.IsNothing() {
		return NothingOf[Outcome[A]]()
	}

	return Just(Ok(inner.just))
}
