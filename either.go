package quickfn

// Either is a type that can be either left or right.
type Either[L any, R any] struct {
	left  Maybe[L]
	right Maybe[R]
}

// Left returns an Either with a left value.
func Left[L any, R any](l L) Either[L, R] {
	return Either[L, R]{left: Just(l), right: NothingOf[R]()}
}

// Right returns an Either with a right value.
func Right[L any, R any](r R) Either[L, R] {
	return Either[L, R]{left: NothingOf[L](), right: Just(r)}
}

// WhenLeft executes the given function if the Either is left.
func (e Either[L, R]) WhenLeft(f func(L)) {
	e.left.WhenJust(f)
}

// WhenRight executes the given function if the Either is right.
func (e Either[L, R]) WhenRight(f func(R)) {
	e.right.WhenJust(f)
}

// IsLeft returns true if the Either is left.
func (e Either[L, R]) IsLeft() bool {
	return e.left.IsJust()
}

// IsRight returns true if the Either is right.
func (e Either[L, R]) IsRight() bool {
	return e.right.IsJust()
}

// LeftOr returns the left value or the supplied default if the Either is
// right.
func (e Either[L, R]) LeftOr(l L) L {
	return e.left.GetOr(l)
}

// RightOr returns the right value or the supplied default if the Either is
// left.
func (e Either[L, R]) RightOr(r R) R {
	return e.right.GetOr(r)
}

// Swap exchanges the left and right sides of an Either.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{left: e.right, right: e.left}
}

// MapLeft maps the left value of the Either to a new value, leaving a right
// value untouched.
//
// MapLeft : (L -> O) -> Either[L, R] -> Either[O, R].
func MapLeft[L, R, O any](f func(L) O) func(Either[L, R]) Either[O, R] {
	return func(e Either[L, R]) Either[O, R] {
		if e.IsLeft() {
			return Left[O, R](f(e.left.just))
		}

		return Either[O, R]{left: NothingOf[O](), right: e.right}
	}
}

// MapRight maps the right value of the Either to a new value, leaving a left
// value untouched.
//
// MapRight : (R -> O) -> Either[L, R] -> Either[L, O].
func MapRight[L, R, O any](f func(R) O) func(Either[L, R]) Either[L, O] {
	return func(e Either[L, R]) Either[L, O] {
		if e.IsRight() {
			return Right[L, O](f(e.right.just))
		}

		return Either[L, O]{left: e.left, right: NothingOf[O]()}
	}
}

// ElimEither is the universal Either eliminator, reducing both sides to a
// common type with one continuation per side.
//
// ElimEither : (Either[L, R], L -> O, R -> O) -> O.
func ElimEither[L, R, O any](e Either[L, R], f func(L) O, g func(R) O) O {
	if e.IsLeft() {
		return f(e.left.just)
	}

	return g(e.right.just)
}
