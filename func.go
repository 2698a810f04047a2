package quickfn

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationless type.
type Unit = struct{}

// Pred[A] is a predicate on type A.
type Pred[A any] func(A) bool

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)).
// This can make it easier to create on the fly closures that we may use as
// arguments to other functions defined in this package (or otherwise).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Identity simply returns its argument. It is the left and right identity
// of Comp. Its utility is only apparent in conjunction with other functions
// in this package.
func Identity[A any](a A) A {
	return a
}

// Const is a function that accepts an argument and returns a function that
// always returns that value irrespective of the returned function's
// argument. This is quite useful in conjunction with higher order functions.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Flip reverses the argument order of a two argument function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Curry takes a two argument function and returns a function that accepts
// the first argument and then returns a function that accepts the second
// argument. This can be a useful utility when taking functions defined in a
// typical Go style and adapting them to work with higher-order functions
// that expect functions of a single argument.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry inverts the Curry operation, turning a function that accepts one
// argument and returns a function accepting the second argument into a
// function that accepts both arguments up front. This is included for
// completeness, although you should expect to use it rarely.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Partial fixes the first argument of a two argument function, producing a
// function of the remaining argument.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// Pipe composes the argument functions left to right and applies the
// composite to the seed value. An empty function list returns the seed
// unchanged.
func Pipe[A any](a A, fs ...func(A) A) A {
	for _, f := range fs {
		a = f(a)
	}

	return a
}

// EqTo returns a predicate that tests its argument for equality with the
// captured value.
func EqTo[A comparable](a A) Pred[A] {
	return func(x A) bool {
		return x == a
	}
}

// NeqTo returns a predicate that tests its argument for inequality with the
// captured value.
func NeqTo[A comparable](a A) Pred[A] {
	return func(x A) bool {
		return x != a
	}
}

// NotPred inverts a predicate.
func NotPred[A any](p Pred[A]) Pred[A] {
	return func(a A) bool {
		return !p(a)
	}
}
