package quickfn

import (
	"fmt"
	"testing"
)

// Outcome represents a value that can either be a success (T) or an error.
type Outcome[T any] struct {
	Either[T, error]
}

// Ok creates a new Outcome with a success value.
func Ok[T any](val T) Outcome[T] {
	return Outcome[T]{Either: Left[T, error](val)}
}

// Fail creates a new Outcome with an error.
func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{Either: Right[T, error](err)}
}

// Failf creates a new Outcome with a new formatted error string.
func Failf[T any](errString string, args ...any) Outcome[T] {
	return Outcome[T]{
		Either: Right[T, error](fmt.Errorf(errString, args...)),
	}
}

// NewOutcome packs an ordinary Go return pair into an Outcome. A non-nil
// error wins over the value.
func NewOutcome[T any](val T, err error) Outcome[T] {
	if err != nil {
		return Fail[T](err)
	}

	return Ok(val)
}

// SafeCall runs a fallible thunk and captures both its returned error and
// any panic it raises as a failed Outcome. This is the bridge from plain Go
// callables into the Outcome context.
func SafeCall[T any](f func() (T, error)) (res Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failf[T]("panic: %v", r)
		}
	}()

	return NewOutcome(f())
}

// Unpack extracts the value or error from the Outcome.
func (o Outcome[T]) Unpack() (T, error) {
	var zero T
	return o.left.GetOr(zero), o.right.GetOr(nil)
}

// IsOk returns true if the Outcome is a success value.
func (o Outcome[T]) IsOk() bool {
	return o.IsLeft()
}

// IsErr returns true if the Outcome is an error.
func (o Outcome[T]) IsErr() bool {
	return o.IsRight()
}

// Map applies a function to the success value if it exists.
func (o Outcome[T]) Map(f func(T) T) Outcome[T] {
	if o.IsOk() {
		return Ok(f(o.left.just))
	}

	return o
}

// MapErr applies a function to the error value if it exists.
func (o Outcome[T]) MapErr(f func(error) error) Outcome[T] {
	if o.IsErr() {
		return Fail[T](f(o.right.just))
	}

	return o
}

// Maybe returns the success value as a Maybe.
func (o Outcome[T]) Maybe() Maybe[T] {
	return o.left
}

// Err returns the error or nil if the Outcome is a success.
func (o Outcome[T]) Err() error {
	return o.right.GetOr(nil)
}

// WhenOk executes the given function if the Outcome is a success.
func (o Outcome[T]) WhenOk(f func(T)) {
	o.left.WhenJust(f)
}

// WhenErr executes the given function if the Outcome is an error.
func (o Outcome[T]) WhenErr(f func(error)) {
	o.right.WhenJust(f)
}

// GetOr returns the success value or a default value if it's an error.
func (o Outcome[T]) GetOr(defaultValue T) T {
	return o.left.GetOr(defaultValue)
}

// GetOrElse returns the success value or computes a value from a function
// if it's an error.
func (o Outcome[T]) GetOrElse(f func() T) T {
	return o.left.GetOrFunc(f)
}

// GetOrFail returns the success value or fails the test if it's an error.
func (o Outcome[T]) GetOrFail(t *testing.T) T {
	t.Helper()

	return o.left.GetOrFail(t)
}

// FlatMap applies a function that returns an Outcome to the success value
// if it exists.
func (o Outcome[T]) FlatMap(f func(T) Outcome[T]) Outcome[T] {
	if o.IsOk() {
		return f(o.left.just)
	}

	return o
}

// AndThen is an alias for FlatMap. This along with OrElse can be used for
// Railway Oriented Programming (ROP) by chaining successive computational
// operations from a single result type.
func (o Outcome[T]) AndThen(f func(T) Outcome[T]) Outcome[T] {
	return o.FlatMap(f)
}

// OrElse returns the original Outcome if it is a success, otherwise it
// returns the provided alternative Outcome. This along with AndThen can be
// used for Railway Oriented Programming (ROP).
func (o Outcome[T]) OrElse(f func() Outcome[T]) Outcome[T] {
	if o.IsOk() {
		return o
	}

	return f()
}

// ThenOutcome applies a function that returns an Outcome[B] to the success
// value if it exists.
func ThenOutcome[A, B any](o Outcome[A], f func(A) Outcome[B]) Outcome[B] {
	if o.IsOk() {
		return f(o.left.just)
	}

	return Fail[B](o.right.just)
}

// MapOutcome applies a pure function A -> B to the success value if it
// exists.
func MapOutcome[A, B any](o Outcome[A], f func(A) B) Outcome[B] {
	if o.IsOk() {
		return Ok(f(o.left.just))
	}

	return Fail[B](o.right.just)
}

// FirstError returns the first error found in the argument list, or nil if
// none of the Outcomes failed.
func FirstError[T any](os ...Outcome[T]) error {
	for _, o := range os {
		if o.IsErr() {
			return o.right.just
		}
	}

	return nil
}
