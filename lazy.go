package quickfn

import "sync"

// Thunk is a deferred computation whose result is memoized after the first
// Force. Forcing is safe to do from multiple goroutines: the wrapped
// function runs at most once.
type Thunk[A any] struct {
	once sync.Once
	f    func() A
	val  A
}

// NewThunk wraps a computation without running it.
//
// NewThunk : (() -> A) -> Thunk[A].
func NewThunk[A any](f func() A) *Thunk[A] {
	return &Thunk[A]{f: f}
}

// ThunkOf wraps an already computed value in an immediately forced Thunk.
func ThunkOf[A any](a A) *Thunk[A] {
	t := &Thunk[A]{}
	t.once.Do(func() { t.val = a })

	return t
}

// Force evaluates the thunk, running the wrapped computation on first use
// and returning the memoized value on every call after that.
func (t *Thunk[A]) Force() A {
	t.once.Do(func() {
		t.val = t.f()
		t.f = nil
	})

	return t.val
}

// MapThunk produces a new deferred computation by composing a function onto
// a thunk. The argument thunk is not forced until the resulting thunk is.
//
// MapThunk : (A -> B, Thunk[A]) -> Thunk[B].
func MapThunk[A, B any](f func(A) B, t *Thunk[A]) *Thunk[B] {
	return NewThunk(func() B {
		return f(t.Force())
	})
}
