package quickfn

import (
	"fmt"
	"strings"
)

// List is an immutable singly linked cons list. The nil pointer is the
// empty list, so the zero value is ready to use. Lists share structure:
// consing onto a list never copies or mutates the tail.
type List[A any] struct {
	head A
	tail *List[A]
}

// NilList returns the empty list.
//
// NilList : List[A].
func NilList[A any]() *List[A] {
	return nil
}

// Cons prepends a value to the front of a list, returning the new list.
//
// Cons : (A, List[A]) -> List[A].
func Cons[A any](a A, l *List[A]) *List[A] {
	return &List[A]{head: a, tail: l}
}

// FromSlice builds a list holding the slice elements in order.
func FromSlice[A any](s []A) *List[A] {
	l := NilList[A]()
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}

	return l
}

// IsEmpty returns true for the empty list.
func (l *List[A]) IsEmpty() bool {
	return l == nil
}

// Head returns the first element, or Nothing for the empty list.
func (l *List[A]) Head() Maybe[A] {
	if l == nil {
		return NothingOf[A]()
	}

	return Just(l.head)
}

// Tail returns the list without its first element, or Nothing for the
// empty list.
func (l *List[A]) Tail() Maybe[*List[A]] {
	if l == nil {
		return NothingOf[*List[A]]()
	}

	return Just(l.tail)
}

// Len walks the list and returns the number of elements.
func (l *List[A]) Len() int {
	n := 0
	for cur := l; cur != nil; cur = cur.tail {
		n++
	}

	return n
}

// Reverse returns a new list with the elements in opposite order.
func (l *List[A]) Reverse() *List[A] {
	rev := NilList[A]()
	for cur := l; cur != nil; cur = cur.tail {
		rev = Cons(cur.head, rev)
	}

	return rev
}

// Concat appends the other list after this one. The other list is shared,
// not copied.
func (l *List[A]) Concat(other *List[A]) *List[A] {
	res := other
	for cur := l.Reverse(); cur != nil; cur = cur.tail {
		res = Cons(cur.head, res)
	}

	return res
}

// ToSlice realizes the list as a slice.
func (l *List[A]) ToSlice() []A {
	res := make([]A, 0, l.Len())
	for cur := l; cur != nil; cur = cur.tail {
		res = append(res, cur.head)
	}

	return res
}

// Each applies a side-effecting function to every element front to back.
func (l *List[A]) Each(f func(A)) {
	for cur := l; cur != nil; cur = cur.tail {
		f(cur.head)
	}
}

// String renders the list with bracket notation.
func (l *List[A]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for cur := l; cur != nil; cur = cur.tail {
		if cur != l {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", cur.head)
	}
	b.WriteString("]")

	return b.String()
}

// FoldList reduces the list front to back with an accumulator seeded by the
// seed argument.
//
// FoldList : ((B, A) -> B, B, List[A]) -> B.
func FoldList[A, B any](f func(B, A) B, seed B, l *List[A]) B {
	acc := seed
	for cur := l; cur != nil; cur = cur.tail {
		acc = f(acc, cur.head)
	}

	return acc
}

// MapList applies the function to every element, producing a new list of
// the results in the same order.
//
// MapList : (A -> B, List[A]) -> List[B].
func MapList[A, B any](f func(A) B, l *List[A]) *List[B] {
	res := NilList[B]()
	for cur := l.Reverse(); cur != nil; cur = cur.tail {
		res = Cons(f(cur.head), res)
	}

	return res
}

// FilterList keeps the elements passing the predicate, preserving order.
func FilterList[A any](pred Pred[A], l *List[A]) *List[A] {
	res := NilList[A]()
	for cur := l.Reverse(); cur != nil; cur = cur.tail {
		if pred(cur.head) {
			res = Cons(cur.head, res)
		}
	}

	return res
}

// ListEqual reports whether two lists hold equal elements in the same
// order.
func ListEqual[A comparable](a, b *List[A]) bool {
	for a != nil && b != nil {
		if a.head != b.head {
			return false
		}
		a, b = a.tail, b.tail
	}

	return a == nil && b == nil
}
