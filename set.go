package quickfn

import "fmt"

// Set is a generic set using a map with only "true" values.
type Set[T comparable] map[T]Unit

// NewSet returns a new set with the given elements.
func NewSet[T comparable](elems ...T) Set[T] {
	set := make(Set[T], len(elems))
	for _, e := range elems {
		set.Add(e)
	}

	return set
}

// Add adds an element to the set.
func (s Set[T]) Add(e T) {
	s[e] = Unit{}
}

// Remove removes an element from the set.
func (s Set[T]) Remove(e T) {
	delete(s, e)
}

// Contains returns true if the set contains the element.
func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]
	return ok
}

// Diff returns the difference between two sets.
func (s Set[T]) Diff(other Set[T]) Set[T] {
	diff := make(Set[T])
	for e := range s {
		if !other.Contains(e) {
			diff.Add(e)
		}
	}

	return diff
}

// Union returns the union of two sets.
func (s Set[T]) Union(other Set[T]) Set[T] {
	union := make(Set[T])
	for e := range s {
		union.Add(e)
	}
	for e := range other {
		union.Add(e)
	}

	return union
}

// Inter returns the intersection of two sets.
func (s Set[T]) Inter(other Set[T]) Set[T] {
	inter := make(Set[T])
	for e := range s {
		if other.Contains(e) {
			inter.Add(e)
		}
	}

	return inter
}

// Equals returns true if both sets hold exactly the same elements.
func (s Set[T]) Equals(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if !other.Contains(e) {
			return false
		}
	}

	return true
}

// ToSlice returns the elements of the set as a slice. Iteration order is
// not specified.
func (s Set[T]) ToSlice() []T {
	elems := make([]T, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}

	return elems
}

// KeySet converts a map into a Set containing the keys of the map.
func KeySet[K comparable, V any](m map[K]V) Set[K] {
	set := make(Set[K], len(m))
	for k := range m {
		set.Add(k)
	}

	return set
}

// SubMap returns a new map containing only the key/value pairs for the keys
// requested. It errors if any of the keys are not found in the original
// map.
func SubMap[K comparable, V any](m map[K]V, keys []K) (map[K]V, error) {
	result := make(map[K]V, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			return nil, fmt.Errorf("key %v not found", k)
		}
		result[k] = v
	}

	return result, nil
}
