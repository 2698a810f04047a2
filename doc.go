// Package quickfn is a functional programming toolkit for Go. It provides
// the typed algebraic core of the library: Maybe, Either and Outcome
// containers, function combinators (composition, currying, flipping),
// tuples, an immutable cons list, and a catalogue of sequence combinators.
//
// Deferred expression building lives in the expr subpackage and dynamic
// tagged unions with exhaustive pattern matching live in the union
// subpackage. The root package has no dependencies on either.
package quickfn
