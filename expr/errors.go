package expr

import "errors"

var (
	// ErrInvalid is returned when the compiler encounters an expression
	// node it does not recognize. Trees built through the public builder
	// can never trigger it.
	ErrInvalid = errors.New("invalid expression")

	// ErrNotImplemented is returned when a tree that uses the secondary
	// sentinel Y is compiled in a context requiring exactly one free
	// variable.
	ErrNotImplemented = errors.New("secondary placeholder requires Func2")

	// ErrBadOperand is returned when an operator is applied to values it
	// does not support.
	ErrBadOperand = errors.New("unsupported operand type")

	// ErrDivideByZero is returned for integer division or modulo by zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrNoAttr is returned when an attribute lookup finds no field,
	// method or map entry of the requested name.
	ErrNoAttr = errors.New("no such attribute")

	// ErrNotCallable is returned when a call node's callee does not
	// evaluate to a callable value.
	ErrNotCallable = errors.New("value is not callable")
)
