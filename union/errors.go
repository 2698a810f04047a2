package union

import "errors"

var (
	// ErrNoCases is returned when a union is defined without any case.
	ErrNoCases = errors.New("union needs at least one case")

	// ErrDuplicateCase is returned when two cases of one union share a
	// name.
	ErrDuplicateCase = errors.New("duplicate case name")

	// ErrBadCaseName is returned for case names that are empty or do not
	// start with an upper-case letter.
	ErrBadCaseName = errors.New("case names must be exported identifiers")

	// ErrBadArity is returned for a negative field count.
	ErrBadArity = errors.New("case arity cannot be negative")

	// ErrUnknownCase is returned when a case name does not belong to the
	// union.
	ErrUnknownCase = errors.New("unknown case")

	// ErrArity is returned when a case constructor receives the wrong
	// number of arguments.
	ErrArity = errors.New("wrong number of constructor arguments")

	// ErrWrongCase is returned by the field accessor when the instance
	// holds a different case. It signals "field not present", not "value
	// is null".
	ErrWrongCase = errors.New("field tuple not present for case")

	// ErrBadHandlers is returned when a pattern match is not exactly
	// exhaustive: some case has no handler, or a handler names no case.
	ErrBadHandlers = errors.New("handlers must cover exactly the cases")

	// ErrSealed is returned when a builder is reused after Define. A
	// defined union is closed: its case set can never be extended.
	ErrSealed = errors.New("union is sealed")
)
