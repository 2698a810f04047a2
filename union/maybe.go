package union

// Maybe is the classic optional union: Just carries one value, Nothing is
// a singleton.
var Maybe = MustNew("Maybe", C("Just", 1), C("Nothing", 0))

// Just constructs a Maybe instance holding a value.
func Just(v any) *Value {
	return Maybe.MustNew("Just", v)
}

// Nothing returns the shared empty Maybe instance.
func Nothing() *Value {
	return Maybe.MustNew("Nothing")
}

// Result is the classic success-or-error union. Both cases carry one
// value, so neither is a singleton.
var Result = MustNew("Result", CFields("Ok", "value"), CFields("Err", "error"))

// Ok constructs a successful Result instance.
func Ok(v any) *Value {
	return Result.MustNew("Ok", v)
}

// Err constructs a failed Result instance.
func Err(e any) *Value {
	return Result.MustNew("Err", e)
}
