// Package expr builds ordinary functions from deferred expressions. An
// expression is written against the placeholder X (and optionally the
// secondary placeholder Y) using builder methods in place of operators:
//
//	double := expr.X.Add(expr.X).MustFunc()
//	v, err := double(21) // 42
//
// Nothing evaluates while the expression is being built. Compilation walks
// the recorded tree once, after a simplification pass, and the compiled
// closure is memoized on the expression, so repeated Func calls are cheap.
// Expressions and compiled functions are immutable and safe for concurrent
// use.
package expr

import "sync"

// Expr is an immutable deferred expression. The zero value is not useful;
// expressions grow from the X and Y sentinels or from Const.
type Expr struct {
	node  node
	cache *compileCache
}

// compileCache memoizes the compiled closures for one expression value.
// One-argument and two-argument compilations are cached independently.
type compileCache struct {
	once1 sync.Once
	fn1   Func
	err1  error

	once2 sync.Once
	fn2   Func2
	err2  error
}

// Func is a compiled one-argument function. Evaluation is pure; any error
// comes from the recorded operations themselves (bad operand types, missing
// attributes, failed calls).
type Func func(x any) (any, error)

// Func2 is a compiled two-argument function, produced from expressions
// that use the secondary placeholder Y.
type Func2 func(x, y any) (any, error)

// X is the root sentinel: it stands for the argument of the compiled
// function.
var X = Expr{node: varNode{slot: 0}, cache: &compileCache{}}

// Y is the secondary sentinel for two-argument expressions. Compiling an
// expression that uses Y with Func fails with ErrNotImplemented; use Func2.
var Y = Expr{node: varNode{slot: 1}, cache: &compileCache{}}

// Const wraps a literal in an expression. Builder methods wrap their plain
// operands automatically, so Const is only needed when the constant is the
// leftmost value, as in Const(1).Div(X).
func Const(v any) Expr {
	return newExpr(constNode{value: v})
}

func newExpr(n node) Expr {
	return Expr{node: n, cache: &compileCache{}}
}

// toNode converts a builder operand: another Expr contributes its tree,
// anything else becomes a constant leaf.
func toNode(v any) node {
	if e, ok := v.(Expr); ok {
		return e.node
	}
	return constNode{value: v}
}

func (e Expr) bin(op binaryOp, other any) Expr {
	return newExpr(binaryNode{op: op, left: e.node, right: toNode(other)})
}

// Add records e + other. For strings this is concatenation.
func (e Expr) Add(other any) Expr { return e.bin(opAdd, other) }

// Sub records e - other.
func (e Expr) Sub(other any) Expr { return e.bin(opSub, other) }

// Mul records e * other.
func (e Expr) Mul(other any) Expr { return e.bin(opMul, other) }

// Div records true division e / other; integer operands promote to
// float64.
func (e Expr) Div(other any) Expr { return e.bin(opDiv, other) }

// FloorDiv records flooring integer division e // other.
func (e Expr) FloorDiv(other any) Expr { return e.bin(opFloorDiv, other) }

// Mod records e % other with the result taking the divisor's sign.
func (e Expr) Mod(other any) Expr { return e.bin(opMod, other) }

// Pow records exponentiation e ** other.
func (e Expr) Pow(other any) Expr { return e.bin(opPow, other) }

// Lt records the comparison e < other.
func (e Expr) Lt(other any) Expr { return e.bin(opLt, other) }

// Le records the comparison e <= other.
func (e Expr) Le(other any) Expr { return e.bin(opLe, other) }

// Eq records the equality test e == other.
func (e Expr) Eq(other any) Expr { return e.bin(opEq, other) }

// Ne records the inequality test e != other.
func (e Expr) Ne(other any) Expr { return e.bin(opNe, other) }

// Ge records the comparison e >= other.
func (e Expr) Ge(other any) Expr { return e.bin(opGe, other) }

// Gt records the comparison e > other.
func (e Expr) Gt(other any) Expr { return e.bin(opGt, other) }

// BitAnd records e & other; on bools this is logical conjunction.
func (e Expr) BitAnd(other any) Expr { return e.bin(opBitAnd, other) }

// BitOr records e | other; on bools this is logical disjunction.
func (e Expr) BitOr(other any) Expr { return e.bin(opBitOr, other) }

// BitXor records e ^ other.
func (e Expr) BitXor(other any) Expr { return e.bin(opBitXor, other) }

// Neg records arithmetic negation -e.
func (e Expr) Neg() Expr {
	return newExpr(unaryNode{op: opNeg, operand: e.node})
}

// Invert records bitwise complement ~e; on bools this is logical negation.
func (e Expr) Invert() Expr {
	return newExpr(unaryNode{op: opInvert, operand: e.node})
}

// Attr records an attribute lookup e.name. At evaluation time the name
// resolves to a struct field, an exported method (as a bound value) or a
// string-keyed map entry.
func (e Expr) Attr(name string) Expr {
	return newExpr(attrNode{name: name, base: e.node})
}

// Call records a call of e with the given positional arguments. Arguments
// may themselves be expressions.
func (e Expr) Call(args ...any) Expr {
	return e.CallKw(args, nil)
}

// CallKw records a call of e with positional and keyword arguments.
// Keyword arguments require the callee to implement KeywordCaller.
func (e Expr) CallKw(args []any, kwargs map[string]any) Expr {
	argNodes := make([]node, len(args))
	for i, a := range args {
		argNodes[i] = toNode(a)
	}

	var kwNodes map[string]node
	if len(kwargs) > 0 {
		kwNodes = make(map[string]node, len(kwargs))
		for k, a := range kwargs {
			kwNodes[k] = toNode(a)
		}
	}

	return newExpr(callNode{
		callee: e.node,
		args:   argNodes,
		kwargs: kwNodes,
	})
}

// Func compiles the expression into a one-argument function, memoizing the
// result on the expression. It fails with ErrNotImplemented if the tree
// uses the secondary placeholder Y.
func (e Expr) Func() (Func, error) {
	e.cache.once1.Do(func() {
		if maxSlot(e.node) > 0 {
			e.cache.err1 = ErrNotImplemented
			return
		}

		fn, err := compileNode(simplify(e.node))
		if err != nil {
			e.cache.err1 = err
			return
		}

		e.cache.fn1 = func(x any) (any, error) {
			return fn([]any{x})
		}
	})

	return e.cache.fn1, e.cache.err1
}

// MustFunc is like Func but panics on compile errors. Compile errors are
// programmer errors, so this is the common entry point.
func (e Expr) MustFunc() Func {
	fn, err := e.Func()
	if err != nil {
		panic(err)
	}

	return fn
}

// Func2 compiles the expression into a two-argument function substituting
// X and Y, memoizing the result on the expression.
func (e Expr) Func2() (Func2, error) {
	e.cache.once2.Do(func() {
		fn, err := compileNode(simplify(e.node))
		if err != nil {
			e.cache.err2 = err
			return
		}

		e.cache.fn2 = func(x, y any) (any, error) {
			return fn([]any{x, y})
		}
	})

	return e.cache.fn2, e.cache.err2
}

// MustFunc2 is like Func2 but panics on compile errors.
func (e Expr) MustFunc2() Func2 {
	fn, err := e.Func2()
	if err != nil {
		panic(err)
	}

	return fn
}

// Eval compiles (or reuses the memoized compilation) and applies the
// expression to one argument.
func (e Expr) Eval(x any) (any, error) {
	fn, err := e.Func()
	if err != nil {
		return nil, err
	}

	return fn(x)
}

// Eval2 compiles and applies the expression to two arguments.
func (e Expr) Eval2(x, y any) (any, error) {
	fn, err := e.Func2()
	if err != nil {
		return nil, err
	}

	return fn(x, y)
}

// Simplified returns the expression with the pre-compilation rewrites
// applied: merged attribute chains and folded constant lookups. It is
// mainly useful for debugging and tests.
func (e Expr) Simplified() Expr {
	return newExpr(simplify(e.node))
}

// AsConst reports whether the expression is a single constant leaf, and if
// so returns its value. Together with Simplified this makes constant
// folding observable.
func (e Expr) AsConst() (any, bool) {
	if c, ok := e.node.(constNode); ok {
		return c.value, true
	}

	return nil, false
}
