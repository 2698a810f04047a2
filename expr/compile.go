package expr

import "fmt"

// evalFn is the internal compiled form: a pure function of the sentinel
// substitution vector.
type evalFn func(env []any) (any, error)

// compileNode lowers a simplified tree into a closure by recursive
// descent. Each node kind has a dedicated rule; the closures created here
// close over immutable node data only, so the result is safe for
// concurrent use.
func compileNode(n node) (evalFn, error) {
	switch n := n.(type) {
	case varNode:
		slot := n.slot
		return func(env []any) (any, error) {
			return env[slot], nil
		}, nil

	case constNode:
		v := n.value
		return func(env []any) (any, error) {
			return v, nil
		}, nil

	case unaryNode:
		return compileUnary(n)

	case binaryNode:
		return compileBinary(n)

	case attrNode:
		return compileAttr(n)

	case callNode:
		return compileCall(n)

	default:
		return nil, fmt.Errorf("%w: unknown node %T", ErrInvalid, n)
	}
}

func compileUnary(n unaryNode) (evalFn, error) {
	// Constant operands of simple kinds are folded at compile time.
	if c, ok := n.operand.(constNode); ok && foldable(c.value) {
		v, err := applyUnary(n.op, c.value)
		if err != nil {
			return nil, err
		}
		return func(env []any) (any, error) {
			return v, nil
		}, nil
	}

	operand, err := compileNode(n.operand)
	if err != nil {
		return nil, err
	}

	op := n.op
	return func(env []any) (any, error) {
		v, err := operand(env)
		if err != nil {
			return nil, err
		}
		return applyUnary(op, v)
	}, nil
}

func compileBinary(n binaryNode) (evalFn, error) {
	left, err := compileNode(n.left)
	if err != nil {
		return nil, err
	}
	right, err := compileNode(n.right)
	if err != nil {
		return nil, err
	}

	op := n.op
	return func(env []any) (any, error) {
		l, err := left(env)
		if err != nil {
			return nil, err
		}
		r, err := right(env)
		if err != nil {
			return nil, err
		}
		return applyBinary(op, l, r)
	}, nil
}

func compileAttr(n attrNode) (evalFn, error) {
	name := n.name

	// A lookup rooted directly at a sentinel needs no inner closure.
	if v, ok := n.base.(varNode); ok {
		slot := v.slot
		return func(env []any) (any, error) {
			return getAttr(env[slot], name)
		}, nil
	}

	// Lookups on constants that simplification could not fold still
	// resolve against the captured value at call time.
	if c, ok := n.base.(constNode); ok {
		v := c.value
		return func(env []any) (any, error) {
			return getAttr(v, name)
		}, nil
	}

	base, err := compileNode(n.base)
	if err != nil {
		return nil, err
	}

	return func(env []any) (any, error) {
		v, err := base(env)
		if err != nil {
			return nil, err
		}
		return getAttr(v, name)
	}, nil
}

func compileCall(n callNode) (evalFn, error) {
	callee, err := compileNode(n.callee)
	if err != nil {
		return nil, err
	}

	args := make([]evalFn, len(n.args))
	for i, a := range n.args {
		if args[i], err = compileNode(a); err != nil {
			return nil, err
		}
	}

	type kwFn struct {
		name string
		fn   evalFn
	}
	kwargs := make([]kwFn, 0, len(n.kwargs))
	for k, a := range n.kwargs {
		fn, err := compileNode(a)
		if err != nil {
			return nil, err
		}
		kwargs = append(kwargs, kwFn{name: k, fn: fn})
	}

	return func(env []any) (any, error) {
		cv, err := callee(env)
		if err != nil {
			return nil, err
		}

		argVals := make([]any, len(args))
		for i, fn := range args {
			if argVals[i], err = fn(env); err != nil {
				return nil, err
			}
		}

		var kwVals map[string]any
		if len(kwargs) > 0 {
			kwVals = make(map[string]any, len(kwargs))
			for _, kw := range kwargs {
				v, err := kw.fn(env)
				if err != nil {
					return nil, err
				}
				kwVals[kw.name] = v
			}
		}

		return callValue(cv, argVals, kwVals)
	}, nil
}
