package expr

import "reflect"

// simplify rewrites a tree ahead of compilation. Two rewrites apply:
// chained attribute lookups merge into a single dotted lookup, and an
// attribute lookup on a constant of a simple immutable kind is
// pre-evaluated into a new constant. Unchanged subtrees are returned as is.
func simplify(n node) node {
	switch n := n.(type) {
	case attrNode:
		base := simplify(n.base)

		if c, ok := base.(constNode); ok && foldable(c.value) {
			if v, err := getAttr(c.value, n.name); err == nil {
				return constNode{value: v}
			}
		}

		if inner, ok := base.(attrNode); ok {
			return attrNode{
				name: inner.name + "." + n.name,
				base: inner.base,
			}
		}

		return attrNode{name: n.name, base: base}

	case unaryNode:
		return unaryNode{op: n.op, operand: simplify(n.operand)}

	case binaryNode:
		return binaryNode{
			op:    n.op,
			left:  simplify(n.left),
			right: simplify(n.right),
		}

	case callNode:
		args := make([]node, len(n.args))
		for i, a := range n.args {
			args[i] = simplify(a)
		}
		var kwargs map[string]node
		if len(n.kwargs) > 0 {
			kwargs = make(map[string]node, len(n.kwargs))
			for k, a := range n.kwargs {
				kwargs[k] = simplify(a)
			}
		}
		return callNode{
			callee: simplify(n.callee),
			args:   args,
			kwargs: kwargs,
		}

	default:
		return n
	}
}

// foldable reports whether a constant is safe to pre-evaluate attribute
// lookups on. Values of these kinds are held by the node itself, so the
// lookup can never observe later mutation.
func foldable(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Struct:

		return true

	default:
		return false
	}
}
