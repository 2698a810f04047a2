package expr

// node is one element of a deferred expression tree. The set of kinds is
// closed: trees are only ever built through the Expr builder methods, so a
// node outside this file reaching the compiler is a programmer error.
type node interface {
	isNode()
}

// varNode is the sentinel leaf standing in for an argument that will be
// supplied when the compiled function runs. Slot 0 is the primary
// placeholder X, slot 1 the secondary placeholder Y.
type varNode struct {
	slot int
}

// constNode wraps a literal captured at build time.
type constNode struct {
	value any
}

// unaryNode records a unary operator applied to an operand tree.
type unaryNode struct {
	op      unaryOp
	operand node
}

// binaryNode records a binary operator combining two operand trees.
type binaryNode struct {
	op    binaryOp
	left  node
	right node
}

// attrNode records an attribute lookup chained onto a base tree. After
// simplification the name may be a dotted path covering what used to be a
// chain of attrNodes.
type attrNode struct {
	name string
	base node
}

// callNode records a call of the callee tree with argument trees. Keyword
// arguments are carried separately and can only be satisfied by callees
// implementing KeywordCaller.
type callNode struct {
	callee node
	args   []node
	kwargs map[string]node
}

func (varNode) isNode()    {}
func (constNode) isNode()  {}
func (unaryNode) isNode()  {}
func (binaryNode) isNode() {}
func (attrNode) isNode()   {}
func (callNode) isNode()   {}

// maxSlot returns the highest sentinel slot used anywhere in the tree, or
// -1 when the tree contains no sentinel at all.
func maxSlot(n node) int {
	switch n := n.(type) {
	case varNode:
		return n.slot

	case constNode:
		return -1

	case unaryNode:
		return maxSlot(n.operand)

	case binaryNode:
		l, r := maxSlot(n.left), maxSlot(n.right)
		if l > r {
			return l
		}
		return r

	case attrNode:
		return maxSlot(n.base)

	case callNode:
		max := maxSlot(n.callee)
		for _, a := range n.args {
			if s := maxSlot(a); s > max {
				max = s
			}
		}
		for _, a := range n.kwargs {
			if s := maxSlot(a); s > max {
				max = s
			}
		}
		return max

	default:
		return -1
	}
}
