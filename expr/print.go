package expr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// String renders approximate source for the recorded expression. Binary
// sub-expressions are parenthesized, so the output is unambiguous even
// though no precedence is tracked.
func (e Expr) String() string {
	return render(e.node)
}

func render(n node) string {
	switch n := n.(type) {
	case varNode:
		if n.slot == 0 {
			return "x"
		}
		return "y"

	case constNode:
		if s, ok := n.value.(string); ok {
			return strconv.Quote(s)
		}
		return fmt.Sprintf("%v", n.value)

	case unaryNode:
		return fmt.Sprintf("(%v%s)", n.op, render(n.operand))

	case binaryNode:
		l, r := render(n.left), render(n.right)
		if _, ok := n.left.(binaryNode); ok {
			l = "(" + l + ")"
		}
		if _, ok := n.right.(binaryNode); ok {
			r = "(" + r + ")"
		}
		return fmt.Sprintf("%s %v %s", l, n.op, r)

	case attrNode:
		return fmt.Sprintf("%s.%s", render(n.base), n.name)

	case callNode:
		args := make([]string, 0, len(n.args)+len(n.kwargs))
		for _, a := range n.args {
			args = append(args, render(a))
		}
		keys := make([]string, 0, len(n.kwargs))
		for k := range n.kwargs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			args = append(args, k+"="+render(n.kwargs[k]))
		}
		return fmt.Sprintf("%s(%s)", render(n.callee),
			strings.Join(args, ", "))

	default:
		return fmt.Sprintf("<%T>", n)
	}
}
