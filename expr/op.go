package expr

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// binaryOp enumerates the binary operators an expression tree can record.
type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
	opFloorDiv
	opMod
	opPow
	opLt
	opLe
	opEq
	opNe
	opGe
	opGt
	opBitAnd
	opBitOr
	opBitXor
)

var binOpSymbols = map[binaryOp]string{
	opAdd:      "+",
	opSub:      "-",
	opMul:      "*",
	opDiv:      "/",
	opFloorDiv: "//",
	opMod:      "%",
	opPow:      "**",
	opLt:       "<",
	opLe:       "<=",
	opEq:       "==",
	opNe:       "!=",
	opGe:       ">=",
	opGt:       ">",
	opBitAnd:   "&",
	opBitOr:    "|",
	opBitXor:   "^",
}

func (op binaryOp) String() string {
	if s, ok := binOpSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("binaryOp(%d)", int(op))
}

// unaryOp enumerates the unary operators.
type unaryOp int

const (
	opNeg unaryOp = iota
	opInvert
)

func (op unaryOp) String() string {
	switch op {
	case opNeg:
		return "-"
	case opInvert:
		return "~"
	default:
		return fmt.Sprintf("unaryOp(%d)", int(op))
	}
}

// numKind classifies a dynamic value for numeric promotion.
type numKind int

const (
	notNum numKind = iota
	intNum
	floatNum
	complexNum
)

func kindOf(v any) numKind {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:

		return intNum

	case reflect.Float32, reflect.Float64:
		return floatNum

	case reflect.Complex64, reflect.Complex128:
		return complexNum

	default:
		return notNum
	}
}

func asInt64(v any) int64 {
	rv := reflect.ValueOf(v)
	if rv.CanUint() {
		return int64(rv.Uint())
	}
	return rv.Int()
}

func asFloat64(v any) float64 {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

func asComplex(v any) complex128 {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanComplex():
		return rv.Complex()
	default:
		return complex(asFloat64(v), 0)
	}
}

// promote finds the common numeric kind of two operands, or notNum when
// either operand is not a number.
func promote(a, b any) numKind {
	ka, kb := kindOf(a), kindOf(b)
	if ka == notNum || kb == notNum {
		return notNum
	}
	if ka > kb {
		return ka
	}
	return kb
}

// applyBinary evaluates a recorded binary operator on two dynamic values,
// with numeric promotion roughly following the host conventions for a
// dynamic toolkit: integers stay integral except under true division,
// floats and complex values contaminate, strings support concatenation,
// repetition and ordering.
func applyBinary(op binaryOp, a, b any) (any, error) {
	switch op {
	case opAdd, opSub, opMul, opDiv, opFloorDiv, opMod, opPow:
		return applyArith(op, a, b)

	case opLt, opLe, opGe, opGt:
		return applyOrdered(op, a, b)

	case opEq:
		return equalValues(a, b), nil

	case opNe:
		return !equalValues(a, b), nil

	case opBitAnd, opBitOr, opBitXor:
		return applyBitwise(op, a, b)

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalid, op)
	}
}

func applyArith(op binaryOp, a, b any) (any, error) {
	// Non-numeric special cases first: string concatenation and
	// repetition.
	sa, aIsStr := a.(string)
	sb, bIsStr := b.(string)
	switch {
	case op == opAdd && aIsStr && bIsStr:
		return sa + sb, nil

	case op == opMul && aIsStr && kindOf(b) == intNum:
		return repeatString(sa, asInt64(b)), nil

	case op == opMul && bIsStr && kindOf(a) == intNum:
		return repeatString(sb, asInt64(a)), nil
	}

	switch promote(a, b) {
	case intNum:
		return intArith(op, asInt64(a), asInt64(b))

	case floatNum:
		return floatArith(op, asFloat64(a), asFloat64(b))

	case complexNum:
		return complexArith(op, asComplex(a), asComplex(b))

	default:
		return nil, fmt.Errorf("%w: %T %v %T", ErrBadOperand,
			a, op, b)
	}
}

func repeatString(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, int(n))
}

func intArith(op binaryOp, a, b int64) (any, error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil

	case opDiv:
		// True division always produces a float.
		if b == 0 {
			return nil, ErrDivideByZero
		}
		return float64(a) / float64(b), nil

	case opFloorDiv:
		if b == 0 {
			return nil, ErrDivideByZero
		}
		q := a / b
		if (a%b != 0) && ((a < 0) != (b < 0)) {
			q--
		}
		return q, nil

	case opMod:
		// The result takes the sign of the divisor.
		if b == 0 {
			return nil, ErrDivideByZero
		}
		m := a % b
		if m != 0 && ((m < 0) != (b < 0)) {
			m += b
		}
		return m, nil

	case opPow:
		if b < 0 {
			return math.Pow(float64(a), float64(b)), nil
		}
		return intPow(a, b), nil

	default:
		return nil, fmt.Errorf("%w: int64 %v int64", ErrBadOperand, op)
	}
}

func intPow(base, exp int64) int64 {
	var res int64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}

	return res
}

func floatArith(op binaryOp, a, b float64) (any, error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		return a / b, nil
	case opFloorDiv:
		return math.Floor(a / b), nil
	case opMod:
		m := math.Mod(a, b)
		if m != 0 && ((m < 0) != (b < 0)) {
			m += b
		}
		return m, nil
	case opPow:
		return math.Pow(a, b), nil
	default:
		return nil, fmt.Errorf("%w: float64 %v float64",
			ErrBadOperand, op)
	}
}

func complexArith(op binaryOp, a, b complex128) (any, error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		return a / b, nil
	default:
		return nil, fmt.Errorf("%w: complex128 %v complex128",
			ErrBadOperand, op)
	}
}

func applyOrdered(op binaryOp, a, b any) (any, error) {
	sa, aIsStr := a.(string)
	sb, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return orderedResult(op, strings.Compare(sa, sb)), nil
	}

	switch promote(a, b) {
	case intNum:
		return orderedResult(op, cmpInt(asInt64(a), asInt64(b))), nil

	case floatNum:
		fa, fb := asFloat64(a), asFloat64(b)
		return orderedResult(op, cmpFloat(fa, fb)), nil

	default:
		return nil, fmt.Errorf("%w: %T %v %T", ErrBadOperand, a, op, b)
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func orderedResult(op binaryOp, cmp int) bool {
	switch op {
	case opLt:
		return cmp < 0
	case opLe:
		return cmp <= 0
	case opGe:
		return cmp >= 0
	default:
		return cmp > 0
	}
}

// equalValues compares numerically when both sides are numbers, so that 1
// equals 1.0, and falls back to deep equality otherwise.
func equalValues(a, b any) bool {
	switch promote(a, b) {
	case intNum:
		return asInt64(a) == asInt64(b)
	case floatNum:
		return asFloat64(a) == asFloat64(b)
	case complexNum:
		return asComplex(a) == asComplex(b)
	default:
		return reflect.DeepEqual(a, b)
	}
}

func applyBitwise(op binaryOp, a, b any) (any, error) {
	ba, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		switch op {
		case opBitAnd:
			return ba && bb, nil
		case opBitOr:
			return ba || bb, nil
		default:
			return ba != bb, nil
		}
	}

	if promote(a, b) != intNum {
		return nil, fmt.Errorf("%w: %T %v %T", ErrBadOperand, a, op, b)
	}

	ia, ib := asInt64(a), asInt64(b)
	switch op {
	case opBitAnd:
		return ia & ib, nil
	case opBitOr:
		return ia | ib, nil
	default:
		return ia ^ ib, nil
	}
}

// applyUnary evaluates a recorded unary operator.
func applyUnary(op unaryOp, v any) (any, error) {
	switch op {
	case opNeg:
		switch kindOf(v) {
		case intNum:
			return -asInt64(v), nil
		case floatNum:
			return -asFloat64(v), nil
		case complexNum:
			return -asComplex(v), nil
		}
		return nil, fmt.Errorf("%w: %v %T", ErrBadOperand, op, v)

	case opInvert:
		if b, ok := v.(bool); ok {
			return !b, nil
		}
		if kindOf(v) == intNum {
			return ^asInt64(v), nil
		}
		return nil, fmt.Errorf("%w: %v %T", ErrBadOperand, op, v)

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalid, op)
	}
}
