package goexpr

import (
	"fmt"
)

// BinaryOp identifies an infix operator. Nodes store the id, never the
// function, so trees stay comparable and printable.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpAnd
	OpOr

	numBinaryOps
)

// UnaryOp identifies a prefix operator.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg

	numUnaryOps
)

type family int

const (
	famArith family = iota
	famCompare
	famLogic
)

type (
	arithFn   func(a, b int64) (int64, error)
	compareFn func(a, b int64) bool
	logicFn   func(a, b bool) bool
)

type opInfo struct {
	name  string
	fam   family
	prec  int
	arith arithFn
	cmp   compareFn
	logic logicFn
}

var ops [numBinaryOps]opInfo

var unaryNames = [numUnaryOps]string{
	OpNot: "!",
	OpNeg: "-",
}

// symbols maps source tokens to binary operators.
var symbols map[string]BinaryOp

func makeArith(name string, prec int, fn arithFn) opInfo {
	return opInfo{name: name, fam: famArith, prec: prec, arith: fn}
}

func makeCompare(name string, fn compareFn) opInfo {
	return opInfo{name: name, fam: famCompare, prec: 3, cmp: fn}
}

func makeLogic(name string, prec int, fn logicFn) opInfo {
	return opInfo{name: name, fam: famLogic, prec: prec, logic: fn}
}

func init() {
	ops[OpAdd] = makeArith("+", 4, doAdd)
	ops[OpSub] = makeArith("-", 4, doSub)
	ops[OpBitOr] = makeArith("|", 4, doBitOr)
	ops[OpMul] = makeArith("*", 5, doMul)
	ops[OpDiv] = makeArith("/", 5, doDiv)
	ops[OpMod] = makeArith("%", 5, doMod)
	ops[OpBitAnd] = makeArith("&", 5, doBitAnd)
	ops[OpLt] = makeCompare("<", func(a, b int64) bool { return a < b })
	ops[OpLe] = makeCompare("<=", func(a, b int64) bool { return a <= b })
	ops[OpGt] = makeCompare(">", func(a, b int64) bool { return a > b })
	ops[OpGe] = makeCompare(">=", func(a, b int64) bool { return a >= b })
	ops[OpEq] = makeCompare("==", func(a, b int64) bool { return a == b })
	ops[OpAnd] = makeLogic("&&", 2, func(a, b bool) bool { return a && b })
	ops[OpOr] = makeLogic("||", 1, func(a, b bool) bool { return a || b })

	symbols = make(map[string]BinaryOp)
	for op := BinaryOp(0); op < numBinaryOps; op++ {
		symbols[ops[op].name] = op
	}
	symbols["="] = OpEq
}

func (op BinaryOp) valid() bool {
	return op >= 0 && op < numBinaryOps
}

func (op BinaryOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
	return ops[op].name
}

// Precedence is the binding strength of the operator, following Go:
// 5 multiplicative, 4 additive, 3 comparison, 2 &&, 1 ||.
func (op BinaryOp) Precedence() int {
	if !op.valid() {
		return 0
	}
	return ops[op].prec
}

// IsComparison reports whether op compares two ints.
func (op BinaryOp) IsComparison() bool {
	return op.valid() && ops[op].fam == famCompare
}

func (op UnaryOp) valid() bool {
	return op >= 0 && op < numUnaryOps
}

func (op UnaryOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
	return unaryNames[op]
}

// LookupOp returns the binary operator spelled by sym.
func LookupOp(sym string) (BinaryOp, bool) {
	op, ok := symbols[sym]
	return op, ok
}

// LookupUnaryOp returns the prefix operator spelled by sym.
func LookupUnaryOp(sym string) (UnaryOp, bool) {
	for op, name := range unaryNames {
		if name == sym {
			return UnaryOp(op), true
		}
	}
	return 0, false
}

// ApplyBinary applies a binary operator to two resolved values. It panics if
// op is not one of the declared operators.
func ApplyBinary(op BinaryOp, lhs, rhs Value) (Value, error) {
	if !op.valid() {
		panic(fmt.Sprintf("goexpr: invalid operator %v", op))
	}
	info := &ops[op]
	if info.fam == famLogic {
		a, ok1 := lhs.AsBool()
		b, ok2 := rhs.AsBool()
		if !ok1 || !ok2 {
			return Value{}, mismatch(op.String(), lhs, rhs)
		}
		return Bool(info.logic(a, b)), nil
	}

	a, ok1 := lhs.AsInt()
	b, ok2 := rhs.AsInt()
	if !ok1 || !ok2 {
		return Value{}, mismatch(op.String(), lhs, rhs)
	}
	if info.fam == famCompare {
		return Bool(info.cmp(a, b)), nil
	}
	r, err := info.arith(a, b)
	if err != nil {
		return Value{}, err
	}
	return Int(r), nil
}

// ApplyUnary applies a prefix operator to a resolved value. It panics if op
// is not one of the declared operators.
func ApplyUnary(op UnaryOp, x Value) (Value, error) {
	switch op {
	case OpNot:
		b, ok := x.AsBool()
		if !ok {
			return Value{}, mismatch(op.String(), x)
		}
		return Bool(!b), nil
	case OpNeg:
		i, ok := x.AsInt()
		if !ok {
			return Value{}, mismatch(op.String(), x)
		}
		return Int(-i), nil
	}
	panic(fmt.Sprintf("goexpr: invalid operator %v", op))
}

func mismatch(op string, operands ...Value) error {
	tags := make([]ValueType, len(operands))
	for i, v := range operands {
		tags[i] = v.Type()
	}
	return &TypeMismatchError{Operator: op, Operands: tags}
}

// Integer arithmetic wraps on overflow.

func doAdd(a, b int64) (int64, error) {
	return a + b, nil
}

func doSub(a, b int64) (int64, error) {
	return a - b, nil
}

func doMul(a, b int64) (int64, error) {
	return a * b, nil
}

func doDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func doMod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a % b, nil
}

func doBitAnd(a, b int64) (int64, error) {
	return a & b, nil
}

func doBitOr(a, b int64) (int64, error) {
	return a | b, nil
}
