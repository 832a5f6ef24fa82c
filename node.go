package goexpr

import (
	"bytes"
	"fmt"
)

type NodeType int

const (
	NodeLeaf NodeType = iota
	NodeUnary
	NodeBinary
	NodeIf
	NodeFunc
	NodeApply
)

func (t NodeType) String() string {
	switch t {
	case NodeLeaf:
		return "leaf"
	case NodeUnary:
		return "unary"
	case NodeBinary:
		return "binary"
	case NodeIf:
		return "if"
	case NodeFunc:
		return "func"
	case NodeApply:
		return "apply"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is an expression tree node. A node owns its children; the builders
// take ownership of the nodes passed to them. The builders panic on a nil
// child, an undeclared operator or a variable name the parser would not
// accept, so every built tree evaluates and prints back to itself.
//
//	leaf    v
//	unary   op lhs
//	binary  lhs op rhs
//	if      if lhs then rhs else alt
//	func    func param => lhs
//	apply   apply(lhs, rhs)
type Node struct {
	t     NodeType
	v     Value
	binop BinaryOp
	unop  UnaryOp
	param string
	lhs   *Node
	rhs   *Node
	alt   *Node
}

func NewLeaf(v Value) *Node {
	if v.Type() == ValueVar {
		checkName(v.Name())
	}
	return &Node{
		t: NodeLeaf,
		v: v,
	}
}

func NewInt(i int64) *Node {
	return NewLeaf(Int(i))
}

func NewBool(b bool) *Node {
	return NewLeaf(Bool(b))
}

func NewVar(name string) *Node {
	return NewLeaf(VarRef(name))
}

func NewUnaryOp(x *Node, op UnaryOp) *Node {
	if !op.valid() {
		panic(fmt.Sprintf("goexpr: invalid operator %v", op))
	}
	checkChildren(x)
	return &Node{
		t:    NodeUnary,
		unop: op,
		lhs:  x,
	}
}

func NewBinOp(lhs, rhs *Node, op BinaryOp) *Node {
	if !op.valid() {
		panic(fmt.Sprintf("goexpr: invalid operator %v", op))
	}
	checkChildren(lhs, rhs)
	return &Node{
		t:     NodeBinary,
		binop: op,
		lhs:   lhs,
		rhs: rhs,
	}
}

func NewIf(cond, then, els *Node) *Node {
	checkChildren(cond, then, els)
	return &Node{
		t:   NodeIf,
		lhs: cond,
		rhs: then,
		alt: els,
	}
}

func NewFunc(param string, body *Node) *Node {
	checkName(param)
	checkChildren(body)
	return &Node{
		t:     NodeFunc,
		param: param,
		lhs:   body,
	}
}

func NewApply(fn, arg *Node) *Node {
	checkChildren(fn, arg)
	return &Node{
		t:   NodeApply,
		lhs: fn,
		rhs: arg,
	}
}

func (n *Node) Type() NodeType {
	return n.t
}

// Value returns the value held by a leaf.
func (n *Node) Value() Value {
	return n.v
}

func checkChildren(nodes ...*Node) {
	for _, n := range nodes {
		if n == nil {
			panic("goexpr: nil child node")
		}
	}
}

func checkName(name string) {
	if !IsIdent(name) {
		panic(fmt.Sprintf("goexpr: invalid variable name %q", name))
	}
}

// BinaryOp returns the operator of a binary node.
func (n *Node) BinaryOp() BinaryOp {
	return n.binop
}

// UnaryOp returns the operator of a unary node.
func (n *Node) UnaryOp() UnaryOp {
	return n.unop
}

// Param returns the parameter name of a func node.
func (n *Node) Param() string {
	return n.param
}

// Children returns the child nodes in source order.
func (n *Node) Children() []*Node {
	switch n.t {
	case NodeUnary, NodeFunc:
		return []*Node{n.lhs}
	case NodeBinary, NodeApply:
		return []*Node{n.lhs, n.rhs}
	case NodeIf:
		return []*Node{n.lhs, n.rhs, n.alt}
	}
	return nil
}

// Equal reports whether two trees are structurally identical.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.t != o.t || n.binop != o.binop || n.unop != o.unop || n.param != o.param || !n.v.Equal(o.v) {
		return false
	}
	return n.lhs.Equal(o.lhs) && n.rhs.Equal(o.rhs) && n.alt.Equal(o.alt)
}

// Depth returns the height of the tree.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	d := 0
	for _, c := range n.Children() {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// String renders the tree in source form. The output parses back to an
// equal tree.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	n.render(&buf)
	return buf.String()
}

func (n *Node) render(buf *bytes.Buffer) {
	switch n.t {
	case NodeLeaf:
		fmt.Fprint(buf, n.v)
	case NodeUnary:
		fmt.Fprint(buf, n.unop)
		if n.lhs.bareOperand() {
			n.lhs.render(buf)
		} else {
			n.lhs.renderParen(buf)
		}
	case NodeBinary:
		n.lhs.renderOperand(buf)
		fmt.Fprintf(buf, " %v ", n.binop)
		n.rhs.renderOperand(buf)
	case NodeIf:
		buf.WriteString("if ")
		n.lhs.render(buf)
		buf.WriteString(" then ")
		n.rhs.render(buf)
		buf.WriteString(" else ")
		n.alt.render(buf)
	case NodeFunc:
		fmt.Fprintf(buf, "func %s => ", n.param)
		n.lhs.render(buf)
	case NodeApply:
		buf.WriteString("apply(")
		n.lhs.render(buf)
		buf.WriteString(", ")
		n.rhs.render(buf)
		buf.WriteString(")")
	}
}

func (n *Node) renderParen(buf *bytes.Buffer) {
	buf.WriteString("(")
	n.render(buf)
	buf.WriteString(")")
}

func (n *Node) renderOperand(buf *bytes.Buffer) {
	if n.t == NodeLeaf || n.t == NodeUnary || n.t == NodeApply {
		n.render(buf)
		return
	}
	n.renderParen(buf)
}

// bareOperand reports whether n can follow a prefix operator without
// parentheses. An int literal after "-" would fold into a negative literal.
func (n *Node) bareOperand() bool {
	switch n.t {
	case NodeLeaf:
		return n.v.Type() != ValueInt
	case NodeUnary, NodeApply:
		return true
	}
	return false
}
