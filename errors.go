package goexpr

import (
	"errors"
	"fmt"
	"strings"
)

// The errors below are the only failures of parsing and evaluation. Misuse of
// the tree API (a nil node, an undeclared operator id, a keyword as a
// variable name) panics in the builders or NewProgram instead.

var ErrDivisionByZero = errors.New("division by zero")

// ParseError reports malformed source. Pos is the index of the offending
// token in the token stream.
type ParseError struct {
	Pos      int
	Token    string
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at token %d", e.Pos)
	if e.Token != "" {
		fmt.Fprintf(&b, ": unexpected %q", e.Token)
	} else {
		b.WriteString(": unexpected end of input")
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, ", expected %s", e.Expected)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " (%v)", e.Err)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports operands whose types do not fit an operator.
// Operator is the operator symbol, or "if" for a non-bool condition.
type TypeMismatchError struct {
	Operator string
	Operands []ValueType
}

func (e *TypeMismatchError) Error() string {
	tags := make([]string, len(e.Operands))
	for i, t := range e.Operands {
		tags[i] = t.String()
	}
	return fmt.Sprintf("type mismatch: %v (%s)", e.Operator, strings.Join(tags, ", "))
}

type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

type NotCallableError struct {
	Got ValueType
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("not callable: %v", e.Got)
}

type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("maximum nesting depth %d exceeded", e.Limit)
}

// CyclicBindingError reports a variable whose binding refers back to itself
// through the environment.
type CyclicBindingError struct {
	Name string
}

func (e *CyclicBindingError) Error() string {
	return fmt.Sprintf("cyclic binding: %s", e.Name)
}
