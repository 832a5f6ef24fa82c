package goexpr

import (
	"fmt"
	"strconv"
)

type ValueType int

const (
	ValueInt ValueType = iota
	ValueBool
	ValueVar
	ValueClosure
)

func (t ValueType) String() string {
	switch t {
	case ValueInt:
		return "int"
	case ValueBool:
		return "bool"
	case ValueVar:
		return "var"
	case ValueClosure:
		return "func"
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Value is a runtime value. The zero Value is Int(0).
type Value struct {
	t ValueType
	v interface{}
}

// Closure is a function value paired with the scope it was defined in.
type Closure struct {
	Param string
	Body  *Node
	env   *Env
}

func Int(i int64) Value {
	return Value{t: ValueInt, v: i}
}

func Bool(b bool) Value {
	return Value{t: ValueBool, v: b}
}

// VarRef is a placeholder naming a variable. It is resolved through the
// environment and never returned from evaluation.
func VarRef(name string) Value {
	return Value{t: ValueVar, v: name}
}

func closureValue(c *Closure) Value {
	return Value{t: ValueClosure, v: c}
}

func (v Value) Type() ValueType {
	return v.t
}

func (v Value) AsInt() (int64, bool) {
	if v.t != ValueInt {
		return 0, false
	}
	i, _ := v.v.(int64)
	return i, true
}

func (v Value) AsBool() (bool, bool) {
	if v.t != ValueBool {
		return false, false
	}
	return v.v.(bool), true
}

// Name returns the variable name of a VarRef.
func (v Value) Name() string {
	if v.t != ValueVar {
		return ""
	}
	return v.v.(string)
}

func (v Value) AsClosure() (*Closure, bool) {
	if v.t != ValueClosure {
		return nil, false
	}
	return v.v.(*Closure), true
}

// Equal reports whether two values have the same tag and payload. Closures
// compare by identity.
func (v Value) Equal(o Value) bool {
	if v.t != o.t {
		return false
	}
	switch v.t {
	case ValueInt:
		a, _ := v.AsInt()
		b, _ := o.AsInt()
		return a == b
	case ValueBool:
		return v.v.(bool) == o.v.(bool)
	case ValueVar:
		return v.v.(string) == o.v.(string)
	case ValueClosure:
		return v.v.(*Closure) == o.v.(*Closure)
	}
	return false
}

func (v Value) String() string {
	switch v.t {
	case ValueInt:
		i, _ := v.AsInt()
		return strconv.FormatInt(i, 10)
	case ValueBool:
		if v.v.(bool) {
			return "T"
		}
		return "F"
	case ValueVar:
		return v.v.(string)
	case ValueClosure:
		c := v.v.(*Closure)
		return fmt.Sprintf("func %s => %v", c.Param, c.Body)
	}
	return "?"
}
