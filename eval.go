package goexpr

import (
	"fmt"
)

// DefaultMaxDepth bounds evaluation and parse nesting.
const DefaultMaxDepth = 2048

type slot struct {
	env  *Env
	name string
}

type evaluator struct {
	maxDepth  int
	depth     int
	resolving map[slot]bool
}

func newEvaluator(maxDepth int) *evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &evaluator{
		maxDepth:  maxDepth,
		resolving: make(map[slot]bool),
	}
}

// Eval reduces node to a value in env. Evaluation never modifies env. It
// panics if node is nil; every failure of a well-formed tree is reported as
// an error.
func Eval(env *Env, node *Node) (Value, error) {
	return newEvaluator(DefaultMaxDepth).eval(env, node)
}

func (e *Env) Eval(node *Node) (Value, error) {
	return Eval(e, node)
}

func (ev *evaluator) eval(env *Env, node *Node) (Value, error) {
	if node == nil {
		panic("goexpr: eval of nil node")
	}
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > ev.maxDepth {
		return Value{}, &DepthExceededError{Limit: ev.maxDepth}
	}

	switch node.t {
	case NodeLeaf:
		if node.v.Type() == ValueVar {
			return ev.resolve(env, node.v.Name())
		}
		return node.v, nil
	case NodeUnary:
		x, err := ev.eval(env, node.lhs)
		if err != nil {
			return Value{}, err
		}
		return ApplyUnary(node.unop, x)
	case NodeBinary:
		lhs, err := ev.eval(env, node.lhs)
		if err != nil {
			return Value{}, err
		}
		rhs, err := ev.eval(env, node.rhs)
		if err != nil {
			return Value{}, err
		}
		return ApplyBinary(node.binop, lhs, rhs)
	case NodeIf:
		cond, err := ev.eval(env, node.lhs)
		if err != nil {
			return Value{}, err
		}
		b, ok := cond.AsBool()
		if !ok {
			return Value{}, &TypeMismatchError{Operator: "if", Operands: []ValueType{cond.Type()}}
		}
		if b {
			return ev.eval(env, node.rhs)
		}
		return ev.eval(env, node.alt)
	case NodeFunc:
		return closureValue(&Closure{
			Param: node.param,
			Body:  node.lhs,
			env:   env,
		}), nil
	case NodeApply:
		return ev.apply(env, node)
	}
	panic(fmt.Sprintf("goexpr: eval of invalid %v node", node.t))
}

// resolve evaluates the expression bound to name in the scope that binds it.
func (ev *evaluator) resolve(env *Env, name string) (Value, error) {
	expr, scope, ok := env.Lookup(name)
	if !ok {
		return Value{}, &UndefinedVariableError{Name: name}
	}
	if expr == nil {
		return Value{}, &UnboundVariableError{Name: name}
	}
	key := slot{env: scope, name: name}
	if ev.resolving[key] {
		return Value{}, &CyclicBindingError{Name: name}
	}
	ev.resolving[key] = true
	defer delete(ev.resolving, key)
	return ev.eval(scope, expr)
}

func (ev *evaluator) apply(env *Env, node *Node) (Value, error) {
	fn, err := ev.eval(env, node.lhs)
	if err != nil {
		return Value{}, err
	}
	c, ok := fn.AsClosure()
	if !ok {
		return Value{}, &NotCallableError{Got: fn.Type()}
	}
	arg, err := ev.eval(env, node.rhs)
	if err != nil {
		return Value{}, err
	}
	scope := NewEnv(c.env)
	scope.BindValue(c.Param, arg)
	return ev.eval(scope, c.Body)
}
