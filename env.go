package goexpr

import (
	"sort"
)

// Binder is implemented by Env and Program.
type Binder interface {
	Bind(name string, expr *Node)
}

// Env maps variable names to bound expressions. A name present with a nil
// expression is declared but unbound. Lookups fall through to the parent.
type Env struct {
	vars map[string]*Node
	env  *Env
}

func NewEnv(env *Env) *Env {
	return &Env{
		vars: make(map[string]*Node),
		env:  env,
	}
}

// Bind sets name in this scope. A nil expr declares name without a value.
func (e *Env) Bind(name string, expr *Node) {
	e.vars[name] = expr
}

// BindValue binds name to an already evaluated value.
func (e *Env) BindValue(name string, v Value) {
	e.vars[name] = NewLeaf(v)
}

// Unbind removes name from this scope so that it becomes undefined here.
func (e *Env) Unbind(name string) {
	delete(e.vars, name)
}

// Lookup finds name in this scope or an ancestor. It returns the bound
// expression, the scope that holds it, and whether it was found.
func (e *Env) Lookup(name string) (*Node, *Env, bool) {
	for s := e; s != nil; s = s.env {
		if expr, ok := s.vars[name]; ok {
			return expr, s, true
		}
	}
	return nil, nil, false
}

// Names lists the names visible from this scope, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for s := e; s != nil; s = s.env {
		for name := range s.vars {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func (e *Env) Parent() *Env {
	return e.env
}
