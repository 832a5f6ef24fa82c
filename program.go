package goexpr

// Program pairs an expression tree with the environment its free variables
// are resolved in. A Program must not be run from several goroutines at
// once; distinct Programs share nothing.
type Program struct {
	root     *Node
	env      *Env
	maxDepth int
}

// NewProgram returns a Program with an empty environment. It panics if root
// is nil.
func NewProgram(root *Node) *Program {
	if root == nil {
		panic("goexpr: nil program root")
	}
	return &Program{
		root:     root,
		env:      NewEnv(nil),
		maxDepth: DefaultMaxDepth,
	}
}

// ParseProgram parses src into a new Program.
func ParseProgram(src string) (*Program, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return NewProgram(root), nil
}

func (p *Program) Root() *Node {
	return p.root
}

func (p *Program) Env() *Env {
	return p.env
}

// Bind sets a variable for subsequent runs. A nil expr leaves the variable
// declared but unbound.
func (p *Program) Bind(name string, expr *Node) {
	p.env.Bind(name, expr)
}

func (p *Program) Unbind(name string) {
	p.env.Unbind(name)
}

// SetMaxDepth limits nesting during Run. n <= 0 restores DefaultMaxDepth.
func (p *Program) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// Run evaluates the program to completion. Runs are deterministic for a
// given tree and set of bindings.
func (p *Program) Run() (Value, error) {
	return newEvaluator(p.maxDepth).eval(p.env, p.root)
}
