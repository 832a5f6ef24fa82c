package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/goexpr"
)

// session holds the bindings shared by every program run from the command
// line or the REPL.
type session struct {
	base     *goexpr.Env
	maxDepth int
	out      io.Writer
}

func newSession(out io.Writer) *session {
	return &session{
		base: goexpr.NewEnv(nil),
		out:  out,
	}
}

func (s *session) program(root *goexpr.Node) *goexpr.Program {
	p := goexpr.NewProgram(root)
	p.SetMaxDepth(s.maxDepth)
	for _, name := range s.base.Names() {
		expr, _, _ := s.base.Lookup(name)
		p.Bind(name, expr)
	}
	return p
}

func (s *session) eval(src string) (goexpr.Value, error) {
	root, err := goexpr.Parse(src)
	if err != nil {
		return goexpr.Value{}, err
	}
	return s.program(root).Run()
}

func (s *session) evalReader(r io.Reader) (goexpr.Value, error) {
	root, err := goexpr.NewParser(r).Parse()
	if err != nil {
		return goexpr.Value{}, err
	}
	return s.program(root).Run()
}

// bind parses "name=expr". An empty expr declares name unbound.
func (s *session) bind(arg string) error {
	pos := strings.IndexByte(arg, '=')
	if pos < 0 {
		return fmt.Errorf("invalid binding %q: want name=expr", arg)
	}
	name := strings.TrimSpace(arg[:pos])
	src := strings.TrimSpace(arg[pos+1:])
	if name == "" {
		return fmt.Errorf("invalid binding %q: missing name", arg)
	}
	if src == "" {
		s.base.Bind(name, nil)
		return nil
	}
	node, err := goexpr.Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	s.base.Bind(name, node)
	return nil
}

var errQuit = errors.New("quit")

// command runs a REPL command line starting with ':'.
func (s *session) command(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return errQuit
	case ":let":
		return s.bind(strings.TrimSpace(strings.TrimPrefix(line, ":let")))
	case ":unbind":
		if len(fields) != 2 {
			return errors.New("usage: :unbind name")
		}
		s.base.Unbind(fields[1])
	case ":vars":
		for _, name := range s.base.Names() {
			expr, _, _ := s.base.Lookup(name)
			if expr == nil {
				fmt.Fprintf(s.out, "%s (unbound)\n", name)
			} else {
				fmt.Fprintf(s.out, "%s = %v\n", name, expr)
			}
		}
	default:
		return fmt.Errorf("unknown command %s", fields[0])
	}
	return nil
}
