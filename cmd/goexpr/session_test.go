package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/goexpr"
)

func TestSession(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(&buf)
	if err := goexpr.LoadLib(s.base); err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{":let x = 20", ":let y = apply(inc, x)", ":let slot ="} {
		if err := s.command(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	ret, err := s.eval("x + y")
	if err != nil {
		t.Fatal(err)
	}
	if ret.String() != "41" {
		t.Errorf("want 41 but got %v", ret)
	}

	if _, err := s.eval("slot"); err == nil || err.Error() != "unbound variable: slot" {
		t.Errorf("want unbound slot but got %v", err)
	}

	if err := s.command(":unbind y"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.eval("y"); err == nil || err.Error() != "undefined variable: y" {
		t.Errorf("want undefined y but got %v", err)
	}

	buf.Reset()
	if err := s.command(":vars"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"abs = func n => if n < 0 then -n else n",
		"dec = func n => n - 1",
		"even = func n => (n % 2) == 0",
		"inc = func n => n + 1",
		"max = func a => func b => if a > b then a else b",
		"min = func a => func b => if a < b then a else b",
		"odd = func n => !((n % 2) == 0)",
		"slot (unbound)",
		"square = func n => n * n",
		"x = 20",
		"xor = func a => func b => (a || b) && !(a && b)",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Error(diff)
	}

	if err := s.command(":quit"); err != errQuit {
		t.Errorf("want errQuit but got %v", err)
	}
	if err := s.command(":bogus"); err == nil {
		t.Error("unknown command should fail")
	}
	if err := s.command(":let 1 +"); err == nil {
		t.Error("malformed binding should fail")
	}
}

func TestSessionDepth(t *testing.T) {
	s := newSession(&bytes.Buffer{})
	s.maxDepth = 4
	if _, err := s.evalReader(strings.NewReader("!!!!!!T")); err == nil {
		t.Error("want depth error")
	}
	s.maxDepth = 0
	ret, err := s.evalReader(strings.NewReader("!!!!!!T"))
	if err != nil {
		t.Fatal(err)
	}
	if ret.String() != "T" {
		t.Errorf("want T but got %v", ret)
	}
}

func TestVarFlags(t *testing.T) {
	var v varFlags
	if err := v.Set("x=1"); err != nil {
		t.Fatal(err)
	}
	if err := v.Set("nope"); err == nil {
		t.Error("missing = should fail")
	}
	if v.String() != "x=1" {
		t.Errorf("got %q", v.String())
	}
}
