package goexpr

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "T",
			want:  "T",
		},
		{
			input: "F",
			want:  "F",
		},
		{
			input: "42",
			want:  "42",
		},
		{
			input: "-42",
			want:  "-42",
		},
		{
			input: "x",
			want:  "x",
		},
		{
			input: "1 + 2 * 3",
			want:  "1 + (2 * 3)",
		},
		{
			input: "(1 + 2) * 3",
			want:  "(1 + 2) * 3",
		},
		{
			input: "1 - 2 - 3",
			want:  "(1 - 2) - 3",
		},
		{
			input: "a & b | c",
			want:  "(a & b) | c",
		},
		{
			input: "a < b && c || !d",
			want:  "((a < b) && c) || !d",
		},
		{
			input: "x = 1",
			want:  "x == 1",
		},
		{
			input: "-(5)",
			want:  "-(5)",
		},
		{
			input: "- - x",
			want:  "--x",
		},
		{
			input: "if a then b else c",
			want:  "if a then b else c",
		},
		{
			input: "func x => x + 1",
			want:  "func x => x + 1",
		},
		{
			input: "apply(f,1)",
			want:  "apply(f, 1)",
		},
		{
			input: "apply ( func x => x , 1 ) + 2",
			want:  "apply(func x => x, 1) + 2",
		},
		{
			input: "if T then if F then 1 else 2 else 3",
			want:  "if T then if F then 1 else 2 else 3",
		},
		{
			input: "  1   # trailing comment",
			want:  "1",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		node, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got := node.String()

		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseLeaves(t *testing.T) {
	tests := []struct {
		input string
		want  *Node
	}{
		{"T", NewBool(true)},
		{"F", NewBool(false)},
		{"42", NewInt(42)},
		{"x", NewVar("x")},
		{"-9223372036854775808", NewInt(-9223372036854775808)},
	}
	for _, test := range tests {
		got, err := Parse(test.input)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(Node{}, Value{})); diff != "" {
			t.Errorf("%q: %s", test.input, diff)
		}
	}
}

func TestParseTree(t *testing.T) {
	got, err := Parse("if x < 10 then apply(func n => n * 2, x) else !F")
	if err != nil {
		t.Fatal(err)
	}
	want := NewIf(
		NewBinOp(NewVar("x"), NewInt(10), OpLt),
		NewApply(
			NewFunc("n", NewBinOp(NewVar("n"), NewInt(2), OpMul)),
			NewVar("x"),
		),
		NewUnaryOp(NewBool(false), OpNot),
	)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Node{}, Value{})); diff != "" {
		t.Error(diff)
	}
}

func TestRoundTrip(t *testing.T) {
	trees := []*Node{
		NewBinOp(NewInt(42), NewInt(42), OpAdd),
		NewBinOp(NewInt(1), NewBinOp(NewInt(2), NewInt(3), OpSub), OpSub),
		NewBinOp(NewInt(-1), NewInt(-2), OpMul),
		NewUnaryOp(NewInt(5), OpNeg),
		NewUnaryOp(NewInt(-5), OpNeg),
		NewUnaryOp(NewBinOp(NewBool(true), NewBool(false), OpAnd), OpNot),
		NewBinOp(NewUnaryOp(NewVar("a"), OpNot), NewVar("b"), OpOr),
		NewBinOp(NewBinOp(NewVar("a"), NewVar("b"), OpLt), NewBinOp(NewVar("c"), NewVar("d"), OpEq), OpAnd),
		NewBinOp(NewIf(NewVar("c"), NewInt(1), NewInt(2)), NewInt(3), OpAdd),
		NewIf(NewBool(true), NewFunc("x", NewVar("x")), NewApply(NewVar("f"), NewInt(0))),
		NewApply(NewApply(NewVar("max"), NewInt(1)), NewBinOp(NewInt(2), NewInt(3), OpMod)),
		NewBinOp(NewFunc("y", NewVar("y")), NewInt(1), OpBitOr),
	}
	for _, tree := range trees {
		src := tree.String()
		got, err := Parse(src)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if !got.Equal(tree) {
			t.Errorf("%q: round trip gave %q", src, got)
		}
	}
}

func TestBuilderNames(t *testing.T) {
	for _, name := range []string{"x", "_", "fact2", "αβ"} {
		if !IsIdent(name) {
			t.Errorf("%q should be an identifier", name)
		}
		if got := NewVar(name).String(); got != name {
			t.Errorf("want %q but got %q", name, got)
		}
	}
	for _, name := range []string{"", "then", "apply", "T", "2x", "a b", "x+1"} {
		if IsIdent(name) {
			t.Errorf("%q should not be an identifier", name)
		}
		mustPanic(t, "NewVar("+name+")", func() { NewVar(name) })
		mustPanic(t, "NewFunc("+name+")", func() { NewFunc(name, NewInt(1)) })
	}
	mustPanic(t, "NewLeaf", func() { NewLeaf(VarRef("else")) })
	mustPanic(t, "NewIf", func() { NewIf(NewBool(true), nil, NewInt(1)) })
	mustPanic(t, "NewApply", func() { NewApply(NewVar("f"), nil) })
	mustPanic(t, "NewBinOp", func() { NewBinOp(nil, NewInt(1), OpAdd) })
	mustPanic(t, "NewUnaryOp", func() { NewUnaryOp(nil, OpNot) })
}

func TestTokenize(t *testing.T) {
	toks, err := Tokenize("apply(f,-1)<=x&&y")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Text)
	}
	want := []string{"apply", "(", "f", ",", "-", "1", ")", "<=", "x", "&&", "y", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	if last := toks[len(toks)-1]; last.Kind != TokenEOF || last.Offset != 17 {
		t.Errorf("want EOF at 17 but got %+v", last)
	}
	if toks[0].Kind != TokenKeyword || toks[2].Kind != TokenIdent || toks[5].Kind != TokenInt {
		t.Errorf("unexpected kinds: %+v", toks)
	}
}

func TestTokenizeOffsets(t *testing.T) {
	toks, err := Tokenize("αβ + 1")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 5, 7, 8}
	var got []int
	for _, tok := range toks {
		got = append(got, tok.Offset)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input string
		want  ParseError
	}{
		{"", ParseError{Pos: 0, Token: "", Expected: "expression"}},
		{"1 +", ParseError{Pos: 2, Token: "", Expected: "expression"}},
		{"1 2", ParseError{Pos: 1, Token: "2", Expected: "end of input"}},
		{"then", ParseError{Pos: 0, Token: "then", Expected: "expression"}},
		{"if T then 1", ParseError{Pos: 4, Token: "", Expected: `"else"`}},
		{"func 1 => 2", ParseError{Pos: 1, Token: "1", Expected: "parameter name"}},
		{"func if => 2", ParseError{Pos: 1, Token: "if", Expected: "parameter name"}},
		{"func x -> x", ParseError{Pos: 2, Token: "-", Expected: `"=>"`}},
		{"apply(f 1)", ParseError{Pos: 3, Token: "1", Expected: `","`}},
		{"apply f", ParseError{Pos: 1, Token: "f", Expected: `"("`}},
		{") 1", ParseError{Pos: 0, Token: ")", Expected: "expression"}},
		{"* 2", ParseError{Pos: 0, Token: "*", Expected: "expression"}},
		{"1 == 2 == 3", ParseError{Pos: 3, Token: "==", Expected: "non-comparison operator"}},
		{"1 + $", ParseError{Pos: 2, Token: "$", Expected: "token"}},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: want ParseError but got %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, *pe); diff != "" {
			t.Errorf("%q: %s", test.input, diff)
		}
	}
}

func TestParseIntOverflow(t *testing.T) {
	_, err := Parse("9223372036854775808")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("want ParseError but got %v", err)
	}
	if pe.Pos != 0 || pe.Err == nil {
		t.Errorf("unexpected error %+v", pe)
	}
}

func TestParseDepth(t *testing.T) {
	deep := strings.Repeat("(", 5000) + "1" + strings.Repeat(")", 5000)
	_, err := Parse(deep)
	var de *DepthExceededError
	if !errors.As(err, &de) {
		t.Fatalf("want DepthExceededError but got %v", err)
	}

	p := NewParser(strings.NewReader(strings.Repeat("!", 10) + "T"))
	p.SetMaxDepth(5)
	if _, err := p.Parse(); !errors.As(err, &de) || de.Limit != 5 {
		t.Errorf("want depth limit 5 but got %v", err)
	}

	nested := strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100)
	if _, err := Parse(nested); err != nil {
		t.Errorf("moderate nesting should parse: %v", err)
	}
}
