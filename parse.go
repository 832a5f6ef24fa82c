package goexpr

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInt
	TokenIdent
	TokenKeyword
	TokenOp
	TokenPunct
)

// Token is a lexical token. Offset is the byte offset in the source.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

var keywords = map[string]bool{
	"func":  true,
	"apply": true,
	"if":    true,
	"then":  true,
	"else":  true,
	"T":     true,
	"F":     true,
}

// two-character operators; anything else is a single rune
var longOps = []string{"&&", "||", "<=", ">=", "==", "=>"}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf:      bufio.NewReader(r),
		maxDepth: DefaultMaxDepth,
	}
}

type Parser struct {
	buf      *bufio.Reader
	pos      int
	last     int
	toks     []Token
	cur      int
	depth    int
	maxDepth int
}

// Parse parses a single expression from src.
func Parse(src string) (*Node, error) {
	return NewParser(strings.NewReader(src)).Parse()
}

// Tokenize splits src into tokens, ending with a TokenEOF.
func Tokenize(src string) ([]Token, error) {
	return NewParser(strings.NewReader(src)).Tokens()
}

func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

func (p *Parser) readRune() (rune, error) {
	r, n, err := p.buf.ReadRune()
	p.pos += n
	p.last = n
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err == nil {
		p.pos -= p.last
		p.last = 0
	}
	return err
}

func (p *Parser) SkipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if r == '#' {
			for {
				r, err = p.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

// IsIdent reports whether name scans as a single identifier that is not a
// keyword.
func IsIdent(name string) bool {
	if name == "" || keywords[name] {
		return false
	}
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !isIdentLetter(r) {
			return false
		}
	}
	return true
}

func isIdentLetter(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isOpLetter(r rune) bool {
	return strings.ContainsRune(`+-*/%&|<>=!`, r)
}

func (p *Parser) scanWhile(first rune, ok func(rune) bool) (string, error) {
	var buf bytes.Buffer
	buf.WriteRune(first)
	for {
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if !ok(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

func (p *Parser) scanOp(first rune) (string, error) {
	r, err := p.readRune()
	if err != nil {
		if err == io.EOF {
			return string(first), nil
		}
		return "", err
	}
	pair := string([]rune{first, r})
	for _, op := range longOps {
		if pair == op {
			return pair, nil
		}
	}
	p.unreadRune()
	return string(first), nil
}

func (p *Parser) scan(index int) (Token, error) {
	p.SkipWhite()
	offset := p.pos
	r, err := p.readRune()
	if err == io.EOF {
		return Token{Kind: TokenEOF, Offset: offset}, nil
	}
	if err != nil {
		return Token{}, err
	}

	switch {
	case unicode.IsDigit(r):
		s, err := p.scanWhile(r, unicode.IsDigit)
		return Token{Kind: TokenInt, Text: s, Offset: offset}, err
	case unicode.IsLetter(r) || r == '_':
		s, err := p.scanWhile(r, isIdentLetter)
		kind := TokenIdent
		if keywords[s] {
			kind = TokenKeyword
		}
		return Token{Kind: kind, Text: s, Offset: offset}, err
	case isOpLetter(r):
		s, err := p.scanOp(r)
		return Token{Kind: TokenOp, Text: s, Offset: offset}, err
	case r == '(' || r == ')' || r == ',':
		return Token{Kind: TokenPunct, Text: string(r), Offset: offset}, nil
	}
	return Token{}, &ParseError{
		Pos:      index,
		Token:    string(r),
		Expected: "token",
	}
}

// Tokens scans the remaining input.
func (p *Parser) Tokens() ([]Token, error) {
	if p.toks != nil {
		return p.toks, nil
	}
	var toks []Token
	for {
		tok, err := p.scan(len(toks))
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			p.toks = toks
			return toks, nil
		}
	}
}

func (p *Parser) Parse() (*Node, error) {
	if _, err := p.Tokens(); err != nil {
		return nil, err
	}
	p.cur = 0
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokenEOF {
		return nil, p.unexpected("end of input")
	}
	return node, nil
}

func (p *Parser) peek() Token {
	return p.toks[p.cur]
}

func (p *Parser) next() Token {
	tok := p.toks[p.cur]
	if tok.Kind != TokenEOF {
		p.cur++
	}
	return tok
}

func (p *Parser) unexpected(expected string) error {
	return &ParseError{
		Pos:      p.cur,
		Token:    p.peek().Text,
		Expected: expected,
	}
}

func (p *Parser) expect(text string) error {
	tok := p.peek()
	if tok.Kind == TokenEOF || tok.Text != text {
		return p.unexpected(strconv.Quote(text))
	}
	p.next()
	return nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &DepthExceededError{Limit: p.maxDepth}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) parseExpr() (*Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.peek()
	if tok.Kind == TokenKeyword {
		switch tok.Text {
		case "if":
			return p.parseIf()
		case "func":
			return p.parseFunc()
		}
	}
	return p.parseBinary(1)
}

func (p *Parser) parseIf() (*Node, error) {
	p.next()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect("then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect("else"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return NewIf(cond, then, els), nil
}

func (p *Parser) parseFunc() (*Node, error) {
	p.next()
	tok := p.peek()
	if tok.Kind != TokenIdent {
		return nil, p.unexpected("parameter name")
	}
	p.next()
	if err := p.expect("=>"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return NewFunc(tok.Text, body), nil
}

func (p *Parser) binaryOp() (BinaryOp, bool) {
	tok := p.peek()
	if tok.Kind != TokenOp {
		return 0, false
	}
	return LookupOp(tok.Text)
}

// parseBinary parses operators of at least minPrec by precedence climbing.
// Comparisons do not associate.
func (p *Parser) parseBinary(minPrec int) (*Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	compared := false
	for {
		op, ok := p.binaryOp()
		if !ok || op.Precedence() < minPrec {
			return lhs, nil
		}
		isCompare := op.IsComparison()
		if isCompare && compared {
			return nil, p.unexpected("non-comparison operator")
		}
		p.next()
		rhs, err := p.parseBinary(op.Precedence() + 1)
		if err != nil {
			return nil, err
		}
		lhs = NewBinOp(lhs, rhs, op)
		compared = isCompare
	}
}

func (p *Parser) parseUnary() (*Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	tok := p.peek()
	if tok.Kind != TokenOp {
		return p.parseAtom()
	}
	op, ok := LookupUnaryOp(tok.Text)
	if !ok {
		return nil, p.unexpected("expression")
	}
	p.next()
	if op == OpNeg && p.peek().Kind == TokenInt {
		return p.parseInt("-")
	}
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return NewUnaryOp(x, op), nil
}

func (p *Parser) parseInt(sign string) (*Node, error) {
	tok := p.peek()
	i, err := strconv.ParseInt(sign+tok.Text, 10, 64)
	if err != nil {
		return nil, &ParseError{
			Pos:      p.cur,
			Token:    tok.Text,
			Expected: "64-bit integer",
			Err:      err,
		}
	}
	p.next()
	return NewInt(i), nil
}

func (p *Parser) parseAtom() (*Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenInt:
		return p.parseInt("")
	case TokenIdent:
		p.next()
		return NewVar(tok.Text), nil
	case TokenKeyword:
		switch tok.Text {
		case "T":
			p.next()
			return NewBool(true), nil
		case "F":
			p.next()
			return NewBool(false), nil
		case "apply":
			return p.parseApply()
		}
	case TokenPunct:
		if tok.Text == "(" {
			p.next()
			node, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return node, nil
		}
	}
	return nil, p.unexpected("expression")
}

func (p *Parser) parseApply() (*Node, error) {
	p.next()
	if err := p.expect("("); err != nil {
		return nil, err
	}
	fn, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(","); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return NewApply(fn, arg), nil
}
