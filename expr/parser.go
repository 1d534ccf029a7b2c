// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"strconv"

	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// Parser reads expressions from a [Lexer]. It also provides the token
// helpers that the sheet and layout declaration readers build on.
type Parser struct {
	Lex *Lexer
	Tab *symbol.Table

	ahead []Token
	last  Token
}

// NewParser returns a new [Parser] over the given source.
func NewParser(file string, src []byte, tab *symbol.Table) *Parser {
	return &Parser{Lex: NewLexer(file, src), Tab: tab}
}

// Parse parses a complete expression from the given text.
func Parse(src string, tab *symbol.Table) (Expression, error) {
	p := NewParser("", []byte(src), tab)
	e, err := p.Expression()
	if err != nil {
		return Expression{}, err
	}
	if t := p.Peek(); t.Kind != EOFToken {
		return Expression{}, p.Unexpected(t, "end of expression")
	}
	return e, nil
}

// Peek returns the next token without consuming it.
func (p *Parser) Peek() Token {
	return p.PeekN(0)
}

// PeekN returns the token n places ahead without consuming anything.
func (p *Parser) PeekN(n int) Token {
	for len(p.ahead) <= n {
		p.ahead = append(p.ahead, p.Lex.Next())
	}
	return p.ahead[n]
}

// Next consumes and returns the next token.
func (p *Parser) Next() Token {
	t := p.Peek()
	p.ahead = p.ahead[1:]
	p.last = t
	return t
}

// Last returns the most recently consumed token.
func (p *Parser) Last() Token {
	return p.last
}

// IsPunct returns whether the next token is the given punctuation.
func (p *Parser) IsPunct(text string) bool {
	t := p.Peek()
	return t.Kind == PunctToken && t.Text == text
}

// IsKeyword returns whether the next token is the given identifier.
func (p *Parser) IsKeyword(text string) bool {
	t := p.Peek()
	return t.Kind == IdentToken && t.Text == text
}

// Accept consumes the next token if it is the given punctuation.
func (p *Parser) Accept(text string) bool {
	if p.IsPunct(text) {
		p.Next()
		return true
	}
	return false
}

// Expect consumes the given punctuation or returns an error.
func (p *Parser) Expect(text string) error {
	if p.Accept(text) {
		return nil
	}
	return p.Unexpected(p.Peek(), strconv.Quote(text))
}

// ExpectIdent consumes an identifier and returns its text.
func (p *Parser) ExpectIdent(what string) (string, error) {
	t := p.Peek()
	if t.Kind != IdentToken {
		return "", p.Unexpected(t, what)
	}
	p.Next()
	return t.Text, nil
}

// Unexpected returns a syntax error describing the token found
// where something else was wanted. Lexical errors take precedence.
func (p *Parser) Unexpected(t Token, want string) error {
	if t.Kind == ErrorToken && p.Lex.Err() != nil {
		return p.Lex.Err()
	}
	return p.Lex.Errorf(t.Offset, "expected %s, found %v", want, t)
}

// Position returns the position of the given token.
func (p *Parser) Position(t Token) Position {
	return p.Lex.Position(t.Offset)
}

// code accumulates postfix instructions.
type code []Instruction

func (c *code) emit(in Instruction) {
	*c = append(*c, in)
}

// Expression parses one expression. The result keeps its source text.
func (p *Parser) Expression() (Expression, error) {
	start := p.Peek().Offset
	var c code
	if err := p.ternary(&c); err != nil {
		return Expression{}, err
	}
	return Expression{code: c, src: p.Lex.Source(start, p.Last().End)}, nil
}

// sub parses a lazily evaluated operand at the given level.
func (p *Parser) sub(level func(*code) error) (Expression, error) {
	var c code
	if err := level(&c); err != nil {
		return Expression{}, err
	}
	return Expression{code: c}, nil
}

func (p *Parser) ternary(c *code) error {
	if err := p.or(c); err != nil {
		return err
	}
	if !p.Accept("?") {
		return nil
	}
	then, err := p.sub(p.ternary)
	if err != nil {
		return err
	}
	if err := p.Expect(":"); err != nil {
		return err
	}
	els, err := p.sub(p.ternary)
	if err != nil {
		return err
	}
	c.emit(Instruction{Op: OpIfElse, Sub: []Expression{then, els}})
	return nil
}

func (p *Parser) or(c *code) error {
	if err := p.and(c); err != nil {
		return err
	}
	for p.Accept("||") {
		rhs, err := p.sub(p.and)
		if err != nil {
			return err
		}
		c.emit(Instruction{Op: OpOr, Sub: []Expression{rhs}})
	}
	return nil
}

func (p *Parser) and(c *code) error {
	if err := p.binary(c, 0); err != nil {
		return err
	}
	for p.Accept("&&") {
		rhs, err := p.sub(func(c *code) error { return p.binary(c, 0) })
		if err != nil {
			return err
		}
		c.emit(Instruction{Op: OpAnd, Sub: []Expression{rhs}})
	}
	return nil
}

// binaryLevels are the strict binary operators, lowest precedence first.
var binaryLevels = []map[string]Opcodes{
	{"==": OpEqual, "!=": OpNotEqual},
	{"<": OpLess, "<=": OpLessEqual, ">": OpGreater, ">=": OpGreaterEqual},
	{"+": OpAdd, "-": OpSub},
	{"*": OpMul, "/": OpDiv, "%": OpMod},
}

func (p *Parser) binary(c *code, level int) error {
	if level == len(binaryLevels) {
		return p.unary(c)
	}
	if err := p.binary(c, level+1); err != nil {
		return err
	}
	for {
		t := p.Peek()
		op, ok := binaryLevels[level][t.Text]
		if t.Kind != PunctToken || !ok {
			return nil
		}
		p.Next()
		if err := p.binary(c, level+1); err != nil {
			return err
		}
		c.emit(Instruction{Op: op})
	}
}

func (p *Parser) unary(c *code) error {
	switch {
	case p.Accept("-"):
		if err := p.unary(c); err != nil {
			return err
		}
		c.emit(Instruction{Op: OpNeg})
		return nil
	case p.Accept("!"):
		if err := p.unary(c); err != nil {
			return err
		}
		c.emit(Instruction{Op: OpNot})
		return nil
	}
	return p.postfix(c)
}

func (p *Parser) postfix(c *code) error {
	if err := p.primary(c); err != nil {
		return err
	}
	for {
		switch {
		case p.Accept("["):
			if err := p.ternary(c); err != nil {
				return err
			}
			if err := p.Expect("]"); err != nil {
				return err
			}
			c.emit(Instruction{Op: OpIndex})
		case p.Accept("."):
			name, err := p.ExpectIdent("a member name")
			if err != nil {
				return err
			}
			c.emit(Instruction{Op: OpLiteral, Value: values.MakeSymbol(p.Tab.Intern(name))})
			c.emit(Instruction{Op: OpIndex})
		default:
			return nil
		}
	}
}

func (p *Parser) primary(c *code) error {
	t := p.Peek()
	switch t.Kind {
	case NumberToken:
		p.Next()
		n, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return p.Lex.Errorf(t.Offset, "invalid number %q", t.Text)
		}
		c.emit(Instruction{Op: OpLiteral, Value: values.MakeNumber(n)})
		return nil
	case StringToken:
		p.Next()
		c.emit(Instruction{Op: OpLiteral, Value: values.MakeString(t.Text)})
		return nil
	case SymbolToken:
		p.Next()
		c.emit(Instruction{Op: OpLiteral, Value: values.MakeSymbol(p.Tab.Intern(t.Text))})
		return nil
	case IdentToken:
		p.Next()
		switch t.Text {
		case "true", "false":
			c.emit(Instruction{Op: OpLiteral, Value: values.MakeBool(t.Text == "true")})
			return nil
		case "empty":
			c.emit(Instruction{Op: OpLiteral})
			return nil
		}
		name := p.Tab.Intern(t.Text)
		if p.Accept("(") {
			return p.call(c, name)
		}
		c.emit(Instruction{Op: OpVariable, Name: name})
		return nil
	case PunctToken:
		switch t.Text {
		case "(":
			p.Next()
			if err := p.ternary(c); err != nil {
				return err
			}
			return p.Expect(")")
		case "[":
			p.Next()
			n, err := p.list(c, "]")
			if err != nil {
				return err
			}
			c.emit(Instruction{Op: OpArray, N: n})
			return nil
		case "{":
			p.Next()
			keys, err := p.namedList(c, "}")
			if err != nil {
				return err
			}
			c.emit(Instruction{Op: OpDict, Keys: keys})
			return nil
		}
	}
	return p.Unexpected(t, "an expression")
}

// call parses the arguments after "name(". Named arguments select
// a dictionary function, positional ones an array function.
func (p *Parser) call(c *code, name symbol.Symbol) error {
	if p.Peek().Kind == IdentToken && p.PeekN(1).Kind == PunctToken && p.PeekN(1).Text == ":" {
		keys, err := p.namedList(c, ")")
		if err != nil {
			return err
		}
		c.emit(Instruction{Op: OpCallNamed, Name: name, Keys: keys})
		return nil
	}
	n, err := p.list(c, ")")
	if err != nil {
		return err
	}
	c.emit(Instruction{Op: OpCall, Name: name, N: n})
	return nil
}

func (p *Parser) list(c *code, end string) (int, error) {
	n := 0
	for !p.Accept(end) {
		if n > 0 {
			if err := p.Expect(","); err != nil {
				return 0, err
			}
		}
		if err := p.ternary(c); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// namedList parses "name: expr, ..." up to end, returning the keys in order.
func (p *Parser) namedList(c *code, end string) ([]symbol.Symbol, error) {
	var keys []symbol.Symbol
	for !p.Accept(end) {
		if len(keys) > 0 {
			if err := p.Expect(","); err != nil {
				return nil, err
			}
		}
		name, err := p.ExpectIdent("a parameter name")
		if err != nil {
			return nil, err
		}
		if err := p.Expect(":"); err != nil {
			return nil, err
		}
		if err := p.ternary(c); err != nil {
			return nil, err
		}
		keys = append(keys, p.Tab.Intern(name))
	}
	return keys, nil
}

// NamedArguments parses a parenthesized, possibly empty, list of
// named arguments "(name: expr, ...)" as a dictionary expression.
func (p *Parser) NamedArguments() (Expression, error) {
	start := p.Peek().Offset
	if err := p.Expect("("); err != nil {
		return Expression{}, err
	}
	var c code
	keys, err := p.namedList(&c, ")")
	if err != nil {
		return Expression{}, err
	}
	c.emit(Instruction{Op: OpDict, Keys: keys})
	return Expression{code: c, src: p.Lex.Source(start, p.Last().End)}, nil
}
