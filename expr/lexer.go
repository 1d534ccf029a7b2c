// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// Tokens are the kinds of lexical tokens.
type Tokens int32

const (
	EOFToken Tokens = iota
	IdentToken
	NumberToken
	StringToken
	SymbolToken
	PunctToken
	ErrorToken
)

var tokenNames = [...]string{"end of input", "identifier", "number", "string", "symbol", "punctuation", "error"}

func (t Tokens) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "invalid"
	}
	return tokenNames[t]
}

// Token is one lexical token. Text is the identifier or symbol
// name without the @, the unquoted string contents, the number
// literal, or the punctuation.
type Token struct {
	Kind Tokens
	Text string

	// Offset and End are the byte offsets of the token in the source.
	Offset int
	End    int
}

func (t Token) String() string {
	switch t.Kind {
	case EOFToken:
		return t.Kind.String()
	case StringToken:
		return fmt.Sprintf("string %q", t.Text)
	case SymbolToken:
		return "@" + t.Text
	}
	return fmt.Sprintf("%q", t.Text)
}

// puncts are the multi-character punctuators, longest first.
var puncts = []string{"<==", "<=", ">=", "==", "!=", "&&", "||"}

// Lexer splits declaration text into tokens. Comments are
// written // to end of line or /* ... */ and are skipped.
type Lexer struct {
	r    *parse.Input
	src  []byte
	file string
	err  error
}

// NewLexer returns a new [Lexer] over the given source.
// The file name is used only for error positions.
func NewLexer(file string, src []byte) *Lexer {
	return &Lexer{r: parse.NewInputBytes(bytes.Clone(src)), src: src, file: file}
}

// Err returns the first lexical error encountered, if any.
func (l *Lexer) Err() error {
	return l.err
}

// Position returns the position of the given byte offset.
func (l *Lexer) Position(offset int) Position {
	line, col, _ := parse.Position(bytes.NewReader(l.src), offset)
	return Position{File: l.file, Line: line, Column: col}
}

// Errorf returns a [SyntaxError] at the given byte offset.
func (l *Lexer) Errorf(offset int, format string, args ...any) *SyntaxError {
	line, col, context := parse.Position(bytes.NewReader(l.src), offset)
	return &SyntaxError{
		Pos:     Position{File: l.file, Line: line, Column: col},
		Message: fmt.Sprintf(format, args...),
		Context: context,
	}
}

// Source returns the source text between two offsets.
func (l *Lexer) Source(start, end int) string {
	if start < 0 || end > len(l.src) || start > end {
		return ""
	}
	return strings.TrimSpace(string(l.src[start:end]))
}

// Next returns the next token. After the input is exhausted, or
// after an error, it keeps returning an [EOFToken] or [ErrorToken].
func (l *Lexer) Next() Token {
	t := l.next()
	t.End = max(l.r.Offset(), t.Offset)
	return t
}

func (l *Lexer) next() Token {
	if l.err != nil {
		return Token{Kind: ErrorToken, Offset: len(l.src)}
	}
	if err := l.skipSpace(); err != nil {
		l.err = err
		return Token{Kind: ErrorToken, Offset: len(l.src)}
	}
	off := l.r.Offset()
	c := l.r.Peek(0)
	switch {
	case c == 0:
		if l.r.Err() == io.EOF {
			return Token{Kind: EOFToken, Offset: off}
		}
		return l.fail(off, "unexpected NUL character")
	case isDigit(c) || (c == '.' && isDigit(l.r.Peek(1))):
		l.number()
		return Token{Kind: NumberToken, Text: string(l.r.Shift()), Offset: off}
	case isIdentStart(c):
		l.ident()
		return Token{Kind: IdentToken, Text: string(l.r.Shift()), Offset: off}
	case c == '@':
		l.r.Move(1)
		l.r.Skip()
		if !isIdentStart(l.r.Peek(0)) {
			return l.fail(off, "expected a name after @")
		}
		l.ident()
		return Token{Kind: SymbolToken, Text: string(l.r.Shift()), Offset: off}
	case c == '"' || c == '\'':
		s, err := l.quoted(c)
		if err != nil {
			l.err = err
			return Token{Kind: ErrorToken, Offset: off}
		}
		return Token{Kind: StringToken, Text: s, Offset: off}
	}
	for _, p := range puncts {
		if l.hasPrefix(p) {
			l.r.Move(len(p))
			l.r.Skip()
			return Token{Kind: PunctToken, Text: p, Offset: off}
		}
	}
	if strings.IndexByte("+-*/%<>!?:,;()[]{}.=", c) >= 0 {
		l.r.Move(1)
		l.r.Skip()
		return Token{Kind: PunctToken, Text: string(c), Offset: off}
	}
	return l.fail(off, "unexpected character %q", rune(c))
}

func (l *Lexer) fail(off int, format string, args ...any) Token {
	l.err = l.Errorf(off, format, args...)
	return Token{Kind: ErrorToken, Offset: off}
}

func (l *Lexer) hasPrefix(p string) bool {
	for i := 0; i < len(p); i++ {
		if l.r.Peek(i) != p[i] {
			return false
		}
	}
	return true
}

func (l *Lexer) skipSpace() error {
	for {
		c := l.r.Peek(0)
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.r.Move(1)
		case c == '/' && l.r.Peek(1) == '/':
			for c := l.r.Peek(0); c != '\n' && !(c == 0 && l.r.Err() != nil); c = l.r.Peek(0) {
				l.r.Move(1)
			}
		case c == '/' && l.r.Peek(1) == '*':
			off := l.r.Offset()
			l.r.Move(2)
			for !(l.r.Peek(0) == '*' && l.r.Peek(1) == '/') {
				if l.r.Peek(0) == 0 && l.r.Err() != nil {
					return l.Errorf(off, "unterminated comment")
				}
				l.r.Move(1)
			}
			l.r.Move(2)
		default:
			l.r.Skip()
			return nil
		}
	}
}

func (l *Lexer) number() {
	for isDigit(l.r.Peek(0)) {
		l.r.Move(1)
	}
	if l.r.Peek(0) == '.' && isDigit(l.r.Peek(1)) {
		l.r.Move(1)
		for isDigit(l.r.Peek(0)) {
			l.r.Move(1)
		}
	}
	if c := l.r.Peek(0); c == 'e' || c == 'E' {
		n := 1
		if s := l.r.Peek(1); s == '+' || s == '-' {
			n = 2
		}
		if isDigit(l.r.Peek(n)) {
			l.r.Move(n)
			for isDigit(l.r.Peek(0)) {
				l.r.Move(1)
			}
		}
	}
}

func (l *Lexer) ident() {
	for c := l.r.Peek(0); isIdentStart(c) || isDigit(c); c = l.r.Peek(0) {
		l.r.Move(1)
	}
}

func (l *Lexer) quoted(q byte) (string, error) {
	off := l.r.Offset()
	l.r.Move(1)
	var b strings.Builder
	for {
		c := l.r.Peek(0)
		switch {
		case c == q:
			l.r.Move(1)
			l.r.Skip()
			return b.String(), nil
		case c == 0 && l.r.Err() != nil, c == '\n':
			return "", l.Errorf(off, "unterminated string")
		case c == '\\':
			e := l.r.Peek(1)
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '"', '\'':
				b.WriteByte(e)
			case 'x':
				hi, ok1 := unhex(l.r.Peek(2))
				lo, ok2 := unhex(l.r.Peek(3))
				if !ok1 || !ok2 {
					return "", l.Errorf(l.r.Offset(), "invalid escape \\x: want two hex digits")
				}
				b.WriteByte(hi<<4 | lo)
				l.r.Move(2)
			default:
				return "", l.Errorf(l.r.Offset(), "unknown escape \\%c", e)
			}
			l.r.Move(2)
		default:
			b.WriteByte(c)
			l.r.Move(1)
		}
	}
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
