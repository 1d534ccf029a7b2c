// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting colors layout and sheet declarations for the
// terminal, based on github.com/alecthomas/chroma.
package highlighting

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Lexer is the chroma lexer for layout and sheet declarations.
var Lexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "Eve",
		Aliases:   []string{"eve", "adam"},
		Filenames: []string{"*.eve", "*.adm"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `\s+`, Type: chroma.Text},
				{Pattern: `//[^\n]*`, Type: chroma.CommentSingle},
				{Pattern: `/\*[\s\S]*?\*/`, Type: chroma.CommentMultiline},
				{Pattern: chroma.Words(``, `\b`, "layout", "sheet", "view"), Type: chroma.KeywordDeclaration},
				{Pattern: `(constant|interface|input|output|logic|invariant|external)(\s*)(:)`,
					Type: chroma.ByGroups(chroma.Keyword, chroma.Text, chroma.Punctuation)},
				{Pattern: chroma.Words(``, `\b`, "true", "false", "empty"), Type: chroma.KeywordConstant},
				{Pattern: `@[A-Za-z_]\w*`, Type: chroma.LiteralStringSymbol},
				{Pattern: `"(\\.|[^"\\])*"`, Type: chroma.LiteralStringDouble},
				{Pattern: `'(\\.|[^'\\])*'`, Type: chroma.LiteralStringSingle},
				{Pattern: `(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`, Type: chroma.LiteralNumber},
				{Pattern: `<==|<=|>=|==|!=|&&|\|\||[-+*/%<>!?:=]`, Type: chroma.Operator},
				{Pattern: `[{}()\[\],;.]`, Type: chroma.Punctuation},
				{Pattern: `[A-Za-z_]\w*`, Type: chroma.Name},
				{Pattern: `.`, Type: chroma.Error},
			},
		}
	},
)

// Formatter returns the chroma formatter for a terminal color profile.
func Formatter(profile termenv.Profile) chroma.Formatter {
	switch profile {
	case termenv.TrueColor:
		return formatters.TTY16m
	case termenv.ANSI256:
		return formatters.TTY256
	case termenv.ANSI:
		return formatters.TTY8
	}
	return formatters.NoOp
}

// Write writes the declaration source src to w, colored for the
// profile with the chroma style of the given name. Text is written
// unchanged for [termenv.Ascii].
func Write(w io.Writer, profile termenv.Profile, src, style string) error {
	it, err := chroma.Coalesce(Lexer).Tokenise(nil, src)
	if err != nil {
		return err
	}
	return Formatter(profile).Format(w, styles.Get(style), it)
}
