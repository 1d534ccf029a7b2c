// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sheet

import (
	"fmt"
	"io"

	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/symbol"
)

// Declaration is one cell declaration read from sheet text.
type Declaration struct {
	Kind CellKinds
	Name symbol.Symbol
	Pos  expr.Position

	// Init is the initializer of a constant or interface cell,
	// or the defining expression of an output cell.
	Init expr.Expression
}

// sectionKinds maps section labels to the kind of cells they declare.
// Input cells are interface cells.
var sectionKinds = map[string]CellKinds{
	"constant":  ConstantCell,
	"interface": InterfaceCell,
	"input":     InterfaceCell,
	"output":    OutputCell,
}

// unsupportedSections are recognized so that they give a clear error.
var unsupportedSections = map[string]bool{
	"logic":     true,
	"invariant": true,
	"external":  true,
}

// IsSection returns whether the parser is at a section label,
// such as "interface:".
func IsSection(p *expr.Parser) bool {
	t := p.Peek()
	if t.Kind != expr.IdentToken {
		return false
	}
	_, ok := sectionKinds[t.Text]
	if !ok && !unsupportedSections[t.Text] {
		return false
	}
	n := p.PeekN(1)
	return n.Kind == expr.PunctToken && n.Text == ":"
}

// ParseSection parses one section label and the cell declarations after
// it, up to the next section label or closing brace, calling decl for
// each declaration. The parser must be at a section label.
//
//	constant:  name: expr;
//	interface: name: expr;  name;
//	output:    name <== expr;
func ParseSection(p *expr.Parser, decl func(d Declaration) error) error {
	label := p.Next()
	kind, ok := sectionKinds[label.Text]
	if !ok {
		return p.Lex.Errorf(label.Offset, "%s sections are not supported", label.Text)
	}
	if err := p.Expect(":"); err != nil {
		return err
	}
	for !p.IsPunct("}") && !IsSection(p) {
		t := p.Peek()
		name, err := p.ExpectIdent("a cell name")
		if err != nil {
			return err
		}
		d := Declaration{Kind: kind, Name: p.Tab.Intern(name), Pos: p.Position(t)}
		switch {
		case kind == OutputCell:
			if err := p.Expect("<=="); err != nil {
				return err
			}
			if d.Init, err = p.Expression(); err != nil {
				return err
			}
		case p.Accept(":"):
			if d.Init, err = p.Expression(); err != nil {
				return err
			}
		}
		if err := p.Expect(";"); err != nil {
			return err
		}
		if err := decl(d); err != nil {
			return fmt.Errorf("%v: %w", d.Pos, err)
		}
	}
	return nil
}

// Read reads sheet text of the form
//
//	sheet name {
//	constant:
//	    gap: 8;
//	interface:
//	    width: 10 * gap;
//	output:
//	    result <== {width: width};
//	}
//
// declaring its cells in the sheet in order. The file name
// is used for error positions.
func (s *Sheet) Read(r io.Reader, file string) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	p := expr.NewParser(file, src, s.Table)
	if !p.IsKeyword("sheet") {
		return p.Unexpected(p.Peek(), `"sheet"`)
	}
	p.Next()
	name, err := p.ExpectIdent("a sheet name")
	if err != nil {
		return err
	}
	s.Name = name
	if err := p.Expect("{"); err != nil {
		return err
	}
	for !p.Accept("}") {
		if !IsSection(p) {
			return p.Unexpected(p.Peek(), "a section label or \"}\"")
		}
		err := ParseSection(p, func(d Declaration) error {
			return s.Declare(d.Kind, d.Name, d.Init)
		})
		if err != nil {
			return err
		}
	}
	if t := p.Peek(); t.Kind != expr.EOFToken {
		return p.Unexpected(t, "end of input")
	}
	return nil
}
