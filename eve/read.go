// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eve

import (
	"io"

	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/sheet"
)

// Read reads layout declaration text of the form
//
//	layout name {
//	interface:
//	    shown: true;
//	    view dialog(name: "Title") {
//	        row(child_vertical: align_center) {
//	            label(name: "Name:");
//	            edit_text(bind: @name);
//	        }
//	        button(name: "OK", action: @ok);
//	    }
//	}
//
// declaring its cells in the sheet of the builder and adding its views.
// It does not finish the builder. The file name is used for error positions.
func Read(r io.Reader, file string, b *Builder) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	p := expr.NewParser(file, src, b.Sheet.Table)
	if !p.IsKeyword("layout") {
		return p.Unexpected(p.Peek(), `"layout"`)
	}
	p.Next()
	if b.Name, err = p.ExpectIdent("a layout name"); err != nil {
		return err
	}
	if err := p.Expect("{"); err != nil {
		return err
	}
	for sheet.IsSection(p) {
		err := sheet.ParseSection(p, func(d sheet.Declaration) error {
			return b.declare(CellDecl{Kind: d.Kind, Name: d.Name, Pos: d.Pos, Init: d.Init})
		})
		if err != nil {
			return err
		}
	}
	if !p.IsKeyword("view") {
		return p.Unexpected(p.Peek(), `a section label or "view"`)
	}
	p.Next()
	if err := readView(p, b, nil); err != nil {
		return err
	}
	if err := p.Expect("}"); err != nil {
		return err
	}
	if t := p.Peek(); t.Kind != expr.EOFToken {
		return p.Unexpected(t, "end of input")
	}
	return nil
}

// readView reads one view, "kind(params);" or "kind(params) { views }".
func readView(p *expr.Parser, b *Builder, parent *View) error {
	t := p.Peek()
	kind, err := p.ExpectIdent("a view kind")
	if err != nil {
		return err
	}
	params, err := p.NamedArguments()
	if err != nil {
		return err
	}
	v, err := b.AddView(parent, p.Position(t), kind, params, "", "")
	if err != nil {
		return err
	}
	if p.Accept(";") {
		return nil
	}
	if err := p.Expect("{"); err != nil {
		return err
	}
	for !p.Accept("}") {
		if err := readView(p, b, v); err != nil {
			return err
		}
	}
	return nil
}
