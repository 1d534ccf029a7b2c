// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"fmt"

	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// Base is embedded in every widget.
type Base struct {

	// View is the view of the widget.
	View *eve.View

	// Metrics are the text metrics used to measure the widget.
	Metrics Metrics

	// Placement is the most recent placement of the widget.
	Placement layout.Placement

	// Places is the number of times the widget has been placed.
	Places int

	// Hidden is whether the view of the widget was last hidden.
	Hidden bool
}

// Place implements [layout.Widget].
func (b *Base) Place(p layout.Placement) {
	b.Placement = p
	b.Places++
}

// SetVisible implements [layout.Visibler].
func (b *Base) SetVisible(visible bool) {
	b.Hidden = !visible
}

// Name returns the name parameter, which is the text shown by
// most widgets.
func (b *Base) Name() string {
	return b.View.ParamString("name", "")
}

func (b *Base) sheet() *sheet.Sheet {
	return b.View.Builder().Sheet
}

// Binding is a widget bound to an interface cell through its
// bind parameter. It follows the value of the cell.
type Binding struct {
	Base

	// Cell is the bound cell.
	Cell symbol.Symbol

	// Value is the most recent value of the cell.
	Value values.Value
}

// bind binds the widget to the cell named by the bind parameter,
// which is required.
func (b *Binding) bind() error {
	cell, ok := b.View.ParamSymbol("bind")
	if !ok {
		return fmt.Errorf("missing bind parameter")
	}
	if k, ok := b.sheet().Kind(cell); !ok || k != sheet.InterfaceCell {
		return fmt.Errorf("bind: %q is not an interface cell", cell.Name())
	}
	v, err := b.sheet().Lookup(cell)
	if err != nil {
		return err
	}
	b.Cell, b.Value = cell, v
	return b.View.Monitor(cell, func(v values.Value) {
		b.Value = v
	})
}

// Set sets the bound cell, which notifies the widget
// and every other monitor of the cell.
func (b *Binding) Set(v values.Value) error {
	return b.sheet().Set(b.Cell, v)
}
