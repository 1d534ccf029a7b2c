// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eve

import (
	"log/slog"

	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// View is one declared view: a node of the layout tree together
// with the declaration it came from.
type View struct {

	// Node is the layout node of the view.
	Node *layout.Node

	// Kind is the kind of the view.
	Kind *Kind

	// Pos is where the view was declared.
	Pos expr.Position

	// Expr is the parameter expression, which evaluates to a dictionary.
	Expr expr.Expression

	// Params are the most recently evaluated parameters.
	Params *values.Dictionary

	// Brief and Detailed are documentation of the view.
	Brief    string
	Detailed string

	// Parent is the containing view, nil for the root.
	Parent *View

	// Children are the contained views, in order.
	Children []*View

	builder *Builder
	conns   []*sheet.Connection
}

// Builder returns the builder that made the view.
func (v *View) Builder() *Builder {
	return v.builder
}

// Param returns the named parameter.
func (v *View) Param(name string) (values.Value, bool) {
	s, ok := v.builder.Sheet.Table.Lookup(name)
	if !ok {
		return values.Value{}, false
	}
	return v.Params.At(s)
}

// ParamString returns the named parameter if it is a string,
// or the name of a symbol, and otherwise def.
func (v *View) ParamString(name, def string) string {
	p, ok := v.Param(name)
	if !ok {
		return def
	}
	if s, ok := p.TryString(); ok {
		return s
	}
	if s, ok := p.TrySymbol(); ok {
		return s.Name()
	}
	return def
}

// ParamNumber returns the named parameter if it is a number, and otherwise def.
func (v *View) ParamNumber(name string, def float64) float64 {
	p, ok := v.Param(name)
	if !ok {
		return def
	}
	if n, ok := p.TryNumber(); ok {
		return n
	}
	return def
}

// ParamSymbol returns the named parameter as a symbol, interning a
// string, and false if it is missing or neither.
func (v *View) ParamSymbol(name string) (symbol.Symbol, bool) {
	p, ok := v.Param(name)
	if !ok {
		return symbol.Symbol{}, false
	}
	if s, ok := p.TrySymbol(); ok {
		return s, true
	}
	if s, ok := p.TryString(); ok && s != "" {
		return v.builder.Sheet.Table.Intern(s), true
	}
	return symbol.Symbol{}, false
}

// Monitor calls fun on every write to the named interface cell until
// the builder is released.
func (v *View) Monitor(cell symbol.Symbol, fun sheet.MonitorFunc) error {
	con, err := v.builder.Sheet.Monitor(cell, fun)
	if err != nil {
		return err
	}
	v.conns = append(v.conns, con)
	return nil
}

// SetVisible shows or hides the view. Once the layout is finished the
// change is queued and applied by the next [Builder.Tick].
func (v *View) SetVisible(visible bool) {
	if s := v.builder.Solver; s != nil {
		s.SetVisible(v.Node, visible)
		return
	}
	v.Node.Hidden = !visible
}

// Invalidate queues the view to be measured again by the next
// [Builder.Tick], such as after its widget content changes.
func (v *View) Invalidate() {
	if s := v.builder.Solver; s != nil {
		s.Invalidate(v.Node)
	}
}

// Path returns the path of the view in the layout tree.
func (v *View) Path() string {
	return v.Node.Path()
}

// WalkDown calls fun on the view and then its descendants in depth
// first order. Returning false from fun skips the children of that view.
func (v *View) WalkDown(fun func(v *View) bool) {
	if !fun(v) {
		return
	}
	for _, kid := range v.Children {
		kid.WalkDown(fun)
	}
}

// reevaluate evaluates the parameters again after a cell they depend on
// changed. On error the view keeps its last parameters and attributes.
func (v *View) reevaluate() {
	b := v.builder
	params, err := b.evaluateParams(v.Expr)
	var attr layout.Attributes
	if err == nil {
		attr, err = b.attributes(v.Kind, params)
	}
	if err != nil {
		slog.Error("eve: re-evaluating view parameters", "view", v.Path(), "pos", v.Pos.String(), "err", err)
		return
	}
	v.Params = params
	v.Node.Attr = attr
	if u, ok := v.Node.Widget.(Updater); ok {
		u.Update(v)
	}
	v.Invalidate()
}

func (v *View) release() {
	for _, c := range v.conns {
		c.Disconnect()
	}
	v.conns = nil
}
