// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eve builds layout trees of views from declarations, binding
// their parameters to the cells of a [sheet.Sheet] so that the layout
// follows changes to the cells.
package eve

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// ActionFunc is called when a widget triggers an action,
// such as a button being clicked.
type ActionFunc func(action symbol.Symbol, value values.Value)

// CellDecl is a cell declared through a [Builder].
type CellDecl struct {
	Kind     sheet.CellKinds
	Name     symbol.Symbol
	Pos      expr.Position
	Init     expr.Expression
	Brief    string
	Detailed string
}

// Builder builds a tree of views. Call [Builder.Finish] after adding
// all views, and [Builder.Release] when the tree is no longer used.
type Builder struct {

	// Name is the name given in the layout declaration, if any.
	Name string

	// Sheet holds the cells that view parameters refer to.
	Sheet *sheet.Sheet

	// Registry holds the view kinds.
	Registry *Registry

	// Spacing is the default spacing of rows and columns.
	Spacing float32

	// Margin is the default margin of kinds with [Kind.Margin].
	Margin float32

	// OnAction is called by widgets that trigger actions.
	OnAction ActionFunc

	// Root is the root view, set by the first [Builder.AddView].
	Root *View

	// Solver lays out the views. It is set by [Builder.Finish].
	Solver *layout.Solver

	cells []CellDecl
	views int
}

// Option configures a new [Builder].
type Option func(b *Builder)

// WithSpacing sets [Builder.Spacing].
func WithSpacing(spacing float32) Option {
	return func(b *Builder) {
		b.Spacing = spacing
	}
}

// WithMargin sets [Builder.Margin].
func WithMargin(margin float32) Option {
	return func(b *Builder) {
		b.Margin = margin
	}
}

// WithAction sets [Builder.OnAction].
func WithAction(fun ActionFunc) Option {
	return func(b *Builder) {
		b.OnAction = fun
	}
}

// NewBuilder returns a new [Builder] binding views to the given sheet.
func NewBuilder(sh *sheet.Sheet, reg *Registry, opts ...Option) *Builder {
	b := &Builder{Sheet: sh, Registry: reg}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Cells returns the cells declared through the builder, in order.
func (b *Builder) Cells() []CellDecl {
	return slices.Clone(b.cells)
}

// AddCell declares a cell in the sheet.
func (b *Builder) AddCell(kind sheet.CellKinds, name symbol.Symbol, pos expr.Position, init expr.Expression, brief, detailed string) error {
	err := b.declare(CellDecl{Kind: kind, Name: name, Pos: pos, Init: init, Brief: brief, Detailed: detailed})
	if err != nil {
		return fmt.Errorf("%v: %w", pos, err)
	}
	return nil
}

func (b *Builder) declare(c CellDecl) error {
	if err := b.Sheet.Declare(c.Kind, c.Name, c.Init); err != nil {
		return err
	}
	b.cells = append(b.cells, c)
	return nil
}

// AddView adds a view of the named kind under parent, or as the root if
// parent is nil. The parameters are evaluated against the sheet to give
// the layout attributes of the view and the settings of its widget, and
// are evaluated again whenever an interface cell they depend on changes.
func (b *Builder) AddView(parent *View, pos expr.Position, kind string, params expr.Expression, brief, detailed string) (*View, error) {
	k, err := b.Registry.Lookup(kind)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", pos, err)
	}
	switch {
	case parent == nil && b.Root != nil:
		return nil, fmt.Errorf("%v: layout already has a root view", pos)
	case parent != nil && parent.Kind.Placement == layout.PlaceLeaf:
		return nil, fmt.Errorf("%v: %s views cannot contain other views", pos, parent.Kind.Name)
	case b.Solver != nil:
		return nil, fmt.Errorf("%v: layout is already finished", pos)
	}
	vals, err := b.evaluateParams(params)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", pos, err)
	}
	attr, err := b.attributes(k, vals)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", pos, err)
	}
	v := &View{Kind: k, Pos: pos, Expr: params, Params: vals, Brief: brief, Detailed: detailed, Parent: parent, builder: b}
	v.Node = layout.NewNode(b.viewName(v), attr, nil)
	if parent == nil {
		b.Root = v
	} else {
		parent.Children = append(parent.Children, v)
		parent.Node.AddChild(v.Node)
	}
	b.views++
	if k.New != nil {
		w, err := k.New(v)
		if err != nil {
			return nil, fmt.Errorf("%v: %s: %w", pos, k.Name, err)
		}
		v.Node.Widget = w
	}
	if err := b.bind(v); err != nil {
		return nil, fmt.Errorf("%v: %w", pos, err)
	}
	return v, nil
}

// viewName returns the id parameter, or else the kind and index among siblings.
func (b *Builder) viewName(v *View) string {
	if id := v.ParamString("id", ""); id != "" {
		return id
	}
	n := 0
	if v.Parent != nil {
		n = len(v.Parent.Children)
	}
	return fmt.Sprintf("%s%d", v.Kind.Name, n)
}

// bind monitors the interface cells the parameters depend on.
func (b *Builder) bind(v *View) error {
	var deps []symbol.Symbol
	for _, name := range v.Expr.Variables() {
		for _, d := range b.Sheet.Dependencies(name) {
			if !slices.Contains(deps, d) {
				deps = append(deps, d)
			}
		}
	}
	for _, d := range deps {
		if err := v.Monitor(d, func(values.Value) { v.reevaluate() }); err != nil {
			return err
		}
	}
	return nil
}

// lookup resolves the variables of parameter expressions: cells of the
// sheet, and otherwise names such as align_fill, which are symbols.
func (b *Builder) lookup(name symbol.Symbol) (values.Value, error) {
	if _, ok := b.Sheet.Kind(name); !ok && isEnumName(name.Name()) {
		return values.MakeSymbol(name), nil
	}
	return b.Sheet.Variables()(name)
}

// evaluateParams evaluates a parameter expression, which must give a
// dictionary. The empty expression gives an empty dictionary.
func (b *Builder) evaluateParams(e expr.Expression) (*values.Dictionary, error) {
	v, err := expr.Evaluate(e, b.lookup, b.Sheet.DictFunctions, expr.WithBuiltins(b.Sheet.ArrayFunctions))
	if err != nil {
		return nil, err
	}
	if v.IsEmpty() {
		return values.NewDict(), nil
	}
	d, err := v.AsDict()
	if err != nil {
		return nil, fmt.Errorf("view parameters: %w", err)
	}
	return d, nil
}

// Evaluate evaluates an expression the way view parameters are evaluated.
func (b *Builder) Evaluate(e expr.Expression) (values.Value, error) {
	return expr.Evaluate(e, b.lookup, b.Sheet.DictFunctions, expr.WithBuiltins(b.Sheet.ArrayFunctions))
}

// Finish solves the layout for the first time, applying the placements
// to the widgets, and returns the root view.
func (b *Builder) Finish() (*View, error) {
	if b.Root == nil {
		return nil, errors.New("eve: layout has no views")
	}
	if b.Solver != nil {
		return b.Root, nil
	}
	b.Solver = layout.NewSolver(b.Root.Node)
	n := b.Solver.Solve()
	slog.Debug("eve: finished layout", "layout", b.Name, "views", b.views, "placed", n)
	return b.Root, nil
}

// Tick applies the changes queued since the last tick with one layout
// pass, and returns whether there were any.
func (b *Builder) Tick() bool {
	if b.Solver == nil {
		return false
	}
	return b.Solver.Tick()
}

// Action calls [Builder.OnAction], if set.
func (b *Builder) Action(action symbol.Symbol, value values.Value) {
	if b.OnAction != nil {
		b.OnAction(action, value)
	}
}

// Release disconnects all monitors the views registered.
func (b *Builder) Release() {
	if b.Root == nil {
		return
	}
	b.Root.WalkDown(func(v *View) bool {
		v.release()
		return true
	})
}

// FindPath returns the view at the given path relative to the root,
// such as "row0/ok", or nil.
func (b *Builder) FindPath(path string) *View {
	if b.Root == nil {
		return nil
	}
	n := b.Root.Node.FindPath(path)
	if n == nil {
		return nil
	}
	var found *View
	b.Root.WalkDown(func(v *View) bool {
		if v.Node == n {
			found = v
		}
		return found == nil
	})
	return found
}
