// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sheet provides a flat property sheet of named constant,
// interface and output cells, with monitors that are notified
// synchronously on every write to an interface cell.
package sheet

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

var (
	// ErrDuplicateName is returned when a cell name is declared twice.
	ErrDuplicateName = errors.New("duplicate cell name")

	// ErrUnknownCell is returned when a named cell does not exist,
	// or is not of the kind the operation needs.
	ErrUnknownCell = errors.New("unknown cell")

	// ErrRecursion is returned when monitors re-enter [Sheet.Set]
	// deeper than [Sheet.MaxDepth], or when output cells depend
	// on each other in a cycle.
	ErrRecursion = errors.New("recursion limit exceeded")
)

// CellKinds are the kinds of sheet cells.
type CellKinds int32

const (
	// ConstantCell is set once when declared and never changes.
	ConstantCell CellKinds = iota

	// InterfaceCell is externally settable and notifies its monitors.
	InterfaceCell

	// OutputCell is an expression over other cells, evaluated when read.
	OutputCell
)

var cellKindNames = [...]string{"constant", "interface", "output"}

func (k CellKinds) String() string {
	if k < 0 || int(k) >= len(cellKindNames) {
		return "invalid"
	}
	return cellKindNames[k]
}

// MonitorFunc is called with the new value of a cell.
type MonitorFunc func(value values.Value)

type cell struct {
	name     symbol.Symbol
	kind     CellKinds
	value    values.Value
	expr     expr.Expression
	monitors []*Connection
}

// Sheet is a named-value store with change notification.
// It is not safe for concurrent use.
type Sheet struct {
	// Name is the name given in the sheet declaration, if any.
	Name string

	// Table is the symbol table that cell names are interned in.
	Table *symbol.Table

	// MaxDepth is the maximum nesting of [Sheet.Set] calls, counting
	// the outermost one, so that 1 forbids monitors from setting cells.
	// Zero means unlimited, in which case monitors that set each other
	// in a cycle recurse without bound.
	MaxDepth int

	// DictFunctions and ArrayFunctions resolve the functions called
	// in cell expressions. The [expr.Builtins] are always available.
	DictFunctions  expr.DictFunctionLookup
	ArrayFunctions expr.ArrayFunctionLookup

	cells   map[symbol.Symbol]*cell
	outputs []symbol.Symbol

	machine    expr.Machine
	depth      int
	depthErr   error
	evaluating map[symbol.Symbol]bool
}

// Option configures a new [Sheet].
type Option func(s *Sheet)

// WithMaxDepth sets [Sheet.MaxDepth].
func WithMaxDepth(depth int) Option {
	return func(s *Sheet) {
		s.MaxDepth = depth
	}
}

// WithFunctions sets the function lookups used in cell expressions.
func WithFunctions(dictFns expr.DictFunctionLookup, arrayFns expr.ArrayFunctionLookup) Option {
	return func(s *Sheet) {
		s.DictFunctions = dictFns
		s.ArrayFunctions = arrayFns
	}
}

// New returns a new empty [Sheet] interning names in the given table.
func New(tab *symbol.Table, opts ...Option) *Sheet {
	s := &Sheet{Table: tab, cells: map[symbol.Symbol]*cell{}, evaluating: map[symbol.Symbol]bool{}}
	for _, o := range opts {
		o(s)
	}
	s.machine.Variables = s.lookupVariable
	s.machine.DictFunctions = func(name symbol.Symbol, args *values.Dictionary) (values.Value, error) {
		if s.DictFunctions == nil {
			return values.Value{}, expr.Unresolved("function", name.Name(), nil)
		}
		return s.DictFunctions(name, args)
	}
	s.machine.ArrayFunctions = expr.WithBuiltins(func(name symbol.Symbol, args []values.Value) (values.Value, error) {
		if s.ArrayFunctions == nil {
			return values.Value{}, expr.Unresolved("function", name.Name(), nil)
		}
		return s.ArrayFunctions(name, args)
	})
	return s
}

func (s *Sheet) add(c *cell) error {
	if _, has := s.cells[c.name]; has {
		return fmt.Errorf("%w: %q", ErrDuplicateName, c.name.Name())
	}
	s.cells[c.name] = c
	if c.kind == OutputCell {
		s.outputs = append(s.outputs, c.name)
	}
	return nil
}

// AddConstant adds a constant cell with the given value.
func (s *Sheet) AddConstant(name symbol.Symbol, value values.Value) error {
	return s.add(&cell{name: name, kind: ConstantCell, value: value})
}

// AddInterface adds an interface cell with the given initial value.
func (s *Sheet) AddInterface(name symbol.Symbol, initial values.Value) error {
	return s.add(&cell{name: name, kind: InterfaceCell, value: initial})
}

// AddOutput adds an output cell whose value is the given
// expression, evaluated against the sheet whenever it is read.
func (s *Sheet) AddOutput(name symbol.Symbol, e expr.Expression) error {
	return s.add(&cell{name: name, kind: OutputCell, expr: e})
}

// Declare adds a cell of the given kind. Constant and interface
// cells are initialized by evaluating init against the cells
// declared so far; an empty init gives the empty value.
func (s *Sheet) Declare(kind CellKinds, name symbol.Symbol, init expr.Expression) error {
	if kind == OutputCell {
		return s.AddOutput(name, init)
	}
	v, err := s.Evaluate(init)
	if err != nil {
		return fmt.Errorf("initializing %s cell %q: %w", kind, name.Name(), err)
	}
	if kind == ConstantCell {
		return s.AddConstant(name, v)
	}
	return s.AddInterface(name, v)
}

// Kind returns the kind of the named cell, and whether it exists.
func (s *Sheet) Kind(name symbol.Symbol) (CellKinds, bool) {
	c, ok := s.cells[name]
	if !ok {
		return 0, false
	}
	return c.kind, true
}

func (s *Sheet) interfaceCell(name symbol.Symbol) (*cell, error) {
	c, ok := s.cells[name]
	if !ok {
		return nil, s.unknown(name)
	}
	if c.kind != InterfaceCell {
		return nil, fmt.Errorf("%w: %q is a %s cell, not an interface cell", ErrUnknownCell, name.Name(), c.kind)
	}
	return c, nil
}

func (s *Sheet) unknown(name symbol.Symbol) error {
	ne := expr.Unresolved("cell", name.Name(), s.names())
	ne.Err = ErrUnknownCell
	return ne
}

func (s *Sheet) names() []string {
	names := make([]string, 0, len(s.cells))
	for n := range s.cells {
		names = append(names, n.Name())
	}
	slices.Sort(names)
	return names
}

// Set sets the value of an interface cell and then calls each of
// its monitors in the order they were registered, even when the
// new value equals the old one.
func (s *Sheet) Set(name symbol.Symbol, value values.Value) error {
	c, err := s.interfaceCell(name)
	if err != nil {
		return err
	}
	if s.MaxDepth > 0 && s.depth >= s.MaxDepth {
		err := fmt.Errorf("%w: setting %q at depth %d", ErrRecursion, name.Name(), s.depth+1)
		if s.depthErr == nil {
			s.depthErr = err
		}
		return err
	}
	s.depth++
	defer func() {
		s.depth--
	}()
	slog.Debug("sheet: set", "cell", name.Name(), "value", value)
	c.value = value
	for _, con := range slices.Clone(c.monitors) {
		if con.cell != nil {
			con.fun(value)
		}
	}
	if s.depth == 1 && s.depthErr != nil {
		err := s.depthErr
		s.depthErr = nil
		return err
	}
	return nil
}

// SetBatch sets every interface cell named in the dictionary, in the
// dictionary's order. All entries are applied; the errors are joined.
func (s *Sheet) SetBatch(d *values.Dictionary) error {
	var errs []error
	d.Range(func(k symbol.Symbol, v values.Value) bool {
		errs = append(errs, s.Set(k, v))
		return true
	})
	return errors.Join(errs...)
}

// Connection is a registered monitor. Call [Connection.Disconnect]
// when it is no longer needed.
type Connection struct {
	cell *cell
	fun  MonitorFunc
}

// Disconnect unregisters the monitor. It may be called more than once.
func (c *Connection) Disconnect() {
	if c == nil || c.cell == nil {
		return
	}
	c.cell.monitors = slices.DeleteFunc(c.cell.monitors, func(o *Connection) bool { return o == c })
	c.cell = nil
}

// Connected returns whether the monitor is still registered.
func (c *Connection) Connected() bool {
	return c != nil && c.cell != nil
}

// Monitor registers fun to be called on every write to the
// named interface cell.
func (s *Sheet) Monitor(name symbol.Symbol, fun MonitorFunc) (*Connection, error) {
	c, err := s.interfaceCell(name)
	if err != nil {
		return nil, err
	}
	con := &Connection{cell: c, fun: fun}
	c.monitors = append(c.monitors, con)
	return con, nil
}

// Lookup returns the current value of a cell of any kind.
// Output cells are evaluated.
func (s *Sheet) Lookup(name symbol.Symbol) (values.Value, error) {
	c, ok := s.cells[name]
	if !ok {
		return values.Value{}, s.unknown(name)
	}
	if c.kind != OutputCell {
		return c.value, nil
	}
	if s.evaluating[name] {
		return values.Value{}, fmt.Errorf("%w: output %q depends on itself", ErrRecursion, name.Name())
	}
	s.evaluating[name] = true
	defer delete(s.evaluating, name)
	v, err := s.machine.Evaluate(c.expr)
	if err != nil {
		return values.Value{}, fmt.Errorf("output %q: %w", name.Name(), err)
	}
	return v, nil
}

// lookupVariable resolves expression variables to cells, reporting
// unresolved names as name resolution errors.
func (s *Sheet) lookupVariable(name symbol.Symbol) (values.Value, error) {
	if _, ok := s.cells[name]; !ok {
		return values.Value{}, expr.Unresolved("variable", name.Name(), s.names())
	}
	return s.Lookup(name)
}

// Variables returns a variable lookup that reads the cells of the sheet.
func (s *Sheet) Variables() expr.VariableLookup {
	return s.lookupVariable
}

// Evaluate evaluates the expression against the cells and
// functions of the sheet.
func (s *Sheet) Evaluate(e expr.Expression) (values.Value, error) {
	return s.machine.Evaluate(e)
}

// Contributing returns a snapshot of the values of all interface cells.
func (s *Sheet) Contributing() *values.Dictionary {
	d := values.NewDict()
	for _, c := range s.cells {
		if c.kind == InterfaceCell {
			d.Set(c.name, c.value)
		}
	}
	return d
}

// Outputs evaluates all output cells. Outputs that fail to evaluate
// are left out and their errors joined.
func (s *Sheet) Outputs() (*values.Dictionary, error) {
	d := values.NewDict()
	var errs []error
	for _, name := range s.outputs {
		v, err := s.Lookup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		d.Set(name, v)
	}
	return d, errors.Join(errs...)
}

// Dependencies returns the interface cells that the value of the named
// cell depends on: the cell itself for an interface cell, the interface
// cells read by an output, transitively, and none for a constant.
func (s *Sheet) Dependencies(name symbol.Symbol) []symbol.Symbol {
	var deps []symbol.Symbol
	seen := map[symbol.Symbol]bool{}
	var walk func(name symbol.Symbol)
	walk = func(name symbol.Symbol) {
		if seen[name] {
			return
		}
		seen[name] = true
		c, ok := s.cells[name]
		if !ok {
			return
		}
		switch c.kind {
		case InterfaceCell:
			deps = append(deps, name)
		case OutputCell:
			for _, v := range c.expr.Variables() {
				walk(v)
			}
		}
	}
	walk(name)
	return deps
}

// Len returns the number of cells.
func (s *Sheet) Len() int {
	return len(s.cells)
}
