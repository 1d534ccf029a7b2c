// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dialog makes modal dialogs from layout and sheet declarations.
// A dialog runs until a widget triggers an action that its handler
// accepts, and then returns the values of the interface cells of its
// sheet together with that action.
package dialog

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/config"
	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/store"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
	"cogentcore.org/eve/widgets"
)

var (
	// ErrResourceNotFound is returned when a declaration file is missing.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrNotClosed is returned by [ExecuteModal] when the events
	// run out before the dialog closes.
	ErrNotClosed = errors.New("dialog did not close")
)

// Handler is called when a widget triggers an action, such as a
// button being clicked. It returns whether the dialog should close.
type Handler func(action symbol.Symbol, value values.Value) bool

// CloseAlways is a [Handler] that closes the dialog on any action.
func CloseAlways(symbol.Symbol, values.Value) bool {
	return true
}

// Result is the outcome of a closed dialog.
type Result struct {

	// Results are the values of the interface cells when the dialog closed.
	Results *values.Dictionary

	// Action is the action that closed the dialog.
	Action symbol.Symbol
}

type options struct {
	tab      *symbol.Table
	settings *config.Settings
	input    *values.Dictionary
	store    *store.Store
	dictFns  expr.DictFunctionLookup
	arrayFns expr.ArrayFunctionLookup
}

// Option configures a new [Dialog].
type Option func(o *options)

// WithTable sets the symbol table. By default each dialog has its own.
func WithTable(tab *symbol.Table) Option {
	return func(o *options) {
		o.tab = tab
	}
}

// WithSettings sets the settings. By default they are [config.Default].
func WithSettings(s *config.Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithInput sets interface cells to the given values before the
// dialog is first laid out. It is applied after any stored record.
func WithInput(d *values.Dictionary) Option {
	return func(o *options) {
		o.input = d
	}
}

// WithStore seeds the dialog from the record stored under its layout
// name, and saves its results there when it closes with any action
// other than cancel. Every close is added to the history.
func WithStore(s *store.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithFunctions sets the functions that expressions may call.
func WithFunctions(dictFns expr.DictFunctionLookup, arrayFns expr.ArrayFunctionLookup) Option {
	return func(o *options) {
		o.dictFns = dictFns
		o.arrayFns = arrayFns
	}
}

// Dialog is a laid out dialog.
type Dialog struct {

	// Name is the name of the layout.
	Name string

	// Settings are the settings of the dialog.
	Settings *config.Settings

	// Sheet holds the cells of the dialog.
	Sheet *sheet.Sheet

	// Builder holds the views of the dialog.
	Builder *eve.Builder

	handler Handler
	store   *store.Store
	closed  bool
	result  Result
}

// Make makes a dialog from layout and sheet declarations and lays it
// out. The sheet source may be nil when the layout declares all of
// its cells. Any error in the declarations fails the whole dialog.
// A nil handler closes the dialog on any action.
func Make(eveSrc, adamSrc io.Reader, handler Handler, opts ...Option) (*Dialog, error) {
	return newDialog(eveSrc, "layout", adamSrc, "sheet", handler, opts...)
}

// MakeFromFiles makes a dialog from the given declaration files. The
// sheet path may be empty. Missing files give [ErrResourceNotFound].
func MakeFromFiles(evePath, adamPath string, handler Handler, opts ...Option) (*Dialog, error) {
	ef, err := openResource(evePath)
	if err != nil {
		return nil, err
	}
	defer ef.Close()
	var adam io.Reader
	if adamPath != "" {
		af, err := openResource(adamPath)
		if err != nil {
			return nil, err
		}
		defer af.Close()
		adam = af
	}
	return newDialog(ef, evePath, adam, adamPath, handler, opts...)
}

func openResource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrResourceNotFound, err)
	}
	return f, err
}

func newDialog(eveSrc io.Reader, eveName string, adamSrc io.Reader, adamName string, handler Handler, opts ...Option) (*Dialog, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.tab == nil {
		o.tab = symbol.NewTable()
	}
	if o.settings == nil {
		o.settings = config.Default()
	}
	d := &Dialog{Settings: o.settings, handler: handler, store: o.store}
	d.Sheet = sheet.New(o.tab, sheet.WithMaxDepth(o.settings.MaxDepth), sheet.WithFunctions(o.dictFns, o.arrayFns))
	if adamSrc != nil {
		if err := d.Sheet.Read(adamSrc, adamName); err != nil {
			return nil, err
		}
	}
	reg := widgets.NewRegistry(widgets.MetricsFromSettings(o.settings.Text))
	d.Builder = eve.NewBuilder(d.Sheet, reg,
		eve.WithSpacing(o.settings.Layout.Spacing),
		eve.WithMargin(o.settings.Layout.Margin),
		eve.WithAction(d.action))
	err := d.build(eveSrc, eveName, o)
	if err != nil {
		d.Builder.Release()
		return nil, err
	}
	return d, nil
}

func (d *Dialog) build(eveSrc io.Reader, eveName string, o *options) error {
	if err := eve.Read(eveSrc, eveName, d.Builder); err != nil {
		return err
	}
	d.Name = d.Builder.Name
	if d.store != nil {
		if err := d.seed(); err != nil {
			return err
		}
	}
	if o.input != nil {
		if err := d.Sheet.SetBatch(o.input); err != nil {
			return err
		}
	}
	_, err := d.Builder.Finish()
	return err
}

// seed sets the interface cells that the stored record of the dialog
// has values for. Cells the dialog no longer has are skipped.
func (d *Dialog) seed() error {
	rec, err := d.store.Get(d.Name)
	if errors.Is(err, store.ErrNoRecord) {
		return nil
	}
	if err != nil {
		return err
	}
	var errs []error
	rec.Range(func(k symbol.Symbol, v values.Value) bool {
		if kind, ok := d.Sheet.Kind(k); !ok || kind != sheet.InterfaceCell {
			slog.Debug("dialog: skipping stored value", "dialog", d.Name, "cell", k.Name())
			return true
		}
		errs = append(errs, d.Sheet.Set(k, v))
		return true
	})
	return errors.Join(errs...)
}

func (d *Dialog) action(action symbol.Symbol, value values.Value) {
	if d.closed {
		return
	}
	if d.handler != nil && !d.handler(action, value) {
		slog.Debug("dialog: action", "dialog", d.Name, "action", action.Name())
		return
	}
	d.closed = true
	d.result = Result{Results: d.Sheet.Contributing(), Action: action}
	slog.Info("dialog: closed", "dialog", d.Name, "action", action.Name())
	if d.store != nil {
		d.save()
	}
}

func (d *Dialog) save() {
	if d.result.Action.Name() != "cancel" {
		errors.Log(d.store.Put(d.Name, d.result.Results))
	}
	errors.Log1(d.store.AddHistory(d.Name, d.result.Action, d.result.Results))
}

// Closed returns whether the dialog has closed.
func (d *Dialog) Closed() bool {
	return d.closed
}

// Result returns the result of the dialog, and whether it has closed.
func (d *Dialog) Result() (Result, bool) {
	return d.result, d.closed
}

// Root returns the root view.
func (d *Dialog) Root() *eve.View {
	return d.Builder.Root
}

// Placements returns the placements of the visible views.
func (d *Dialog) Placements() []layout.NodePlacement {
	return d.Builder.Solver.Placements()
}

// Resize lays out the dialog at the given size. Zero components
// use the natural size.
func (d *Dialog) Resize(size math32.Vector2) {
	d.Builder.Solver.Resize(size)
	d.Builder.Tick()
}

// Close releases the monitors of the dialog.
func (d *Dialog) Close() {
	d.Builder.Release()
}

// ExecuteModal makes a dialog and applies the given events to it until
// it closes, returning its result. It returns [ErrNotClosed] if the
// events run out first.
func ExecuteModal(eveSrc, adamSrc io.Reader, handler Handler, events []Event, opts ...Option) (Result, error) {
	d, err := Make(eveSrc, adamSrc, handler, opts...)
	if err != nil {
		return Result{}, err
	}
	defer d.Close()
	return d.Run(events)
}

// Run applies the given events until the dialog closes, and returns
// its result. It returns [ErrNotClosed] if the events run out first.
func (d *Dialog) Run(events []Event) (Result, error) {
	for _, e := range events {
		if d.closed {
			break
		}
		if err := d.Apply(e); err != nil {
			return Result{}, err
		}
	}
	if !d.closed {
		return Result{}, fmt.Errorf("%w: %s", ErrNotClosed, d.Name)
	}
	return d.result, nil
}
