// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"fmt"
	"strings"

	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
	"cogentcore.org/eve/widgets"
)

// EventKinds are the kinds of input events.
type EventKinds int32

const (
	// EventClick clicks the widget at Path.
	EventClick EventKinds = iota

	// EventEnter enters Value into the widget at Path.
	EventEnter

	// EventSet sets the interface cell named Cell to Value.
	EventSet
)

var eventKindNames = [...]string{"click", "enter", "set"}

func (k EventKinds) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "invalid"
	}
	return eventKindNames[k]
}

// Event is one input to a dialog.
type Event struct {
	Kind EventKinds

	// Path is the path of a view relative to the root, such as "row4/button1".
	Path string

	// Cell is the name of an interface cell.
	Cell string

	Value values.Value
}

func (e Event) String() string {
	switch e.Kind {
	case EventClick:
		return "click:" + e.Path
	case EventEnter:
		return fmt.Sprintf("enter:%s=%v", e.Path, e.Value)
	}
	return fmt.Sprintf("set:%s=%v", e.Cell, e.Value)
}

// ParseEvent parses an event written as
//
//	click:path
//	enter:path=value
//	set:cell=value
//
// where the value is an expression of literals, such as "Mono" or 14.
func ParseEvent(s string, tab *symbol.Table) (Event, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return Event{}, fmt.Errorf("event %q: missing kind", s)
	}
	var e Event
	switch kind {
	case "click":
		return Event{Kind: EventClick, Path: rest}, nil
	case "enter":
		e.Kind = EventEnter
	case "set":
		e.Kind = EventSet
	default:
		return Event{}, fmt.Errorf("event %q: unknown kind %q", s, kind)
	}
	target, src, ok := strings.Cut(rest, "=")
	if !ok {
		return Event{}, fmt.Errorf("event %q: missing value", s)
	}
	ex, err := expr.Parse(src, tab)
	if err != nil {
		return Event{}, fmt.Errorf("event %q: %w", s, err)
	}
	if e.Value, err = expr.Evaluate(ex, nil, nil, expr.WithBuiltins(nil)); err != nil {
		return Event{}, fmt.Errorf("event %q: %w", s, err)
	}
	if e.Kind == EventEnter {
		e.Path = target
	} else {
		e.Cell = target
	}
	return e, nil
}

// view returns the view at the given path.
func (d *Dialog) view(path string) (*eve.View, error) {
	v := d.Builder.FindPath(path)
	if v == nil {
		return nil, fmt.Errorf("dialog %s: no view %q", d.Name, path)
	}
	return v, nil
}

// Apply applies the event to the dialog, and then lays out the
// changes it caused.
func (d *Dialog) Apply(e Event) error {
	defer d.Builder.Tick()
	switch e.Kind {
	case EventClick:
		v, err := d.view(e.Path)
		if err != nil {
			return err
		}
		c, ok := v.Node.Widget.(widgets.Clicker)
		if !ok {
			return fmt.Errorf("dialog %s: %s view %q cannot be clicked", d.Name, v.Kind.Name, e.Path)
		}
		c.Click()
		return nil
	case EventEnter:
		v, err := d.view(e.Path)
		if err != nil {
			return err
		}
		en, ok := v.Node.Widget.(widgets.Enterer)
		if !ok {
			return fmt.Errorf("dialog %s: %s view %q does not accept values", d.Name, v.Kind.Name, e.Path)
		}
		return en.Enter(e.Value)
	}
	return d.Sheet.Set(d.Sheet.Table.Intern(e.Cell), e.Value)
}
