// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"log/slog"

	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/values"
)

// Clicker is implemented by widgets that respond to clicks.
type Clicker interface {
	Click()
}

// Label shows its name parameter on one line.
//
//	label(name: "Name:")
type Label struct {
	Base
}

func (l *Label) Measure() layout.Measurement {
	sz := math32.Vec2(l.Metrics.TextWidth(l.Name()), l.Metrics.LineHeight)
	return layout.Measurement{Min: sz, Natural: sz, Guides: layout.Guides{Y: []float32{l.Metrics.Ascent}}}
}

// Button triggers an action of the builder when clicked. The value
// of the action is the value parameter if given, or else the value
// of the cell named by the bind parameter, which may be an output.
//
//	button(name: "OK", action: @ok, bind: @result)
type Button struct {
	Base
}

func (bt *Button) Measure() layout.Measurement {
	m := bt.Metrics
	sz := math32.Vec2(m.TextWidth(bt.Name())+2*m.Padding, m.LineHeight+2*m.Padding)
	return layout.Measurement{Min: sz, Natural: sz, Guides: layout.Guides{Y: []float32{m.Padding + m.Ascent}}}
}

// Action returns the action of the button: the action parameter,
// or else its name.
func (bt *Button) Action() values.Value {
	if s, ok := bt.View.ParamSymbol("action"); ok {
		return values.MakeSymbol(s)
	}
	return values.MakeSymbol(bt.sheet().Table.Intern(bt.Name()))
}

// Click triggers the action of the button. Errors reading the
// bound cell are logged and the action gets the empty value.
func (bt *Button) Click() {
	action, _ := bt.Action().TrySymbol()
	var value values.Value
	if v, ok := bt.View.Param("value"); ok {
		value = v
	} else if cell, ok := bt.View.ParamSymbol("bind"); ok {
		v, err := bt.sheet().Lookup(cell)
		if err != nil {
			slog.Error("widgets: button value", "button", bt.View.Path(), "err", err)
		}
		value = v
	}
	slog.Debug("widgets: click", "button", bt.View.Path(), "action", action.Name())
	bt.View.Builder().Action(action, value)
}

// Separator is a thin horizontal line. Give it horizontal: align_fill
// to span its container.
type Separator struct {
	Base
}

func (s *Separator) Measure() layout.Measurement {
	sz := math32.Vec2(0, 1)
	return layout.Measurement{Min: sz, Natural: sz}
}

func newLabel(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		return &Label{Base{View: v, Metrics: m}}, nil
	}
}

func newButton(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		return &Button{Base{View: v, Metrics: m}}, nil
	}
}

func newSeparator(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		return &Separator{Base{View: v, Metrics: m}}, nil
	}
}
