// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"fmt"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/values"
)

// Enterer is implemented by widgets that accept entered values.
type Enterer interface {
	Enter(v values.Value) error
}

// Checkbox toggles a boolean cell when clicked.
//
//	checkbox(name: "Bold", bind: @bold)
type Checkbox struct {
	Binding
}

func (c *Checkbox) Measure() layout.Measurement {
	m := c.Metrics
	w := m.LineHeight
	if name := c.Name(); name != "" {
		w += m.CharWidth + m.TextWidth(name)
	}
	sz := math32.Vec2(w, m.LineHeight)
	return layout.Measurement{Min: sz, Natural: sz, Guides: layout.Guides{Y: []float32{m.Ascent}}}
}

// Checked returns whether the bound cell is true.
func (c *Checkbox) Checked() bool {
	b, _ := c.Value.TryBool()
	return b
}

// Click toggles the bound cell.
func (c *Checkbox) Click() {
	errors.Log(c.Set(values.MakeBool(!c.Checked())))
}

// field measures a labeled entry field of the given number of
// characters. The horizontal guide is the start of the field,
// so that the fields of a column line up after their labels.
func field(b *Base, chars int) layout.Measurement {
	m := b.Metrics
	var label float32
	name := b.Name()
	if name != "" {
		label = m.TextWidth(name) + m.CharWidth
	}
	h := m.LineHeight + 2*m.Padding
	nat := label + float32(chars)*m.CharWidth + 2*m.Padding
	mn := label + float32(min(chars, 4))*m.CharWidth + 2*m.Padding
	g := layout.Guides{Y: []float32{m.Padding + m.Ascent}}
	if name != "" {
		g.X = []float32{label}
	}
	return layout.Measurement{Min: math32.Vec2(mn, h), Natural: math32.Vec2(nat, h), Guides: g}
}

// EditText edits a string cell.
//
//	edit_text(name: "Name:", bind: @name, characters: 20)
type EditText struct {
	Binding
}

func (e *EditText) Measure() layout.Measurement {
	return field(&e.Base, int(e.View.ParamNumber("characters", 20)))
}

// Text returns the text of the bound cell.
func (e *EditText) Text() string {
	s, _ := e.Value.TryString()
	return s
}

// Enter sets the bound cell to the given string.
func (e *EditText) Enter(v values.Value) error {
	if _, err := v.AsString(); err != nil {
		return fmt.Errorf("%s: %w", e.View.Path(), err)
	}
	return e.Set(v)
}

// EditNumber edits a number cell, keeping it within the optional
// min and max parameters.
//
//	edit_number(name: "Width:", bind: @width, digits: 5, min: 0, max: 1000)
type EditNumber struct {
	Binding
}

func (e *EditNumber) Measure() layout.Measurement {
	return field(&e.Base, int(e.View.ParamNumber("digits", 6)))
}

// Number returns the number of the bound cell.
func (e *EditNumber) Number() float64 {
	n, _ := e.Value.TryNumber()
	return n
}

// Enter sets the bound cell to the given number, clamped to the limits.
func (e *EditNumber) Enter(v values.Value) error {
	n, err := v.AsNumber()
	if err != nil {
		return fmt.Errorf("%s: %w", e.View.Path(), err)
	}
	if p, ok := e.View.Param("min"); ok {
		if lo, ok := p.TryNumber(); ok {
			n = max(n, lo)
		}
	}
	if p, ok := e.View.Param("max"); ok {
		if hi, ok := p.TryNumber(); ok {
			n = min(n, hi)
		}
	}
	return e.Set(values.MakeNumber(n))
}

func newCheckbox(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		c := &Checkbox{Binding{Base: Base{View: v, Metrics: m}}}
		return c, c.bind()
	}
}

func newEditText(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		e := &EditText{Binding{Base: Base{View: v, Metrics: m}}}
		return e, e.bind()
	}
}

func newEditNumber(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		e := &EditNumber{Binding{Base: Base{View: v, Metrics: m}}}
		return e, e.bind()
	}
}
