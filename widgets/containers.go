// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/values"
)

// Container is the widget of dialogs, rows, columns, overlays and
// groups. It is placed but never measured: its children are.
type Container struct {
	Base
}

// Measure returns the empty measurement. The layout measures the
// children of containers instead.
func (c *Container) Measure() layout.Measurement {
	return layout.Measurement{}
}

// Panel is a container that is shown only while its bound cell has
// the value parameter, or is true if there is none.
//
//	panel(bind: @mode, value: @advanced) { ... }
type Panel struct {
	Container
	binding Binding
}

// Shown returns whether the panel should be shown
// for the current value of its cell.
func (p *Panel) Shown() bool {
	if want, ok := p.View.Param("value"); ok {
		return values.Equal(p.binding.Value, want)
	}
	b, _ := p.binding.Value.TryBool()
	return b
}

func newContainer(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		return &Container{Base{View: v, Metrics: m}}, nil
	}
}

func newPanel(m Metrics) eve.Factory {
	return func(v *eve.View) (layout.Widget, error) {
		p := &Panel{Container: Container{Base{View: v, Metrics: m}}}
		p.binding.Base = p.Base
		if err := p.binding.bind(); err != nil {
			return nil, err
		}
		v.SetVisible(p.Shown())
		err := v.Monitor(p.binding.Cell, func(values.Value) {
			v.SetVisible(p.Shown())
		})
		return p, err
	}
}
