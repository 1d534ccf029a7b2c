// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/layout"
)

// Kinds returns the view kinds of the widgets measured with the given metrics.
func Kinds(m Metrics) []eve.Kind {
	return []eve.Kind{
		{Name: "dialog", Placement: layout.PlaceColumn, Margin: true, New: newContainer(m)},
		{Name: "group", Placement: layout.PlaceColumn, Margin: true, New: newContainer(m)},
		{Name: "row", Placement: layout.PlaceRow, New: newContainer(m)},
		{Name: "column", Placement: layout.PlaceColumn, New: newContainer(m)},
		{Name: "overlay", Placement: layout.PlaceOverlay, New: newContainer(m)},
		{Name: "panel", Placement: layout.PlaceColumn, New: newPanel(m)},
		{Name: "label", New: newLabel(m)},
		{Name: "button", New: newButton(m)},
		{Name: "separator", New: newSeparator(m)},
		{Name: "checkbox", New: newCheckbox(m)},
		{Name: "edit_text", New: newEditText(m)},
		{Name: "edit_number", New: newEditNumber(m)},
	}
}

// Register registers the view kinds of all widgets.
func Register(reg *eve.Registry, m Metrics) error {
	var errs []error
	for _, k := range Kinds(m) {
		errs = append(errs, reg.Register(k))
	}
	return errors.Join(errs...)
}

// NewRegistry returns a new registry with all widgets registered.
func NewRegistry(m Metrics) *eve.Registry {
	reg := eve.NewRegistry()
	errors.Must(Register(reg, m))
	return reg
}
