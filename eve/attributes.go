// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eve

import (
	"fmt"
	"strings"

	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// enumPrefixes are the prefixes of the names that parameter expressions
// may use without declaring them, such as align_fill or place_row.
// They evaluate to symbols.
var enumPrefixes = []string{"align_", "place_", "guide_"}

func isEnumName(name string) bool {
	for _, p := range enumPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// attributes returns the layout attributes of a view of the given kind
// with the given parameters. Parameters that are not layout attributes
// are left to the widget.
//
//	placement                    place_row, place_column, place_overlay
//	horizontal, vertical         align_left, align_fill, ...
//	child_horizontal, child_vertical
//	spacing                      number
//	margin                       number, or array of 1, 2 or 4 numbers
//	width, height                minimum size
//	guide_mask                   guide_baseline, guide_label, or an array of them
func (b *Builder) attributes(k *Kind, params *values.Dictionary) (layout.Attributes, error) {
	attr := layout.Attributes{Placement: k.Placement}
	if k.Placement == layout.PlaceRow || k.Placement == layout.PlaceColumn {
		attr.Spacing = b.Spacing
	}
	if k.Margin {
		attr.Margin = math32.NewSides(b.Margin)
	}
	var err error
	params.Range(func(key symbol.Symbol, v values.Value) bool {
		err = setAttribute(k, &attr, key.Name(), v)
		if err != nil {
			err = fmt.Errorf("parameter %s of %s: %w", key.Name(), k.Name, err)
			return false
		}
		return true
	})
	return attr, err
}

func setAttribute(k *Kind, attr *layout.Attributes, key string, v values.Value) error {
	var err error
	switch key {
	case "placement":
		var name string
		if name, err = enumName(v); err != nil {
			return err
		}
		p, ok := layout.PlacementFromName(name)
		if !ok {
			return fmt.Errorf("unknown placement %q", name)
		}
		if (p == layout.PlaceLeaf) != (k.Placement == layout.PlaceLeaf) {
			return fmt.Errorf("placement %v does not apply to %s views", p, k.Name)
		}
		attr.Placement = p
	case "horizontal":
		attr.Horizontal, err = align(v)
	case "vertical":
		attr.Vertical, err = align(v)
	case "child_horizontal":
		attr.ChildHorizontal, err = align(v)
	case "child_vertical":
		attr.ChildVertical, err = align(v)
	case "spacing":
		attr.Spacing, err = number(v)
	case "margin":
		attr.Margin, err = sides(v)
	case "width":
		attr.MinSize.X, err = number(v)
	case "height":
		attr.MinSize.Y, err = number(v)
	case "guide_mask":
		attr.GuideMask, err = guideMask(v)
	}
	return err
}

// enumName returns the name of a symbol or string value.
func enumName(v values.Value) (string, error) {
	if s, ok := v.TrySymbol(); ok {
		return s.Name(), nil
	}
	return v.AsString()
}

func align(v values.Value) (layout.Aligns, error) {
	name, err := enumName(v)
	if err != nil {
		return layout.AlignDefault, err
	}
	a, ok := layout.AlignFromName(name)
	if !ok {
		return layout.AlignDefault, fmt.Errorf("unknown alignment %q", name)
	}
	return a, nil
}

func number(v values.Value) (float32, error) {
	n, err := v.AsNumber()
	return float32(n), err
}

func sides(v values.Value) (math32.Sides, error) {
	if n, ok := v.TryNumber(); ok {
		return math32.NewSides(float32(n)), nil
	}
	arr, err := v.AsArray()
	if err != nil {
		return math32.Sides{}, err
	}
	if len(arr) != 1 && len(arr) != 2 && len(arr) != 4 {
		return math32.Sides{}, fmt.Errorf("margin needs 1, 2 or 4 numbers, got %d", len(arr))
	}
	ns := make([]float32, len(arr))
	for i, e := range arr {
		if ns[i], err = number(e); err != nil {
			return math32.Sides{}, err
		}
	}
	return math32.NewSides(ns...), nil
}

// guideMask returns the mask for guide_baseline, which suppresses
// vertical guides, and guide_label, which suppresses horizontal ones.
func guideMask(v values.Value) ([2]bool, error) {
	var mask [2]bool
	names := []values.Value{v}
	if arr, ok := v.TryArray(); ok {
		names = arr
	}
	for _, e := range names {
		name, err := enumName(e)
		if err != nil {
			return mask, err
		}
		switch strings.TrimPrefix(name, "guide_") {
		case "baseline", "vertical":
			mask[math32.Y] = true
		case "label", "horizontal":
			mask[math32.X] = true
		default:
			return mask, fmt.Errorf("unknown guide %q", name)
		}
	}
	return mask, nil
}
