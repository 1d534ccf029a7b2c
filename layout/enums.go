// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "strings"

// Placements are the ways a view arranges its children.
type Placements int32

const (
	// PlaceLeaf is a view without children that holds a widget.
	PlaceLeaf Placements = iota

	// PlaceRow arranges children left to right.
	PlaceRow

	// PlaceColumn arranges children top to bottom.
	PlaceColumn

	// PlaceOverlay stacks children on top of each other.
	PlaceOverlay
)

var placementNames = [...]string{"leaf", "row", "column", "overlay"}

func (p Placements) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return "invalid"
	}
	return placementNames[p]
}

// Aligns are the ways a view is aligned within the space its
// parent gives it along one dimension.
type Aligns int32

const (
	// AlignDefault uses the child alignment of the parent.
	AlignDefault Aligns = iota

	// AlignLeft aligns to the start: the left, or the top.
	AlignLeft

	// AlignRight aligns to the end: the right, or the bottom.
	AlignRight

	// AlignCenter centers.
	AlignCenter

	// AlignProportional grows along the main axis in proportion to
	// the natural size, when no sibling is [AlignFill]. On the cross
	// axis it is the same as [AlignFill].
	AlignProportional

	// AlignFill takes an equal share of the extra space along the
	// main axis, and all of the space on the cross axis.
	AlignFill
)

const (
	// AlignTop is [AlignLeft] for the vertical dimension.
	AlignTop = AlignLeft

	// AlignBottom is [AlignRight] for the vertical dimension.
	AlignBottom = AlignRight
)

var alignNames = [...]string{"default", "left", "right", "center", "proportional", "fill"}

func (a Aligns) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "invalid"
	}
	return alignNames[a]
}

// AlignFromName returns the alignment with the given name, which may
// carry an "align_" prefix as in declaration text. "top" and "bottom"
// are accepted for [AlignTop] and [AlignBottom].
func AlignFromName(name string) (Aligns, bool) {
	name = strings.TrimPrefix(name, "align_")
	switch name {
	case "top":
		return AlignTop, true
	case "bottom":
		return AlignBottom, true
	}
	for i, n := range alignNames {
		if n == name {
			return Aligns(i), true
		}
	}
	return AlignDefault, false
}

// PlacementFromName returns the placement with the given name, which
// may carry a "place_" prefix as in declaration text.
func PlacementFromName(name string) (Placements, bool) {
	name = strings.TrimPrefix(name, "place_")
	for i, n := range placementNames {
		if n == name {
			return Placements(i), true
		}
	}
	return PlaceLeaf, false
}
