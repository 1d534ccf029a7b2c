// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Sides contains values for each side of a box:
// Top, Right, Bottom, and Left, in CSS order.
type Sides struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// NewSides returns new [Sides] with the given values, using the
// CSS shorthand convention: one value sets all sides, two values
// set vertical and horizontal, and four values set top, right,
// bottom, and left. Any other count yields zero sides.
func NewSides(vals ...float32) Sides {
	switch len(vals) {
	case 1:
		return Sides{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return Sides{vals[0], vals[1], vals[0], vals[1]}
	case 4:
		return Sides{vals[0], vals[1], vals[2], vals[3]}
	}
	return Sides{}
}

func (s Sides) String() string {
	return fmt.Sprintf("(%g %g %g %g)", s.Top, s.Right, s.Bottom, s.Left)
}

// Pos returns the top-left offset of the sides.
func (s Sides) Pos() Vector2 {
	return Vec2(s.Left, s.Top)
}

// Size returns the total size the sides take up,
// left plus right and top plus bottom.
func (s Sides) Size() Vector2 {
	return Vec2(s.Left+s.Right, s.Top+s.Bottom)
}

// Start returns the leading side along the given dimension.
func (s Sides) Start(d Dims) float32 {
	if d == X {
		return s.Left
	}
	return s.Top
}
