// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2PosSize returns a new [Box2] at the given position with the given size.
func B2PosSize(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// Size calculates the size of this box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Translate returns translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// ToRect returns the image.Rectangle version of this box,
// rounding the minimum down and the maximum up.
func (b Box2) ToRect() image.Rectangle {
	return image.Rect(int(Floor(b.Min.X)), int(Floor(b.Min.Y)),
		int(Ceil(b.Max.X)), int(Ceil(b.Max.Y)))
}
