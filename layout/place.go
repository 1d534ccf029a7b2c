// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"slices"

	"cogentcore.org/eve/math32"
)

// childAlign returns the alignment of a child along the given
// dimension, falling back on the child alignment of this view.
func (n *Node) childAlign(kid *Node, d math32.Dims) Aligns {
	if a := kid.Attr.Align(d); a != AlignDefault {
		return a
	}
	return n.Attr.ChildAlign(d)
}

// stretches returns whether the alignment takes all of the cross space.
func stretches(a Aligns) bool {
	return a == AlignFill || a == AlignProportional
}

// guidedKids returns, for each child, whether it takes part in guide
// alignment along the cross dimension d: it has a guide there and
// does not stretch.
func (n *Node) guidedKids(kids []*Node, d math32.Dims) []bool {
	guided := make([]bool, len(kids))
	for i, kid := range kids {
		_, ok := kid.measured.guide(d)
		guided[i] = ok && !stretches(n.childAlign(kid, d))
	}
	return guided
}

// place places the view in the given box, and its children within it.
func (n *Node) place(box math32.Box2) {
	size := clampSize(n, "placed", box.Size())
	box.Max = box.Min.Add(size)
	n.placed = Placement{Box: box, Guides: n.measured.Guides.Clone()}
	if n.Attr.Placement == PlaceLeaf {
		return
	}
	kids := n.visibleChildren()
	if len(kids) == 0 {
		return
	}
	inner := math32.B2PosSize(box.Min.Add(n.Attr.Margin.Pos()), clampSize(n, "content", size.Sub(n.Attr.Margin.Size())))
	boxes := make([]math32.Box2, len(kids))
	main, hasMain := n.Attr.MainAxis()
	for d := math32.X; d <= math32.Y; d++ {
		if hasMain && d == main {
			n.placeMain(kids, inner, d, boxes)
		} else {
			n.placeCross(kids, inner, d, boxes)
		}
	}
	for i, kid := range kids {
		kid.place(boxes[i])
	}
}

// placeMain sizes and positions the children along the main axis.
// Extra space goes to [AlignFill] children equally, or else to
// [AlignProportional] children by natural size, or else before the
// first child aligned right, or half of it before the first child
// aligned center. Missing space is taken from the children in
// proportion to how far they are above their minimum size.
func (n *Node) placeMain(kids []*Node, inner math32.Box2, d math32.Dims, boxes []math32.Box2) {
	spacing := n.Attr.Spacing * float32(len(kids)-1)
	avail := inner.Size().Dim(d) - spacing
	sizes := make([]float32, len(kids))
	aligns := make([]Aligns, len(kids))
	var total float32
	var fill, prop []int
	for i, kid := range kids {
		sizes[i] = kid.measured.Natural.Dim(d)
		total += sizes[i]
		aligns[i] = n.childAlign(kid, d)
		switch aligns[i] {
		case AlignFill:
			fill = append(fill, i)
		case AlignProportional:
			prop = append(prop, i)
		}
	}
	extra := avail - total
	if extra < 0 {
		n.shrink(kids, sizes, d, -extra)
		extra = 0
	}
	switch {
	case extra == 0:
	case len(fill) > 0:
		share := extra / float32(len(fill))
		for _, i := range fill {
			sizes[i] += share
		}
		extra = 0
	case len(prop) > 0:
		var ptotal float32
		for _, i := range prop {
			ptotal += sizes[i]
		}
		for _, i := range prop {
			if ptotal > 0 {
				sizes[i] += extra * sizes[i] / ptotal
			} else {
				sizes[i] += extra / float32(len(prop))
			}
		}
		extra = 0
	}
	gapAt, gap := -1, float32(0)
	if extra > 0 {
		if i := slices.Index(aligns, AlignRight); i >= 0 {
			gapAt, gap = i, extra
		} else if i := slices.Index(aligns, AlignCenter); i >= 0 {
			gapAt, gap = i, extra/2
		}
	}
	pos := inner.Min.Dim(d)
	for i := range kids {
		if i == gapAt {
			pos += gap
		}
		boxes[i].Min.SetDim(d, pos)
		boxes[i].Max.SetDim(d, pos+sizes[i])
		pos += sizes[i] + n.Attr.Spacing
	}
}

// shrink takes up to the given deficit from the sizes, in proportion
// to how far each is above its minimum. Sizes never go below minimum.
func (n *Node) shrink(kids []*Node, sizes []float32, d math32.Dims, deficit float32) {
	var slack float32
	for i, kid := range kids {
		slack += max(sizes[i]-kid.measured.Min.Dim(d), 0)
	}
	if slack <= 0 {
		return
	}
	f := min(deficit/slack, 1)
	for i, kid := range kids {
		sizes[i] -= max(sizes[i]-kid.measured.Min.Dim(d), 0) * f
	}
}

// placeCross sizes and positions the children across the given
// dimension, where they share the space. Children with a guide are
// positioned so that their guides line up, and the group is aligned
// by the child alignment of this view. When the group does not fit,
// the extents after the guide shrink toward the minimum of each child.
func (n *Node) placeCross(kids []*Node, inner math32.Box2, d math32.Dims, boxes []math32.Box2) {
	avail := inner.Size().Dim(d)
	start := inner.Min.Dim(d)
	guided := n.guidedKids(kids, d)
	g := n.crossExtents(kids, guided, d, func(m *Measurement) float32 { return m.Natural.Dim(d) })
	sizes := make([]float32, len(kids))
	var after float32
	for i, kid := range kids {
		if !guided[i] {
			continue
		}
		gd, _ := kid.measured.guide(d)
		sizes[i] = min(kid.measured.Natural.Dim(d), max(gd+avail-g.poi, kid.measured.Min.Dim(d)))
		after = max(after, sizes[i]-gd)
	}
	groupStart := alignedStart(n.Attr.ChildAlign(d), start, avail, g.poi+after)
	for i, kid := range kids {
		a := n.childAlign(kid, d)
		nat := kid.measured.Natural.Dim(d)
		var pos, size float32
		switch {
		case stretches(a):
			pos, size = start, avail
		case guided[i]:
			gd, _ := kid.measured.guide(d)
			pos, size = groupStart+g.poi-gd, sizes[i]
		default:
			size = min(nat, max(kid.measured.Min.Dim(d), avail))
			pos = alignedStart(a, start, avail, size)
		}
		boxes[i].Min.SetDim(d, pos)
		boxes[i].Max.SetDim(d, pos+size)
	}
	if g.guided && !n.Attr.GuideMask[d] {
		n.placed.Guides.SetDim(d, []float32{groupStart + g.poi - n.placed.Box.Min.Dim(d)})
	}
}

// alignedStart returns the start of an extent of the given size
// aligned within the available space.
func alignedStart(a Aligns, start, avail, size float32) float32 {
	switch a {
	case AlignRight:
		return start + avail - size
	case AlignCenter:
		return start + (avail-size)/2
	}
	return start
}
