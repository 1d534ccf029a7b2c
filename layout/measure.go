// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/eve/math32"
)

// Widget is a concrete widget placed by the layout.
// Neither method can fail.
type Widget interface {

	// Measure returns the extents the widget needs.
	Measure() Measurement

	// Place gives the widget its final rectangle.
	Place(p Placement)
}

// Visibler is implemented by widgets that need to know when
// their view is shown or hidden.
type Visibler interface {
	SetVisible(visible bool)
}

// Measurement is what a view needs along each dimension.
type Measurement struct {

	// Min is the smallest usable size.
	Min math32.Vector2

	// Natural is the preferred size.
	Natural math32.Vector2

	// Guides are the guide offsets from the start of the view,
	// such as a text baseline for the vertical dimension.
	Guides Guides
}

func (m Measurement) String() string {
	return fmt.Sprintf("min: %v natural: %v guides: %v %v", m.Min, m.Natural, m.Guides.X, m.Guides.Y)
}

// guide returns the first guide along the given dimension.
func (m *Measurement) guide(d math32.Dims) (float32, bool) {
	g := m.Guides.Dim(d)
	if len(g) == 0 {
		return 0, false
	}
	return g[0], true
}

// Guides are guide offsets along each dimension. Only the first
// guide of each dimension takes part in alignment.
type Guides struct {
	X []float32
	Y []float32
}

// Dim returns the guides along the given dimension.
func (g Guides) Dim(d math32.Dims) []float32 {
	if d == math32.X {
		return g.X
	}
	return g.Y
}

// SetDim sets the guides along the given dimension.
func (g *Guides) SetDim(d math32.Dims, guides []float32) {
	if d == math32.X {
		g.X = guides
	} else {
		g.Y = guides
	}
}

// IsZero returns whether there are no guides.
func (g Guides) IsZero() bool {
	return len(g.X) == 0 && len(g.Y) == 0
}

// Clone returns a copy that does not share storage.
func (g Guides) Clone() Guides {
	return Guides{X: slices.Clone(g.X), Y: slices.Clone(g.Y)}
}

// Equal returns whether the guides are the same.
func (g Guides) Equal(o Guides) bool {
	return slices.Equal(g.X, o.X) && slices.Equal(g.Y, o.Y)
}

// Placement is the result of layout for one view.
type Placement struct {

	// Box is the rectangle of the view in root coordinates.
	Box math32.Box2

	// Guides are the guide offsets from Box.Min.
	Guides Guides
}

func (p Placement) String() string {
	if p.Guides.IsZero() {
		return p.Box.String()
	}
	return fmt.Sprintf("%v guides: %v %v", p.Box, p.Guides.X, p.Guides.Y)
}

// Equal returns whether two placements are the same.
func (p Placement) Equal(o Placement) bool {
	return p.Box == o.Box && p.Guides.Equal(o.Guides)
}

// clampSize clamps negative components of an extent to zero,
// emitting a debug message when it does.
func clampSize(n *Node, what string, v math32.Vector2) math32.Vector2 {
	c, clamped := v.ClampNegative()
	if clamped {
		slog.Debug("layout: clamped negative extent to zero", "view", n.Path(), "extent", what, "value", v)
	}
	return c
}

// measure measures the view bottom up, reusing the measurements
// of views that have not changed since the last pass.
func (n *Node) measure() Measurement {
	if n.hasMeasured && !n.dirty {
		return n.measured
	}
	var m Measurement
	if n.Attr.Placement == PlaceLeaf {
		m = n.measureLeaf()
	} else {
		m = n.measureContainer()
	}
	m.Min = m.Min.Max(n.Attr.MinSize)
	m.Natural = m.Natural.Max(m.Min)
	n.measured = m
	n.hasMeasured = true
	n.dirty = false
	return m
}

func (n *Node) measureLeaf() Measurement {
	m := n.mustWidget().Measure()
	m.Min = clampSize(n, "min", m.Min)
	m.Natural = clampSize(n, "natural", m.Natural)
	m.Guides = m.Guides.Clone()
	return m
}

func (n *Node) measureContainer() Measurement {
	kids := n.visibleChildren()
	for _, kid := range kids {
		kid.measure()
	}
	var m Measurement
	main, hasMain := n.Attr.MainAxis()
	for d := math32.X; d <= math32.Y; d++ {
		if hasMain && d == main {
			spacing := n.Attr.Spacing * float32(max(len(kids)-1, 0))
			var mn, nat float32
			for _, kid := range kids {
				mn += kid.measured.Min.Dim(d)
				nat += kid.measured.Natural.Dim(d)
			}
			m.Min.SetDim(d, mn+spacing)
			m.Natural.SetDim(d, nat+spacing)
			continue
		}
		guided := n.guidedKids(kids, d)
		g := n.crossExtents(kids, guided, d, func(m *Measurement) float32 { return m.Natural.Dim(d) })
		gmin := n.crossExtents(kids, guided, d, func(m *Measurement) float32 { return m.Min.Dim(d) })
		m.Natural.SetDim(d, g.length)
		m.Min.SetDim(d, gmin.length)
		if g.guided && !n.Attr.GuideMask[d] {
			m.Guides.SetDim(d, []float32{n.Attr.Margin.Start(d) + g.poi})
		}
	}
	m.Min = clampSize(n, "min", m.Min.Add(n.Attr.Margin.Size()))
	m.Natural = clampSize(n, "natural", m.Natural.Add(n.Attr.Margin.Size()))
	return m
}

// guideGroup is the combined extent of children across one dimension.
type guideGroup struct {

	// guided is whether any child takes part in guide alignment.
	guided bool

	// poi is the point of interest: the largest guide offset.
	poi float32

	// after is the largest extent after the guide.
	after float32

	// length is the extent needed by all children: poi + after for the
	// guided children, or the largest extent of any other child if larger.
	length float32
}

// crossExtents combines child extents along a dimension where children
// share the space, lining up the first guides of the guided children.
func (n *Node) crossExtents(kids []*Node, guided []bool, d math32.Dims, extent func(m *Measurement) float32) guideGroup {
	var g guideGroup
	var plain float32
	for i, kid := range kids {
		ext := extent(&kid.measured)
		if !guided[i] {
			plain = max(plain, ext)
			continue
		}
		gd, _ := kid.measured.guide(d)
		g.guided = true
		g.poi = max(g.poi, gd)
		g.after = max(g.after, ext-gd)
	}
	g.length = max(g.poi+g.after, plain)
	return g
}
