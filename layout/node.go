// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"strings"

	"cogentcore.org/eve/math32"
)

// Attributes are the layout attributes of a view.
type Attributes struct {

	// Placement is how the view arranges its children.
	Placement Placements

	// Horizontal and Vertical are how the view is aligned within
	// the space its parent gives it.
	Horizontal Aligns
	Vertical   Aligns

	// ChildHorizontal and ChildVertical are the alignments used by
	// children whose own alignment is [AlignDefault].
	ChildHorizontal Aligns
	ChildVertical   Aligns

	// Spacing is the space between adjacent children along the main axis.
	Spacing float32

	// Margin is the space between the edges of a container and its children.
	// It is ignored for leaf views.
	Margin math32.Sides

	// MinSize is a minimum size for the view, applied on top of
	// what it measures. Zero components do not constrain.
	MinSize math32.Vector2

	// GuideMask suppresses, per dimension, the guides that a
	// container passes on to its parent.
	GuideMask [2]bool
}

// Align returns the alignment of the view along the given dimension.
func (a *Attributes) Align(d math32.Dims) Aligns {
	if d == math32.X {
		return a.Horizontal
	}
	return a.Vertical
}

// ChildAlign returns the default child alignment along the given dimension.
func (a *Attributes) ChildAlign(d math32.Dims) Aligns {
	if d == math32.X {
		return a.ChildHorizontal
	}
	return a.ChildVertical
}

// MainAxis returns the dimension children are arranged along,
// and false for leaves and overlays.
func (a *Attributes) MainAxis() (math32.Dims, bool) {
	switch a.Placement {
	case PlaceRow:
		return math32.X, true
	case PlaceColumn:
		return math32.Y, true
	}
	return math32.X, false
}

// Node is one view in the layout tree.
type Node struct {

	// Name is the name of the view, unique among its siblings.
	Name string

	// Attr are the layout attributes.
	Attr Attributes

	// Widget is the concrete widget of a leaf view. It is optional for
	// containers. A leaf without a widget is a usage error.
	Widget Widget

	// Parent is the containing view, nil for the root.
	Parent *Node

	// Children are the contained views, in order.
	Children []*Node

	// Hidden excludes the view and its subtree from layout.
	// Use [Solver.SetVisible] to change it on a solved tree.
	Hidden bool

	measured    Measurement
	hasMeasured bool
	dirty       bool
	placed      Placement
	applied     Placement
	hasApplied  bool
}

// NewNode returns a new view with the given name, attributes and widget.
func NewNode(name string, attr Attributes, w Widget) *Node {
	return &Node{Name: name, Attr: attr, Widget: w, dirty: true}
}

// AddChild adds the given view as the last child and returns it.
func (n *Node) AddChild(kid *Node) *Node {
	kid.Parent = n
	n.Children = append(n.Children, kid)
	n.markDirty()
	return kid
}

// IsLeaf returns whether the view has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Visible returns whether the view and all of its parents are not hidden.
func (n *Node) Visible() bool {
	for p := n; p != nil; p = p.Parent {
		if p.Hidden {
			return false
		}
	}
	return true
}

// Path returns the names of the views from the root to this one,
// separated by slashes.
func (n *Node) Path() string {
	if n.Parent == nil {
		return "/" + n.Name
	}
	return n.Parent.Path() + "/" + n.Name
}

func (n *Node) String() string {
	return n.Path()
}

// WalkDown calls fun on the view and then its descendants in depth
// first order. Returning false from fun skips the children of that view.
func (n *Node) WalkDown(fun func(n *Node) bool) {
	if !fun(n) {
		return
	}
	for _, kid := range n.Children {
		kid.WalkDown(fun)
	}
}

// FindPath returns the descendant at the given path relative
// to this view, such as "row/ok".
func (n *Node) FindPath(path string) *Node {
	cur := n
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		var next *Node
		for _, kid := range cur.Children {
			if kid.Name == name {
				next = kid
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Measured returns the most recent measurement of the view.
func (n *Node) Measured() Measurement {
	return n.measured
}

// Placed returns the most recent placement of the view.
func (n *Node) Placed() Placement {
	return n.placed
}

// markDirty marks the view and its parents as needing measurement.
func (n *Node) markDirty() {
	for p := n; p != nil; p = p.Parent {
		p.dirty = true
	}
}

// visibleChildren returns the children that are not hidden.
func (n *Node) visibleChildren() []*Node {
	kids := make([]*Node, 0, len(n.Children))
	for _, kid := range n.Children {
		if !kid.Hidden {
			kids = append(kids, kid)
		}
	}
	return kids
}

func (n *Node) mustWidget() Widget {
	if n.Widget == nil {
		panic(fmt.Sprintf("layout: leaf view %v has no widget", n))
	}
	return n.Widget
}
