// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout provides a one-way layout solver that places a tree of
// rows, columns and overlays of widgets, honoring alignment, spacing,
// margins and guides.
//
// A solve runs three passes: measure, bottom up, asks each widget what
// it needs and combines the needs of children; place, top down, divides
// the space of each view among its children; and apply pushes the
// placements that changed to the widgets.
package layout

import (
	"log/slog"

	"github.com/jinzhu/copier"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/math32"
)

// Solver lays out a tree of views. Changes are queued with
// [Solver.Invalidate], [Solver.SetVisible] and [Solver.Resize] and
// applied together by the next [Solver.Tick], so that any number of
// changes in one event handling step cost one layout pass.
// A Solver is not safe for concurrent use.
type Solver struct {

	// Root is the root view.
	Root *Node

	// Size is the size the root is placed at. Components smaller
	// than the measured minimum of the root are raised to it, and
	// zero components use the natural size.
	Size math32.Vector2

	visibility []visibilityChange
	pending    bool
	solves     int
}

type visibilityChange struct {
	node    *Node
	visible bool
}

// NewSolver returns a new [Solver] for the given root view.
func NewSolver(root *Node) *Solver {
	return &Solver{Root: root}
}

// Solves returns the number of layout passes run so far.
func (s *Solver) Solves() int {
	return s.solves
}

// Pending returns whether there are queued changes.
func (s *Solver) Pending() bool {
	return s.pending
}

// Invalidate queues the view to be measured again,
// such as after its attributes or widget content change.
func (s *Solver) Invalidate(n *Node) {
	n.markDirty()
	s.pending = true
}

// SetVisible queues showing or hiding the view.
func (s *Solver) SetVisible(n *Node, visible bool) {
	s.visibility = append(s.visibility, visibilityChange{n, visible})
	s.pending = true
}

// Resize queues placing the root at the given size.
func (s *Solver) Resize(size math32.Vector2) {
	s.Size = size
	s.pending = true
}

// Tick applies the queued changes with a single layout pass,
// and returns whether there were any.
func (s *Solver) Tick() bool {
	if !s.pending {
		return false
	}
	vis := s.visibility
	s.visibility = nil
	for _, vc := range vis {
		if vc.node.Hidden == !vc.visible {
			continue
		}
		vc.node.Hidden = !vc.visible
		if vc.node.Parent != nil {
			vc.node.Parent.markDirty()
		}
		notifyVisible(vc.node, vc.visible)
	}
	s.Solve()
	return true
}

// notifyVisible tells the widgets in the subtree whose visibility
// changed, skipping subtrees that stay hidden.
func notifyVisible(n *Node, visible bool) {
	n.WalkDown(func(k *Node) bool {
		if k != n && k.Hidden {
			return false
		}
		if v, ok := k.Widget.(Visibler); ok {
			v.SetVisible(visible)
		}
		if !visible {
			k.hasApplied = false
		}
		return true
	})
}

// Solve runs the measure, place and apply passes, clearing any queued
// re-solve, and returns the number of widgets that were given a new
// placement. Solving never fails: inconsistent extents are clamped to zero.
func (s *Solver) Solve() int {
	s.pending = false
	s.solves++
	root := s.Root
	if root.Hidden {
		return 0
	}
	m := root.measure()
	size := s.Size
	for d := math32.X; d <= math32.Y; d++ {
		if size.Dim(d) <= 0 {
			size.SetDim(d, m.Natural.Dim(d))
		}
	}
	size = size.Max(m.Min)
	root.place(math32.B2PosSize(math32.Vector2{}, size))
	n := apply(root)
	slog.Debug("layout: solved", "root", root.Name, "size", size, "placed", n)
	return n
}

// apply pushes the placements that changed to the widgets
// of the visible views.
func apply(root *Node) int {
	count := 0
	root.WalkDown(func(n *Node) bool {
		if n.Hidden {
			return false
		}
		if n.Widget == nil {
			return true
		}
		if n.hasApplied && n.applied.Equal(n.placed) {
			return true
		}
		n.applied = clonePlacement(n.placed)
		n.hasApplied = true
		n.Widget.Place(clonePlacement(n.placed))
		count++
		return true
	})
	return count
}

func clonePlacement(p Placement) Placement {
	var c Placement
	errors.Log(copier.CopyWithOption(&c, &p, copier.Option{DeepCopy: true}))
	return c
}

// NodePlacement is the placement of one view, identified by its path.
type NodePlacement struct {
	Path      string
	Placement Placement
}

// Placements returns a copy of the placements of all visible views
// in depth first order, as of the last solve.
func (s *Solver) Placements() []NodePlacement {
	var ps []NodePlacement
	s.Root.WalkDown(func(n *Node) bool {
		if n.Hidden {
			return false
		}
		ps = append(ps, NodePlacement{Path: n.Path(), Placement: clonePlacement(n.placed)})
		return true
	})
	return ps
}
