// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eve

import (
	"fmt"
	"slices"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/layout"
)

var (
	// ErrUnknownViewKind is returned when a view names a kind
	// that is not registered.
	ErrUnknownViewKind = errors.New("unknown view kind")

	// ErrDuplicateKind is returned when a kind is registered twice.
	ErrDuplicateKind = errors.New("duplicate view kind")
)

// Factory makes the widget of a new view. The view has its
// parameters, attributes and parent set when it is called.
type Factory func(v *View) (layout.Widget, error)

// Kind describes one kind of view, such as a button or a row.
type Kind struct {

	// Name is the name used in declarations.
	Name string

	// Placement is the default placement of views of this kind.
	// [layout.PlaceLeaf] kinds cannot have children and must have a New.
	Placement layout.Placements

	// Margin is whether the default margin of the builder
	// applies to views of this kind.
	Margin bool

	// New makes the widget of a view. It is optional for containers.
	New Factory
}

// Updater is implemented by widgets that need to know when the
// parameters of their view have been re-evaluated.
type Updater interface {
	Update(v *View)
}

// Registry maps view kind names to their [Kind].
type Registry struct {
	kinds map[string]*Kind
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{kinds: map[string]*Kind{}}
}

// Register adds the given kind.
func (r *Registry) Register(k Kind) error {
	if _, has := r.kinds[k.Name]; has {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, k.Name)
	}
	if k.Placement == layout.PlaceLeaf && k.New == nil {
		return fmt.Errorf("eve: leaf view kind %q needs a widget factory", k.Name)
	}
	r.kinds[k.Name] = &k
	return nil
}

// Lookup returns the kind with the given name. The error for an
// unknown kind suggests the most similar registered one.
func (r *Registry) Lookup(name string) (*Kind, error) {
	k, ok := r.kinds[name]
	if !ok {
		ne := expr.Unresolved("view kind", name, r.Kinds())
		ne.Err = ErrUnknownViewKind
		return nil, ne
	}
	return k, nil
}

// Kinds returns the names of the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
