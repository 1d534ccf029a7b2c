// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol interns strings into unique, comparable handles
// that are used as the names of cells, views and parameters.
//
// A [Table] is an explicit interning service: construct one at startup
// and pass it to every consumer that needs to create symbols. Symbols
// from different tables are never equal, even for the same text.
package symbol

import (
	"strings"
	"sync"
)

// entry is the interned storage for one symbol. Entries are never freed.
type entry struct {
	name string
}

// Symbol is an interned name. Two symbols from the same [Table] are
// equal (==) if and only if their names are equal. The zero value is
// the invalid symbol, which has an empty name.
type Symbol struct {
	e *entry
}

// Name returns the text of the symbol.
func (s Symbol) Name() string {
	if s.e == nil {
		return ""
	}
	return s.e.name
}

// IsValid returns whether the symbol was produced by a [Table].
func (s Symbol) IsValid() bool {
	return s.e != nil
}

func (s Symbol) String() string {
	return s.Name()
}

// Compare orders symbols lexicographically by their names.
// It is used for deterministic iteration only.
func Compare(a, b Symbol) int {
	if a == b {
		return 0
	}
	return strings.Compare(a.Name(), b.Name())
}

// Table is a set of interned symbols. It is safe for concurrent use.
type Table struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewTable returns a new empty [Table].
func NewTable() *Table {
	return &Table{entries: make(map[string]*entry)}
}

// Intern returns the canonical symbol for the given text,
// creating it on first use.
func (t *Table) Intern(text string) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[text]; ok {
		return Symbol{e}
	}
	e := &entry{name: strings.Clone(text)}
	t.entries[text] = e
	return Symbol{e}
}

// Lookup returns the symbol for the given text if it has
// already been interned, without creating it.
func (t *Table) Lookup(text string) (Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[text]
	return Symbol{e}, ok
}

// Len returns the number of interned symbols.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
