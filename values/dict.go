// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"slices"
	"sort"

	"cogentcore.org/eve/symbol"
)

// Dictionary is a mapping from symbols to values, kept sorted by
// symbol name so that iteration order is deterministic. The zero
// value is an empty dictionary ready to use. A nil *Dictionary acts
// as an empty read-only dictionary.
type Dictionary struct {
	// keys are sorted by name; vals is parallel to keys.
	keys []symbol.Symbol
	vals []Value
}

// NewDict returns a new empty [Dictionary].
func NewDict() *Dictionary {
	return &Dictionary{}
}

// search returns the index at which key is or would be.
func (d *Dictionary) search(key symbol.Symbol) (int, bool) {
	name := key.Name()
	i := sort.Search(len(d.keys), func(i int) bool {
		return d.keys[i].Name() >= name
	})
	return i, i < len(d.keys) && d.keys[i] == key
}

// Set sets the given key to the given value, replacing any
// existing value. It returns the dictionary for chaining.
func (d *Dictionary) Set(key symbol.Symbol, val Value) *Dictionary {
	i, ok := d.search(key)
	if ok {
		d.vals[i] = val
		return d
	}
	d.keys = slices.Insert(d.keys, i, key)
	d.vals = slices.Insert(d.vals, i, val)
	return d
}

// At returns the value for the given key, and whether it is present.
func (d *Dictionary) At(key symbol.Symbol) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	i, ok := d.search(key)
	if !ok {
		return Value{}, false
	}
	return d.vals[i], true
}

// Has returns whether the given key is present.
func (d *Dictionary) Has(key symbol.Symbol) bool {
	_, ok := d.At(key)
	return ok
}

// Delete removes the given key, returning false if it was not present.
func (d *Dictionary) Delete(key symbol.Symbol) bool {
	if d == nil {
		return false
	}
	i, ok := d.search(key)
	if !ok {
		return false
	}
	d.keys = slices.Delete(d.keys, i, i+1)
	d.vals = slices.Delete(d.vals, i, i+1)
	return true
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns a copy of the sorted keys.
func (d *Dictionary) Keys() []symbol.Symbol {
	if d == nil {
		return nil
	}
	return slices.Clone(d.keys)
}

// Range calls fun for each entry in key order, stopping if fun returns false.
func (d *Dictionary) Range(fun func(key symbol.Symbol, val Value) bool) {
	if d == nil {
		return
	}
	for i, k := range d.keys {
		if !fun(k, d.vals[i]) {
			return
		}
	}
}

// Clone returns a shallow copy of the dictionary. Nested arrays and
// dictionaries are immutable inside their values, so this is sufficient
// for value semantics.
func (d *Dictionary) Clone() *Dictionary {
	if d == nil {
		return &Dictionary{}
	}
	return &Dictionary{keys: slices.Clone(d.keys), vals: slices.Clone(d.vals)}
}

// Merge sets every entry of other into this dictionary.
func (d *Dictionary) Merge(other *Dictionary) *Dictionary {
	other.Range(func(k symbol.Symbol, v Value) bool {
		d.Set(k, v)
		return true
	})
	return d
}
