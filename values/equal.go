// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"cmp"
	"fmt"

	"cogentcore.org/eve/symbol"
)

// Equal returns whether two values are structurally equal:
// the kinds must match, numbers compare by value, and arrays
// and dictionaries compare element-wise.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Empty:
		return true
	case Bool, Number:
		return a.num == b.num
	case String:
		return a.str == b.str
	case Symbol:
		return a.sym == b.sym
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Dict:
		return EqualDicts(a.dict, b.dict)
	}
	return false
}

// EqualDicts returns whether two dictionaries have the same keys
// with structurally equal values.
func EqualDicts(a, b *Dictionary) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.keys[i] != b.keys[i] || !Equal(a.vals[i], b.vals[i]) {
			return false
		}
	}
	return true
}

// Compare orders two values of the same kind: numbers numerically,
// strings and symbols lexicographically, and false before true.
// Other combinations return an error wrapping [ErrTypeMismatch].
func Compare(a, b Value) (int, error) {
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: cannot compare %v with %v", ErrTypeMismatch, a.kind, b.kind)
	}
	switch a.kind {
	case Bool, Number:
		return cmp.Compare(a.num, b.num), nil
	case String:
		return cmp.Compare(a.str, b.str), nil
	case Symbol:
		return symbol.Compare(a.sym, b.sym), nil
	}
	return 0, fmt.Errorf("%w: %v values are not ordered", ErrTypeMismatch, a.kind)
}
