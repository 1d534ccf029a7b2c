// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

// Kinds is the closed set of value kinds.
type Kinds int32

const (
	// Empty is the kind of the zero [Value], which represents no value.
	Empty Kinds = iota

	// Bool is a boolean value.
	Bool

	// Number is a float64 value.
	Number

	// String is a string value.
	String

	// Symbol is an interned name, written @name.
	Symbol

	// Array is an ordered list of values.
	Array

	// Dict is a mapping from symbols to values.
	Dict
)

var kindNames = [...]string{"empty", "bool", "number", "string", "symbol", "array", "dictionary"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}
