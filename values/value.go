// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package values provides [Value], the tagged union used for every
// cell value and expression result, and [Dictionary], its mapping type.
//
// Values have value semantics: arrays and dictionaries are copied when
// they go into a Value and when they come out of one, so a Value can
// never be changed through an alias.
package values

import (
	"fmt"
	"slices"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/symbol"
)

// ErrTypeMismatch is returned when a value is read as a kind it does not hold.
var ErrTypeMismatch = errors.New("type mismatch")

// Value is an immutable tagged union over the [Kinds].
// The zero value is the [Empty] value.
type Value struct {
	kind Kinds
	num  float64
	str  string
	sym  symbol.Symbol
	arr  []Value
	dict *Dictionary
}

// MakeBool returns a [Bool] value.
func MakeBool(b bool) Value {
	v := Value{kind: Bool}
	if b {
		v.num = 1
	}
	return v
}

// MakeNumber returns a [Number] value.
func MakeNumber(n float64) Value {
	return Value{kind: Number, num: n}
}

// MakeString returns a [String] value.
func MakeString(s string) Value {
	return Value{kind: String, str: s}
}

// MakeSymbol returns a [Symbol] value.
func MakeSymbol(s symbol.Symbol) Value {
	return Value{kind: Symbol, sym: s}
}

// MakeArray returns an [Array] value holding a copy of the given values.
func MakeArray(vs ...Value) Value {
	return Value{kind: Array, arr: slices.Clone(vs)}
}

// MakeDict returns a [Dict] value holding a copy of the given dictionary.
// A nil dictionary gives an empty one.
func MakeDict(d *Dictionary) Value {
	return Value{kind: Dict, dict: d.Clone()}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kinds {
	return v.kind
}

// IsEmpty returns whether this is the [Empty] value.
func (v Value) IsEmpty() bool {
	return v.kind == Empty
}

// TryBool returns the boolean and true if the value is a [Bool].
func (v Value) TryBool() (bool, bool) {
	return v.num != 0, v.kind == Bool
}

// TryNumber returns the number and true if the value is a [Number].
func (v Value) TryNumber() (float64, bool) {
	return v.num, v.kind == Number
}

// TryString returns the string and true if the value is a [String].
func (v Value) TryString() (string, bool) {
	return v.str, v.kind == String
}

// TrySymbol returns the symbol and true if the value is a [Symbol].
func (v Value) TrySymbol() (symbol.Symbol, bool) {
	return v.sym, v.kind == Symbol
}

// TryArray returns a copy of the elements and true if the value is an [Array].
func (v Value) TryArray() ([]Value, bool) {
	if v.kind != Array {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// TryDict returns a copy of the dictionary and true if the value is a [Dict].
func (v Value) TryDict() (*Dictionary, bool) {
	if v.kind != Dict {
		return nil, false
	}
	return v.dict.Clone(), true
}

func (v Value) mismatch(want Kinds) error {
	return fmt.Errorf("%w: expected %v, got %v", ErrTypeMismatch, want, v.kind)
}

// AsBool returns the boolean, or an error wrapping [ErrTypeMismatch].
func (v Value) AsBool() (bool, error) {
	b, ok := v.TryBool()
	if !ok {
		return false, v.mismatch(Bool)
	}
	return b, nil
}

// AsNumber returns the number, or an error wrapping [ErrTypeMismatch].
func (v Value) AsNumber() (float64, error) {
	n, ok := v.TryNumber()
	if !ok {
		return 0, v.mismatch(Number)
	}
	return n, nil
}

// AsString returns the string, or an error wrapping [ErrTypeMismatch].
func (v Value) AsString() (string, error) {
	s, ok := v.TryString()
	if !ok {
		return "", v.mismatch(String)
	}
	return s, nil
}

// AsSymbol returns the symbol, or an error wrapping [ErrTypeMismatch].
func (v Value) AsSymbol() (symbol.Symbol, error) {
	s, ok := v.TrySymbol()
	if !ok {
		return symbol.Symbol{}, v.mismatch(Symbol)
	}
	return s, nil
}

// AsArray returns a copy of the elements, or an error wrapping [ErrTypeMismatch].
func (v Value) AsArray() ([]Value, error) {
	a, ok := v.TryArray()
	if !ok {
		return nil, v.mismatch(Array)
	}
	return a, nil
}

// AsDict returns a copy of the dictionary, or an error wrapping [ErrTypeMismatch].
func (v Value) AsDict() (*Dictionary, error) {
	d, ok := v.TryDict()
	if !ok {
		return nil, v.mismatch(Dict)
	}
	return d, nil
}

// Len returns the number of elements of an array or dictionary,
// the byte length of a string, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Dict:
		return v.dict.Len()
	case String:
		return len(v.str)
	}
	return 0
}

// Index returns the i'th element of an array without copying the array.
// It returns false if the value is not an array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Field returns the dictionary entry with the given key without
// copying the dictionary. It returns false if the value is not a
// dictionary or has no such key.
func (v Value) Field(key symbol.Symbol) (Value, bool) {
	if v.kind != Dict {
		return Value{}, false
	}
	return v.dict.At(key)
}
