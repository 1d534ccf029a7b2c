// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/symbol"
)

func sampleValues(tab *symbol.Table) []Value {
	d := NewDict().Set(tab.Intern("w"), MakeNumber(10)).Set(tab.Intern("name"), MakeString("ok"))
	return []Value{
		{},
		MakeBool(true),
		MakeBool(false),
		MakeNumber(3.5),
		MakeNumber(-2),
		MakeString("hello"),
		MakeString("true"),
		MakeSymbol(tab.Intern("ok")),
		MakeArray(MakeNumber(1), MakeString("a"), MakeArray(MakeBool(true))),
		MakeDict(d),
	}
}

func TestKinds(t *testing.T) {
	tab := symbol.NewTable()
	want := []Kinds{Empty, Bool, Bool, Number, Number, String, String, Symbol, Array, Dict}
	for i, v := range sampleValues(tab) {
		assert.Equal(t, want[i], v.Kind(), v.String())
	}
	assert.Equal(t, "dictionary", Dict.String())
	assert.Equal(t, "invalid", Kinds(42).String())
}

func TestTryAndAs(t *testing.T) {
	n := MakeNumber(4)
	f, ok := n.TryNumber()
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)
	_, ok = n.TryString()
	assert.False(t, ok)

	_, err := n.AsString()
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.ErrorContains(t, err, "expected string, got number")

	b, err := MakeBool(true).AsBool()
	assert.NoError(t, err)
	assert.True(t, b)
}

func TestValueSemantics(t *testing.T) {
	tab := symbol.NewTable()
	elems := []Value{MakeNumber(1), MakeNumber(2)}
	arr := MakeArray(elems...)
	elems[0] = MakeNumber(99)
	got, _ := arr.TryArray()
	assert.Equal(t, 1.0, errors.Must1(got[0].AsNumber()))

	got[1] = MakeNumber(42)
	again, _ := arr.TryArray()
	assert.True(t, Equal(MakeNumber(2), again[1]))

	d := NewDict().Set(tab.Intern("a"), MakeNumber(1))
	dv := MakeDict(d)
	d.Set(tab.Intern("a"), MakeNumber(2))
	a, ok := dv.Field(tab.Intern("a"))
	assert.True(t, ok)
	assert.True(t, Equal(MakeNumber(1), a))
}

func TestEqual(t *testing.T) {
	tab := symbol.NewTable()
	vs := sampleValues(tab)
	other := sampleValues(tab)
	for i := range vs {
		for j := range other {
			assert.Equal(t, i == j, Equal(vs[i], other[j]), "%v vs %v", vs[i], other[j])
		}
	}
	assert.False(t, Equal(MakeNumber(1), MakeBool(true)))
	assert.True(t, Equal(MakeDict(nil), MakeDict(NewDict())))
}

func TestCompare(t *testing.T) {
	tab := symbol.NewTable()
	c, err := Compare(MakeNumber(1), MakeNumber(2))
	assert.NoError(t, err)
	assert.Equal(t, -1, c)
	c, err = Compare(MakeString("b"), MakeString("a"))
	assert.NoError(t, err)
	assert.Equal(t, 1, c)
	c, err = Compare(MakeSymbol(tab.Intern("a")), MakeSymbol(tab.Intern("a")))
	assert.NoError(t, err)
	assert.Equal(t, 0, c)
	_, err = Compare(MakeNumber(1), MakeString("1"))
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	_, err = Compare(MakeArray(), MakeArray())
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestString(t *testing.T) {
	tab := symbol.NewTable()
	vs := sampleValues(tab)
	want := []string{
		"empty", "true", "false", "3.5", "-2", `"hello"`, `"true"`, "@ok",
		`[1, "a", [true]]`, `{name: "ok", w: 10}`,
	}
	for i, v := range vs {
		assert.Equal(t, want[i], v.String())
	}
	assert.Equal(t, `"a\r\n\x01\x7f\xff"`, MakeString("a\r\n\x01\x7f\xff").String())
	assert.Equal(t, "\"\u00a0é\"", MakeString("\u00a0é").String())
}

func TestDictionary(t *testing.T) {
	tab := symbol.NewTable()
	d := NewDict()
	for _, k := range []string{"c", "a", "b"} {
		d.Set(tab.Intern(k), MakeString(k))
	}
	var names []string
	d.Range(func(k symbol.Symbol, v Value) bool {
		names = append(names, k.Name())
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.True(t, d.Has(tab.Intern("b")))
	assert.True(t, d.Delete(tab.Intern("b")))
	assert.False(t, d.Delete(tab.Intern("b")))
	assert.Equal(t, 2, d.Len())

	var nilDict *Dictionary
	assert.Equal(t, 0, nilDict.Len())
	_, ok := nilDict.At(tab.Intern("a"))
	assert.False(t, ok)
	assert.Equal(t, 3, d.Merge(NewDict().Set(tab.Intern("z"), MakeNumber(1))).Len())
}

func TestYAMLRoundTrip(t *testing.T) {
	tab := symbol.NewTable()
	for _, v := range sampleValues(tab) {
		data, err := MarshalYAML(v)
		require.NoError(t, err)
		got, err := UnmarshalYAML(data, tab)
		require.NoError(t, err, string(data))
		assert.True(t, Equal(v, got), "%v != %v\n%s", v, got, data)
	}
}

func TestYAMLSymbolTag(t *testing.T) {
	tab := symbol.NewTable()
	v, err := UnmarshalYAML([]byte("a: !sym ok\nb: ok\n"), tab)
	require.NoError(t, err)
	a, _ := v.Field(tab.Intern("a"))
	b, _ := v.Field(tab.Intern("b"))
	assert.Equal(t, Symbol, a.Kind())
	assert.Equal(t, String, b.Kind())
}

func TestAny(t *testing.T) {
	tab := symbol.NewTable()
	plain := map[string]any{
		"flag":  true,
		"n":     int64(3),
		"list":  []any{1.5, "x"},
		"inner": map[string]any{"k": nil},
	}
	v, err := FromAny(plain, tab)
	require.NoError(t, err)
	assert.Equal(t, `{flag: true, inner: {k: empty}, list: [1.5, "x"], n: 3}`, v.String())
	back := v.Any().(map[string]any)
	assert.Equal(t, 3.0, back["n"])
	assert.Equal(t, []any{1.5, "x"}, back["list"])

	_, err = FromAny(struct{}{}, tab)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}
