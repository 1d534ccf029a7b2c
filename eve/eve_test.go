// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eve

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/layout"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

type box struct {
	w, h    float32
	placed  []layout.Placement
	updates int
}

func newBox(v *View) (layout.Widget, error) {
	b := &box{}
	b.set(v)
	return b, nil
}

func (b *box) set(v *View) {
	b.w = float32(v.ParamNumber("w", 0))
	b.h = float32(v.ParamNumber("h", 0))
}

func (b *box) Update(v *View) {
	b.set(v)
	b.updates++
}

func (b *box) Measure() layout.Measurement {
	sz := math32.Vec2(b.w, b.h)
	return layout.Measurement{Min: sz, Natural: sz}
}

func (b *box) Place(p layout.Placement) { b.placed = append(b.placed, p) }

func (b *box) last() math32.Box2 {
	if len(b.placed) == 0 {
		return math32.Box2{}
	}
	return b.placed[len(b.placed)-1].Box
}

func testRegistry(t *testing.T) *Registry {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Kind{Name: "dialog", Placement: layout.PlaceColumn, Margin: true}))
	require.NoError(t, reg.Register(Kind{Name: "row", Placement: layout.PlaceRow}))
	require.NoError(t, reg.Register(Kind{Name: "column", Placement: layout.PlaceColumn}))
	require.NoError(t, reg.Register(Kind{Name: "box", New: newBox}))
	return reg
}

func newBuilder(t *testing.T) *Builder {
	return NewBuilder(sheet.New(symbol.NewTable()), testRegistry(t), WithSpacing(8), WithMargin(10))
}

func readSimple(t *testing.T) *Builder {
	b := newBuilder(t)
	f, err := os.Open("testdata/simple.eve")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, Read(f, "simple.eve", b))
	_, err = b.Finish()
	require.NoError(t, err)
	return b
}

func boxAt(t *testing.T, b *Builder, path string) *box {
	v := b.FindPath(path)
	require.NotNil(t, v, path)
	return v.Node.Widget.(*box)
}

func params(t *testing.T, b *Builder, src string) expr.Expression {
	e, err := expr.NewParser("", []byte(src), b.Sheet.Table).NamedArguments()
	require.NoError(t, err)
	return e
}

func TestRegistry(t *testing.T) {
	reg := testRegistry(t)
	assert.Equal(t, []string{"box", "column", "dialog", "row"}, reg.Kinds())
	assert.ErrorIs(t, reg.Register(Kind{Name: "row", Placement: layout.PlaceRow}), ErrDuplicateKind)
	assert.Error(t, reg.Register(Kind{Name: "blank"}))

	k, err := reg.Lookup("dialog")
	require.NoError(t, err)
	assert.True(t, k.Margin)

	_, err = reg.Lookup("rows")
	assert.ErrorIs(t, err, ErrUnknownViewKind)
	assert.ErrorContains(t, err, `did you mean "row"?`)
}

func TestRead(t *testing.T) {
	b := readSimple(t)
	assert.Equal(t, "simple", b.Name)
	assert.Equal(t, 2, b.Sheet.Len())
	assert.Equal(t, "/dialog0", b.Root.Path())
	assert.Equal(t, math32.B2(0, 0, 94, 40), b.Root.Node.Placed().Box)
	assert.Equal(t, math32.B2(10, 10, 84, 30), b.FindPath("row0").Node.Placed().Box)
	assert.Equal(t, math32.B2(10, 10, 40, 30), boxAt(t, b, "row0/box0").last())
	assert.Equal(t, math32.B2(44, 10, 84, 20), boxAt(t, b, "row0/b").last())
	assert.Equal(t, "Simple", b.Root.ParamString("name", ""))
	assert.Equal(t, sheet.InterfaceCell, b.Cells()[0].Kind)

	var buf bytes.Buffer
	require.NoError(t, b.Print(&buf))
	src, err := os.ReadFile("testdata/simple.eve")
	require.NoError(t, err)
	assert.Equal(t, string(src), buf.String())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
		is   error
	}{
		{`sheet x {}`, `x.eve:1:1: expected "layout", found "sheet"`, expr.ErrSyntax},
		{`layout x { view rows(); }`, "x.eve:1:17: unknown view kind", ErrUnknownViewKind},
		{`layout x { view box(); box(); }`, `x.eve:1:24: expected "}", found "box"`, expr.ErrSyntax},
		{`layout x { view box() { box(); } }`, "x.eve:1:25: box views cannot contain other views", nil},
		{`layout x { view row(horizontal: align_middle); }`, `x.eve:1:17: parameter horizontal of row: unknown alignment "align_middle"`, nil},
		{`layout x { interface: a: 1; view row(w: b); }`, "x.eve:1:34:", expr.ErrNameResolution},
		{`layout x { interface: a: 1; a: 2; view row(); }`, "x.eve:1:29: duplicate cell name", sheet.ErrDuplicateName},
		{`layout x { logic: view row(); }`, "x.eve:1:12: logic sections are not supported", expr.ErrSyntax},
		{`layout x { view row() }`, `x.eve:1:23: expected "{"`, expr.ErrSyntax},
		{`layout x { view row(); } more`, `x.eve:1:26: expected end of input`, expr.ErrSyntax},
	}
	for _, test := range tests {
		b := newBuilder(t)
		err := Read(strings.NewReader(test.src), "x.eve", b)
		if assert.Error(t, err, test.src) {
			assert.True(t, strings.HasPrefix(err.Error(), test.want), "%s: got %v", test.src, err)
			if test.is != nil {
				assert.ErrorIs(t, err, test.is, test.src)
			}
		}
	}
}

func TestBinding(t *testing.T) {
	b := readSimple(t)
	tab := b.Sheet.Table
	b0 := boxAt(t, b, "row0/box0")
	assert.Equal(t, 1, b.Solver.Solves())

	require.NoError(t, b.Sheet.Set(tab.Intern("wide"), values.MakeBool(true)))
	require.NoError(t, b.Sheet.Set(tab.Intern("wide"), values.MakeBool(true)))
	assert.Equal(t, 2, b0.updates)
	assert.True(t, b.Solver.Pending())
	assert.Equal(t, math32.B2(10, 10, 40, 30), b0.last())

	assert.True(t, b.Tick())
	assert.False(t, b.Tick())
	assert.Equal(t, 2, b.Solver.Solves())
	assert.Equal(t, math32.B2(10, 10, 110, 30), b0.last())
	assert.Equal(t, math32.B2(114, 10, 154, 20), boxAt(t, b, "row0/b").last())
	assert.Equal(t, math32.B2(0, 0, 164, 40), b.Root.Node.Placed().Box)

	b.Release()
	require.NoError(t, b.Sheet.Set(tab.Intern("wide"), values.MakeBool(false)))
	assert.Equal(t, 2, b0.updates)
	assert.False(t, b.Solver.Pending())
}

func TestBindingErrors(t *testing.T) {
	b := newBuilder(t)
	tab := b.Sheet.Table
	n := tab.Intern("n")
	pe, err := expr.Parse("100 / n", tab)
	require.NoError(t, err)
	require.NoError(t, b.AddCell(sheet.InterfaceCell, n, expr.Position{}, expr.Literal(values.MakeNumber(2)), "divisor", ""))
	require.NoError(t, b.AddCell(sheet.OutputCell, tab.Intern("total"), expr.Position{}, pe, "", ""))

	v, err := b.AddView(nil, expr.Position{}, "box", params(t, b, "(w: total, h: 10)"), "", "")
	require.NoError(t, err)
	w := v.Node.Widget.(*box)
	_, err = b.Finish()
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 50, 10), w.last())

	require.NoError(t, b.Sheet.Set(n, values.MakeNumber(4)))
	b.Tick()
	assert.Equal(t, math32.B2(0, 0, 25, 10), w.last())

	require.NoError(t, b.Sheet.Set(n, values.MakeNumber(0)))
	assert.False(t, b.Tick())
	assert.Equal(t, float64(25), v.ParamNumber("w", 0))
	assert.Equal(t, 1, w.updates)

	require.NoError(t, b.Sheet.Set(n, values.MakeNumber(5)))
	assert.True(t, b.Tick())
	assert.Equal(t, math32.B2(0, 0, 20, 10), w.last())
}

func TestAttributes(t *testing.T) {
	b := newBuilder(t)
	v, err := b.AddView(nil, expr.Position{}, "row", params(t, b,
		`(placement: place_column, horizontal: align_fill, child_vertical: @center, spacing: 3,
		  margin: [1, 2], width: 50, height: 60, guide_mask: [guide_baseline])`), "", "")
	require.NoError(t, err)
	want := layout.Attributes{
		Placement:     layout.PlaceColumn,
		Horizontal:    layout.AlignFill,
		ChildVertical: layout.AlignCenter,
		Spacing:       3,
		Margin:        math32.NewSides(1, 2),
		MinSize:       math32.Vec2(50, 60),
		GuideMask:     [2]bool{false, true},
	}
	assert.Equal(t, want, v.Node.Attr)

	d, err := b.AddView(v, expr.Position{}, "dialog", expr.Expression{}, "", "")
	require.NoError(t, err)
	assert.Equal(t, math32.NewSides(10), d.Node.Attr.Margin)
	assert.Equal(t, float32(8), d.Node.Attr.Spacing)
	r, err := b.AddView(v, expr.Position{}, "row", params(t, b, "(guide_mask: @label, vertical: align_bottom)"), "", "")
	require.NoError(t, err)
	assert.Equal(t, float32(8), r.Node.Attr.Spacing)
	assert.Equal(t, [2]bool{true, false}, r.Node.Attr.GuideMask)
	assert.Equal(t, layout.AlignBottom, r.Node.Attr.Vertical)
	assert.Equal(t, "row1", r.Node.Name)

	bad := []string{
		"(margin: [1, 2, 3])",
		"(placement: place_leaf)",
		"(guide_mask: @diagonal)",
		"(vertical: 3)",
	}
	for _, src := range bad {
		_, err := b.AddView(v, expr.Position{}, "row", params(t, b, src), "", "")
		assert.Error(t, err, src)
	}
	_, err = b.AddView(v, expr.Position{}, "row", params(t, b, `(spacing: "wide")`), "", "")
	assert.ErrorIs(t, err, values.ErrTypeMismatch)
	_, err = b.AddView(v, expr.Position{}, "box", params(t, b, "(placement: place_row)"), "", "")
	assert.Error(t, err)

	one, err := expr.Parse("1", b.Sheet.Table)
	require.NoError(t, err)
	_, err = b.AddView(v, expr.Position{}, "row", one, "", "")
	assert.ErrorIs(t, err, values.ErrTypeMismatch)
}

func TestAddViewErrors(t *testing.T) {
	b := newBuilder(t)
	_, err := b.Finish()
	assert.Error(t, err)

	root, err := b.AddView(nil, expr.Position{Line: 1, Column: 1}, "column", expr.Expression{}, "", "")
	require.NoError(t, err)
	_, err = b.AddView(nil, expr.Position{Line: 2, Column: 1}, "column", expr.Expression{}, "", "")
	assert.ErrorContains(t, err, "2:1: layout already has a root view")

	leaf, err := b.AddView(root, expr.Position{}, "box", params(t, b, "(id: \"ok\", w: 5, h: 5)"), "", "")
	require.NoError(t, err)
	assert.Equal(t, "/column0/ok", leaf.Path())
	_, err = b.AddView(leaf, expr.Position{}, "box", expr.Expression{}, "", "")
	assert.ErrorContains(t, err, "box views cannot contain other views")

	_, err = b.AddView(root, expr.Position{}, "bx", expr.Expression{}, "", "")
	assert.True(t, errors.Is(err, ErrUnknownViewKind))

	_, err = b.Finish()
	require.NoError(t, err)
	_, err = b.AddView(root, expr.Position{}, "box", expr.Expression{}, "", "")
	assert.ErrorContains(t, err, "layout is already finished")
}

func TestVisibility(t *testing.T) {
	b := newBuilder(t)
	root, err := b.AddView(nil, expr.Position{}, "row", params(t, b, "(spacing: 0)"), "", "")
	require.NoError(t, err)
	a, err := b.AddView(root, expr.Position{}, "box", params(t, b, "(w: 10, h: 10)"), "", "")
	require.NoError(t, err)
	c, err := b.AddView(root, expr.Position{}, "box", params(t, b, "(w: 20, h: 10)"), "", "")
	require.NoError(t, err)
	a.SetVisible(false)
	assert.True(t, a.Node.Hidden)

	_, err = b.Finish()
	require.NoError(t, err)
	assert.Empty(t, a.Node.Widget.(*box).placed)
	assert.Equal(t, math32.B2(0, 0, 20, 10), c.Node.Widget.(*box).last())

	a.SetVisible(true)
	assert.True(t, a.Node.Hidden)
	assert.True(t, b.Tick())
	assert.False(t, a.Node.Hidden)
	assert.Equal(t, math32.B2(0, 0, 10, 10), a.Node.Widget.(*box).last())
	assert.Equal(t, math32.B2(10, 0, 30, 10), c.Node.Widget.(*box).last())
	assert.Len(t, b.Solver.Placements(), 3)
}

func TestPrintBuilt(t *testing.T) {
	b := newBuilder(t)
	tab := b.Sheet.Table
	require.NoError(t, b.AddCell(sheet.InterfaceCell, tab.Intern("note"), expr.Position{}, expr.Expression{}, "free text", ""))
	root, err := b.AddView(nil, expr.Position{}, "column", expr.Literal(values.MakeDict(values.NewDict().Set(tab.Intern("spacing"), values.MakeNumber(2)))), "main", "")
	require.NoError(t, err)
	_, err = b.AddView(root, expr.Position{}, "box", params(t, b, "(w: 1, h: 2)"), "", "")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, b.Print(&buf))
	assert.Equal(t, `layout untitled {
interface:
    note; // free text
    view column(spacing: 2) { // main
        box(w: 1, h: 2);
    }
}
`, buf.String())
}
