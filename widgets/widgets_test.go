// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/eve/config"
	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

type action struct {
	name  string
	value values.Value
}

type fontDialog struct {
	b       *eve.Builder
	actions []action
}

func testMetrics() Metrics {
	return MetricsFromSettings(config.Default().Text)
}

func newFontDialog(t *testing.T) *fontDialog {
	tab := symbol.NewTable()
	sh := sheet.New(tab)
	f, err := os.Open("testdata/font.adm")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, sh.Read(f, "font.adm"))

	d := &fontDialog{}
	d.b = eve.NewBuilder(sh, NewRegistry(testMetrics()), eve.WithSpacing(8), eve.WithMargin(10),
		eve.WithAction(func(a symbol.Symbol, v values.Value) {
			d.actions = append(d.actions, action{a.Name(), v})
		}))
	e, err := os.Open("testdata/font.eve")
	require.NoError(t, err)
	defer e.Close()
	require.NoError(t, eve.Read(e, "font.eve", d.b))
	_, err = d.b.Finish()
	require.NoError(t, err)
	t.Cleanup(d.b.Release)
	return d
}

func (d *fontDialog) widget(t *testing.T, path string) any {
	v := d.b.FindPath(path)
	require.NotNil(t, v, path)
	return v.Node.Widget
}

func (d *fontDialog) box(t *testing.T, path string) math32.Box2 {
	v := d.b.FindPath(path)
	require.NotNil(t, v, path)
	return v.Node.Placed().Box
}

func (d *fontDialog) set(t *testing.T, cell string, v values.Value) {
	require.NoError(t, d.b.Sheet.Set(d.b.Sheet.Table.Intern(cell), v))
}

func TestCells(t *testing.T) {
	assert.Equal(t, 0, Cells(""))
	assert.Equal(t, 3, Cells("abc"))
	assert.Equal(t, 4, Cells("日本"))
	assert.Equal(t, 1, Cells("é"))
	assert.Equal(t, float32(28), testMetrics().TextWidth("Bold"))
}

func TestKinds(t *testing.T) {
	reg := NewRegistry(testMetrics())
	assert.Equal(t, []string{"button", "checkbox", "column", "dialog", "edit_number", "edit_text",
		"group", "label", "overlay", "panel", "row", "separator"}, reg.Kinds())
	assert.Error(t, Register(reg, testMetrics()))
}

func TestFontLayout(t *testing.T) {
	d := newFontDialog(t)
	assert.Equal(t, math32.B2(0, 0, 154, 141), d.box(t, ""))
	assert.Equal(t, math32.B2(10, 10, 144, 66), d.box(t, "column0"))
	assert.Equal(t, math32.B2(10, 10, 144, 34), d.box(t, "column0/edit_text0"))
	assert.Equal(t, math32.B2(24, 42, 95, 66), d.box(t, "column0/edit_number1"))
	assert.Equal(t, math32.B2(10, 74, 61, 90), d.box(t, "checkbox1"))
	assert.Equal(t, math32.B2(10, 98, 144, 99), d.box(t, "separator3"))
	assert.Equal(t, math32.B2(64, 107, 144, 131), d.box(t, "row4"))
	assert.Equal(t, math32.B2(64, 107, 114, 131), d.box(t, "row4/button0"))
	assert.Equal(t, math32.B2(122, 107, 144, 131), d.box(t, "row4/button1"))

	assert.True(t, d.b.FindPath("panel2").Node.Hidden)
	lbl := d.widget(t, "panel2/label0").(*Label)
	assert.Equal(t, 0, lbl.Places)

	et := d.widget(t, "column0/edit_text0").(*EditText)
	assert.Equal(t, 1, et.Places)
	assert.Equal(t, math32.B2(10, 10, 144, 34), et.Placement.Box)
	assert.Equal(t, "Sans", et.Text())
}

func TestPanelVisibility(t *testing.T) {
	d := newFontDialog(t)
	p := d.widget(t, "panel2").(*Panel)
	assert.False(t, p.Shown())

	d.set(t, "mode", values.MakeSymbol(d.b.Sheet.Table.Intern("advanced")))
	assert.True(t, p.Shown())
	assert.True(t, d.b.FindPath("panel2").Node.Hidden)
	assert.True(t, d.b.Tick())
	assert.False(t, d.b.FindPath("panel2").Node.Hidden)
	assert.False(t, p.Hidden)

	assert.Equal(t, math32.B2(0, 0, 154, 165), d.box(t, ""))
	assert.Equal(t, math32.B2(10, 98, 66, 114), d.box(t, "panel2/label0"))
	assert.Equal(t, math32.B2(10, 122, 144, 123), d.box(t, "separator3"))
	assert.Equal(t, math32.B2(64, 131, 144, 155), d.box(t, "row4"))
	assert.Equal(t, 1, d.widget(t, "panel2/label0").(*Label).Places)

	d.set(t, "mode", values.MakeSymbol(d.b.Sheet.Table.Intern("basic")))
	assert.True(t, d.b.Tick())
	assert.True(t, p.Hidden)
	assert.Equal(t, math32.B2(0, 0, 154, 141), d.box(t, ""))
}

func TestControls(t *testing.T) {
	d := newFontDialog(t)
	cb := d.widget(t, "checkbox1").(*Checkbox)
	assert.False(t, cb.Checked())
	cb.Click()
	assert.True(t, cb.Checked())

	num := d.widget(t, "column0/edit_number1").(*EditNumber)
	assert.Equal(t, float64(12), num.Number())
	require.NoError(t, num.Enter(values.MakeNumber(100)))
	assert.Equal(t, float64(72), num.Number())
	require.NoError(t, num.Enter(values.MakeNumber(1)))
	assert.Equal(t, float64(4), num.Number())
	assert.ErrorIs(t, num.Enter(values.MakeString("big")), values.ErrTypeMismatch)

	et := d.widget(t, "column0/edit_text0").(*EditText)
	require.NoError(t, et.Enter(values.MakeString("Mono")))
	assert.Equal(t, "Mono", et.Text())
	assert.ErrorIs(t, et.Enter(values.MakeNumber(3)), values.ErrTypeMismatch)

	d.set(t, "family", values.MakeString("Serif"))
	assert.Equal(t, "Serif", et.Text())
}

func TestButtons(t *testing.T) {
	d := newFontDialog(t)
	d.widget(t, "checkbox1").(Clicker).Click()
	d.widget(t, "row4/button0").(Clicker).Click()
	d.widget(t, "row4/button1").(Clicker).Click()
	require.Len(t, d.actions, 2)
	assert.Equal(t, "cancel", d.actions[0].name)
	assert.True(t, d.actions[0].value.IsEmpty())
	assert.Equal(t, "ok", d.actions[1].name)
	assert.Equal(t, `{bold: true, family: "Sans", size: 12}`, d.actions[1].value.String())
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		view string
		want string
	}{
		{`checkbox(name: "x", bind: @nope);`, `"nope" is not an interface cell`},
		{`edit_text(name: "x");`, "missing bind parameter"},
		{`panel(bind: @result) { label(); }`, `"result" is not an interface cell`},
	}
	for _, test := range tests {
		sh := sheet.New(symbol.NewTable())
		require.NoError(t, sh.Read(strings.NewReader(`sheet s { output: result <== 1; }`), "s.adm"))
		b := eve.NewBuilder(sh, NewRegistry(testMetrics()))
		err := eve.Read(strings.NewReader("layout l { view "+test.view+" }"), "l.eve", b)
		assert.ErrorContains(t, err, test.want, test.view)
	}
}
