// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dialog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/eve/eve"
	"cogentcore.org/eve/expr"
	"cogentcore.org/eve/math32"
	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/store"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

func readFile(t *testing.T, name string) string {
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func events(t *testing.T, tab *symbol.Table, es ...string) []Event {
	var evs []Event
	for _, s := range es {
		e, err := ParseEvent(s, tab)
		require.NoError(t, err, s)
		evs = append(evs, e)
	}
	return evs
}

func TestExecuteModal(t *testing.T) {
	tab := symbol.NewTable()
	evs := events(t, tab,
		`enter:column0/edit_text0="Mono"`,
		"click:checkbox1",
		"enter:column0/edit_number1=100",
		"click:row4/button1",
		"click:row4/button0",
	)
	var got []string
	res, err := ExecuteModal(strings.NewReader(readFile(t, "font.eve")), strings.NewReader(readFile(t, "font.adm")),
		func(action symbol.Symbol, value values.Value) bool {
			got = append(got, action.Name()+" "+value.String())
			return true
		}, evs, WithTable(tab))
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Action.Name())
	assert.Equal(t, `{bold: true, family: "Mono", mode: @basic, size: 72}`, res.Results.String())
	assert.Equal(t, []string{`ok {bold: true, family: "Mono", size: 72}`}, got)
}

func TestHandlerKeepsOpen(t *testing.T) {
	d, err := Make(strings.NewReader(readFile(t, "font.eve")), strings.NewReader(readFile(t, "font.adm")),
		func(action symbol.Symbol, value values.Value) bool {
			return action.Name() != "ok"
		})
	require.NoError(t, err)
	defer d.Close()
	assert.Equal(t, "font", d.Name)

	_, err = d.Run(events(t, d.Sheet.Table, "click:row4/button1"))
	assert.ErrorIs(t, err, ErrNotClosed)
	assert.False(t, d.Closed())

	res, err := d.Run(events(t, d.Sheet.Table, "click:row4/button0", "click:row4/button1"))
	require.NoError(t, err)
	assert.Equal(t, "cancel", res.Action.Name())
	r, ok := d.Result()
	assert.True(t, ok)
	assert.Equal(t, res, r)
}

func TestMakeErrors(t *testing.T) {
	adam := readFile(t, "font.adm")
	tests := []struct {
		eve, adam string
		is        error
	}{
		{`layout f { view dialog() { buton(); } }`, adam, eve.ErrUnknownViewKind},
		{`layout f { interface: size: 3; view dialog(); }`, adam, sheet.ErrDuplicateName},
		{`layout f { view dialog(name: sizes); }`, adam, expr.ErrNameResolution},
		{`layout f { view dialog(); }`, `sheet f { interface: a: 1 }`, expr.ErrSyntax},
		{`layout f { view dialog() }`, adam, expr.ErrSyntax},
		{`layout f { view dialog(margin: "wide"); }`, adam, values.ErrTypeMismatch},
	}
	for _, test := range tests {
		_, err := Make(strings.NewReader(test.eve), strings.NewReader(test.adam), nil)
		assert.ErrorIs(t, err, test.is, test.eve)
	}

	tab := symbol.NewTable()
	input := values.NewDict().Set(tab.Intern("colour"), values.MakeString("red"))
	_, err := Make(strings.NewReader(readFile(t, "font.eve")), strings.NewReader(adam), nil, WithTable(tab), WithInput(input))
	assert.ErrorIs(t, err, sheet.ErrUnknownCell)
}

func TestMakeFromFiles(t *testing.T) {
	_, err := MakeFromFiles("testdata/missing.eve", "testdata/font.adm", nil)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = MakeFromFiles("testdata/font.eve", "testdata/missing.adm", nil)
	assert.ErrorIs(t, err, ErrResourceNotFound)

	d, err := MakeFromFiles("testdata/font.eve", "testdata/font.adm", nil)
	require.NoError(t, err)
	defer d.Close()
	assert.Equal(t, math32.B2(0, 0, 154, 141), d.Root().Node.Placed().Box)

	_, err = MakeFromFiles("testdata/font.eve", "", nil)
	assert.ErrorContains(t, err, `bind: "family" is not an interface cell`)
}

func TestInputAndResize(t *testing.T) {
	tab := symbol.NewTable()
	input := values.NewDict().Set(tab.Intern("mode"), values.MakeSymbol(tab.Intern("advanced")))
	d, err := Make(strings.NewReader(readFile(t, "font.eve")), strings.NewReader(readFile(t, "font.adm")), nil,
		WithTable(tab), WithInput(input))
	require.NoError(t, err)
	defer d.Close()

	var paths []string
	for _, p := range d.Placements() {
		paths = append(paths, p.Path)
	}
	assert.Contains(t, paths, "/dialog0/panel2/label0")
	assert.Equal(t, math32.B2(0, 0, 154, 165), d.Root().Node.Placed().Box)

	d.Resize(math32.Vec2(300, 0))
	assert.Equal(t, math32.B2(0, 0, 300, 165), d.Root().Node.Placed().Box)
	assert.Equal(t, math32.B2(10, 122, 290, 123), d.Builder.FindPath("separator3").Node.Placed().Box)
}

func TestApplyErrors(t *testing.T) {
	d, err := Make(strings.NewReader(readFile(t, "font.eve")), strings.NewReader(readFile(t, "font.adm")), nil)
	require.NoError(t, err)
	defer d.Close()
	tab := d.Sheet.Table
	assert.ErrorContains(t, d.Apply(Event{Kind: EventClick, Path: "row4/button9"}), `no view "row4/button9"`)
	assert.ErrorContains(t, d.Apply(Event{Kind: EventClick, Path: "panel2/label0"}), "cannot be clicked")
	assert.ErrorContains(t, d.Apply(Event{Kind: EventEnter, Path: "row4/button0", Value: values.MakeNumber(1)}), "does not accept values")
	assert.ErrorIs(t, d.Apply(Event{Kind: EventSet, Cell: "result", Value: values.MakeNumber(1)}), sheet.ErrUnknownCell)
	assert.ErrorIs(t, d.Apply(Event{Kind: EventEnter, Path: "column0/edit_text0", Value: values.MakeNumber(1)}), values.ErrTypeMismatch)

	require.NoError(t, d.Apply(Event{Kind: EventSet, Cell: "mode", Value: values.MakeSymbol(tab.Intern("advanced"))}))
	assert.False(t, d.Builder.FindPath("panel2").Node.Hidden)
	assert.False(t, d.Closed())
}

func TestParseEvent(t *testing.T) {
	tab := symbol.NewTable()
	e, err := ParseEvent("set:size=2 * 7", tab)
	require.NoError(t, err)
	assert.Equal(t, EventSet, e.Kind)
	assert.Equal(t, "size", e.Cell)
	assert.Equal(t, "set:size=14", e.String())

	e, err = ParseEvent(`enter:column0/edit_text0="a=b"`, tab)
	require.NoError(t, err)
	assert.Equal(t, "column0/edit_text0", e.Path)
	assert.Equal(t, `"a=b"`, e.Value.String())

	e, err = ParseEvent("click:row4/button1", tab)
	require.NoError(t, err)
	assert.Equal(t, "click:row4/button1", e.String())

	for _, bad := range []string{"row4", "press:x", "set:size", "set:size=1 +", "set:size=width"} {
		_, err := ParseEvent(bad, tab)
		assert.Error(t, err, bad)
	}
}

func TestStore(t *testing.T) {
	tab := symbol.NewTable()
	st, err := store.Open(filepath.Join(t.TempDir(), "eve.db"), tab)
	require.NoError(t, err)
	defer st.Close()
	run := func(es ...string) Result {
		d, err := MakeFromFiles("testdata/font.eve", "testdata/font.adm", CloseAlways, WithTable(tab), WithStore(st))
		require.NoError(t, err)
		defer d.Close()
		res, err := d.Run(events(t, tab, es...))
		require.NoError(t, err)
		return res
	}

	run(`enter:column0/edit_text0="Mono"`, "click:row4/button1")
	res := run("click:row4/button1")
	fam, _ := res.Results.At(tab.Intern("family"))
	assert.Equal(t, `"Mono"`, fam.String())

	run(`enter:column0/edit_text0="Serif"`, "click:row4/button0")
	rec, err := st.Get("font")
	require.NoError(t, err)
	fam, _ = rec.At(tab.Intern("family"))
	assert.Equal(t, `"Mono"`, fam.String())

	hist, err := st.History("font")
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, "cancel", hist[2].Action.Name())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.eve")
	require.NoError(t, os.WriteFile(path, []byte(readFile(t, "font.eve")), 0o644))
	w, err := Watch(path, "")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(readFile(t, "font.eve")), 0o644))
	select {
	case got := <-w.Changes:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	require.NoError(t, w.Close())
	for range w.Changes {
	}
}
