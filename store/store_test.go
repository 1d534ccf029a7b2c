// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

func tempStore(t *testing.T) (*Store, *symbol.Table) {
	tab := symbol.NewTable()
	s, err := Open(filepath.Join(t.TempDir(), "eve.db"), tab)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, tab
}

func TestRecords(t *testing.T) {
	s, tab := tempStore(t)
	_, err := s.Get("font")
	assert.ErrorIs(t, err, ErrNoRecord)

	rec := values.NewDict().
		Set(tab.Intern("family"), values.MakeString("Sans")).
		Set(tab.Intern("size"), values.MakeNumber(12)).
		Set(tab.Intern("mode"), values.MakeSymbol(tab.Intern("basic"))).
		Set(tab.Intern("bold"), values.MakeBool(false))
	require.NoError(t, s.Put("font", rec))
	require.NoError(t, s.Put("clock", values.NewDict()))

	got, err := s.Get("font")
	require.NoError(t, err)
	assert.True(t, values.EqualDicts(rec, got), "got %v", got)

	got, err = s.Get("clock")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	names, err := s.Dialogs()
	require.NoError(t, err)
	assert.Equal(t, []string{"clock", "font"}, names)

	require.NoError(t, s.Delete("font"))
	_, err = s.Get("font")
	assert.ErrorIs(t, err, ErrNoRecord)
	require.NoError(t, s.Delete("font"))
}

func TestHistory(t *testing.T) {
	s, tab := tempStore(t)
	entries, err := s.History("font")
	require.NoError(t, err)
	assert.Empty(t, entries)

	res := values.NewDict().Set(tab.Intern("size"), values.MakeNumber(14))
	seq, err := s.AddHistory("font", tab.Intern("ok"), res)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	seq, err = s.AddHistory("font", tab.Intern("cancel"), values.NewDict())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)

	entries, err = s.History("font")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(1), entries[0].Seq)
	assert.Equal(t, "ok", entries[0].Action.Name())
	assert.True(t, values.EqualDicts(res, entries[0].Results))
	assert.Equal(t, "cancel", entries[1].Action.Name())
	assert.Equal(t, 0, entries[1].Results.Len())
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eve.db")
	tab := symbol.NewTable()
	s, err := Open(path, tab)
	require.NoError(t, err)
	require.NoError(t, s.Put("font", values.NewDict().Set(tab.Intern("size"), values.MakeNumber(9))))
	require.NoError(t, s.Close())

	other := symbol.NewTable()
	s, err = Open(path, other)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get("font")
	require.NoError(t, err)
	v, ok := got.At(other.Intern("size"))
	require.True(t, ok)
	assert.Equal(t, "9", v.String())
}
