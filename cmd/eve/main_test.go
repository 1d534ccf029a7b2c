// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fontEve  = "../../dialog/testdata/font.eve"
	fontAdam = "../../dialog/testdata/font.adm"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLayout(t *testing.T) {
	out, err := execute(t, "layout", fontEve, fontAdam)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dialog0 [(0, 0) - (154, 141)]"), out)
	assert.Contains(t, out, "\n    column0 [(10, 10) - (144, 66)]")
	assert.Contains(t, out, "\n        button1 [(122, 107) - (144, 131)]")
	assert.NotContains(t, out, "panel2")

	out, err = execute(t, "layout", "--width", "300", fontEve, fontAdam)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dialog0 [(0, 0) - (300, 141)]"), out)
}

func TestPrint(t *testing.T) {
	out, err := execute(t, "print", fontEve, fontAdam)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "layout font {\n    view dialog(name: \"Font\") {\n"), out)
	assert.Contains(t, out, `edit_text(name: "Family:", bind: @family, characters: 10);`)
	assert.NotContains(t, out, "\x1b[")
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("LogLevel = \"warn\"\n\n[Layout]\nMargin = 0\n"), 0o644))
	out, err := execute(t, "layout", "-c", path, fontEve, fontAdam)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dialog0 [(0, 0) - (134, 121)]"), out)

	require.NoError(t, os.WriteFile(path, []byte("Colour = 1\n"), 0o644))
	_, err = execute(t, "layout", "-c", path, fontEve, fontAdam)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", fontEve, fontAdam, `enter:column0/edit_text0="Mono"`, "click:row4/button1")
	require.NoError(t, err)
	assert.Contains(t, out, "action: !sym ok")
	assert.Contains(t, out, "family: Mono")
	assert.Contains(t, out, "size: 12")

	_, err = execute(t, "run", fontEve, fontAdam, "click:checkbox1")
	assert.ErrorContains(t, err, "dialog did not close")
	_, err = execute(t, "run", fontEve, fontAdam, "press:checkbox1")
	assert.ErrorContains(t, err, "unknown kind")
	_, err = execute(t, "run", "missing.eve", fontAdam)
	assert.ErrorContains(t, err, "resource not found")
}

func TestHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "eve.db")
	_, err := execute(t, "history")
	assert.ErrorContains(t, err, "no store")

	_, err = execute(t, "run", "--store", db, fontEve, fontAdam, "set:size=20", "click:row4/button1")
	require.NoError(t, err)
	_, err = execute(t, "run", "--store", db, fontEve, fontAdam, "click:row4/button0")
	require.NoError(t, err)

	out, err := execute(t, "history", "--store", db)
	require.NoError(t, err)
	assert.Equal(t, "font\n", out)

	out, err = execute(t, "history", "--store", db, "font")
	require.NoError(t, err)
	assert.Equal(t, "1 ok {bold: false, family: \"Sans\", mode: @basic, size: 20}\n"+
		"2 cancel {bold: false, family: \"Sans\", mode: @basic, size: 20}\n", out)
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelFromFlags(slog.LevelWarn, true, false, true))
	assert.Equal(t, slog.LevelInfo, levelFromFlags(slog.LevelWarn, false, true, false))
	assert.Equal(t, slog.LevelError, levelFromFlags(slog.LevelWarn, false, false, true))
	assert.Equal(t, slog.LevelWarn, levelFromFlags(slog.LevelWarn, false, false, false))
}
