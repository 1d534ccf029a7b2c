// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings of the eve tool and of
// the dialogs it runs: text metrics, default layout attributes,
// the recursion limit of sheets, and where results are stored.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/base/reflectx"
)

// Settings are the settings of the eve tool.
type Settings struct {

	// Text contains the metrics used to measure text in widgets.
	Text Text

	// Layout contains the default layout attributes of container views.
	Layout Layout

	// MaxDepth is the maximum nesting of sheet updates caused by
	// monitors. Zero means no limit.
	MaxDepth int `default:"16"`

	// StorePath is the database where dialog results are stored.
	// It is empty when results are not stored.
	StorePath string

	// LogLevel is the minimum level of log messages:
	// debug, info, warn or error.
	LogLevel string `default:"info"`

	// Highlighting is the chroma style used to color printed
	// declarations, such as "monokai".
	Highlighting string `default:"monokai"`
}

// Text contains text metrics.
type Text struct {

	// CharWidth is the advance width of one character.
	CharWidth float32 `default:"7"`

	// LineHeight is the height of one line of text.
	LineHeight float32 `default:"16"`

	// Ascent is the distance from the top of a line to its baseline.
	Ascent float32 `default:"12"`

	// Padding is added on each side of framed widgets such as buttons.
	Padding float32 `default:"4"`
}

// Layout contains default layout attributes.
type Layout struct {

	// Spacing is the default space between the children of a row or column.
	Spacing float32 `default:"8"`

	// Margin is the default margin of dialogs.
	Margin float32 `default:"10"`
}

// Default returns new settings with their default values.
func Default() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the settings to their default values.
func (s *Settings) Defaults() {
	errors.Must(reflectx.SetFromDefaultTags(s))
}

// Load returns the default settings overridden by those in the given
// TOML file. A missing file is not an error.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config: no settings file", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, s.Validate()
}

// Save writes the settings to the given TOML file,
// creating its directory if needed.
func (s *Settings) Save(path string) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate returns an error if the settings are inconsistent.
func (s *Settings) Validate() error {
	var errs []error
	if s.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("config: MaxDepth must not be negative, got %d", s.MaxDepth))
	}
	if s.Text.CharWidth <= 0 || s.Text.LineHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: text metrics must be positive"))
	}
	if s.Text.Ascent > s.Text.LineHeight {
		errs = append(errs, fmt.Errorf("config: Ascent %g is larger than LineHeight %g", s.Text.Ascent, s.Text.LineHeight))
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, ok := styles.Registry[s.Highlighting]; !ok {
		errs = append(errs, fmt.Errorf("config: unknown Highlighting style %q", s.Highlighting))
	}
	return errors.Join(errs...)
}

// Level returns the [slog.Level] of [Settings.LogLevel],
// or [slog.LevelInfo] if it is not valid.
func (s *Settings) Level() slog.Level {
	l, err := ParseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel parses the name of a log level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", name)
	}
	return l, nil
}
