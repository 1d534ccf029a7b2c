// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging for the command line,
// with the level shown in color when the terminal supports it.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the level that the user has selected for which log
// messages are shown. Messages at or above it are shown. It defaults
// to [slog.LevelInfo], or [slog.LevelDebug] with the debug build tag
// and [slog.LevelWarn] with the release build tag.
var UserLevel = new(slog.LevelVar)

// UseColor is whether to color output. Color is also only used when
// the output is a terminal that supports it.
var UseColor = true

func init() {
	UserLevel.Set(defaultUserLevel)
}

// LevelColors are the terminal colors of the log levels.
var LevelColors = map[slog.Level]string{
	slog.LevelDebug: "#8a8a8a",
	slog.LevelInfo:  "#5f87ff",
	slog.LevelWarn:  "#d7af00",
	slog.LevelError: "#d70000",
}

// NewHandler returns a text handler writing to w at [UserLevel],
// with the level colored for the terminal of w.
func NewHandler(w io.Writer) slog.Handler {
	out := Output(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			l, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(ColorLevel(out, l, l.String()))
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to one from [NewHandler]
// writing to standard error.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Output returns a terminal output for w. Its profile is plain
// ASCII when [UseColor] is false.
func Output(w io.Writer) *termenv.Output {
	if !UseColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// ColorLevel returns s in the color of the nearest level at or below l.
func ColorLevel(out *termenv.Output, l slog.Level, s string) string {
	var c string
	switch {
	case l >= slog.LevelError:
		c = LevelColors[slog.LevelError]
	case l >= slog.LevelWarn:
		c = LevelColors[slog.LevelWarn]
	case l >= slog.LevelInfo:
		c = LevelColors[slog.LevelInfo]
	default:
		c = LevelColors[slog.LevelDebug]
	}
	return Color(out, c, s)
}

// Color returns s in the given color, such as "#5f87ff", for out.
func Color(out *termenv.Output, color, s string) string {
	return out.String(s).Foreground(out.Color(color)).String()
}
