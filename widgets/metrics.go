// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides headless widgets for eve layouts: labels,
// buttons, check boxes, text and number fields, separators, and the
// containers that arrange them. They measure text with fixed cell
// metrics and keep their state in the cells of the sheet they are
// bound to, so that dialogs can be driven and tested without a display.
package widgets

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"

	"cogentcore.org/eve/config"
)

// Metrics are fixed text metrics: every character cell has the
// same advance, and wide characters take two cells.
type Metrics struct {

	// CharWidth is the advance width of one character cell.
	CharWidth float32

	// LineHeight is the height of one line of text.
	LineHeight float32

	// Ascent is the distance from the top of a line to its baseline.
	Ascent float32

	// Padding is added on each side of framed widgets.
	Padding float32
}

// MetricsFromSettings returns the metrics of the given text settings.
func MetricsFromSettings(t config.Text) Metrics {
	return Metrics{CharWidth: t.CharWidth, LineHeight: t.LineHeight, Ascent: t.Ascent, Padding: t.Padding}
}

// Cells returns the number of character cells the text takes:
// one per grapheme cluster, or two for East Asian wide
// and fullwidth characters.
func Cells(s string) int {
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		switch width.LookupRune(rs[0]).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// TextWidth returns the width of the text on one line.
func (m Metrics) TextWidth(s string) float32 {
	return float32(Cells(s)) * m.CharWidth
}
