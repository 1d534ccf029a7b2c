// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eve

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/eve/sheet"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// Print writes the cells declared through the builder and the views in
// layout declaration syntax, for debugging. Briefs are written as
// trailing comments.
func (b *Builder) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	name := b.Name
	if name == "" {
		name = "untitled"
	}
	fmt.Fprintf(bw, "layout %s {\n", name)
	section := sheet.CellKinds(-1)
	for _, c := range b.cells {
		if c.Kind != section {
			section = c.Kind
			fmt.Fprintf(bw, "%s:\n", section)
		}
		switch {
		case c.Kind == sheet.OutputCell:
			fmt.Fprintf(bw, "    %s <== %s;", c.Name.Name(), c.Init)
		case c.Init.IsZero():
			fmt.Fprintf(bw, "    %s;", c.Name.Name())
		default:
			fmt.Fprintf(bw, "    %s: %s;", c.Name.Name(), c.Init)
		}
		brief(bw, c.Brief)
	}
	if b.Root != nil {
		bw.WriteString("    view ")
		printView(bw, b.Root, 1)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func printView(w *bufio.Writer, v *View, depth int) {
	w.WriteString(v.Kind.Name)
	src := v.Expr.Source()
	if strings.HasPrefix(src, "(") {
		w.WriteString(src)
	} else {
		w.WriteString(namedArguments(v.Params))
	}
	if len(v.Children) == 0 {
		w.WriteString(";")
		brief(w, v.Brief)
		return
	}
	w.WriteString(" {")
	brief(w, v.Brief)
	indent := strings.Repeat("    ", depth+1)
	for _, kid := range v.Children {
		w.WriteString(indent)
		printView(w, kid, depth+1)
	}
	w.WriteString(strings.Repeat("    ", depth))
	w.WriteString("}\n")
}

func brief(w *bufio.Writer, text string) {
	if text != "" {
		w.WriteString(" // ")
		w.WriteString(text)
	}
	w.WriteString("\n")
}

// namedArguments writes a dictionary as named arguments, (a: 1, b: 2).
func namedArguments(d *values.Dictionary) string {
	var sb strings.Builder
	sb.WriteByte('(')
	first := true
	d.Range(func(k symbol.Symbol, v values.Value) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(k.Name())
		sb.WriteString(": ")
		sb.WriteString(v.String())
		return true
	})
	sb.WriteByte(')')
	return sb.String()
}
