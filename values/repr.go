// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"cogentcore.org/eve/symbol"
)

// String returns the value written in declaration syntax, for example
// 3, "text", @name, [1, 2] or {a: 1}. Empty is written as empty.
func (v Value) String() string {
	var b strings.Builder
	v.writeTo(&b)
	return b.String()
}

func (v Value) writeTo(b *strings.Builder) {
	switch v.kind {
	case Empty:
		b.WriteString("empty")
	case Bool:
		b.WriteString(strconv.FormatBool(v.num != 0))
	case Number:
		b.WriteString(FormatNumber(v.num))
	case String:
		quote(b, v.str)
	case Symbol:
		b.WriteByte('@')
		b.WriteString(v.sym.Name())
	case Array:
		b.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				b.WriteString(", ")
			}
			e.writeTo(b)
		}
		b.WriteByte(']')
	case Dict:
		b.WriteString(v.dict.String())
	}
}

// quote writes s double quoted, escaping with only \n, \t, \r, \\, \"
// and \xHH so that the result reads back as the same string.
// Other printable text, including non-ASCII, is written as is.
func quote(b *strings.Builder, s string) {
	const hex = "0123456789abcdef"
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"', r == '\\':
			b.WriteByte('\\')
			b.WriteByte(byte(r))
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20, r == 0x7f, r == utf8.RuneError && size == 1:
			b.WriteString(`\x`)
			b.WriteByte(hex[s[i]>>4])
			b.WriteByte(hex[s[i]&0xf])
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
}

// String returns the dictionary in declaration syntax.
func (d *Dictionary) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	d.Range(func(k symbol.Symbol, e Value) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(k.Name())
		b.WriteString(": ")
		e.writeTo(&b)
		return true
	})
	b.WriteByte('}')
	return b.String()
}

// FormatNumber formats a number in the shortest form that
// parses back to the same value.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
