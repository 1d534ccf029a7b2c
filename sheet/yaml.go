// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sheet

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"cogentcore.org/eve/values"
)

// WriteYAML writes the [Sheet.Contributing] values as a YAML mapping.
func (s *Sheet) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(values.EncodeDictYAML(s.Contributing())); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads a YAML mapping of interface cell values,
// as written by [Sheet.WriteYAML], and sets them with [Sheet.SetBatch].
func (s *Sheet) ReadYAML(r io.Reader) error {
	var n yaml.Node
	if err := yaml.NewDecoder(r).Decode(&n); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	d, err := values.DecodeDictYAML(&n, s.Table)
	if err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	return s.SetBatch(d)
}
