// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"cogentcore.org/eve/base/errors"
)

var (
	// ErrArithmetic is returned for division or modulus by zero.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrIndex is returned for an out of range array index
	// or a missing dictionary key.
	ErrIndex = errors.New("index error")

	// ErrNameResolution is returned when a variable or
	// function name cannot be resolved.
	ErrNameResolution = errors.New("name resolution error")

	// ErrSyntax is returned for malformed declaration text.
	ErrSyntax = errors.New("syntax error")
)

// Position is a location in declaration text.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// SyntaxError is a malformed-text error at a position.
type SyntaxError struct {
	Pos     Position
	Message string

	// Context is the source line with a caret under the column.
	Context string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// NameError is an unresolved variable, function or other named entity.
type NameError struct {
	// Kind describes what was being resolved, such as "variable".
	Kind string

	// Name is the unresolved name.
	Name string

	// Suggestion is the closest known name, if any is close enough.
	Suggestion string

	// Err is the sentinel this error matches, [ErrNameResolution] by default.
	Err error
}

func (e *NameError) Error() string {
	msg := fmt.Sprintf("%v: unresolved %s %q", e.Err, e.Kind, e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *NameError) Unwrap() error {
	return e.Err
}

// Unresolved returns a [NameError] matching [ErrNameResolution]
// for the given name, suggesting the most similar of the candidates.
func Unresolved(kind, name string, candidates []string) *NameError {
	return &NameError{Kind: kind, Name: name, Suggestion: Suggest(name, candidates), Err: ErrNameResolution}
}

// SuggestThreshold is the minimum similarity, between 0 and 1,
// for [Suggest] to propose a candidate.
var SuggestThreshold = 0.5

// Suggest returns the candidate most similar to name by edit distance,
// or "" if none reaches [SuggestThreshold].
func Suggest(name string, candidates []string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", SuggestThreshold
	for _, c := range candidates {
		if c == name {
			continue
		}
		if sim := strutil.Similarity(name, c, lev); sim >= bestSim {
			best, bestSim = c, sim
		}
	}
	return best
}
