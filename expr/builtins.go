// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// Builtins are the array functions available to every expression
// evaluated through [WithBuiltins].
var Builtins = map[string]func(args []values.Value) (values.Value, error){
	"min": func(args []values.Value) (values.Value, error) {
		return extremum("min", args, func(a, b float64) bool { return a < b })
	},
	"max": func(args []values.Value) (values.Value, error) {
		return extremum("max", args, func(a, b float64) bool { return a > b })
	},
	"abs": func(args []values.Value) (values.Value, error) {
		n, err := oneNumber("abs", args)
		return values.MakeNumber(math.Abs(n)), err
	},
	"round": func(args []values.Value) (values.Value, error) {
		n, err := oneNumber("round", args)
		return values.MakeNumber(math.Round(n)), err
	},
	"size": func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return values.Value{}, fmt.Errorf("size: expected 1 argument, got %d", len(args))
		}
		switch args[0].Kind() {
		case values.Array, values.Dict, values.String:
			return values.MakeNumber(float64(args[0].Len())), nil
		}
		return values.Value{}, fmt.Errorf("size: %w: cannot take size of %v", values.ErrTypeMismatch, args[0].Kind())
	},
	"typeof": func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return values.Value{}, fmt.Errorf("typeof: expected 1 argument, got %d", len(args))
		}
		return values.MakeString(args[0].Kind().String()), nil
	},
}

func oneNumber(name string, args []values.Value) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: expected 1 argument, got %d", name, len(args))
	}
	n, err := args[0].AsNumber()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func extremum(name string, args []values.Value, better func(a, b float64) bool) (values.Value, error) {
	if len(args) == 1 && args[0].Kind() == values.Array {
		args, _ = args[0].TryArray()
	}
	if len(args) == 0 {
		return values.Value{}, fmt.Errorf("%s: expected at least 1 argument", name)
	}
	var best float64
	for i, a := range args {
		n, err := a.AsNumber()
		if err != nil {
			return values.Value{}, fmt.Errorf("%s: %w", name, err)
		}
		if i == 0 || better(n, best) {
			best = n
		}
	}
	return values.MakeNumber(best), nil
}

// WithBuiltins returns an array function lookup that tries the given
// lookup first and falls back on the [Builtins] when it does not
// resolve the name. The given lookup may be nil.
func WithBuiltins(fns ArrayFunctionLookup) ArrayFunctionLookup {
	return func(name symbol.Symbol, args []values.Value) (values.Value, error) {
		if fns != nil {
			v, err := fns(name, args)
			if !errors.Is(err, ErrNameResolution) {
				return v, err
			}
		}
		if f, ok := Builtins[name.Name()]; ok {
			return f(args)
		}
		names := make([]string, 0, len(Builtins))
		for n := range Builtins {
			names = append(names, n)
		}
		slices.Sort(names)
		return values.Value{}, Unresolved("function", name.Name(), names)
	}
}
