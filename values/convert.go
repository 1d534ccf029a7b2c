// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package values

import (
	"fmt"
	"sort"

	"cogentcore.org/eve/symbol"
)

// Any returns the value as plain Go data: nil, bool, float64,
// string, []any or map[string]any. Symbols become their names,
// so this conversion loses the distinction between symbols and strings.
func (v Value) Any() any {
	switch v.kind {
	case Bool:
		return v.num != 0
	case Number:
		return v.num
	case String:
		return v.str
	case Symbol:
		return v.sym.Name()
	case Array:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Any()
		}
		return out
	case Dict:
		out := make(map[string]any, v.dict.Len())
		v.dict.Range(func(k symbol.Symbol, e Value) bool {
			out[k.Name()] = e.Any()
			return true
		})
		return out
	}
	return nil
}

// FromAny converts plain Go data, as produced by decoders such as
// TOML or JSON, into a value. Map keys are interned in the given table.
func FromAny(a any, tab *symbol.Table) (Value, error) {
	switch x := a.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return x, nil
	case bool:
		return MakeBool(x), nil
	case int:
		return MakeNumber(float64(x)), nil
	case int64:
		return MakeNumber(float64(x)), nil
	case float32:
		return MakeNumber(float64(x)), nil
	case float64:
		return MakeNumber(x), nil
	case string:
		return MakeString(x), nil
	case symbol.Symbol:
		return MakeSymbol(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i, e := range x {
			v, err := FromAny(e, tab)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Value{kind: Array, arr: arr}, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d := NewDict()
		for _, k := range keys {
			v, err := FromAny(x[k], tab)
			if err != nil {
				return Value{}, err
			}
			d.Set(tab.Intern(k), v)
		}
		return Value{kind: Dict, dict: d}, nil
	}
	return Value{}, fmt.Errorf("%w: cannot convert %T to a value", ErrTypeMismatch, a)
}
