// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"math"

	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// VariableLookup resolves a variable name to its value.
type VariableLookup func(name symbol.Symbol) (values.Value, error)

// DictFunctionLookup calls the named function with named arguments.
type DictFunctionLookup func(name symbol.Symbol, args *values.Dictionary) (values.Value, error)

// ArrayFunctionLookup calls the named function with positional arguments.
type ArrayFunctionLookup func(name symbol.Symbol, args []values.Value) (values.Value, error)

// Machine evaluates expressions against its lookup functions.
// A nil lookup resolves nothing. The stack is reused between
// evaluations, so a Machine must not be used concurrently.
type Machine struct {
	Variables      VariableLookup
	DictFunctions  DictFunctionLookup
	ArrayFunctions ArrayFunctionLookup

	stack []values.Value
}

// Evaluate evaluates the expression with a new [Machine]
// using the given lookup functions.
func Evaluate(e Expression, vars VariableLookup, dictFns DictFunctionLookup, arrayFns ArrayFunctionLookup) (values.Value, error) {
	m := &Machine{Variables: vars, DictFunctions: dictFns, ArrayFunctions: arrayFns}
	return m.Evaluate(e)
}

// Evaluate evaluates the expression. An error aborts only this evaluation.
func (m *Machine) Evaluate(e Expression) (values.Value, error) {
	base := len(m.stack)
	err := m.run(e)
	if err != nil {
		m.stack = m.stack[:base]
		return values.Value{}, err
	}
	if len(m.stack) == base {
		return values.Value{}, nil
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:base]
	return v, nil
}

func (m *Machine) push(v values.Value) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop() values.Value {
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}

// popN pops n values, returning them in push order.
func (m *Machine) popN(n int) []values.Value {
	vs := append([]values.Value(nil), m.stack[len(m.stack)-n:]...)
	m.stack = m.stack[:len(m.stack)-n]
	return vs
}

func (m *Machine) run(e Expression) error {
	for _, in := range e.code {
		if err := m.step(in); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) step(in Instruction) error {
	switch in.Op {
	case OpLiteral:
		m.push(in.Value)
	case OpVariable:
		if m.Variables == nil {
			return Unresolved("variable", in.Name.Name(), nil)
		}
		v, err := m.Variables(in.Name)
		if err != nil {
			return err
		}
		m.push(v)
	case OpArray:
		m.push(values.MakeArray(m.popN(in.N)...))
	case OpDict:
		m.push(values.MakeDict(m.popDict(in.Keys)))
	case OpIndex:
		idx := m.pop()
		v, err := index(m.pop(), idx)
		if err != nil {
			return err
		}
		m.push(v)
	case OpCall:
		args := m.popN(in.N)
		if m.ArrayFunctions == nil {
			return Unresolved("function", in.Name.Name(), nil)
		}
		v, err := m.ArrayFunctions(in.Name, args)
		if err != nil {
			return err
		}
		m.push(v)
	case OpCallNamed:
		args := m.popDict(in.Keys)
		if m.DictFunctions == nil {
			return Unresolved("function", in.Name.Name(), nil)
		}
		v, err := m.DictFunctions(in.Name, args)
		if err != nil {
			return err
		}
		m.push(v)
	case OpNeg:
		n, err := m.pop().AsNumber()
		if err != nil {
			return fmt.Errorf("operand of -: %w", err)
		}
		m.push(values.MakeNumber(-n))
	case OpNot:
		b, err := m.pop().AsBool()
		if err != nil {
			return fmt.Errorf("operand of !: %w", err)
		}
		m.push(values.MakeBool(!b))
	case OpAnd, OpOr:
		b, err := m.pop().AsBool()
		if err != nil {
			return fmt.Errorf("operand of %v: %w", in.Op, err)
		}
		if b == (in.Op == OpOr) {
			m.push(values.MakeBool(b))
			return nil
		}
		return m.boolOperand(in)
	case OpIfElse:
		b, err := m.pop().AsBool()
		if err != nil {
			return fmt.Errorf("condition of ?: %w", err)
		}
		if b {
			return m.run(in.Sub[0])
		}
		return m.run(in.Sub[1])
	case OpEqual, OpNotEqual:
		b := m.pop()
		a := m.pop()
		m.push(values.MakeBool(values.Equal(a, b) == (in.Op == OpEqual)))
	case OpLess, OpLessEqual, OpGreater, OpGreaterEqual:
		b := m.pop()
		a := m.pop()
		c, err := values.Compare(a, b)
		if err != nil {
			return fmt.Errorf("operands of %v: %w", in.Op, err)
		}
		var r bool
		switch in.Op {
		case OpLess:
			r = c < 0
		case OpLessEqual:
			r = c <= 0
		case OpGreater:
			r = c > 0
		default:
			r = c >= 0
		}
		m.push(values.MakeBool(r))
	default:
		b := m.pop()
		a := m.pop()
		v, err := arithmetic(in.Op, a, b)
		if err != nil {
			return err
		}
		m.push(v)
	}
	return nil
}

// boolOperand evaluates the right operand of && or ||, which must be a bool.
func (m *Machine) boolOperand(in Instruction) error {
	if err := m.run(in.Sub[0]); err != nil {
		return err
	}
	v := m.pop()
	if _, err := v.AsBool(); err != nil {
		return fmt.Errorf("operand of %v: %w", in.Op, err)
	}
	m.push(v)
	return nil
}

func (m *Machine) popDict(keys []symbol.Symbol) *values.Dictionary {
	vs := m.popN(len(keys))
	d := values.NewDict()
	for i, k := range keys {
		d.Set(k, vs[i])
	}
	return d
}

func arithmetic(op Opcodes, a, b values.Value) (values.Value, error) {
	if op == OpAdd && a.Kind() == values.String && b.Kind() == values.String {
		as, _ := a.TryString()
		bs, _ := b.TryString()
		return values.MakeString(as + bs), nil
	}
	x, err := a.AsNumber()
	if err != nil {
		return values.Value{}, fmt.Errorf("operands of %v: %w", op, err)
	}
	y, err := b.AsNumber()
	if err != nil {
		return values.Value{}, fmt.Errorf("operands of %v: %w", op, err)
	}
	switch op {
	case OpAdd:
		return values.MakeNumber(x + y), nil
	case OpSub:
		return values.MakeNumber(x - y), nil
	case OpMul:
		return values.MakeNumber(x * y), nil
	case OpDiv:
		if y == 0 {
			return values.Value{}, fmt.Errorf("%w: division by zero", ErrArithmetic)
		}
		return values.MakeNumber(x / y), nil
	case OpMod:
		if y == 0 {
			return values.Value{}, fmt.Errorf("%w: modulus by zero", ErrArithmetic)
		}
		return values.MakeNumber(math.Mod(x, y)), nil
	}
	return values.Value{}, fmt.Errorf("expr: invalid opcode %v", op)
}

// index returns the element of an array at a number index, or the entry
// of a dictionary at a symbol or string key.
func index(c, idx values.Value) (values.Value, error) {
	switch c.Kind() {
	case values.Array:
		n, err := idx.AsNumber()
		if err != nil {
			return values.Value{}, fmt.Errorf("array index: %w", err)
		}
		i := int(n)
		if float64(i) != n {
			return values.Value{}, fmt.Errorf("%w: array index %v is not an integer", ErrIndex, n)
		}
		v, ok := c.Index(i)
		if !ok {
			return values.Value{}, fmt.Errorf("%w: index %d out of range [0:%d]", ErrIndex, i, c.Len())
		}
		return v, nil
	case values.Dict:
		if key, ok := idx.TrySymbol(); ok {
			v, ok := c.Field(key)
			if !ok {
				return values.Value{}, fmt.Errorf("%w: no key %v", ErrIndex, idx)
			}
			return v, nil
		}
		if name, ok := idx.TryString(); ok {
			d, _ := c.TryDict()
			var found values.Value
			ok := false
			d.Range(func(k symbol.Symbol, v values.Value) bool {
				if k.Name() == name {
					found, ok = v, true
				}
				return !ok
			})
			if !ok {
				return values.Value{}, fmt.Errorf("%w: no key %v", ErrIndex, idx)
			}
			return found, nil
		}
		return values.Value{}, fmt.Errorf("dictionary key: %w: expected symbol, got %v", values.ErrTypeMismatch, idx.Kind())
	}
	return values.Value{}, fmt.Errorf("%w: cannot index %v", values.ErrTypeMismatch, c.Kind())
}
