// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strings"

	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// Opcodes are the operations of the expression machine.
type Opcodes int32

const (
	// OpLiteral pushes Value.
	OpLiteral Opcodes = iota

	// OpVariable pushes the value of the variable Name.
	OpVariable

	// OpArray pops N values and pushes them as an array.
	OpArray

	// OpDict pops len(Keys) values and pushes them as a dictionary.
	OpDict

	// OpIndex pops an index and a container and pushes the element.
	OpIndex

	// OpCall pops N positional arguments and calls the array function Name.
	OpCall

	// OpCallNamed pops len(Keys) named arguments and calls the dictionary function Name.
	OpCallNamed

	OpNeg
	OpNot
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNotEqual

	// OpAnd pops a bool; if true, evaluates Sub[0] for the result.
	OpAnd

	// OpOr pops a bool; if false, evaluates Sub[0] for the result.
	OpOr

	// OpIfElse pops a bool and evaluates Sub[0] if true, else Sub[1].
	OpIfElse
)

var opNames = [...]string{
	"literal", "variable", "array", "dict", "index", "call", "call_named",
	"neg", "!", "+", "-", "*", "/", "%", "<", "<=", ">", ">=", "==", "!=",
	"&&", "||", "?:",
}

func (op Opcodes) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "invalid"
	}
	return opNames[op]
}

// Instruction is one postfix operation.
type Instruction struct {
	Op    Opcodes
	Value values.Value
	Name  symbol.Symbol
	Keys  []symbol.Symbol
	N     int
	Sub   []Expression
}

// Expression is an immutable, parsed expression in postfix form.
// The zero value is the empty expression, which evaluates to the
// empty value.
type Expression struct {
	code []Instruction
	src  string
}

// New returns an expression for the given postfix code.
// The source text is used only for printing.
func New(src string, code ...Instruction) Expression {
	return Expression{code: code, src: src}
}

// Literal returns an expression that evaluates to the given value.
func Literal(v values.Value) Expression {
	return Expression{code: []Instruction{{Op: OpLiteral, Value: v}}}
}

// Variable returns an expression that evaluates to the given variable.
func Variable(name symbol.Symbol) Expression {
	return Expression{code: []Instruction{{Op: OpVariable, Name: name}}, src: name.Name()}
}

// IsZero returns whether this is the empty expression.
func (e Expression) IsZero() bool {
	return len(e.code) == 0
}

// Code returns a copy of the postfix instructions.
func (e Expression) Code() []Instruction {
	return append([]Instruction(nil), e.code...)
}

// Source returns the source text the expression was parsed from, if any.
func (e Expression) Source() string {
	return e.src
}

// String returns the source text if known, and otherwise
// the postfix instructions.
func (e Expression) String() string {
	if e.src != "" {
		return e.src
	}
	if len(e.code) == 1 && e.code[0].Op == OpLiteral {
		return e.code[0].Value.String()
	}
	var b strings.Builder
	for i, in := range e.code {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch in.Op {
		case OpLiteral:
			b.WriteString(in.Value.String())
		case OpVariable:
			b.WriteString(in.Name.Name())
		case OpArray, OpCall:
			fmt.Fprintf(&b, "%v/%d", in.Op, in.N)
		default:
			b.WriteString(in.Op.String())
		}
		if in.Op == OpCall || in.Op == OpCallNamed {
			b.WriteString(":" + in.Name.Name())
		}
		for _, s := range in.Sub {
			b.WriteString(" {" + s.String() + "}")
		}
	}
	return b.String()
}

// Variables returns the names of the variables the expression
// reads, in order of first appearance, including those inside
// lazily evaluated operands.
func (e Expression) Variables() []symbol.Symbol {
	var names []symbol.Symbol
	seen := map[symbol.Symbol]bool{}
	var walk func(e Expression)
	walk = func(e Expression) {
		for _, in := range e.code {
			if in.Op == OpVariable && !seen[in.Name] {
				seen[in.Name] = true
				names = append(names, in.Name)
			}
			for _, s := range in.Sub {
				walk(s)
			}
		}
	}
	walk(e)
	return names
}
