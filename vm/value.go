// This file is part of stackmachine - https://github.com/Tzolkat/stackmachineproject
//
// Copyright 2018 Jason Jones
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the runtime tag of a Value.
type Kind uint8

// Value kinds.
const (
	KindBool Kind = iota
	KindChar
	KindInt
	KindFloat
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindLabel:
		return "label"
	}
	return "unknown"
}

// Label names a position in the code segment. Labels are first-class values:
// the assembler pushes them for label references and the jump instructions
// pop them.
type Label struct {
	Name    string
	Pointer int
}

func (l *Label) String() string {
	return l.Name + "{" + strconv.Itoa(l.Pointer) + "}"
}

// Value is a tagged machine value. The payload of the scalar kinds is packed
// into a single word; labels are carried by pointer.
type Value struct {
	kind Kind
	bits uint64
	lbl  *Label
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{kind: KindBool, bits: n}
}

// Char returns a character Value. The machine's character set is ASCII; c is
// stored as a single byte.
func Char(c byte) Value {
	return Value{kind: KindChar, bits: uint64(c)}
}

// Int returns an integer Value.
func Int(i int32) Value {
	return Value{kind: KindInt, bits: uint64(uint32(i))}
}

// Float returns a float Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, bits: math.Float64bits(f)}
}

// LabelRef returns a label Value.
func LabelRef(l *Label) Value {
	return Value{kind: KindLabel, lbl: l}
}

// Kind returns the runtime tag of v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Valid only when Kind is KindBool.
func (v Value) Bool() bool { return v.bits != 0 }

// Char returns the character payload. Valid only when Kind is KindChar.
func (v Value) Char() byte { return byte(v.bits) }

// Int returns the integer payload. Valid only when Kind is KindInt.
func (v Value) Int() int32 { return int32(uint32(v.bits)) }

// Float returns the float payload. Valid only when Kind is KindFloat.
func (v Value) Float() float64 { return math.Float64frombits(v.bits) }

// Label returns the label payload. Valid only when Kind is KindLabel.
func (v Value) Label() *Label { return v.lbl }

// String returns the plain textual form of v, the one PRINT and ERROR emit.
// Characters print bare, without quotes.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindChar:
		return string(v.Char())
	case KindInt:
		return strconv.Itoa(int(v.Int()))
	case KindFloat:
		return formatFloat(v.Float())
	case KindLabel:
		return v.lbl.String()
	}
	return "?"
}

// Quote returns the quoted textual form of v: characters are wrapped in
// single quotes, everything else is as String. Used by TOSTRING, the stack
// snapshot and the display name of synthesized PUSH records.
func (v Value) Quote() string {
	if v.kind == KindChar {
		return "'" + string(v.Char()) + "'"
	}
	return v.String()
}

// formatFloat keeps integral floats visibly floats, so 15.0 does not print
// as the integer 15.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
