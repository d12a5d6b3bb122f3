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
	"regexp"
	"strconv"
	"strings"
)

// Comparison and type-inspection instructions.
var compareInstructions = map[string]instFn{
	"ISBOOL":  isKind(KindBool),
	"ISCHAR":  isKind(KindChar),
	"ISINT":   isKind(KindInt),
	"ISFLOAT": isKind(KindFloat),

	"STRISBOOL":  instStrIsBool,
	"STRISINT":   instStrIsInt,
	"STRISHEX":   instStrIsHex,
	"STRISFLOAT": instStrIsFloat,

	"CEQUALS":    charCompare(func(a, b byte) bool { return a == b }),
	"CGREATER":   charCompare(func(a, b byte) bool { return a > b }),
	"CGREATEREQ": charCompare(func(a, b byte) bool { return a >= b }),
	"CLESS":      charCompare(func(a, b byte) bool { return a < b }),
	"CLESSEQ":    charCompare(func(a, b byte) bool { return a <= b }),

	"IEQUALS":    intCompare(func(a, b int32) bool { return a == b }),
	"IGREATER":   intCompare(func(a, b int32) bool { return a > b }),
	"IGREATEREQ": intCompare(func(a, b int32) bool { return a >= b }),
	"ILESS":      intCompare(func(a, b int32) bool { return a < b }),
	"ILESSEQ":    intCompare(func(a, b int32) bool { return a <= b }),

	"FEQUALS":    instFEquals,
	"FGREATER":   floatCompare(func(a, b float64) bool { return a > b }),
	"FGREATEREQ": floatCompare(func(a, b float64) bool { return a >= b }),
	"FLESS":      floatCompare(func(a, b float64) bool { return a < b }),
	"FLESSEQ":    floatCompare(func(a, b float64) bool { return a <= b }),
}

var (
	strBoolRe = regexp.MustCompile(`^(true|false)$`)
	strIntRe  = regexp.MustCompile(`^-?[0-9]{1,10}$`)
	strHexRe  = regexp.MustCompile(`^(0x)?[0-9a-f]{1,8}$`)
)

// ISBOOL, ISCHAR, ISINT, ISFLOAT ( o -- b )
func isKind(k Kind) instFn {
	return func(m *Instance) error {
		v, err := m.data.Pop()
		if err != nil {
			return err
		}
		return m.data.Push(Bool(v.Kind() == k))
	}
}

// STRISBOOL ( c1..cn i -- b )
func instStrIsBool(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	return m.data.Push(Bool(strBoolRe.MatchString(strings.ToLower(s))))
}

// STRISINT ( c1..cn i -- b ) The range must both look like a decimal
// integer and fit in 32 bits.
func instStrIsInt(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	ok := strIntRe.MatchString(s)
	if ok {
		_, perr := strconv.ParseInt(s, 10, 32)
		ok = perr == nil
	}
	return m.data.Push(Bool(ok))
}

// STRISHEX ( c1..cn i -- b )
func instStrIsHex(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	return m.data.Push(Bool(strHexRe.MatchString(strings.ToLower(s))))
}

// STRISFLOAT ( c1..cn i -- b )
func instStrIsFloat(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	_, perr := strconv.ParseFloat(s, 64)
	return m.data.Push(Bool(perr == nil))
}

// CEQUALS, CGREATER, CGREATEREQ, CLESS, CLESSEQ ( c1 c2 -- b )
func charCompare(cmp func(a, b byte) bool) instFn {
	return func(m *Instance) error {
		c2, err := m.data.PopChar()
		if err != nil {
			return err
		}
		c1, err := m.data.PopChar()
		if err != nil {
			return err
		}
		return m.data.Push(Bool(cmp(c1, c2)))
	}
}

// IEQUALS, IGREATER, IGREATEREQ, ILESS, ILESSEQ ( i1 i2 -- b )
func intCompare(cmp func(a, b int32) bool) instFn {
	return func(m *Instance) error {
		i1, i2, err := popInt2(m)
		if err != nil {
			return err
		}
		return m.data.Push(Bool(cmp(i1, i2)))
	}
}

// FGREATER, FGREATEREQ, FLESS, FLESSEQ ( f1 f2 -- b )
func floatCompare(cmp func(a, b float64) bool) instFn {
	return func(m *Instance) error {
		f1, f2, err := popFloat2(m)
		if err != nil {
			return err
		}
		return m.data.Push(Bool(cmp(f1, f2)))
	}
}

// FEQUALS ( f1 f2 -- b ) Equality of bit patterns, so bit-identical NaNs
// compare equal and -0.0 differs from 0.0.
func instFEquals(m *Instance) error {
	f1, f2, err := popFloat2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Bool(math.Float64bits(f1) == math.Float64bits(f2)))
}
