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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Conversion instructions.
var convInstructions = map[string]instFn{
	"BTOI":     instBToI,
	"BTOF":     instBToF,
	"ITOB":     instIToB,
	"ITOF":     instIToF,
	"FTOB":     instFToB,
	"FTOI":     instFToI,
	"STRTOB":   instStrToB,
	"STRTOI":   instStrToI,
	"STRTOF":   instStrToF,
	"HEXTOI":   instHexToI,
	"ITOHEX":   instIToHex,
	"TOSTRING": instToString,
	"CTOIR":    instCToIR,
	"IRTOC":    instIRToC,
	"TOUPPER":  instToUpper,
	"TOLOWER":  instToLower,
}

// BTOI ( b -- i )
func instBToI(m *Instance) error {
	b, err := m.data.PopBool()
	if err != nil {
		return err
	}
	var i int32
	if b {
		i = 1
	}
	return m.data.Push(Int(i))
}

// BTOF ( b -- f )
func instBToF(m *Instance) error {
	b, err := m.data.PopBool()
	if err != nil {
		return err
	}
	var f float64
	if b {
		f = 1.0
	}
	return m.data.Push(Float(f))
}

// ITOB ( i -- b ) Zero is false, anything else is true.
func instIToB(m *Instance) error {
	i, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.data.Push(Bool(i != 0))
}

// ITOF ( i -- f )
func instIToF(m *Instance) error {
	i, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.data.Push(Float(float64(i)))
}

// FTOB ( f -- b ) Zero is false, anything else is true.
func instFToB(m *Instance) error {
	f, err := m.data.PopFloat()
	if err != nil {
		return err
	}
	return m.data.Push(Bool(f != 0.0))
}

// FTOI ( f -- i ) Truncates toward zero.
func instFToI(m *Instance) error {
	f, err := m.data.PopFloat()
	if err != nil {
		return err
	}
	return m.data.Push(Int(truncToInt32(f)))
}

// STRTOB ( c1..cn i -- b ) True only for the literal "true", in any case.
func instStrToB(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	return m.data.Push(Bool(strings.EqualFold(s, "true")))
}

// STRTOI ( c1..cn i -- i )
func instStrToI(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return errors.New("Character range does not represent a valid integer.")
	}
	return m.data.Push(Int(int32(n)))
}

// STRTOF ( c1..cn i -- f )
func instStrToF(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("Character range does not represent a valid float.")
	}
	return m.data.Push(Float(f))
}

// HEXTOI ( c1..cn i -- i )
func instHexToI(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	n, err := strconv.ParseUint(strings.ReplaceAll(s, "0x", ""), 16, 32)
	if err != nil {
		return errors.New("Character range does not represent valid hexadecimal.")
	}
	return m.data.Push(Int(int32(uint32(n))))
}

// ITOHEX ( i -- c1..cn i ) Lower-case, no 0x prefix.
func instIToHex(m *Instance) error {
	i, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.data.PushCharRange(strconv.FormatUint(uint64(uint32(i)), 16))
}

// TOSTRING ( o -- c1..cn i ) Characters render quoted.
func instToString(m *Instance) error {
	v, err := m.data.Pop()
	if err != nil {
		return err
	}
	return m.data.PushCharRange(v.Quote())
}

// CTOIR ( c -- i )
func instCToIR(m *Instance) error {
	c, err := m.data.PopChar()
	if err != nil {
		return err
	}
	return m.data.Push(Int(int32(c)))
}

// IRTOC ( i -- c )
func instIRToC(m *Instance) error {
	i, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.data.Push(Char(byte(i)))
}

// TOUPPER ( c -- c )
func instToUpper(m *Instance) error {
	c, err := m.data.PopChar()
	if err != nil {
		return err
	}
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return m.data.Push(Char(c))
}

// TOLOWER ( c -- c )
func instToLower(m *Instance) error {
	c, err := m.data.PopChar()
	if err != nil {
		return err
	}
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return m.data.Push(Char(c))
}
