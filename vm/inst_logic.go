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

// Boolean logic and bitwise instructions.
var logicInstructions = map[string]instFn{
	"AND": instAnd,
	"OR":  instOr,
	"XOR": instXor,
	"NOT": instNot,

	"BITAND": instBitAnd,
	"BITOR":  instBitOr,
	"BITXOR": instBitXor,
	"SHIFTL": instShiftL,
	"SHIFTR": instShiftR,
}

func popBool2(m *Instance) (b1, b2 bool, err error) {
	b2, err = m.data.PopBool()
	if err != nil {
		return
	}
	b1, err = m.data.PopBool()
	return
}

// AND ( b1 b2 -- b )
func instAnd(m *Instance) error {
	b1, b2, err := popBool2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Bool(b1 && b2))
}

// OR ( b1 b2 -- b )
func instOr(m *Instance) error {
	b1, b2, err := popBool2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Bool(b1 || b2))
}

// XOR ( b1 b2 -- b )
func instXor(m *Instance) error {
	b1, b2, err := popBool2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Bool(b1 != b2))
}

// NOT ( b -- b )
func instNot(m *Instance) error {
	b, err := m.data.PopBool()
	if err != nil {
		return err
	}
	return m.data.Push(Bool(!b))
}

func popInt2(m *Instance) (i1, i2 int32, err error) {
	i2, err = m.data.PopInt()
	if err != nil {
		return
	}
	i1, err = m.data.PopInt()
	return
}

// BITAND ( i1 i2 -- i )
func instBitAnd(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Int(i1 & i2))
}

// BITOR ( i1 i2 -- i )
func instBitOr(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Int(i1 | i2))
}

// BITXOR ( i1 i2 -- i )
func instBitXor(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Int(i1 ^ i2))
}

// SHIFTL ( i1 i2 -- i ) The shift count is taken modulo 32.
func instShiftL(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Int(i1 << (uint32(i2) & 31)))
}

// SHIFTR ( i1 i2 -- i ) Arithmetic shift; the count is taken modulo 32.
func instShiftR(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Int(i1 >> (uint32(i2) & 31)))
}
