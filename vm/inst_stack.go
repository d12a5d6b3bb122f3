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

import "github.com/pkg/errors"

// Stack manipulation instructions. Stack effects are noted in Forth
// convention, top of stack rightmost.
var stackInstructions = map[string]instFn{
	"POP":    instPop,
	"POPN":   instPopN,
	"DUP":    instDup,
	"DUPN":   instDupN,
	"SWAP":   instSwap,
	"ROTATE": instRotate,
	"PICK":   instPick,
	"PUT":    instPut,
	"DEPTH":  instDepth,
	"JOIN":   instJoin,
	"SPLIT":  instSplit,
}

// POP ( o -- )
func instPop(m *Instance) error {
	_, err := m.data.Pop()
	return err
}

// POPN ( o1..on i -- )
func instPopN(m *Instance) error {
	num, err := m.data.PopInt()
	if err != nil {
		return err
	}
	if num < 1 {
		return errors.New("Number of items must be greater than zero.")
	}
	for i := int32(0); i < num; i++ {
		if _, err = m.data.Pop(); err != nil {
			return err
		}
	}
	return nil
}

// DUP ( o -- o o )
func instDup(m *Instance) error {
	return m.data.Dup()
}

// DUPN ( o1..on i -- o1..on o1..on ) Picking at a fixed depth n times walks
// the original range bottom to top as the copies pile up.
func instDupN(m *Instance) error {
	num, err := m.data.PopInt()
	if err != nil {
		return err
	}
	if num < 1 {
		return errors.New("Number of items must be greater than zero.")
	}
	for i := int32(0); i < num; i++ {
		if err = m.data.Pick(int(num)); err != nil {
			return err
		}
	}
	return nil
}

// SWAP ( o1 o2 -- o2 o1 )
func instSwap(m *Instance) error {
	return m.data.Swap()
}

// ROTATE ( o1..on i -- * ) +i rotates clockwise, -i counterclockwise.
func instRotate(m *Instance) error {
	num, err := m.data.PopInt()
	if err != nil {
		return err
	}
	n := num
	if n < 0 {
		n = -n
	}
	return m.data.Rotate(int(n), num > 0)
}

// PICK ( o1..on i -- * x )
func instPick(m *Instance) error {
	num, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.data.Pick(int(num))
}

// PUT ( o1..on o i -- * )
func instPut(m *Instance) error {
	num, err := m.data.PopInt()
	if err != nil {
		return err
	}
	v, err := m.data.Pop()
	if err != nil {
		return err
	}
	return m.data.Put(v, int(num))
}

// DEPTH ( -- i )
func instDepth(m *Instance) error {
	return m.data.Push(Int(int32(m.data.Depth())))
}

// JOIN ( o1..on i -- * ) String concatenation for char ranges.
func instJoin(m *Instance) error {
	return m.data.Join()
}

// SPLIT ( o1..on i i1 -- * )
func instSplit(m *Instance) error {
	idx, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.data.Split(idx)
}
