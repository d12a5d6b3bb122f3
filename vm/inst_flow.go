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
	"strings"
	"time"

	"github.com/Tzolkat/stackmachineproject/asm"
	"github.com/pkg/errors"
)

// Control flow instructions. BEGIN is an assembler directive, not an
// instruction.
var flowInstructions = map[string]instFn{
	"EXIT":    instExit,
	"ABORT":   instAbort,
	"JUMP":    instJump,
	"CJUMP":   instCJump,
	"CALL":    instCall,
	"RETURN":  instReturn,
	"SLEEP":   instSleep,
	"EXECUTE": instExecute,
}

// EXIT ( i -- )
func instExit(m *Instance) error {
	code, err := m.data.PopInt()
	if err != nil {
		return err
	}
	m.exitCode = int(code)
	m.halt = true
	return nil
}

// ABORT ( c1..cn i -- )
func instAbort(m *Instance) error {
	msg, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	return errors.New(msg)
}

// JUMP ( l -- )
func instJump(m *Instance) error {
	l, err := m.data.PopLabel()
	if err != nil {
		return err
	}
	m.ip = l.Pointer
	return nil
}

// CJUMP ( b l -- ) The label pops first, then the condition.
func instCJump(m *Instance) error {
	l, err := m.data.PopLabel()
	if err != nil {
		return err
	}
	b, err := m.data.PopBool()
	if err != nil {
		return err
	}
	if b {
		m.ip = l.Pointer
	}
	return nil
}

// CALL ( l -- ) The instruction pointer already names the instruction after
// the CALL, which is exactly the return address to save.
func instCall(m *Instance) error {
	l, err := m.data.PopLabel()
	if err != nil {
		return err
	}
	if err := m.calls.Push(m.ip); err != nil {
		return err
	}
	m.ip = l.Pointer
	return nil
}

// RETURN ( -- )
func instReturn(m *Instance) error {
	ip, err := m.calls.Pop()
	if err != nil {
		return err
	}
	m.ip = ip
	return nil
}

// SLEEP ( i -- ) An interrupt while sleeping halts the program with exit
// code 1.
func instSleep(m *Instance) error {
	ms, err := m.data.PopInt()
	if err != nil {
		return err
	}
	if ms < 1 {
		return errors.New("Sleep time must be greater than zero.")
	}
	t := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer t.Stop()
	select {
	case <-t.C:
	case <-m.interrupt:
		m.exitCode = 1
		m.halt = true
	}
	return nil
}

// EXECUTE ( c1..cn i -- i ) Assembles and runs a character range as a
// program of its own. The nested program gets a fresh code segment and call
// stack but shares the data stack and disk; assembly or runtime errors in
// it are reported on the error stream and do not abort the outer program.
func instExecute(m *Instance) error {
	if m.execDepth >= maxExecDepth {
		return errors.New("Maximum EXECUTE depth exceeded.")
	}
	src, err := m.data.PopCharRange()
	if err != nil {
		return err
	}

	saveCode, saveCalls, saveIP := m.code, m.calls, m.ip
	m.code, m.calls, m.ip = newCodeSegment(), &CallStack{}, -1
	m.execDepth++
	defer func() {
		m.execDepth--
		m.code, m.calls, m.ip = saveCode, saveCalls, saveIP
		m.exitCode = 0
		m.halt = false
	}()

	m.hci.Log("Stack machine v"+Version+". Assembling code from character range...\n", LogEvent)
	if err := m.assemble(asm.NewScanner("EXECUTE", strings.NewReader(src))); err != nil {
		m.hci.Error((&AsmError{Err: err}).Error() + "\n")
		return nil
	}
	code, err := m.Run()
	if err != nil {
		m.hci.Error(err.Error() + "\n")
		return nil
	}
	if err := m.data.Push(Int(int32(code))); err != nil {
		m.hci.Error((&RunError{Op: "EXECUTE", Err: err}).Error() + "\n")
	}
	return nil
}
