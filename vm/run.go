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

import "strconv"

// Run executes the assembled program from its entry point and returns the
// program's exit code.
//
// The fetch step advances the instruction pointer before the instruction
// runs, so any instruction reading it sees the index of the instruction
// after itself. CALL relies on this: the saved return address is the
// instruction following the CALL.
//
// A runtime error aborts execution and is returned as a *RunError annotated
// with the name of the failing instruction; the exit code is then 1.
func (m *Instance) Run() (int, error) {
	m.hci.Log("Stack machine v"+Version+". Running assembled program...\n", LogEvent)

	var cur *op
	for {
		o, err := m.code.get(m.ip)
		if err != nil {
			return 1, &RunError{Op: opName(cur), Err: err}
		}
		cur = o
		m.ip++

		m.hci.Debug(m.data.String(), o.displayName())

		if err := o.exec(m); err != nil {
			return 1, &RunError{Op: o.displayName(), Err: err}
		}
		if m.halt {
			break
		}
	}

	m.hci.Log("Program exited successfully with code "+strconv.Itoa(m.exitCode)+".\n", LogEvent)
	return m.exitCode, nil
}

func opName(o *op) string {
	if o == nil {
		return ""
	}
	return o.displayName()
}
