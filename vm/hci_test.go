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

package vm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/Tzolkat/stackmachineproject/vm"
)

// C is shorthand for an expected stack, bottom first.
type C []vm.Value

// testHCI collects everything the machine emits and serves scripted input.
type testHCI struct {
	in        []string
	out       strings.Builder
	errs      strings.Builder
	logs      strings.Builder
	verbosity int
	debug     bool
	debugged  []string
}

func (h *testHCI) GetLine() (string, error) {
	if len(h.in) == 0 {
		return "", io.EOF
	}
	s := h.in[0]
	h.in = h.in[1:]
	return s, nil
}

func (h *testHCI) Print(s string) { h.out.WriteString(s) }
func (h *testHCI) Error(s string) { h.errs.WriteString(s) }

func (h *testHCI) Log(s string, level int) {
	if level <= h.verbosity {
		h.logs.WriteString(s)
	}
}

func (h *testHCI) Debug(stack, op string) {
	if h.debug {
		h.debugged = append(h.debugged, stack+": "+op)
	}
}

func (h *testHCI) SetDebug(on bool) { h.debug = on }

// setup assembles src on a fresh machine, failing the test on assembly
// errors.
func setup(t *testing.T, src string, opts ...vm.Option) (*vm.Instance, *testHCI) {
	t.Helper()
	h := &testHCI{}
	m, err := vm.New(h, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.Assemble(t.Name(), strings.NewReader(src)); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	return m, h
}

// runSource assembles and runs src with the given input lines.
func runSource(t *testing.T, src string, input ...string) (*vm.Instance, *testHCI, int, error) {
	t.Helper()
	h := &testHCI{in: input}
	m, err := vm.New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := m.Assemble(t.Name(), strings.NewReader(src)); err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	code, err := m.Run()
	return m, h, code, err
}

func checkStack(t *testing.T, m *vm.Instance, want C) {
	t.Helper()
	got := m.Data()
	if len(got) != len(want) {
		t.Fatalf("stack depth: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stack[%d]: got %v (%s), want %v (%s)",
				i, got[i], got[i].Kind(), want[i], want[i].Kind())
		}
	}
}
