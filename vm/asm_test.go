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
	"strings"
	"testing"

	"github.com/Tzolkat/stackmachineproject/vm"
)

func assembleErr(t *testing.T, src string) error {
	t.Helper()
	h := &testHCI{}
	m, err := vm.New(h)
	if err != nil {
		t.Fatal(err)
	}
	return m.Assemble(t.Name(), strings.NewReader(src))
}

func TestAssembleErrors(t *testing.T) {
	tests := [...]struct {
		name string
		src  string
		want string
	}{
		{"duplicate label", "@A @A BEGIN 0 EXIT", "Label 'A' cannot be declared more than once.."},
		{"label case-insensitive dup", "@foo @FOO BEGIN 0 EXIT", "cannot be declared more than once"},
		{"reserved begin", "@begin BEGIN 0 EXIT", "Label name 'begin' disallowed by the assembler."},
		{"reserved true", "@True BEGIN 0 EXIT", "disallowed by the assembler."},
		{"mnemonic as label", "@EXIT BEGIN 0 EXIT", "Label name 'EXIT' disallowed by the assembler."},
		{"unknown symbol", "BEGIN Foo JUMP 0 EXIT", "Unknown symbol: FOO"},
		{"begin missing", "1 EXIT", "BEGIN is undefined or out of bounds."},
		{"begin at end", "0 EXIT BEGIN", "BEGIN is undefined or out of bounds."},
		{"begin duplicated", "BEGIN BEGIN 0 EXIT", "BEGIN cannot be defined more than once."},
		{"empty source", "", "BEGIN is undefined or out of bounds."},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := assembleErr(t, test.src)
			if err == nil {
				t.Fatalf("expected assembly error containing %q", test.want)
			}
			if _, ok := err.(*vm.AsmError); !ok {
				t.Errorf("error is %T, want *vm.AsmError", err)
			}
			if !strings.HasPrefix(err.Error(), "VMA FATAL: ") {
				t.Errorf("error %q missing VMA FATAL prefix", err)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not contain %q", err, test.want)
			}
		})
	}
}

func TestAssembleFileMissing(t *testing.T) {
	h := &testHCI{}
	m, err := vm.New(h)
	if err != nil {
		t.Fatal(err)
	}
	err = m.AssembleFile("no/such/file.svm")
	if err == nil || !strings.Contains(err.Error(), "Could not read source file.") {
		t.Fatalf("expected source file error, got %v", err)
	}
}

func TestCaseInsensitiveMnemonics(t *testing.T) {
	_, _, code, err := runSource(t, "begin 5 exit")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 5 {
		t.Errorf("exit code: got %d, want 5", code)
	}
}

func TestCaseInsensitiveLabelReference(t *testing.T) {
	src := "BEGIN\nend JUMP\n'X' PRINT\n@End\n0 EXIT\n"
	_, h, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.out.String() != "" {
		t.Errorf("output: got %q, want empty", h.out.String())
	}
}

func TestMidLineComment(t *testing.T) {
	src := "BEGIN\n1 ; this is ignored to end of line 2 IADD\n2\nIADD\n0 EXIT\n"
	m, _, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	checkStack(t, m, C{vm.Int(3)})
}

func TestStringLineWhitespace(t *testing.T) {
	// the SPACE and TAB instructions stand in for the raw characters
	src := "BEGIN\n\"\"a b\tc\nPRINTSTR\n0 EXIT\n"
	_, h, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := h.out.String(); got != "a b\tc" {
		t.Errorf("output: got %q, want %q", got, "a b\tc")
	}
}

func TestEmptyStringLineAssemblesToNothing(t *testing.T) {
	src := "BEGIN\n\"\"\n0 EXIT\n"
	m, _, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	checkStack(t, m, C{})
}

// Assembler progress notes are logged at INFO.
func TestAssembleLogging(t *testing.T) {
	h := &testHCI{verbosity: vm.LogInfo}
	m, err := vm.New(h)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Assemble("logtest", strings.NewReader("BEGIN 1 POP 0 EXIT")); err != nil {
		t.Fatal(err)
	}
	logs := h.logs.String()
	for _, want := range []string{
		"Assembling logtest...",
		"Pass 1 of 2.",
		"Parsed token as ENTRY POINT: BEGIN",
		"Parsed token as PUSH integer literal: 1",
		"Parsed token as INSTRUCTION: POP",
		"Pass 2 of 2.",
		"Assembly completed successfully.",
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("log missing %q:\n%s", want, logs)
		}
	}
}

func TestWriteListing(t *testing.T) {
	m, _ := setup(t, "BEGIN\n'x' PRINT\nEnd JUMP\n@End\n0 EXIT\n")
	var b strings.Builder
	if err := m.WriteListing(&b); err != nil {
		t.Fatal(err)
	}
	listing := b.String()
	for _, want := range []string{"PUSH['x']", "PRINT", "PUSH[End{", "JUMP", "EXIT"} {
		if !strings.Contains(listing, want) {
			t.Errorf("listing missing %q:\n%s", want, listing)
		}
	}
	if !strings.Contains(listing, "0 * PUSH['x']") {
		t.Errorf("entry point not marked in listing:\n%s", listing)
	}
}
