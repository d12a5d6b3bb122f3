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
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Tzolkat/stackmachineproject/vm"
)

// Each test fragment runs between an implicit BEGIN and a clean "0 EXIT",
// so want describes the whole remaining stack.
var coreTests = [...]struct {
	name    string
	code    string
	want    C
	out     string
	errOut  string
	wantErr string // substring of the runtime error, empty for success
}{
	// stack
	{name: "pop", code: "1 2 POP", want: C{vm.Int(1)}},
	{name: "pop empty", code: "POP", wantErr: "POP: Stack Underflow."},
	{name: "popn", code: "1 2 3 2 POPN", want: C{vm.Int(1)}},
	{name: "popn zero", code: "1 0 POPN", wantErr: "Number of items must be greater than zero."},
	{name: "dup", code: "7 DUP", want: C{vm.Int(7), vm.Int(7)}},
	{name: "dup empty", code: "DUP", wantErr: "Stack Underflow."},
	{name: "dupn", code: "1 2 2 DUPN", want: C{vm.Int(1), vm.Int(2), vm.Int(1), vm.Int(2)}},
	{name: "swap", code: "1 2 SWAP", want: C{vm.Int(2), vm.Int(1)}},
	{name: "rotate cw", code: "1 2 3 3 ROTATE", want: C{vm.Int(3), vm.Int(1), vm.Int(2)}},
	{name: "rotate ccw", code: "1 2 3 -3 ROTATE", want: C{vm.Int(2), vm.Int(3), vm.Int(1)}},
	{name: "rotate zero", code: "1 0 ROTATE", wantErr: "Number of items to rotate must be non-zero."},
	{name: "pick", code: "1 2 3 3 PICK", want: C{vm.Int(1), vm.Int(2), vm.Int(3), vm.Int(1)}},
	{name: "pick zero", code: "1 0 PICK", wantErr: "Location to pick from must be greater than zero."},
	{name: "put", code: "1 2 3 99 2 PUT", want: C{vm.Int(1), vm.Int(99), vm.Int(3)}},
	{name: "depth", code: "5 6 DEPTH", want: C{vm.Int(5), vm.Int(6), vm.Int(2)}},
	{name: "join", code: "'A' 'B' 2 'C' 1 JOIN",
		want: C{vm.Char('A'), vm.Char('B'), vm.Char('C'), vm.Int(3)}},
	{name: "join empty range", code: "'A' 1 0 JOIN", want: C{vm.Char('A'), vm.Int(1)}},
	{name: "split", code: "'A' 'B' 'C' 3 1 SPLIT",
		want: C{vm.Char('A'), vm.Int(1), vm.Char('B'), vm.Char('C'), vm.Int(2)}},
	{name: "split bad index", code: "'A' 1 1 SPLIT", wantErr: "Index must be between 0 and 0."},

	// literals
	{name: "bool literal", code: "true FALSE", want: C{vm.Bool(true), vm.Bool(false)}},
	{name: "hex literal", code: "ff 0xFF", want: C{vm.Int(255), vm.Int(255)}},
	{name: "hex before float", code: "1e5", want: C{vm.Int(0x1e5)}},
	{name: "float literal", code: "2.5 -1.5e2", want: C{vm.Float(2.5), vm.Float(-150)}},
	{name: "char literal", code: "'x' '0'", want: C{vm.Char('x'), vm.Char('0')}},
	{name: "big int becomes float", code: "2147483648", want: C{vm.Float(2147483648)}},

	// i/o
	{name: "print", code: "'A' PRINT 15 PRINT true PRINT 15.0 PRINT", out: "A15true15.0"},
	{name: "printstr", code: "\"\"Hello\nPRINTSTR", out: "Hello"},
	{name: "printstr spaces", code: "\"\"a b\tc\nPRINTSTR", out: "a b\tc"},
	{name: "error", code: "'E' ERROR", errOut: "E"},
	{name: "errorstr", code: "\"\"bad\nERRORSTR", errOut: "bad"},
	{name: "log level range", code: "'x' 4 LOG", wantErr: "Log level must be between 0 and 3."},
	{name: "whitespace chars", code: "SPACE TAB NEWLINE",
		want: C{vm.Char(' '), vm.Char('\t'), vm.Char('\n')}},
	{name: "log level consts", code: "LOGWARNING LOGEVENT LOGINFO LOGVERBOSE",
		want: C{vm.Int(0), vm.Int(1), vm.Int(2), vm.Int(3)}},

	// conversion
	{name: "btoi", code: "true BTOI false BTOI", want: C{vm.Int(1), vm.Int(0)}},
	{name: "btof", code: "true BTOF", want: C{vm.Float(1)}},
	{name: "itob", code: "0 ITOB 5 ITOB", want: C{vm.Bool(false), vm.Bool(true)}},
	{name: "itof", code: "3 ITOF", want: C{vm.Float(3)}},
	{name: "ftob", code: "0.0 FTOB 0.5 FTOB", want: C{vm.Bool(false), vm.Bool(true)}},
	{name: "ftoi", code: "39.9 FTOI -39.9 FTOI", want: C{vm.Int(39), vm.Int(-39)}},
	{name: "strtob", code: "\"\"TRUE\nSTRTOB", want: C{vm.Bool(true)}},
	{name: "strtob other", code: "\"\"yes\nSTRTOB", want: C{vm.Bool(false)}},
	{name: "strtoi", code: "\"\"15\nSTRTOI", want: C{vm.Int(15)}},
	{name: "strtoi bad", code: "\"\"abc\nSTRTOI",
		wantErr: "Character range does not represent a valid integer."},
	{name: "strtof", code: "\"\"2.5\nSTRTOF", want: C{vm.Float(2.5)}},
	{name: "strtof bad", code: "\"\"abc\nSTRTOF",
		wantErr: "Character range does not represent a valid float."},
	{name: "hextoi", code: "\"\"0xff\nHEXTOI", want: C{vm.Int(255)}},
	{name: "hextoi bad", code: "\"\"zz\nHEXTOI",
		wantErr: "Character range does not represent valid hexadecimal."},
	{name: "itohex", code: "255 ITOHEX", want: C{vm.Char('f'), vm.Char('f'), vm.Int(2)}},
	{name: "itohex negative", code: "-1 ITOHEX PRINTSTR", out: "ffffffff"},
	{name: "tostring int", code: "15 TOSTRING", want: C{vm.Char('1'), vm.Char('5'), vm.Int(2)}},
	{name: "tostring char", code: "'x' TOSTRING",
		want: C{vm.Char('\''), vm.Char('x'), vm.Char('\''), vm.Int(3)}},
	{name: "ctoir", code: "'A' CTOIR", want: C{vm.Int(65)}},
	{name: "irtoc", code: "66 IRTOC", want: C{vm.Char('B')}},
	{name: "toupper", code: "'a' TOUPPER '?' TOUPPER", want: C{vm.Char('A'), vm.Char('?')}},
	{name: "tolower", code: "'Z' TOLOWER", want: C{vm.Char('z')}},

	// logic
	{name: "and", code: "true false AND", want: C{vm.Bool(false)}},
	{name: "and both popped", code: "true true false AND", want: C{vm.Bool(true), vm.Bool(false)}},
	{name: "or", code: "false true OR", want: C{vm.Bool(true)}},
	{name: "xor", code: "true true XOR false true XOR", want: C{vm.Bool(false), vm.Bool(true)}},
	{name: "not", code: "false NOT", want: C{vm.Bool(true)}},
	{name: "and type", code: "1 2 AND", wantErr: "bool expected."},

	// bitwise
	{name: "bitand", code: "12 10 BITAND", want: C{vm.Int(8)}},
	{name: "bitor", code: "12 10 BITOR", want: C{vm.Int(14)}},
	{name: "bitxor", code: "12 10 BITXOR", want: C{vm.Int(6)}},
	{name: "shiftl", code: "1 4 SHIFTL", want: C{vm.Int(16)}},
	{name: "shiftr", code: "-16 2 SHIFTR", want: C{vm.Int(-4)}},

	// comparison
	{name: "isbool", code: "true ISBOOL 1 ISBOOL", want: C{vm.Bool(true), vm.Bool(false)}},
	{name: "ischar", code: "'x' ISCHAR", want: C{vm.Bool(true)}},
	{name: "isint", code: "5 ISINT 5.0 ISINT", want: C{vm.Bool(true), vm.Bool(false)}},
	{name: "isfloat", code: "5.0 ISFLOAT", want: C{vm.Bool(true)}},
	{name: "strisbool", code: "\"\"False\nSTRISBOOL", want: C{vm.Bool(true)}},
	{name: "strisint max", code: "\"\"2147483647\nSTRISINT", want: C{vm.Bool(true)}},
	{name: "strisint min", code: "\"\"-2147483648\nSTRISINT", want: C{vm.Bool(true)}},
	{name: "strisint overflow", code: "\"\"2147483648\nSTRISINT", want: C{vm.Bool(false)}},
	{name: "strisint junk", code: "\"\"12a\nSTRISINT", want: C{vm.Bool(false)}},
	{name: "strishex", code: "\"\"0xFF\nSTRISHEX", want: C{vm.Bool(true)}},
	{name: "strishex too long", code: "\"\"123456789\nSTRISHEX", want: C{vm.Bool(false)}},
	{name: "strisfloat", code: "\"\"2.5e3\nSTRISFLOAT", want: C{vm.Bool(true)}},
	{name: "strisfloat junk", code: "\"\"abc\nSTRISFLOAT", want: C{vm.Bool(false)}},
	{name: "cequals", code: "'a' 'a' CEQUALS 'a' 'b' CEQUALS",
		want: C{vm.Bool(true), vm.Bool(false)}},
	{name: "cgreater", code: "'b' 'a' CGREATER", want: C{vm.Bool(true)}},
	{name: "cgreatereq", code: "'a' 'a' CGREATEREQ", want: C{vm.Bool(true)}},
	{name: "cless", code: "'a' 'b' CLESS", want: C{vm.Bool(true)}},
	{name: "clesseq", code: "'b' 'a' CLESSEQ", want: C{vm.Bool(false)}},
	{name: "iequals", code: "3 3 IEQUALS", want: C{vm.Bool(true)}},
	{name: "igreater", code: "2 1 IGREATER 1 2 IGREATER", want: C{vm.Bool(true), vm.Bool(false)}},
	{name: "igreatereq", code: "2 2 IGREATEREQ", want: C{vm.Bool(true)}},
	{name: "iless", code: "1 2 ILESS", want: C{vm.Bool(true)}},
	{name: "ilesseq", code: "2 2 ILESSEQ", want: C{vm.Bool(true)}},
	{name: "fequals", code: "2.5 2.5 FEQUALS 0.1 0.2 FEQUALS",
		want: C{vm.Bool(true), vm.Bool(false)}},
	{name: "fgreater", code: "2.5 1.5 FGREATER", want: C{vm.Bool(true)}},
	{name: "fgreatereq", code: "1.5 1.5 FGREATEREQ", want: C{vm.Bool(true)}},
	{name: "fless", code: "1.5 2.5 FLESS", want: C{vm.Bool(true)}},
	{name: "flesseq", code: "2.5 1.5 FLESSEQ", want: C{vm.Bool(false)}},

	// math
	{name: "iadd", code: "2 3 IADD", want: C{vm.Int(5)}},
	{name: "iadd wraps", code: "2147483647 1 IADD", want: C{vm.Int(math.MinInt32)}},
	{name: "isub", code: "5 3 ISUB", want: C{vm.Int(2)}},
	{name: "imult", code: "6 7 IMULT", want: C{vm.Int(42)}},
	{name: "idiv", code: "7 2 IDIV", want: C{vm.Int(3)}},
	{name: "idiv zero", code: "1 0 IDIV", wantErr: "IDIV: Cannot divide by zero."},
	{name: "ipow", code: "2 10 IPOW", want: C{vm.Int(1024)}},
	{name: "isqrt", code: "10 ISQRT", want: C{vm.Int(3)}},
	{name: "iabs", code: "-5 IABS 5 IABS", want: C{vm.Int(5), vm.Int(5)}},
	{name: "fadd", code: "1.5 2.25 FADD", want: C{vm.Float(3.75)}},
	{name: "fsub", code: "5.5 2.25 FSUB", want: C{vm.Float(3.25)}},
	{name: "fmult", code: "1.5 4.0 FMULT", want: C{vm.Float(6)}},
	{name: "fdiv", code: "5.0 2.0 FDIV", want: C{vm.Float(2.5)}},
	{name: "fdiv zero", code: "1.0 0.0 FDIV", wantErr: "FDIV: Cannot divide by zero."},
	{name: "fpow", code: "2.0 3.0 FPOW", want: C{vm.Float(8)}},
	{name: "fsqrt", code: "9.0 FSQRT", want: C{vm.Float(3)}},
	{name: "fabs", code: "-2.5 FABS", want: C{vm.Float(2.5)}},
	{name: "mod", code: "7 3 MOD -7 3 MOD", want: C{vm.Int(1), vm.Int(-1)}},
	{name: "mod zero", code: "1 0 MOD", wantErr: "MOD: Cannot divide by zero."},
	{name: "rand bad bound", code: "0 RAND", wantErr: "Upper bound must be greater than 0."},
	{name: "round", code: "2.5 ROUND 2.4 ROUND", want: C{vm.Int(3), vm.Int(2)}},
	{name: "floor", code: "2.7 FLOOR", want: C{vm.Float(2)}},
	{name: "ceil", code: "2.2 CEIL", want: C{vm.Float(3)}},
	{name: "nexp zero", code: "0.0 NEXP", want: C{vm.Float(1)}},
	{name: "nlog one", code: "1.0 NLOG", want: C{vm.Float(0)}},
	{name: "pi", code: "PI", want: C{vm.Float(math.Pi)}},
	{name: "sin zero", code: "0.0 SIN", want: C{vm.Float(0)}},
	{name: "cos zero", code: "0.0 COS", want: C{vm.Float(1)}},
	{name: "type mismatch", code: "1.5 2 IADD", wantErr: "IADD: int expected."},

	// control flow errors
	{name: "return without call", code: "RETURN",
		wantErr: "RETURN: You cannot RETURN without first making a CALL."},
	{name: "sleep bad", code: "0 SLEEP", wantErr: "Sleep time must be greater than zero."},
	{name: "abort", code: "\"\"boom\nABORT", wantErr: "ABORT: boom"},
	{name: "jump type", code: "5 JUMP", wantErr: "JUMP: label expected."},
}

func TestCore(t *testing.T) {
	for _, test := range coreTests {
		t.Run(test.name, func(t *testing.T) {
			src := "BEGIN\n" + test.code + "\n0 EXIT\n"
			m, h, code, err := runSource(t, src)
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got none (stack %v)",
						test.wantErr, m.Data())
				}
				if !strings.Contains(err.Error(), test.wantErr) {
					t.Fatalf("error %q does not contain %q", err, test.wantErr)
				}
				if code != 1 {
					t.Errorf("exit code: got %d, want 1", code)
				}
				return
			}
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if code != 0 {
				t.Errorf("exit code: got %d, want 0", code)
			}
			checkStack(t, m, test.want)
			if h.out.String() != test.out {
				t.Errorf("output: got %q, want %q", h.out.String(), test.out)
			}
			if h.errs.String() != test.errOut {
				t.Errorf("error output: got %q, want %q", h.errs.String(), test.errOut)
			}
		})
	}
}

func TestMathApprox(t *testing.T) {
	tests := [...]struct {
		name string
		code string
		want float64
	}{
		{"log10", "1000.0 LOG10", 3},
		{"nexp", "1.0 NEXP", math.E},
		{"nlog", "2.718281828459045 NLOG", 1},
		{"tan", "0.5 TAN", math.Tan(0.5)},
		{"asin", "0.5 ASIN", math.Asin(0.5)},
		{"acos", "0.5 ACOS", math.Acos(0.5)},
		{"atan", "0.5 ATAN", math.Atan(0.5)},
		{"todeg", "PI TODEG", 180},
		{"torad", "180.0 TORAD", math.Pi},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, _, _, err := runSource(t, "BEGIN\n"+test.code+"\n0 EXIT\n")
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			stk := m.Data()
			if len(stk) != 1 || stk[0].Kind() != vm.KindFloat {
				t.Fatalf("stack: got %v, want one float", stk)
			}
			if got := stk[0].Float(); math.Abs(got-test.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestRandRange(t *testing.T) {
	m, _, _, err := runSource(t, "BEGIN 10 RAND 0 EXIT")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	stk := m.Data()
	if len(stk) != 1 || stk[0].Kind() != vm.KindInt {
		t.Fatalf("stack: got %v, want one int", stk)
	}
	if v := stk[0].Int(); v < 0 || v >= 10 {
		t.Errorf("RAND out of range: %d", v)
	}
}

func TestFRandRange(t *testing.T) {
	m, _, _, err := runSource(t, "BEGIN FRAND 0 EXIT")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	stk := m.Data()
	if v := stk[0].Float(); v < 0 || v >= 1 {
		t.Errorf("FRAND out of range: %v", v)
	}
}

func TestClockInstructions(t *testing.T) {
	at := time.Date(2018, 11, 27, 14, 30, 45, 0, time.Local)
	h := &testHCI{}
	m, err := vm.New(h, vm.Clock(at))
	if err != nil {
		t.Fatal(err)
	}
	src := "BEGIN GETTIME GETDATE 0 EXIT"
	if err := m.Assemble("clock", strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Run(); err != nil {
		t.Fatal(err)
	}
	checkStack(t, m, C{
		vm.Int(14), vm.Int(30), vm.Int(45),
		vm.Int(2018), vm.Int(11), vm.Int(27),
	})
}

func TestDebugInstruction(t *testing.T) {
	_, h, _, err := runSource(t, "BEGIN true DEBUG 1 POP false DEBUG 0 EXIT")
	if err != nil {
		t.Fatal(err)
	}
	if len(h.debugged) == 0 {
		t.Fatal("no debug ticks recorded while debugger on")
	}
	found := false
	for _, line := range h.debugged {
		if strings.Contains(line, "PUSH[1]") {
			found = true
		}
	}
	if !found {
		t.Errorf("debug ticks %q missing PUSH[1]", h.debugged)
	}
}
