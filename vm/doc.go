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

// Package vm implements the stack machine: a two-pass assembler and a
// bytecode-style interpreter for a small Forth-like language.
//
// A program is a sequence of whitespace-separated tokens: literals (which
// assemble to pushes), instruction mnemonics, label declarations (@Name)
// and references (Name), and the BEGIN directive marking the entry point.
// The machine executes against a heterogeneous data stack of tagged values
// (bool, char, int, float, label), a call stack, an optional virtual disk,
// and the host's I/O streams.
//
// Strings are a convention, not a type: a "stack range" is a run of values
// on top of the data stack followed by an integer count, and a string is a
// stack range of characters. The range-consuming instructions (PRINTSTR,
// ABORT, JOIN, SPLIT, EXECUTE, ...) pop the count first and then the
// values beneath it.
//
// Typical use mirrors the reference runtime: create an Instance over an HCI
// implementation, assemble a source file, run it.
//
//	m, err := vm.New(handler)
//	if err != nil { ... }
//	if err := m.AssembleFile("program.svm"); err != nil { ... }
//	code, err := m.Run()
//
// Instruction vocabulary, by category (stack effects in Forth convention,
// top of stack rightmost):
//
//	Stack       POP POPN DUP DUPN SWAP ROTATE PICK PUT DEPTH JOIN SPLIT
//	Flow        EXIT ABORT JUMP CJUMP CALL RETURN SLEEP EXECUTE
//	Disk        MOUNT UNMOUNT VDINFO VDPOS SECTOR SEEK
//	            READB READC READI READF READSTR
//	            WRITEB WRITEC WRITEI WRITEF WRITESTR
//	I/O         PRINT ERROR LOG PRINTSTR ERRORSTR LOGSTR GETLINE DEBUG
//	            NEWLINE TAB SPACE LOGWARNING LOGEVENT LOGINFO LOGVERBOSE
//	Conversion  BTOI BTOF ITOB ITOF FTOB FTOI STRTOB STRTOI STRTOF
//	            HEXTOI ITOHEX TOSTRING CTOIR IRTOC TOUPPER TOLOWER
//	Logic       AND OR XOR NOT
//	Bitwise     BITAND BITOR BITXOR SHIFTL SHIFTR
//	Comparison  ISBOOL ISCHAR ISINT ISFLOAT
//	            STRISBOOL STRISINT STRISHEX STRISFLOAT
//	            CEQUALS CGREATER CGREATEREQ CLESS CLESSEQ
//	            IEQUALS IGREATER IGREATEREQ ILESS ILESSEQ
//	            FEQUALS FGREATER FGREATEREQ FLESS FLESSEQ
//	Math        IADD ISUB IMULT IDIV IPOW ISQRT IABS
//	            FADD FSUB FMULT FDIV FPOW FSQRT FABS
//	            MOD RAND FRAND ROUND FLOOR CEIL
//	            LOG10 NEXP NLOG PI SIN COS TAN ASIN ACOS ATAN TODEG TORAD
//	Time        GETTIME GETDATE
//
// PUSH never appears in source; the assembler synthesizes it for every
// literal it encounters.
//
// EXECUTE deserves a note: it pops a string, assembles it as a program of
// its own with a fresh code segment and call stack, runs it on the shared
// data stack, and pushes its exit code. Failures inside the nested program
// are reported on the error stream and do not abort the outer program.
// Nesting is capped at 16 levels.
package vm
