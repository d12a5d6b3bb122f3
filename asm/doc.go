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

// Package asm scans stack machine assembly source into tokens.
//
// Source is a sequence of whitespace-separated tokens, with two
// line-oriented exceptions. A token starting with ';' discards the rest of
// its line:
//
//	; a whole-line comment
//	IADD  ; a trailing comment
//
// A token starting with two double quotes turns everything after the quotes,
// up to the end of the line, into a string literal. The character
// immediately following the quotes belongs to the literal, even when it is
// whitespace:
//
//	""Hello, world!
//	"" leading space kept
//
// Plain tokens are classified in a fixed order, first match wins:
//
//	true false          boolean literal (case-insensitive)
//	15 -3 +7            decimal integer literal (32 bits, signed)
//	ff 0xFF deadbeef    hex integer literal: (0x)?[0-9A-Fa-f]{1,8}
//	2.5 1e-3            float literal
//	'x'                 character literal, exactly one character. The space
//	                    character cannot be written this way; programs use
//	                    the SPACE instruction instead.
//	@Name               label declaration: '@' then [A-Za-z_][A-Za-z0-9_]*
//	anything else       a bare word: an instruction mnemonic, a label
//	                    reference, the BEGIN directive, or an unknown symbol
//
// Note that the hex form is tried before the float form, so a token such as
// 1e5 is a hex literal (0x1e5), not a float.
//
// The scanner is purely lexical: it does not know the instruction set, so
// telling mnemonics from label references is the binder's job (see the vm
// package).
package asm
