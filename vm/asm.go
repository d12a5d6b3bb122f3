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
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/Tzolkat/stackmachineproject/asm"
	"github.com/pkg/errors"
)

var reservedRe = regexp.MustCompile(`^(begin|true|false)$`)

// AssembleFile assembles source read from the named file into the code
// segment.
func (m *Instance) AssembleFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &AsmError{Err: errors.New("Could not read source file.")}
	}
	defer f.Close()
	return m.Assemble(path, bufio.NewReader(f))
}

// Assemble assembles source read from r into the code segment and resolves
// the program entry point. The name appears in log output and error
// positions only. A failed assembly returns an *AsmError and leaves no
// program to run.
func (m *Instance) Assemble(name string, r io.Reader) error {
	m.hci.Log("Stack machine v"+Version+". Assembling "+name+"...\n", LogEvent)
	if err := m.assemble(asm.NewScanner(name, r)); err != nil {
		return &AsmError{Err: err}
	}
	m.hci.Log("Assembly completed successfully.\n", LogEvent)
	return nil
}

// assemble is the two-pass core. Pass 1 walks the token stream appending
// records and declaring labels; pass 2 rewrites placeholders in place once
// every label is known. The jump table is scoped to this one assembly.
func (m *Instance) assemble(s *asm.Scanner) error {
	labels := newJumpTable()

	m.hci.Log("Begin source file parse. Pass 1 of 2.\n", LogInfo)
	for {
		tok, err := s.Scan()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch tok.Kind {
		case asm.TokComment:
			m.hci.Log("Ignored comment: "+tok.Text+"\n", LogInfo)

		case asm.TokString:
			m.hci.Log("Parsed string as PUSH character range: "+tok.Text+"\n", LogInfo)
			for i := 0; i < len(tok.Str); i++ {
				switch c := tok.Str[i]; c {
				case ' ':
					m.code.add(mustInst("SPACE"))
				case '\t':
					m.code.add(mustInst("TAB"))
				default:
					m.code.add(pushOp(Char(c)))
				}
			}
			m.code.add(pushOp(Int(int32(len(tok.Str)))))

		case asm.TokBool:
			m.hci.Log("Parsed token as PUSH boolean literal: "+tok.Text+"\n", LogInfo)
			m.code.add(pushOp(Bool(tok.Bool)))

		case asm.TokInt:
			if tok.Hex {
				m.hci.Log("Parsed token as PUSH integer[hex] literal: "+tok.Text+"\n", LogInfo)
			} else {
				m.hci.Log("Parsed token as PUSH integer literal: "+tok.Text+"\n", LogInfo)
			}
			m.code.add(pushOp(Int(tok.Int)))

		case asm.TokFloat:
			m.hci.Log("Parsed token as PUSH float literal: "+tok.Text+"\n", LogInfo)
			m.code.add(pushOp(Float(tok.Float)))

		case asm.TokChar:
			m.hci.Log("Parsed token as PUSH character literal: "+tok.Text+"\n", LogInfo)
			m.code.add(pushOp(Char(tok.Char)))

		case asm.TokLabel:
			m.hci.Log("Parsed token as DECLARE label: "+tok.Text+"\n", LogInfo)
			name := tok.Str
			if reservedRe.MatchString(strings.ToLower(name)) || instExists(name) {
				return errors.Errorf("Label name '%s' disallowed by the assembler.", name)
			}
			if labels.exists(name) {
				return errors.Errorf("Label '%s' cannot be declared more than once..", name)
			}
			if err := labels.add(name, &Label{Name: name, Pointer: m.code.size()}); err != nil {
				return err
			}

		case asm.TokWord:
			switch t := tok.Text; {
			case strings.EqualFold(t, "BEGIN"):
				m.hci.Log("Parsed token as ENTRY POINT: "+t+"\n", LogInfo)
				if m.ip != -1 {
					return errors.New("BEGIN cannot be defined more than once.")
				}
				m.ip = m.code.size()
			case instExists(t):
				m.hci.Log("Parsed token as INSTRUCTION: "+t+"\n", LogInfo)
				m.code.add(mustInst(t))
			case labels.exists(t):
				m.hci.Log("Parsed token as PUSH label reference: "+t+"\n", LogInfo)
				l, err := labels.get(t)
				if err != nil {
					return err
				}
				m.code.add(pushOp(LabelRef(l)))
			default:
				m.hci.Log("Marked token for second pass: "+t+"\n", LogInfo)
				m.code.add(placeholderOp(t))
			}
		}
	}

	if m.ip < 0 || m.ip >= m.code.size() {
		return errors.New("BEGIN is undefined or out of bounds.")
	}

	m.hci.Log("Source file parse. Pass 2 of 2.\n", LogInfo)
	for i := 0; i < m.code.size(); i++ {
		o, err := m.code.get(i)
		if err != nil {
			return err
		}
		if o.kind != opPlaceholder {
			continue
		}
		m.hci.Log("Resolving label reference: "+o.name+"\n", LogInfo)
		l, err := labels.get(o.name)
		if err != nil {
			return err
		}
		if err := m.code.replace(i, pushOp(LabelRef(l))); err != nil {
			return err
		}
	}
	return nil
}
