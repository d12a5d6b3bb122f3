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

// instFn is the behaviour of a named instruction, operating on the ambient
// machine state.
type instFn func(m *Instance) error

type opKind uint8

const (
	opNamed opKind = iota
	opPush
	opPlaceholder
)

// op is a single code-segment record: a named instruction, a synthesized
// push of a constant, or (between the assembler's two passes only) a
// placeholder carrying an unresolved symbol.
type op struct {
	kind opKind
	name string
	fn   instFn
	v    Value
}

func pushOp(v Value) op {
	return op{kind: opPush, v: v}
}

func placeholderOp(sym string) op {
	return op{kind: opPlaceholder, name: sym}
}

func (o *op) displayName() string {
	if o.kind == opPush {
		return "PUSH[" + o.v.Quote() + "]"
	}
	return o.name
}

func (o *op) exec(m *Instance) error {
	switch o.kind {
	case opPush:
		return m.data.Push(o.v)
	case opPlaceholder:
		return errors.New("Program did not assemble correctly, placeholder run.")
	}
	return o.fn(m)
}

// codeSegment is the assembled program: append-only, random-access, with
// in-place replacement so pass 2 can rewrite placeholders without shifting
// indices.
type codeSegment struct {
	ops []op
}

func newCodeSegment() *codeSegment {
	return &codeSegment{}
}

func (c *codeSegment) get(ip int) (*op, error) {
	if ip < 0 || ip >= len(c.ops) {
		return nil, errors.New("Instruction pointer out of bounds.")
	}
	return &c.ops[ip], nil
}

func (c *codeSegment) add(o op) {
	c.ops = append(c.ops, o)
}

func (c *codeSegment) replace(ip int, o op) error {
	if ip < 0 || ip >= len(c.ops) {
		return errors.Errorf("No instruction exists at location: %d", ip)
	}
	c.ops[ip] = o
	return nil
}

func (c *codeSegment) size() int {
	return len(c.ops)
}
