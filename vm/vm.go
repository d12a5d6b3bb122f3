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
	"math/rand"
	"time"
)

// Version of the VM runtime.
const Version = "0.4.0"

const maxExecDepth = 16

// Instance is a single stack machine: code segment, data and call stacks,
// virtual disk, and the I/O provider it talks to the host through. An
// Instance is not safe for concurrent use.
type Instance struct {
	hci       HCI
	code      *codeSegment
	calls     *CallStack
	data      *DataStack
	disk      *VirtualDisk
	rng       *rand.Rand
	now       time.Time
	interrupt <-chan struct{}
	execDepth int
	ip        int
	exitCode  int
	halt      bool
}

// Option configures an Instance.
type Option func(*Instance) error

// Rand sets the random number source used by RAND and FRAND. The default
// source is seeded from the wall clock.
func Rand(rng *rand.Rand) Option {
	return func(m *Instance) error {
		m.rng = rng
		return nil
	}
}

// Clock sets the time reported by GETTIME and GETDATE. By default the wall
// clock is sampled once when the instance is created.
func Clock(t time.Time) Option {
	return func(m *Instance) error {
		m.now = t
		return nil
	}
}

// Interrupt installs a channel whose closing interrupts the machine: a SLEEP
// in progress halts the program with exit code 1.
func Interrupt(ch <-chan struct{}) Option {
	return func(m *Instance) error {
		m.interrupt = ch
		return nil
	}
}

// New creates a machine talking to the host through h. The code segment is
// empty; call Assemble or AssembleFile before Run.
func New(h HCI, opts ...Option) (*Instance, error) {
	m := &Instance{
		hci:   h,
		code:  newCodeSegment(),
		calls: &CallStack{},
		data:  NewDataStack(),
		now:   time.Now(),
		ip:    -1,
	}
	m.disk = newVirtualDisk(h)
	m.rng = rand.New(rand.NewSource(m.now.UnixNano()))
	if err := m.SetOptions(opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// SetOptions applies the given options.
func (m *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return err
		}
	}
	return nil
}

// Data returns a copy of the data stack, bottom first.
func (m *Instance) Data() []Value {
	out := make([]Value, len(m.data.s))
	copy(out, m.data.s)
	return out
}

// Stack returns the machine's data stack.
func (m *Instance) Stack() *DataStack {
	return m.data
}
