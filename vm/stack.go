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

	"github.com/pkg/errors"
)

const maxDataDepth = 32768

// DataStack is the machine's operand stack: a bounded stack of Values with
// the stack-range operations built on top. The top of the stack is the end
// of the backing slice.
type DataStack struct {
	s []Value
}

// NewDataStack returns an empty data stack.
func NewDataStack() *DataStack {
	return &DataStack{}
}

func (d *DataStack) need(n int) error {
	if len(d.s) < n {
		return errors.New("Stack Underflow.")
	}
	return nil
}

// Push pushes v. It fails once the stack holds maxDataDepth values.
func (d *DataStack) Push(v Value) error {
	if len(d.s) >= maxDataDepth {
		return errors.New("Stack overflow.")
	}
	d.s = append(d.s, v)
	return nil
}

// Pop pops the top value, whatever its kind.
func (d *DataStack) Pop() (Value, error) {
	if err := d.need(1); err != nil {
		return Value{}, err
	}
	v := d.s[len(d.s)-1]
	d.s = d.s[:len(d.s)-1]
	return v, nil
}

func (d *DataStack) popKind(k Kind) (Value, error) {
	v, err := d.Pop()
	if err != nil {
		return Value{}, err
	}
	if v.kind != k {
		return Value{}, errors.Errorf("%s expected.", k)
	}
	return v, nil
}

// PopBool pops a boolean, failing on any other kind.
func (d *DataStack) PopBool() (bool, error) {
	v, err := d.popKind(KindBool)
	return v.Bool(), err
}

// PopChar pops a character, failing on any other kind.
func (d *DataStack) PopChar() (byte, error) {
	v, err := d.popKind(KindChar)
	return v.Char(), err
}

// PopInt pops an integer, failing on any other kind.
func (d *DataStack) PopInt() (int32, error) {
	v, err := d.popKind(KindInt)
	return v.Int(), err
}

// PopFloat pops a float, failing on any other kind.
func (d *DataStack) PopFloat() (float64, error) {
	v, err := d.popKind(KindFloat)
	return v.Float(), err
}

// PopLabel pops a label, failing on any other kind.
func (d *DataStack) PopLabel() (*Label, error) {
	v, err := d.popKind(KindLabel)
	return v.Label(), err
}

// PushCharRange pushes the characters of s in order followed by the count,
// forming a stack range.
func (d *DataStack) PushCharRange(s string) error {
	for i := 0; i < len(s); i++ {
		if err := d.Push(Char(s[i])); err != nil {
			return err
		}
	}
	return d.Push(Int(int32(len(s))))
}

// PopCharRange pops a count followed by that many characters and returns
// them in original left-to-right order. The count must be at least one.
func (d *DataStack) PopCharRange() (string, error) {
	n, err := d.PopInt()
	if err != nil {
		return "", err
	}
	if n < 1 {
		return "", errors.New("Range size indicator must be greater than zero.")
	}
	buf := make([]byte, n)
	for i := int(n) - 1; i >= 0; i-- {
		c, err := d.PopChar()
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	return string(buf), nil
}

// Dup duplicates the top value.
func (d *DataStack) Dup() error {
	if err := d.need(1); err != nil {
		return err
	}
	return d.Push(d.s[len(d.s)-1])
}

// Swap exchanges the top two values.
func (d *DataStack) Swap() error {
	if err := d.need(2); err != nil {
		return err
	}
	l := len(d.s)
	d.s[l-1], d.s[l-2] = d.s[l-2], d.s[l-1]
	return nil
}

// Rotate rotates the top n values. Clockwise moves the top value to the
// bottom of the window; counter-clockwise moves the bottom of the window to
// the top.
func (d *DataStack) Rotate(n int, clockwise bool) error {
	if n == 0 {
		return errors.New("Number of items to rotate must be non-zero.")
	}
	if err := d.need(n); err != nil {
		return err
	}
	l := len(d.s)
	if clockwise {
		top := d.s[l-1]
		copy(d.s[l-n+1:], d.s[l-n:l-1])
		d.s[l-n] = top
	} else {
		bottom := d.s[l-n]
		copy(d.s[l-n:], d.s[l-n+1:])
		d.s[l-1] = bottom
	}
	return nil
}

// Pick pushes a copy of the k-th value from the top; k = 1 is the top.
func (d *DataStack) Pick(k int) error {
	if k < 1 {
		return errors.New("Location to pick from must be greater than zero.")
	}
	if err := d.need(k); err != nil {
		return err
	}
	return d.Push(d.s[len(d.s)-k])
}

// Put replaces the k-th value from the top with v; k = 1 is the top.
func (d *DataStack) Put(v Value, k int) error {
	if k < 1 {
		return errors.New("Location to put to must be greater than zero.")
	}
	if err := d.need(k); err != nil {
		return err
	}
	d.s[len(d.s)-k] = v
	return nil
}

// Depth returns the number of values on the stack.
func (d *DataStack) Depth() int {
	return len(d.s)
}

// Join merges the two topmost stack ranges into one by removing the inner
// count and pushing the sum of both counts. Either range may be empty.
func (d *DataStack) Join() error {
	n1, err := d.PopInt()
	if err != nil {
		return err
	}
	if n1 < 0 {
		return errors.New("Stack range size must be non-negative.")
	}
	if err := d.need(int(n1) + 1); err != nil {
		return err
	}
	inner := d.s[len(d.s)-1-int(n1)]
	if inner.kind != KindInt {
		return errors.Errorf("%s expected.", KindInt)
	}
	n2 := inner.Int()
	if n2 < 0 {
		return errors.New("Stack range size must be non-negative.")
	}
	if err := d.need(int(n1) + int(n2) + 1); err != nil {
		return err
	}
	p := len(d.s) - 1 - int(n1)
	d.s = append(d.s[:p], d.s[p+1:]...)
	return d.Push(Int(n1 + n2))
}

// Split splits the topmost stack range at index i into two consecutive
// ranges of sizes i and n-i, by inserting i as the inner count and leaving
// n-i on top.
func (d *DataStack) Split(i int32) error {
	n, err := d.PopInt()
	if err != nil {
		return err
	}
	if n < 1 {
		return errors.New("Stack range size must be greater than zero")
	}
	if err := d.need(int(n)); err != nil {
		return err
	}
	if i < 0 || i >= n {
		return errors.Errorf("Index must be between 0 and %d.", n-1)
	}
	right := n - i
	p := len(d.s) - int(right)
	d.s = append(d.s[:p], append([]Value{Int(i)}, d.s[p:]...)...)
	return d.Push(Int(right))
}

// String renders the stack bottom-to-top for the debugger. Characters show
// quoted, with the whitespace characters spelled out.
func (d *DataStack) String() string {
	var b strings.Builder
	b.WriteString("( ")
	for i, v := range d.s {
		if v.kind == KindChar {
			switch v.Char() {
			case ' ':
				b.WriteString("SPACE")
			case '\t':
				b.WriteString("TAB")
			case '\n':
				b.WriteString("NEWLINE")
			default:
				b.WriteString(v.Quote())
			}
		} else {
			b.WriteString(v.String())
		}
		if i < len(d.s)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString(" )")
	return b.String()
}
