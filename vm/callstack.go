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

const maxCallDepth = 512

// CallStack holds return indices for CALL/RETURN. Its depth cap bounds
// program recursion.
type CallStack struct {
	s []int
}

// Push saves a return index.
func (c *CallStack) Push(ip int) error {
	if len(c.s) >= maxCallDepth {
		return errors.New("Maximum recursion depth exceeded.")
	}
	c.s = append(c.s, ip)
	return nil
}

// Pop pops the most recently saved return index.
func (c *CallStack) Pop() (int, error) {
	if len(c.s) < 1 {
		return 0, errors.New("You cannot RETURN without first making a CALL.")
	}
	ip := c.s[len(c.s)-1]
	c.s = c.s[:len(c.s)-1]
	return ip, nil
}

// Depth returns the number of saved return indices.
func (c *CallStack) Depth() int {
	return len(c.s)
}
