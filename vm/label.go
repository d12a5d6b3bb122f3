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

// jumpTable maps label names to labels, case-insensitively. One table is
// scoped to a single assembly; names can be added exactly once.
type jumpTable struct {
	m map[string]*Label
}

func newJumpTable() *jumpTable {
	return &jumpTable{m: make(map[string]*Label)}
}

func (t *jumpTable) exists(name string) bool {
	_, ok := t.m[strings.ToUpper(name)]
	return ok
}

func (t *jumpTable) get(name string) (*Label, error) {
	l, ok := t.m[strings.ToUpper(name)]
	if !ok {
		return nil, errors.Errorf("Unknown symbol: %s", strings.ToUpper(name))
	}
	return l, nil
}

func (t *jumpTable) add(name string, l *Label) error {
	if t.exists(name) {
		return errors.Errorf("Duplicate label definition: %s", strings.ToUpper(name))
	}
	t.m[strings.ToUpper(name)] = l
	return nil
}

func (t *jumpTable) remove(name string) error {
	if !t.exists(name) {
		return errors.Errorf("Cannot remove nonexistent symbol: %s", strings.ToUpper(name))
	}
	delete(t.m, strings.ToUpper(name))
	return nil
}
