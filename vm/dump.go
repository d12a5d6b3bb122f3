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
	"fmt"
	"io"

	"github.com/Tzolkat/stackmachineproject/internal/errio"
)

// WriteListing writes a listing of the assembled code segment to w, one
// record per line as index and display name. The entry point is marked with
// an asterisk. Intended for use between Assemble and Run.
func (m *Instance) WriteListing(w io.Writer) error {
	ew := errio.NewWriter(w)
	for i := 0; i < m.code.size(); i++ {
		mark := ' '
		if i == m.ip {
			mark = '*'
		}
		fmt.Fprintf(ew, "% 6d %c %s\n", i, mark, m.code.ops[i].displayName())
	}
	return ew.Err
}
