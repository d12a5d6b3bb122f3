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

import "strings"

// instTable maps mnemonics to instruction behaviours. Lookups are
// case-insensitive; names are stored upper-case only. PUSH is deliberately
// absent: the assembler synthesizes it for every literal.
var instTable = make(map[string]instFn)

func register(insts map[string]instFn) {
	for name, fn := range insts {
		instTable[name] = fn
	}
}

func init() {
	register(stackInstructions)
	register(flowInstructions)
	register(diskInstructions)
	register(ioInstructions)
	register(convInstructions)
	register(logicInstructions)
	register(compareInstructions)
	register(mathInstructions)
	register(timeInstructions)
}

func instExists(name string) bool {
	_, ok := instTable[strings.ToUpper(name)]
	return ok
}

// mustInst returns the op record for a mnemonic known to exist.
func mustInst(name string) op {
	upper := strings.ToUpper(name)
	return op{kind: opNamed, name: upper, fn: instTable[upper]}
}
