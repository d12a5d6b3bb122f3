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

// Log levels. A message logged at level l is emitted iff l is at or below
// the host's verbosity threshold.
const (
	LogWarning = 0
	LogEvent   = 1
	LogInfo    = 2
	LogVerbose = 3
)

// HCI is the host interface the machine performs its non-disk I/O through.
// The machine treats the underlying streams as opaque sinks; buffering and
// flushing are the host's concern.
type HCI interface {
	// GetLine blocks until a full line is available on the input stream and
	// returns it with the terminator stripped.
	GetLine() (string, error)

	// Print writes s to the main output stream.
	Print(s string)

	// Error writes s to the error output stream.
	Error(s string)

	// Log writes s to the log stream if level is within the host's
	// verbosity threshold.
	Log(s string, level int)

	// Debug is invoked on every interpreter tick with a snapshot of the
	// data stack and the display name of the instruction about to run. The
	// host decides whether the debugger is active.
	Debug(stack, op string)

	// SetDebug turns the stack-trace debugger on or off.
	SetDebug(on bool)
}
