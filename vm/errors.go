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

// RunError is a fatal runtime error. Op names the instruction that raised it,
// when known.
type RunError struct {
	Op  string
	Err error
}

func (e *RunError) Error() string {
	if e.Op != "" {
		return "VM FATAL: " + e.Op + ": " + e.Err.Error()
	}
	return "VM FATAL: " + e.Err.Error()
}

func (e *RunError) Unwrap() error { return e.Err }

// Cause implements the causer interface of github.com/pkg/errors.
func (e *RunError) Cause() error { return e.Err }

// AsmError is a fatal assembly error. It terminates the run before any
// instruction executes.
type AsmError struct {
	Err error
}

func (e *AsmError) Error() string { return "VMA FATAL: " + e.Err.Error() }

func (e *AsmError) Unwrap() error { return e.Err }

// Cause implements the causer interface of github.com/pkg/errors.
func (e *AsmError) Cause() error { return e.Err }
