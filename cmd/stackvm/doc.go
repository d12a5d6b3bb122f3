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

// stackvm assembles and runs stack machine programs.
//
// Usage:
//
//	stackvm [options] sourcefile
//
// Options:
//
//	-if filename
//		file to get input from (default: standard input)
//	-of filename
//		file to redirect main output to (default: standard output)
//	-ef filename
//		file to redirect error output to (default: standard error)
//	-lf filename
//		file to redirect log output to (default: standard output)
//	-v level
//		log verbosity threshold: 0-3 or WARNING|EVENT|INFO|VERBOSE
//		(default: 0)
//	-d
//		enable the stack-trace debugger
//	-c
//		display error, log, and debug messages in color
//	-dump
//		print a listing of the assembled program and exit
//
// The process exit code is the program's EXIT code on a clean run, and 1 on
// an assembly error, a runtime error, or an interrupt.
package main
