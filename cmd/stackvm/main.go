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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Tzolkat/stackmachineproject/vm"
)

// verbosityLevel is the -v flag: 0-3 or one of the level names.
type verbosityLevel int

func (v *verbosityLevel) String() string { return strconv.Itoa(int(*v)) }

func (v *verbosityLevel) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 3 {
			return fmt.Errorf("verbosity %d out of range 0-3", n)
		}
		*v = verbosityLevel(n)
		return nil
	}
	switch strings.ToUpper(s) {
	case "WARNING":
		*v = vm.LogWarning
	case "EVENT":
		*v = vm.LogEvent
	case "INFO":
		*v = vm.LogInfo
	case "VERBOSE":
		*v = vm.LogVerbose
	default:
		return fmt.Errorf("unknown verbosity %q", s)
	}
	return nil
}

var (
	inFile    = flag.String("if", "", "file to get input from")
	outFile   = flag.String("of", "", "file to redirect main output to")
	errFile   = flag.String("ef", "", "file to redirect error output to")
	logFile   = flag.String("lf", "", "file to redirect log output to")
	debug     = flag.Bool("d", false, "enable the stack-trace debugger")
	color     = flag.Bool("c", false, "display error, log, and debug messages in color")
	dump      = flag.Bool("dump", false, "print a listing of the assembled program and exit")
	verbosity verbosityLevel
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Usage: %s [options] sourcefile\n\nOptions:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Var(&verbosity, "v", "log verbosity threshold: 0-3 or WARNING|EVENT|INFO|VERBOSE")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return 1
	}

	h, err := newIOHandler(*inFile, *outFile, *errFile, *logFile,
		int(verbosity), *debug, *color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "General Error: %v\n", err)
		return 1
	}
	defer h.Close()

	// A SIGINT or SIGTERM closes the interrupt channel; a SLEEP in progress
	// then halts the program with exit code 1.
	interrupt := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(interrupt)
	}()

	m, err := vm.New(h, vm.Interrupt(interrupt))
	if err != nil {
		fmt.Fprintf(os.Stderr, "General Error: %v\n", err)
		return 1
	}

	if err := m.AssembleFile(flag.Arg(0)); err != nil {
		h.Error(err.Error() + "\n")
		return 1
	}
	if *dump {
		if err := m.WriteListing(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "General Error: %v\n", err)
			return 1
		}
		return 0
	}

	code, err := m.Run()
	if err != nil {
		h.Error(err.Error() + "\n")
		return 1
	}
	return code
}
