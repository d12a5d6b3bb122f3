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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

const (
	ansiRed    = "\x1b[91m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[93m"
	ansiReset  = "\x1b[0m"
)

// ioHandler implements vm.HCI over the process streams and any file
// redirections from the command line. When standard input is a terminal,
// lines are read through liner; color applies only to streams that are
// terminals.
type ioHandler struct {
	in        *bufio.Reader
	ed        *liner.State
	out       *bufio.Writer
	errw      *bufio.Writer
	log       *bufio.Writer
	closers   []io.Closer
	verbosity int
	debug     bool
	colorErr  bool
	colorLog  bool
}

func newIOHandler(inPath, outPath, errPath, logPath string,
	verbosity int, debug, color bool) (*ioHandler, error) {

	h := &ioHandler{verbosity: verbosity, debug: debug}

	open := func(path string) (*os.File, error) {
		f, err := os.Create(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open %s", path)
		}
		h.closers = append(h.closers, f)
		return f, nil
	}

	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			h.Close()
			return nil, errors.Wrapf(err, "cannot open %s", inPath)
		}
		h.closers = append(h.closers, f)
		h.in = bufio.NewReader(f)
	} else if isatty.IsTerminal(os.Stdin.Fd()) {
		h.ed = liner.NewLiner()
		h.ed.SetCtrlCAborts(true)
	} else {
		h.in = bufio.NewReader(os.Stdin)
	}

	h.out = bufio.NewWriter(os.Stdout)
	if outPath != "" {
		f, err := open(outPath)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.out = bufio.NewWriter(f)
	}

	h.errw = bufio.NewWriter(os.Stderr)
	h.colorErr = color && isatty.IsTerminal(os.Stderr.Fd())
	if errPath != "" {
		f, err := open(errPath)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.errw = bufio.NewWriter(f)
		h.colorErr = false
	}

	h.log = bufio.NewWriter(os.Stdout)
	h.colorLog = color && isatty.IsTerminal(os.Stdout.Fd())
	if logPath != "" {
		f, err := open(logPath)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.log = bufio.NewWriter(f)
		h.colorLog = false
	}

	return h, nil
}

// Close flushes and releases every stream the handler owns.
func (h *ioHandler) Close() {
	if h.out != nil {
		h.out.Flush()
	}
	if h.errw != nil {
		h.errw.Flush()
	}
	if h.log != nil {
		h.log.Flush()
	}
	if h.ed != nil {
		h.ed.Close()
	}
	for _, c := range h.closers {
		c.Close()
	}
}

// GetLine reads one line of input with the terminator stripped. Pending
// main output is flushed first so interactive prompts appear before the
// read blocks.
func (h *ioHandler) GetLine() (string, error) {
	h.out.Flush()
	h.log.Flush()

	if h.ed != nil {
		s, err := h.ed.Prompt("")
		if err != nil {
			return "", err
		}
		return s, nil
	}

	s, err := h.in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (h *ioHandler) Print(s string) {
	h.out.WriteString(s)
}

func (h *ioHandler) Error(s string) {
	if h.colorErr {
		s = ansiRed + s + ansiReset
	}
	h.errw.WriteString(s)
	h.errw.Flush()
}

func (h *ioHandler) Log(s string, level int) {
	if level > h.verbosity {
		return
	}
	if h.colorLog {
		s = ansiCyan + s + ansiReset
	}
	h.log.WriteString(s)
}

func (h *ioHandler) Debug(stack, op string) {
	if !h.debug {
		return
	}
	if h.colorLog {
		h.log.WriteString(stack + ": " + ansiYellow + op + ansiReset + "\n")
	} else {
		h.log.WriteString(stack + ": " + op + "\n")
	}
}

func (h *ioHandler) SetDebug(on bool) {
	h.debug = on
}
