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

package asm

import (
	"bufio"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a scanned token.
type Kind uint8

// Token kinds, in the order the scanner tries them.
const (
	TokComment Kind = iota // ';' to end of line
	TokString              // '""' to end of line
	TokBool
	TokInt
	TokFloat
	TokChar
	TokLabel // '@name' label declaration
	TokWord  // anything else: mnemonic, label reference or unknown symbol
)

// Pos is a position within the scanned source, 1-based.
type Pos struct {
	Name string
	Line int
	Col  int
}

func (p Pos) String() string {
	return p.Name + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Token is a single scanned token. Text is the raw token as it appeared in
// the source; the typed fields are valid according to Kind. For TokString,
// Str holds the literal payload (the rest of the line after the two
// quotes); for TokLabel it holds the label name without the leading '@'.
type Token struct {
	Kind  Kind
	Pos   Pos
	Text  string
	Bool  bool
	Int   int32
	Hex   bool
	Float float64
	Char  byte
	Str   string
}

var (
	hexRe   = regexp.MustCompile(`^(0x)?[0-9A-Fa-f]{1,8}$`)
	labelRe = regexp.MustCompile(`^@[A-Za-z_][A-Za-z0-9_]*$`)
)

// Scanner splits assembly source into tokens. Tokens are separated by
// whitespace, except for the two line-oriented forms: a token starting with
// ';' discards the rest of the line, and a token starting with '""' turns
// the rest of the line into a string literal.
type Scanner struct {
	name string
	r    *bufio.Reader
	line string
	ln   int
	col  int
	done bool
}

// NewScanner returns a Scanner reading source from r. The name is used only
// in positions reported with tokens and errors.
func NewScanner(name string, r io.Reader) *Scanner {
	return &Scanner{name: name, r: bufio.NewReader(r)}
}

// nextLine loads the next source line, returning io.EOF when the input is
// exhausted.
func (s *Scanner) nextLine() error {
	if s.done {
		return io.EOF
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return errors.Wrap(err, "source read failed")
		}
		s.done = true
		if line == "" {
			return io.EOF
		}
	}
	s.line = strings.TrimRight(line, "\r\n")
	s.ln++
	s.col = 0
	return nil
}

// Scan returns the next token, or io.EOF once the source is exhausted.
func (s *Scanner) Scan() (Token, error) {
	for {
		for s.col < len(s.line) && isSpace(s.line[s.col]) {
			s.col++
		}
		if s.col >= len(s.line) {
			if err := s.nextLine(); err != nil {
				return Token{}, err
			}
			continue
		}

		start := s.col
		rest := s.line[start:]

		if rest[0] == ';' {
			s.col = len(s.line)
			return Token{Kind: TokComment, Pos: Pos{s.name, s.ln, start + 1}, Text: rest}, nil
		}
		if strings.HasPrefix(rest, `""`) {
			s.col = len(s.line)
			if len(rest) == 2 {
				continue // empty string literal assembles to nothing
			}
			return Token{Kind: TokString, Pos: Pos{s.name, s.ln, start + 1}, Text: rest, Str: rest[2:]}, nil
		}

		end := start
		for end < len(s.line) && !isSpace(s.line[end]) {
			end++
		}
		s.col = end
		return s.classify(s.line[start:end], Pos{s.name, s.ln, start + 1})
	}
}

// classify resolves a plain token in the assembler's disambiguation order:
// boolean, decimal integer, hex integer, float, character, label
// declaration, bare word.
func (s *Scanner) classify(w string, pos Pos) (Token, error) {
	t := Token{Pos: pos, Text: w}

	if strings.EqualFold(w, "true") || strings.EqualFold(w, "false") {
		t.Kind = TokBool
		t.Bool = strings.EqualFold(w, "true")
		return t, nil
	}
	if n, err := strconv.ParseInt(w, 10, 32); err == nil {
		t.Kind = TokInt
		t.Int = int32(n)
		return t, nil
	}
	if hexRe.MatchString(w) {
		n, err := strconv.ParseUint(strings.TrimPrefix(w, "0x"), 16, 32)
		if err == nil {
			t.Kind = TokInt
			t.Int = int32(uint32(n))
			t.Hex = true
			return t, nil
		}
	}
	if f, err := strconv.ParseFloat(w, 64); err == nil &&
		!math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsAny(w, "xX") {
		t.Kind = TokFloat
		t.Float = f
		return t, nil
	}
	if len(w) == 3 && w[0] == '\'' && w[2] == '\'' {
		t.Kind = TokChar
		t.Char = w[1]
		return t, nil
	}
	if labelRe.MatchString(w) {
		t.Kind = TokLabel
		t.Str = w[1:]
		return t, nil
	}
	t.Kind = TokWord
	return t, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}
