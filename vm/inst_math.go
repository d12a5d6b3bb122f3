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
	"math"

	"github.com/pkg/errors"
)

// Math instructions. Integer arithmetic wraps with two's-complement 32-bit
// semantics.
var mathInstructions = map[string]instFn{
	"IADD":  intBinary(func(a, b int32) int32 { return a + b }),
	"ISUB":  intBinary(func(a, b int32) int32 { return a - b }),
	"IMULT": intBinary(func(a, b int32) int32 { return a * b }),
	"IDIV":  instIDiv,
	"IPOW":  instIPow,
	"ISQRT": instISqrt,
	"IABS":  instIAbs,

	"FADD":  floatBinary(func(a, b float64) float64 { return a + b }),
	"FSUB":  floatBinary(func(a, b float64) float64 { return a - b }),
	"FMULT": floatBinary(func(a, b float64) float64 { return a * b }),
	"FDIV":  instFDiv,
	"FPOW":  floatBinary(math.Pow),
	"FSQRT": floatUnary(math.Sqrt),
	"FABS":  floatUnary(math.Abs),

	"MOD":   instMod,
	"RAND":  instRand,
	"FRAND": instFRand,
	"ROUND": instRound,
	"FLOOR": floatUnary(math.Floor),
	"CEIL":  floatUnary(math.Ceil),
	"LOG10": floatUnary(math.Log10),
	"NEXP":  floatUnary(math.Exp),
	"NLOG":  floatUnary(math.Log),
	"PI":    instPi,
	"SIN":   floatUnary(math.Sin),
	"COS":   floatUnary(math.Cos),
	"TAN":   floatUnary(math.Tan),
	"ASIN":  floatUnary(math.Asin),
	"ACOS":  floatUnary(math.Acos),
	"ATAN":  floatUnary(math.Atan),
	"TODEG": floatUnary(func(f float64) float64 { return f * 180 / math.Pi }),
	"TORAD": floatUnary(func(f float64) float64 { return f * math.Pi / 180 }),
}

func popFloat2(m *Instance) (f1, f2 float64, err error) {
	f2, err = m.data.PopFloat()
	if err != nil {
		return
	}
	f1, err = m.data.PopFloat()
	return
}

// IADD, ISUB, IMULT ( i1 i2 -- i )
func intBinary(f func(a, b int32) int32) instFn {
	return func(m *Instance) error {
		i1, i2, err := popInt2(m)
		if err != nil {
			return err
		}
		return m.data.Push(Int(f(i1, i2)))
	}
}

// FADD, FSUB, FMULT, FPOW ( f1 f2 -- f )
func floatBinary(f func(a, b float64) float64) instFn {
	return func(m *Instance) error {
		f1, f2, err := popFloat2(m)
		if err != nil {
			return err
		}
		return m.data.Push(Float(f(f1, f2)))
	}
}

// FSQRT, FABS, FLOOR, CEIL, LOG10, NEXP, NLOG, SIN, COS, TAN, ASIN, ACOS,
// ATAN, TODEG, TORAD ( f -- f )
func floatUnary(f func(float64) float64) instFn {
	return func(m *Instance) error {
		x, err := m.data.PopFloat()
		if err != nil {
			return err
		}
		return m.data.Push(Float(f(x)))
	}
}

// IDIV ( i1 i2 -- i )
func instIDiv(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	if i2 == 0 {
		return errors.New("Cannot divide by zero.")
	}
	return m.data.Push(Int(i1 / i2))
}

// IPOW ( i1 i2 -- i ) Nearest integer to the mathematical result.
func instIPow(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	return m.data.Push(Int(roundToInt32(math.Pow(float64(i1), float64(i2)))))
}

// ISQRT ( i -- i )
func instISqrt(m *Instance) error {
	i, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.data.Push(Int(truncToInt32(math.Sqrt(float64(i)))))
}

// IABS ( i -- i )
func instIAbs(m *Instance) error {
	i, err := m.data.PopInt()
	if err != nil {
		return err
	}
	if i < 0 {
		i = -i
	}
	return m.data.Push(Int(i))
}

// FDIV ( f1 f2 -- f )
func instFDiv(m *Instance) error {
	f1, f2, err := popFloat2(m)
	if err != nil {
		return err
	}
	if f2 == 0.0 {
		return errors.New("Cannot divide by zero.")
	}
	return m.data.Push(Float(f1 / f2))
}

// MOD ( i1 i2 -- i )
func instMod(m *Instance) error {
	i1, i2, err := popInt2(m)
	if err != nil {
		return err
	}
	if i2 == 0 {
		return errors.New("Cannot divide by zero.")
	}
	return m.data.Push(Int(i1 % i2))
}

// RAND ( i -- i ) Uniform in [0, i).
func instRand(m *Instance) error {
	bound, err := m.data.PopInt()
	if err != nil {
		return err
	}
	if bound < 1 {
		return errors.New("Upper bound must be greater than 0.")
	}
	return m.data.Push(Int(m.rng.Int31n(bound)))
}

// FRAND ( -- f ) Uniform in [0.0, 1.0).
func instFRand(m *Instance) error {
	return m.data.Push(Float(m.rng.Float64()))
}

// ROUND ( f -- i )
func instRound(m *Instance) error {
	f, err := m.data.PopFloat()
	if err != nil {
		return err
	}
	return m.data.Push(Int(roundToInt32(f)))
}

// PI ( -- f )
func instPi(m *Instance) error {
	return m.data.Push(Float(math.Pi))
}

// roundToInt32 rounds half away from zero, saturating at the int32 range.
// NaN rounds to zero.
func roundToInt32(f float64) int32 {
	r := math.Round(f)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int32(r)
}

// truncToInt32 truncates toward zero, saturating at the int32 range. NaN
// truncates to zero.
func truncToInt32(f float64) int32 {
	t := math.Trunc(f)
	switch {
	case math.IsNaN(t):
		return 0
	case t >= math.MaxInt32:
		return math.MaxInt32
	case t <= math.MinInt32:
		return math.MinInt32
	}
	return int32(t)
}
