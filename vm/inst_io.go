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

import "github.com/pkg/errors"

// Input/output instructions.
var ioInstructions = map[string]instFn{
	"PRINT":      instPrint,
	"ERROR":      instError,
	"LOG":        instLog,
	"PRINTSTR":   instPrintStr,
	"ERRORSTR":   instErrorStr,
	"LOGSTR":     instLogStr,
	"GETLINE":    instGetLine,
	"DEBUG":      instDebug,
	"NEWLINE":    instNewline,
	"TAB":        instTab,
	"SPACE":      instSpace,
	"LOGWARNING": instLogWarning,
	"LOGEVENT":   instLogEvent,
	"LOGINFO":    instLogInfo,
	"LOGVERBOSE": instLogVerbose,
}

func popLogLevel(m *Instance) (int, error) {
	level, err := m.data.PopInt()
	if err != nil {
		return 0, err
	}
	if level < 0 || level > 3 {
		return 0, errors.New("Log level must be between 0 and 3.")
	}
	return int(level), nil
}

// PRINT ( o -- )
func instPrint(m *Instance) error {
	v, err := m.data.Pop()
	if err != nil {
		return err
	}
	m.hci.Print(v.String())
	return nil
}

// ERROR ( o -- )
func instError(m *Instance) error {
	v, err := m.data.Pop()
	if err != nil {
		return err
	}
	m.hci.Error(v.String())
	return nil
}

// LOG ( o i -- )
func instLog(m *Instance) error {
	level, err := popLogLevel(m)
	if err != nil {
		return err
	}
	v, err := m.data.Pop()
	if err != nil {
		return err
	}
	m.hci.Log(v.String(), level)
	return nil
}

// PRINTSTR ( c1..cn i -- )
func instPrintStr(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	m.hci.Print(s)
	return nil
}

// ERRORSTR ( c1..cn i -- )
func instErrorStr(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	m.hci.Error(s)
	return nil
}

// LOGSTR ( c1..cn i1 i2 -- )
func instLogStr(m *Instance) error {
	level, err := popLogLevel(m)
	if err != nil {
		return err
	}
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	m.hci.Log(s, level)
	return nil
}

// GETLINE ( -- c1..cn i )
func instGetLine(m *Instance) error {
	s, err := m.hci.GetLine()
	if err != nil {
		return errors.Wrap(err, "Unable to read line from input")
	}
	return m.data.PushCharRange(s)
}

// DEBUG ( b -- )
func instDebug(m *Instance) error {
	on, err := m.data.PopBool()
	if err != nil {
		return err
	}
	m.hci.SetDebug(on)
	return nil
}

// NEWLINE ( -- c )
func instNewline(m *Instance) error {
	return m.data.Push(Char('\n'))
}

// TAB ( -- c )
func instTab(m *Instance) error {
	return m.data.Push(Char('\t'))
}

// SPACE ( -- c ) Exists because ' ' confuses the assembler.
func instSpace(m *Instance) error {
	return m.data.Push(Char(' '))
}

// LOGWARNING ( -- i )
func instLogWarning(m *Instance) error {
	return m.data.Push(Int(LogWarning))
}

// LOGEVENT ( -- i )
func instLogEvent(m *Instance) error {
	return m.data.Push(Int(LogEvent))
}

// LOGINFO ( -- i )
func instLogInfo(m *Instance) error {
	return m.data.Push(Int(LogInfo))
}

// LOGVERBOSE ( -- i )
func instLogVerbose(m *Instance) error {
	return m.data.Push(Int(LogVerbose))
}
