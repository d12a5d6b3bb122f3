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

// Time instructions. Both report the instant sampled when the machine was
// created (see the Clock option).
var timeInstructions = map[string]instFn{
	"GETTIME": instGetTime,
	"GETDATE": instGetDate,
}

// GETTIME ( -- i i i ) Hour, minute, second.
func instGetTime(m *Instance) error {
	h, min, sec := m.now.Clock()
	if err := m.data.Push(Int(int32(h))); err != nil {
		return err
	}
	if err := m.data.Push(Int(int32(min))); err != nil {
		return err
	}
	return m.data.Push(Int(int32(sec)))
}

// GETDATE ( -- i i i ) Year, month, day.
func instGetDate(m *Instance) error {
	y, mon, day := m.now.Date()
	if err := m.data.Push(Int(int32(y))); err != nil {
		return err
	}
	if err := m.data.Push(Int(int32(mon))); err != nil {
		return err
	}
	return m.data.Push(Int(int32(day)))
}
