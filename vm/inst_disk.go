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

// Virtual disk instructions.
var diskInstructions = map[string]instFn{
	"MOUNT":    instMount,
	"UNMOUNT":  instUnmount,
	"VDINFO":   instVDInfo,
	"VDPOS":    instVDPos,
	"SECTOR":   instSector,
	"SEEK":     instSeek,
	"READB":    instReadB,
	"READC":    instReadC,
	"READI":    instReadI,
	"READF":    instReadF,
	"READSTR":  instReadStr,
	"WRITEB":   instWriteB,
	"WRITEC":   instWriteC,
	"WRITEI":   instWriteI,
	"WRITEF":   instWriteF,
	"WRITESTR": instWriteStr,
}

// MOUNT ( c1..cn i i1 i2 -- ) The sector size pops first, then the sector
// count, then the disk name.
func instMount(m *Instance) error {
	sectorSize, err := m.data.PopInt()
	if err != nil {
		return err
	}
	numSectors, err := m.data.PopInt()
	if err != nil {
		return err
	}
	name, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	return m.disk.Mount(name, int(sectorSize), int(numSectors))
}

// UNMOUNT ( -- )
func instUnmount(m *Instance) error {
	return m.disk.Unmount()
}

// VDINFO ( -- i i )
func instVDInfo(m *Instance) error {
	size, err := m.disk.SectorSize()
	if err != nil {
		return err
	}
	count, err := m.disk.NumSectors()
	if err != nil {
		return err
	}
	if err := m.data.Push(Int(int32(size))); err != nil {
		return err
	}
	return m.data.Push(Int(int32(count)))
}

// VDPOS ( -- i )
func instVDPos(m *Instance) error {
	pos, err := m.disk.Pos()
	if err != nil {
		return err
	}
	return m.data.Push(Int(int32(pos)))
}

// SECTOR ( i -- i )
func instSector(m *Instance) error {
	sector, err := m.data.PopInt()
	if err != nil {
		return err
	}
	pos, err := m.disk.SectorPos(int(sector))
	if err != nil {
		return err
	}
	return m.data.Push(Int(int32(pos)))
}

// SEEK ( i -- )
func instSeek(m *Instance) error {
	pos, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.disk.Seek(int(pos))
}

// READB ( -- b )
func instReadB(m *Instance) error {
	b, err := m.disk.ReadBool()
	if err != nil {
		return err
	}
	return m.data.Push(Bool(b))
}

// READC ( -- c )
func instReadC(m *Instance) error {
	c, err := m.disk.ReadChar()
	if err != nil {
		return err
	}
	return m.data.Push(Char(c))
}

// READI ( -- i )
func instReadI(m *Instance) error {
	i, err := m.disk.ReadInt()
	if err != nil {
		return err
	}
	return m.data.Push(Int(i))
}

// READF ( -- f )
func instReadF(m *Instance) error {
	f, err := m.disk.ReadFloat()
	if err != nil {
		return err
	}
	return m.data.Push(Float(f))
}

// READSTR ( -- c1..cn i )
func instReadStr(m *Instance) error {
	s, err := m.disk.ReadCharRange()
	if err != nil {
		return err
	}
	return m.data.PushCharRange(s)
}

// WRITEB ( b -- )
func instWriteB(m *Instance) error {
	b, err := m.data.PopBool()
	if err != nil {
		return err
	}
	return m.disk.WriteBool(b)
}

// WRITEC ( c -- )
func instWriteC(m *Instance) error {
	c, err := m.data.PopChar()
	if err != nil {
		return err
	}
	return m.disk.WriteChar(c)
}

// WRITEI ( i -- )
func instWriteI(m *Instance) error {
	i, err := m.data.PopInt()
	if err != nil {
		return err
	}
	return m.disk.WriteInt(i)
}

// WRITEF ( f -- )
func instWriteF(m *Instance) error {
	f, err := m.data.PopFloat()
	if err != nil {
		return err
	}
	return m.disk.WriteFloat(f)
}

// WRITESTR ( c1..cn i -- )
func instWriteStr(m *Instance) error {
	s, err := m.data.PopCharRange()
	if err != nil {
		return err
	}
	return m.disk.WriteCharRange(s)
}
