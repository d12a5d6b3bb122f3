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
	"encoding/binary"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// VirtualDisk is a fixed-length tape of bytes backed by a file, with a
// read-write cursor. At most one disk is mounted at a time; mounting over a
// mounted disk unmounts it first. All multi-byte types are stored
// big-endian: bool and char are one byte, int four, float eight; a char
// range is a four-byte length followed by its bytes.
type VirtualDisk struct {
	hci        HCI
	f          *os.File
	name       string
	maxSize    int
	sectorSize int
	pos        int
}

func newVirtualDisk(h HCI) *VirtualDisk {
	return &VirtualDisk{hci: h}
}

func (d *VirtualDisk) mountedCheck() error {
	if d.f == nil {
		return errors.New("No disk has been mounted.")
	}
	return nil
}

func (d *VirtualDisk) boundsCheck(pos int) error {
	if pos < 0 || pos >= d.maxSize {
		return errors.New("File Pointer goes out of bounds.")
	}
	return nil
}

// accessCheck verifies that size bytes at the cursor lie entirely on the
// tape.
func (d *VirtualDisk) accessCheck(size int) error {
	if err := d.boundsCheck(d.pos); err != nil {
		return err
	}
	return d.boundsCheck(d.pos + size - 1)
}

func (d *VirtualDisk) logWrite(size int) {
	d.hci.Log("Writing "+strconv.Itoa(size)+"bytes at position "+
		strconv.Itoa(d.pos)+"...\n", LogInfo)
}

// Mount installs a disk backed by the named file, sized to sectorSize times
// numSectors bytes. The backing file is created or resized as needed and
// the cursor rewinds to zero.
func (d *VirtualDisk) Mount(name string, sectorSize, numSectors int) error {
	if d.f != nil {
		if err := d.Unmount(); err != nil {
			return err
		}
	}

	d.maxSize = sectorSize * numSectors
	d.sectorSize = sectorSize
	d.name = name

	if sectorSize <= 0 || d.maxSize < sectorSize {
		return errors.New("Invalid size specifications for virtual disk.")
	}

	d.hci.Log("Mounting virtual disk: "+name+"...\n", LogEvent)
	d.hci.Log("Size: "+strconv.Itoa(d.maxSize)+", SectorSize: "+
		strconv.Itoa(d.sectorSize)+".\n", LogInfo)

	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrap(err, "Could not mount virtual disk")
	}
	if err = f.Truncate(int64(d.maxSize)); err != nil {
		f.Close()
		return errors.Wrap(err, "Could not mount virtual disk")
	}
	d.f = f
	d.pos = 0
	return nil
}

// Unmount closes the mounted disk, if any.
func (d *VirtualDisk) Unmount() error {
	if d.f == nil {
		return nil
	}
	d.hci.Log("Unmounting virtual disk "+d.name+"...\n", LogEvent)
	err := d.f.Close()
	d.f = nil
	if err != nil {
		return errors.Wrap(err, "Failed to unmount virtual disk")
	}
	return nil
}

// SectorSize returns the sector size of the mounted disk.
func (d *VirtualDisk) SectorSize() (int, error) {
	if err := d.mountedCheck(); err != nil {
		return 0, err
	}
	return d.sectorSize, nil
}

// NumSectors returns the number of sectors on the mounted disk.
func (d *VirtualDisk) NumSectors() (int, error) {
	if err := d.mountedCheck(); err != nil {
		return 0, err
	}
	return d.maxSize / d.sectorSize, nil
}

// Pos returns the cursor position.
func (d *VirtualDisk) Pos() (int, error) {
	if err := d.mountedCheck(); err != nil {
		return 0, err
	}
	return d.pos, nil
}

// SectorPos returns the tape position where the given sector starts.
func (d *VirtualDisk) SectorPos(sector int) (int, error) {
	if err := d.mountedCheck(); err != nil {
		return 0, err
	}
	offset := sector * d.sectorSize
	if err := d.boundsCheck(offset); err != nil {
		return 0, err
	}
	return offset, nil
}

// Seek moves the cursor to pos.
func (d *VirtualDisk) Seek(pos int) error {
	if err := d.mountedCheck(); err != nil {
		return err
	}
	if err := d.boundsCheck(pos); err != nil {
		return err
	}
	d.pos = pos
	return nil
}

func (d *VirtualDisk) read(buf []byte, what string) error {
	if err := d.mountedCheck(); err != nil {
		return err
	}
	if err := d.accessCheck(len(buf)); err != nil {
		return err
	}
	if _, err := d.f.ReadAt(buf, int64(d.pos)); err != nil {
		return errors.Wrap(err, "Unable to read "+what)
	}
	d.pos += len(buf)
	return nil
}

func (d *VirtualDisk) write(buf []byte, what string) error {
	if err := d.mountedCheck(); err != nil {
		return err
	}
	if err := d.accessCheck(len(buf)); err != nil {
		return err
	}
	d.logWrite(len(buf))
	if _, err := d.f.WriteAt(buf, int64(d.pos)); err != nil {
		return errors.Wrap(err, "Unable to write "+what)
	}
	d.pos += len(buf)
	return nil
}

// ReadBool reads one byte at the cursor; nonzero is true.
func (d *VirtualDisk) ReadBool() (bool, error) {
	var b [1]byte
	if err := d.read(b[:], "BOOL"); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// ReadChar reads one character at the cursor.
func (d *VirtualDisk) ReadChar() (byte, error) {
	var b [1]byte
	if err := d.read(b[:], "CHAR"); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt reads a big-endian 32-bit integer at the cursor.
func (d *VirtualDisk) ReadInt() (int32, error) {
	var b [4]byte
	if err := d.read(b[:], "INT"); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

// ReadFloat reads a big-endian IEEE-754 float at the cursor.
func (d *VirtualDisk) ReadFloat() (float64, error) {
	var b [8]byte
	if err := d.read(b[:], "FLOAT"); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b[:])), nil
}

// ReadCharRange reads a length-prefixed character range at the cursor.
func (d *VirtualDisk) ReadCharRange() (string, error) {
	size, err := d.ReadInt()
	if err != nil {
		return "", err
	}
	if size < 0 || int(size) > d.maxSize {
		return "", errors.New("Unable to read CHAR range. Invalid length prefix.")
	}
	buf := make([]byte, size)
	if err := d.read(buf, "CHAR range"); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteBool writes one byte at the cursor.
func (d *VirtualDisk) WriteBool(b bool) error {
	var v byte
	if b {
		v = 1
	}
	return d.write([]byte{v}, "BOOL")
}

// WriteChar writes one character at the cursor.
func (d *VirtualDisk) WriteChar(c byte) error {
	return d.write([]byte{c}, "CHAR")
}

// WriteInt writes a big-endian 32-bit integer at the cursor.
func (d *VirtualDisk) WriteInt(i int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(i))
	return d.write(b[:], "INT")
}

// WriteFloat writes a big-endian IEEE-754 float at the cursor.
func (d *VirtualDisk) WriteFloat(f float64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
	return d.write(b[:], "FLOAT")
}

// WriteCharRange writes a length-prefixed character range at the cursor.
func (d *VirtualDisk) WriteCharRange(s string) error {
	if err := d.mountedCheck(); err != nil {
		return err
	}
	if err := d.accessCheck(4 + len(s)); err != nil {
		return err
	}
	buf := make([]byte, 4+len(s))
	binary.BigEndian.PutUint32(buf, uint32(len(s)))
	copy(buf[4:], s)
	return d.write(buf, "CHAR range")
}
