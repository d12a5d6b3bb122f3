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

package vm_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Tzolkat/stackmachineproject/vm"
)

// mountSrc emits the source to mount a disk at path with the given
// geometry. The sector size is on top when MOUNT runs.
func mountSrc(path string, numSectors, sectorSize int) string {
	var b strings.Builder
	b.WriteString("\"\"")
	b.WriteString(path)
	b.WriteString("\n")
	b.WriteString(strconv.Itoa(numSectors) + " " + strconv.Itoa(sectorSize) + " MOUNT\n")
	return b.String()
}

func diskPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "disk.bin")
}

func TestDiskIntRoundTrip(t *testing.T) {
	path := diskPath(t)
	src := "BEGIN\n" + mountSrc(path, 4, 16) +
		"0x12345678 WRITEI\n0 SEEK\nREADI\nUNMOUNT\n0 EXIT\n"
	m, _, code, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code: got %d, want 0", code)
	}
	checkStack(t, m, C{vm.Int(305419896)})

	// the backing file has the full geometry and a big-endian encoding
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 64 {
		t.Fatalf("disk file size: got %d, want 64", len(raw))
	}
	if raw[0] != 0x12 || raw[1] != 0x34 || raw[2] != 0x56 || raw[3] != 0x78 {
		t.Errorf("encoding not big-endian: % x", raw[:4])
	}
}

func TestDiskTypedRoundTrips(t *testing.T) {
	src := "BEGIN\n" + mountSrc(diskPath(t), 4, 16) + `true WRITEB
'Q' WRITEC
2.5 WRITEF
0 SEEK
READB
READC
READF
0 EXIT
`
	m, _, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	checkStack(t, m, C{vm.Bool(true), vm.Char('Q'), vm.Float(2.5)})
}

func TestDiskCharRangeRoundTrip(t *testing.T) {
	src := "BEGIN\n" + mountSrc(diskPath(t), 4, 16) + `""hello
WRITESTR
0 SEEK
READSTR
PRINTSTR
VDPOS
0 EXIT
`
	m, h, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.out.String() != "hello" {
		t.Errorf("output: got %q, want %q", h.out.String(), "hello")
	}
	// 4-byte length prefix plus five characters
	checkStack(t, m, C{vm.Int(9)})
}

func TestDiskInfoAndSeek(t *testing.T) {
	src := "BEGIN\n" + mountSrc(diskPath(t), 4, 16) + `VDINFO
2 SECTOR
VDPOS
0 EXIT
`
	m, _, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	checkStack(t, m, C{vm.Int(16), vm.Int(4), vm.Int(32), vm.Int(0)})
}

func TestDiskErrors(t *testing.T) {
	tests := [...]struct {
		name string
		code string
		want string
	}{
		{"unmounted read", "READI", "READI: No disk has been mounted."},
		{"unmounted info", "VDINFO", "No disk has been mounted."},
		{"seek out of bounds", "64 SEEK", "SEEK: File Pointer goes out of bounds."},
		{"read past end", "61 SEEK READI", "File Pointer goes out of bounds."},
		{"write past end", "61 SEEK 1 WRITEI", "File Pointer goes out of bounds."},
		{"bad sector", "4 SECTOR", "File Pointer goes out of bounds."},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := "BEGIN\n"
			if !strings.HasPrefix(test.name, "unmounted") {
				src += mountSrc(diskPath(t), 4, 16)
			}
			src += test.code + "\n0 EXIT\n"
			_, _, _, err := runSource(t, src)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Fatalf("got %v, want error containing %q", err, test.want)
			}
		})
	}
}

func TestDiskBadGeometry(t *testing.T) {
	src := "BEGIN\n" + mountSrc(diskPath(t), 4, 0) + "0 EXIT\n"
	_, _, _, err := runSource(t, src)
	if err == nil || !strings.Contains(err.Error(),
		"Invalid size specifications for virtual disk.") {
		t.Fatalf("got %v, want geometry error", err)
	}
}

func TestDiskRemountReplaces(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	src := "BEGIN\n" + mountSrc(a, 4, 16) + mountSrc(b, 2, 8) +
		"VDINFO\nUNMOUNT\n0 EXIT\n"
	m, _, _, err := runSource(t, src)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	checkStack(t, m, C{vm.Int(8), vm.Int(2)})
	for _, p := range []string{a, b} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("backing file %s: %v", p, err)
		}
	}
}
