// This file is part of cmosi2c.
//
// cmosi2c is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmosi2c is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cmosi2c.  If not, see <https://www.gnu.org/licenses/>.

package cmos

import (
	"io"
	"os"

	"github.com/jetsetilly/cmosi2c/curated"
)

// Backing is the persistent storage for a Store. Load() must fill all of data
// or fail. Save() must write all of data or fail.
type Backing interface {
	Load(data []uint8) error
	Save(data []uint8) error
	String() string
}

// Sentinel errors returned by Backing implementations.
//
// ErrBackingAbsent is recoverable: the store starts zero-filled. ErrTruncated
// means the backing exists but cannot supply a full store and the session
// should not continue.
const (
	ErrBackingAbsent = "cmos: could not open %s: %v"
	ErrTruncated     = "cmos: unable to read from %s: %v"
	ErrSave          = "cmos: unable to write %s: %v"
)

// File is a Backing stored in a file on the host.
type File struct {
	Path string
}

func (f File) String() string {
	return f.Path
}

// Load implements the Backing interface.
func (f File) Load(data []uint8) error {
	fl, err := os.Open(f.Path)
	if err != nil {
		return curated.Errorf(ErrBackingAbsent, f.Path, err)
	}
	defer fl.Close()

	_, err = io.ReadFull(fl, data)
	if err != nil {
		return curated.Errorf(ErrTruncated, f.Path, err)
	}

	return nil
}

// Save implements the Backing interface.
func (f File) Save(data []uint8) error {
	fl, err := os.Create(f.Path)
	if err != nil {
		return curated.Errorf(ErrSave, f.Path, err)
	}

	n, err := fl.Write(data)
	if err != nil {
		fl.Close()
		return curated.Errorf(ErrSave, f.Path, err)
	}
	if n != len(data) {
		fl.Close()
		return curated.Errorf(ErrSave, f.Path, io.ErrShortWrite)
	}

	err = fl.Close()
	if err != nil {
		return curated.Errorf(ErrSave, f.Path, err)
	}

	return nil
}

// Memory is a Backing that never touches the host file system. A nil Data
// field behaves like a missing file.
type Memory struct {
	Data []uint8

	// the number of successful calls to Save()
	Saves int

	// if not nil, Save() fails with this error
	Fail error
}

func (m *Memory) String() string {
	return "memory"
}

// Load implements the Backing interface.
func (m *Memory) Load(data []uint8) error {
	if m.Data == nil {
		return curated.Errorf(ErrBackingAbsent, m, os.ErrNotExist)
	}
	if len(m.Data) < len(data) {
		return curated.Errorf(ErrTruncated, m, io.ErrUnexpectedEOF)
	}
	copy(data, m.Data)
	return nil
}

// Save implements the Backing interface.
func (m *Memory) Save(data []uint8) error {
	if m.Fail != nil {
		return curated.Errorf(ErrSave, m, m.Fail)
	}
	m.Data = make([]uint8, len(data))
	copy(m.Data, data)
	m.Saves++
	return nil
}
