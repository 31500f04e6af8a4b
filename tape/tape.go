// github.com/bodoni/postscript - a library for reading PostScript font programs
// Copyright (C) 2025  bodoni
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package tape provides a random-access byte-tape abstraction over an
// io.ReadSeeker, the common substrate every decoder in compact1 and type2
// reads from.
package tape

import (
	"encoding/binary"
	"io"

	"github.com/bodoni/postscript"
)

const subSystem = "tape"

// Tape is a random-access cursor over a byte source. It is the Go analogue
// of the Tape trait in the source this package was ported from: every
// primitive read either succeeds in full or fails, with io.EOF when no byte
// at all was left and with a truncated-read error otherwise.
type Tape struct {
	r io.ReadSeeker
}

// New wraps r in a Tape positioned at whatever offset r currently reports.
func New(r io.ReadSeeker) *Tape {
	return &Tape{r: r}
}

// Position reports the current absolute byte offset.
func (tape *Tape) Position() (uint64, error) {
	position, err := tape.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	return uint64(position), nil
}

// Jump moves the cursor to an absolute byte offset.
func (tape *Tape) Jump(position uint64) error {
	_, err := tape.r.Seek(int64(position), io.SeekStart)
	return err
}

// ReadBytes reads exactly n bytes. If the source is exhausted before a
// single byte could be read, the unwrapped io.EOF is returned so that
// callers distinguishing a clean end-of-input (compact1.Operations, at an
// operation boundary) from a genuine truncation can tell the two apart: any
// other short read fails with a truncated-read error instead.
func (tape *Tape) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buffer := make([]byte, n)
	if _, err := io.ReadFull(tape.r, buffer); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, truncated(err)
	}
	return buffer, nil
}

// ReadUint8 reads a single byte.
func (tape *Tape) ReadUint8() (uint8, error) {
	buffer, err := tape.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buffer[0], nil
}

// ReadUint16 reads a big-endian 16-bit integer.
func (tape *Tape) ReadUint16() (uint16, error) {
	buffer, err := tape.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buffer), nil
}

// ReadUint24 reads a big-endian 24-bit integer, zero-extended into a uint32.
func (tape *Tape) ReadUint24() (uint32, error) {
	buffer, err := tape.ReadBytes(3)
	if err != nil {
		return 0, err
	}
	return uint32(buffer[0])<<16 | uint32(buffer[1])<<8 | uint32(buffer[2]), nil
}

// ReadUint32 reads a big-endian 32-bit integer.
func (tape *Tape) ReadUint32() (uint32, error) {
	buffer, err := tape.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buffer), nil
}

// ReadOffset reads an Offset of the given size (1, 2, 3, or 4 bytes),
// zero-extending narrower sizes into a uint32.
func (tape *Tape) ReadOffset(size uint8) (uint32, error) {
	switch size {
	case 1:
		value, err := tape.ReadUint8()
		return uint32(value), err
	case 2:
		value, err := tape.ReadUint16()
		return uint32(value), err
	case 3:
		return tape.ReadUint24()
	case 4:
		return tape.ReadUint32()
	default:
		return 0, postscript.InvalidSince(subSystem, "found a malformed offset size")
	}
}

// PeekUint8 reads a byte and then restores the cursor, so the byte can be
// examined without being consumed. It is the only mechanism decoders use to
// dispatch on a leading byte.
func (tape *Tape) PeekUint8() (uint8, error) {
	position, err := tape.Position()
	if err != nil {
		return 0, err
	}
	value, err := tape.ReadUint8()
	if err != nil {
		return 0, err
	}
	if err := tape.Jump(position); err != nil {
		return 0, err
	}
	return value, nil
}

func truncated(err error) error {
	if err == io.ErrUnexpectedEOF {
		return postscript.InvalidSince(subSystem, "found a truncated read")
	}
	return err
}
