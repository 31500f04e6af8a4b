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

package tape

import (
	"bytes"
	"testing"
)

func TestReadOffset(t *testing.T) {
	cases := []struct {
		size uint8
		want uint32
	}{
		{1, 0x01},
		{2, 0x0203},
		{3, 0x040506},
		{4, 0x0708090a},
	}
	tp := New(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	for _, c := range cases {
		got, err := tp.ReadOffset(c.size)
		if err != nil {
			t.Fatalf("size %d: %v", c.size, err)
		}
		if got != c.want {
			t.Errorf("size %d: got 0x%x, want 0x%x", c.size, got, c.want)
		}
	}
}

func TestReadOffsetInvalidSize(t *testing.T) {
	tp := New(bytes.NewReader([]byte{1, 2, 3, 4}))
	if _, err := tp.ReadOffset(5); err == nil {
		t.Fatal("expected an error for an invalid offset size")
	}
}

func TestPeekUint8(t *testing.T) {
	tp := New(bytes.NewReader([]byte{0x42, 0x43}))
	peeked, err := tp.PeekUint8()
	if err != nil {
		t.Fatal(err)
	}
	if peeked != 0x42 {
		t.Fatalf("got 0x%x, want 0x42", peeked)
	}
	read, err := tp.ReadUint8()
	if err != nil {
		t.Fatal(err)
	}
	if read != 0x42 {
		t.Fatalf("peek consumed the byte: got 0x%x, want 0x42", read)
	}
}

func TestJumpAndPosition(t *testing.T) {
	tp := New(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	if err := tp.Jump(3); err != nil {
		t.Fatal(err)
	}
	position, err := tp.Position()
	if err != nil {
		t.Fatal(err)
	}
	if position != 3 {
		t.Fatalf("got position %d, want 3", position)
	}
	value, err := tp.ReadUint8()
	if err != nil {
		t.Fatal(err)
	}
	if value != 4 {
		t.Fatalf("got %d, want 4", value)
	}
}

func TestReadBytesTruncated(t *testing.T) {
	tp := New(bytes.NewReader([]byte{1, 2}))
	if _, err := tp.ReadBytes(3); err == nil {
		t.Fatal("expected a truncated-read error")
	}
}
