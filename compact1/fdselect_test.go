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

package compact1

import (
	"bytes"
	"testing"

	"github.com/bodoni/postscript/tape"
)

func TestReadFDSelectFormat0(t *testing.T) {
	blob := []byte{0x00, 0x00, 0x01, 0x01, 0x02}
	tp := tape.New(bytes.NewReader(blob))
	fdSelect, err := ReadFDSelect(tp, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	for glyphID, want := range map[GlyphID]int{0: 0, 1: 1, 2: 1, 3: 2} {
		if got, ok := fdSelect.Get(glyphID); !ok || got != want {
			t.Errorf("glyph %d: got (%d, %v), want (%d, true)", glyphID, got, ok, want)
		}
	}
}

func TestReadFDSelectFormat3(t *testing.T) {
	// Two ranges: glyphs [0,2) -> fd 0, glyphs [2,5) -> fd 1; sentinel 5.
	blob := []byte{
		0x03,
		0x00, 0x02, // nRanges = 2
		0x00, 0x00, 0x00, // first=0, fd=0
		0x00, 0x02, 0x01, // first=2, fd=1
		0x00, 0x05, // sentinel = 5
	}
	tp := tape.New(bytes.NewReader(blob))
	fdSelect, err := ReadFDSelect(tp, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := map[GlyphID]int{0: 0, 1: 0, 2: 1, 3: 1, 4: 1}
	for glyphID, fd := range want {
		if got, ok := fdSelect.Get(glyphID); !ok || got != fd {
			t.Errorf("glyph %d: got (%d, %v), want (%d, true)", glyphID, got, ok, fd)
		}
	}
}

func TestReadFDSelectFormat3WrongSentinel(t *testing.T) {
	blob := []byte{
		0x03,
		0x00, 0x01,
		0x00, 0x00, 0x00,
		0x00, 0x04, // wrong sentinel, should be 5
	}
	tp := tape.New(bytes.NewReader(blob))
	if _, err := ReadFDSelect(tp, 5, 1); err == nil {
		t.Fatal("expected a wrong-sentinel error")
	}
}

func TestReadFDSelectOutOfRangeFD(t *testing.T) {
	blob := []byte{0x00, 0x05}
	tp := tape.New(bytes.NewReader(blob))
	if _, err := ReadFDSelect(tp, 1, 2); err == nil {
		t.Fatal("expected an out-of-range FDSelect entry error")
	}
}
