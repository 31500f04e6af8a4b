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

func TestStandardEncodingAsterisk(t *testing.T) {
	sid, ok := StandardEncoding.Get(42)
	if !ok {
		t.Fatal("expected code 42 to have an assigned glyph")
	}
	if sid != 11 {
		t.Fatalf("got SID %d, want 11 (asterisk)", sid)
	}
}

func TestStandardEncodingLetterA(t *testing.T) {
	sid, ok := StandardEncoding.Get(65)
	if !ok {
		t.Fatal("expected code 65 to have an assigned glyph")
	}
	if sid != 34 {
		t.Fatalf("got SID %d, want 34 ('A')", sid)
	}
}

func TestExpertEncodingUnassignedCode(t *testing.T) {
	if _, ok := ExpertEncoding.Get(3); ok {
		t.Error("expected code 3 to have no assigned glyph in the Expert encoding")
	}
}

func TestReadEncodingFormat0(t *testing.T) {
	charset := make([]StringID, 4) // .notdef + 3 assigned glyphs
	blob := []byte{0x00, 0x02, 0x41, 0x42}
	tp := tape.New(bytes.NewReader(blob))
	encoding, err := ReadEncoding(tp, charset)
	if err != nil {
		t.Fatal(err)
	}
	if gid, ok := encoding.GlyphID(0x41); !ok || gid != 1 {
		t.Errorf("got (%d, %v), want (1, true)", gid, ok)
	}
	if gid, ok := encoding.GlyphID(0x42); !ok || gid != 2 {
		t.Errorf("got (%d, %v), want (2, true)", gid, ok)
	}
	if _, ok := encoding.GlyphID(0x43); ok {
		t.Error("expected code 0x43 to have no assigned glyph")
	}
}

func TestReadEncodingFormat1(t *testing.T) {
	charset := make([]StringID, 4)
	blob := []byte{0x01, 0x01, 0x10, 0x02} // one range: first=0x10, nLeft=2 (3 codes)
	tp := tape.New(bytes.NewReader(blob))
	encoding, err := ReadEncoding(tp, charset)
	if err != nil {
		t.Fatal(err)
	}
	for i, code := range []uint8{0x10, 0x11, 0x12} {
		gid, ok := encoding.GlyphID(code)
		if !ok || gid != GlyphID(i+1) {
			t.Errorf("code 0x%x: got (%d, %v), want (%d, true)", code, gid, ok, i+1)
		}
	}
}

func TestReadEncodingSupplementDropsUnresolvedSID(t *testing.T) {
	// charset: glyph 1 -> SID 10, glyph 2 -> SID 20, glyph 3 -> SID 30.
	charset := []StringID{0, 10, 20, 30}
	blob := []byte{
		0x80,       // format 0, supplemented
		0x01, 0x41, // one code: 0x41 -> glyph 1
		0x02,             // two supplement pairs
		0x42, 0x03, 0xe7, // code 0x42 -> SID 999, absent from charset
		0x43, 0x00, 0x0a, // code 0x43 -> SID 10, already assigned as glyph 1
	}
	tp := tape.New(bytes.NewReader(blob))
	encoding, err := ReadEncoding(tp, charset)
	if err != nil {
		t.Fatal(err)
	}
	if gid, ok := encoding.GlyphID(0x41); !ok || gid != 1 {
		t.Errorf("code 0x41: got (%d, %v), want (1, true)", gid, ok)
	}
	if _, ok := encoding.GlyphID(0x42); ok {
		t.Error("a supplement SID absent from the charset should resolve to no assigned glyph, not an error")
	}
	if gid, ok := encoding.GlyphID(0x43); !ok || gid != 1 {
		t.Errorf("code 0x43: got (%d, %v), want (1, true)", gid, ok)
	}
}

func TestReadEncodingUnsupportedFormat(t *testing.T) {
	blob := []byte{0x02}
	tp := tape.New(bytes.NewReader(blob))
	if _, err := ReadEncoding(tp, nil); err == nil {
		t.Fatal("expected an unsupported-format error")
	}
}
