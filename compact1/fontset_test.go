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

// minimalNameKeyedFontSet builds a single-font, name-keyed CFF region with a
// two-glyph CharStrings INDEX, an empty (zero-size) Private dictionary, and
// predefined charset/encoding — just enough to exercise ReadFontSet's
// sequencing and offset handling without real font data.
func minimalNameKeyedFontSet() []byte {
	var blob bytes.Buffer
	blob.Write([]byte{0x01, 0x00, 0x04, 0x01}) // header: v1.0, headerSize 4, offsetSize 1

	// Name INDEX: one entry, "Test".
	blob.Write([]byte{0x00, 0x01, 0x01, 0x01, 0x05})
	blob.WriteString("Test")

	// Top DICT INDEX: one entry referencing CharStrings at 33 and an empty
	// Private dictionary (size 0) at offset 41.
	topDict := []byte{
		0x1c, 0x00, 0x21, 0x11, // 33 CharStrings
		0x1c, 0x00, 0x00, // 0
		0x1c, 0x00, 0x29, 0x12, // 41 Private
	}
	blob.Write([]byte{0x00, 0x01, 0x01, 0x01, byte(1 + len(topDict))})
	blob.Write(topDict)

	blob.Write([]byte{0x00, 0x00}) // empty String INDEX
	blob.Write([]byte{0x00, 0x00}) // empty global Subr INDEX

	// CharStrings INDEX: two one-byte glyphs, starting at offset 33.
	blob.Write([]byte{0x00, 0x02, 0x01, 0x01, 0x02, 0x03, 0x0e, 0x0e})

	return blob.Bytes()
}

func TestReadFontSetNameKeyed(t *testing.T) {
	tp := tape.New(bytes.NewReader(minimalNameKeyedFontSet()))
	fontSet, err := ReadFontSet(tp)
	if err != nil {
		t.Fatal(err)
	}

	if fontSet.Header.Major != 1 || fontSet.Header.HeaderSize != 4 {
		t.Errorf("unexpected header: %+v", fontSet.Header)
	}
	if len(fontSet.Names) != 1 || fontSet.Names[0] != "Test" {
		t.Errorf("got names %v, want [Test]", fontSet.Names)
	}
	if len(fontSet.CharacterStrings) != 1 || len(fontSet.CharacterStrings[0].Chunks) != 2 {
		t.Fatalf("expected one font with two char strings, got %+v", fontSet.CharacterStrings)
	}
	if len(fontSet.Records) != 1 || fontSet.Records[0].NameKeyed == nil {
		t.Fatal("expected a name-keyed record")
	}
	if fontSet.Records[0].CharacterIDKeyed != nil {
		t.Error("a name-keyed font must not carry a CID-keyed record")
	}
	if len(fontSet.CharacterSets) != 1 {
		t.Fatal("expected one character set")
	}
	if len(ISOAdobeCharacterSet) != len(fontSet.CharacterSets[0]) {
		t.Error("unset CharSet offset should fall back to the predefined ISOAdobe set")
	}
}

func TestReadFontSetRejectsUnsupportedVersion(t *testing.T) {
	blob := []byte{0x02, 0x00, 0x04, 0x01}
	tp := tape.New(bytes.NewReader(blob))
	if _, err := ReadFontSet(tp); err == nil {
		t.Fatal("expected an unsupported-version error")
	}
}

func TestReadFontSetTruncatedHeader(t *testing.T) {
	blob := []byte{0x01, 0x00}
	tp := tape.New(bytes.NewReader(blob))
	if _, err := ReadFontSet(tp); err == nil {
		t.Fatal("expected a truncated-header error")
	}
}
