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

	"github.com/google/go-cmp/cmp"

	"github.com/bodoni/postscript/tape"
)

func TestReadIndexEmpty(t *testing.T) {
	tp := tape.New(bytes.NewReader([]byte{0x00, 0x00, 0xff}))
	index, err := ReadIndex(tp)
	if err != nil {
		t.Fatal(err)
	}
	if index.Count != 0 || len(index.Offsets) != 0 || len(index.Chunks) != 0 {
		t.Fatalf("got %+v, want an empty Index", index)
	}
	position, err := tp.Position()
	if err != nil {
		t.Fatal(err)
	}
	if position != 2 {
		t.Fatalf("got position %d, want 2 (tape must not read beyond the count)", position)
	}
}

func TestReadIndexMalformedOffsets(t *testing.T) {
	blob := []byte{0x00, 0x02, 0x01, 0x01, 0x05, 0x03}
	tp := tape.New(bytes.NewReader(blob))
	if _, err := ReadIndex(tp); err == nil {
		t.Fatal("expected a malformed-index error for non-monotonic offsets")
	}
}

func TestReadIndexTwoChunks(t *testing.T) {
	blob := []byte{
		0x00, 0x02, // count = 2
		0x01,                   // offsetSize = 1
		0x01, 0x03, 0x04,       // offsets: 1, 3, 4
		'h', 'i', '!',
	}
	tp := tape.New(bytes.NewReader(blob))
	index, err := ReadIndex(tp)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]byte{[]byte("hi"), []byte("!")}
	if diff := cmp.Diff(want, index.Chunks); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestNamesLossyFallback(t *testing.T) {
	index := Index{Chunks: [][]byte{[]byte("Regular"), {0xff, 0xfe}}}
	names := Names(index)
	if names[0] != "Regular" {
		t.Errorf("got %q, want %q", names[0], "Regular")
	}
	if len(names[1]) == 0 {
		t.Error("expected a non-empty lossy-decoded replacement string")
	}
}
