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
	"unicode/utf8"

	"github.com/bodoni/postscript"
	"github.com/bodoni/postscript/tape"
)

// Index is CFF's variable-size array structure: a count, a uniform offset
// size, an offset table of count+1 entries, and count data chunks read
// contiguously after it.
type Index struct {
	Count      uint16
	OffsetSize uint8
	Offsets    []uint32
	Chunks     [][]byte
}

// ReadIndex decodes an Index. A count of zero yields an empty Index and
// consumes nothing beyond the two count bytes. Offsets must start at 1 and
// never decrease; any violation is a malformed INDEX.
func ReadIndex(t *tape.Tape) (Index, error) {
	count, err := t.ReadUint16()
	if err != nil {
		return Index{}, err
	}
	if count == 0 {
		return Index{}, nil
	}

	offsetSize, err := t.ReadUint8()
	if err != nil {
		return Index{}, err
	}

	offsets := make([]uint32, int(count)+1)
	for i := range offsets {
		offset, err := t.ReadOffset(offsetSize)
		if err != nil {
			return Index{}, err
		}
		if i == 0 {
			if offset != 1 {
				return Index{}, postscript.InvalidSince(subSystem, "found a malformed index")
			}
		} else if offset < offsets[i-1] {
			return Index{}, postscript.InvalidSince(subSystem, "found a malformed index")
		}
		offsets[i] = offset
	}

	chunks := make([][]byte, count)
	for i := range chunks {
		length := int(offsets[i+1] - offsets[i])
		chunk, err := t.ReadBytes(length)
		if err != nil {
			return Index{}, err
		}
		chunks[i] = chunk
	}

	return Index{Count: count, OffsetSize: offsetSize, Offsets: offsets, Chunks: chunks}, nil
}

// Names converts an Index of raw chunks into a list of strings, one per
// chunk, decoding each as UTF-8 with a lossy fallback for invalid bytes.
func Names(index Index) []string {
	names := make([]string, len(index.Chunks))
	for i, chunk := range index.Chunks {
		if utf8.Valid(chunk) {
			names[i] = string(chunk)
		} else {
			names[i] = utf8ToValidString(chunk)
		}
	}
	return names
}

func utf8ToValidString(chunk []byte) string {
	runes := make([]rune, 0, len(chunk))
	for len(chunk) > 0 {
		r, size := utf8.DecodeRune(chunk)
		runes = append(runes, r)
		chunk = chunk[size:]
	}
	return string(runes)
}

// Dictionaries parses each chunk of an Index as a DICT, returning one
// Operations value per chunk.
func Dictionaries(index Index) ([]Operations, error) {
	result := make([]Operations, len(index.Chunks))
	for i, chunk := range index.Chunks {
		operations, err := ReadOperations(tape.New(bytes.NewReader(chunk)))
		if err != nil {
			return nil, err
		}
		result[i] = operations
	}
	return result, nil
}
