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
	"github.com/bodoni/postscript"
	"github.com/bodoni/postscript/tape"
)

// FDSelect maps a glyph id to the index of its font dict in a CID-keyed
// font's FDArray.
type FDSelect []uint8

// Get returns the FDArray index assigned to glyphID, or false if glyphID is
// out of range.
func (select_ FDSelect) Get(glyphID GlyphID) (int, bool) {
	if int(glyphID) >= len(select_) {
		return 0, false
	}
	return int(select_[glyphID]), true
}

// ReadFDSelect parses an FDSelect table: format 0 is a dense, one byte per
// glyph array; format 3 is a run-length encoding of strictly increasing
// (first, fd) ranges terminated by a sentinel glyph id equal to glyphCount.
// Either format is expanded into a dense table indexed by glyph id.
func ReadFDSelect(t *tape.Tape, glyphCount, fdCount int) (FDSelect, error) {
	format, err := t.ReadUint8()
	if err != nil {
		return nil, err
	}

	result := make(FDSelect, glyphCount)
	switch format {
	case 0:
		for glyphID := 0; glyphID < glyphCount; glyphID++ {
			fd, err := t.ReadUint8()
			if err != nil {
				return nil, err
			}
			if int(fd) >= fdCount {
				return nil, postscript.InvalidSince(subSystem, "found an out-of-range FDSelect entry")
			}
			result[glyphID] = fd
		}
	case 3:
		nRanges, err := t.ReadUint16()
		if err != nil {
			return nil, err
		}
		if glyphCount > 0 && nRanges == 0 {
			return nil, postscript.InvalidSince(subSystem, "found an empty FDSelect")
		}

		previous := uint16(0)
		fds := make([]uint8, nRanges)
		firsts := make([]uint16, nRanges)
		for i := 0; i < int(nRanges); i++ {
			first, err := t.ReadUint16()
			if err != nil {
				return nil, err
			}
			if i == 0 && first != 0 || i > 0 && first <= previous {
				return nil, postscript.InvalidSince(subSystem, "found a malformed FDSelect")
			}
			fd, err := t.ReadUint8()
			if err != nil {
				return nil, err
			}
			if int(fd) >= fdCount {
				return nil, postscript.InvalidSince(subSystem, "found an out-of-range FDSelect entry")
			}
			firsts[i] = first
			fds[i] = fd
			previous = first
		}
		sentinel, err := t.ReadUint16()
		if err != nil {
			return nil, err
		}
		if int(sentinel) != glyphCount {
			return nil, postscript.InvalidSince(subSystem, "found a wrong FDSelect sentinel")
		}

		for i := 0; i < int(nRanges); i++ {
			end := glyphCount
			if i+1 < int(nRanges) {
				end = int(firsts[i+1])
			}
			for glyphID := int(firsts[i]); glyphID < end; glyphID++ {
				result[glyphID] = fds[i]
			}
		}
	default:
		return nil, postscript.Unsupported(subSystem, "FDSelect format")
	}

	return result, nil
}
