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

// Encoding maps glyph codes (0-255) to glyphs. Standard and Expert are the
// two predefined tables and map each code to a StringID (see Get); a custom
// encoding is parsed from the font itself (format 0 or 1, optionally
// supplemented) and maps each code to a glyph id (see GlyphID).
type Encoding struct {
	predefined []uint16  // nil for a parsed custom encoding
	custom     []GlyphID // nil for Standard/Expert
}

// StandardEncoding is the predefined Standard encoding.
var StandardEncoding = Encoding{predefined: standardEncodingSIDs[:]}

// ExpertEncoding is the predefined Expert encoding.
var ExpertEncoding = Encoding{predefined: expertEncodingSIDs[:]}

// Get returns the StringID assigned to glyph code, or false if the code has
// no assigned glyph. Get only applies to the two predefined encodings; a
// parsed custom encoding is consulted through its glyph id table instead,
// since a StringID requires a charset the Encoding itself does not carry.
func (encoding Encoding) Get(code uint8) (StringID, bool) {
	if encoding.predefined == nil {
		return 0, false
	}
	sid := encoding.predefined[code]
	return StringID(sid), sid != 0
}

// GlyphID returns the glyph id assigned to glyph code in a parsed custom
// encoding, or false if none is assigned or the Encoding is predefined.
func (encoding Encoding) GlyphID(code uint8) (GlyphID, bool) {
	if encoding.custom == nil {
		return 0, false
	}
	gid := encoding.custom[code]
	return gid, gid != 0
}

// ReadEncoding parses a custom (non-predefined) encoding: format 0 is an
// explicit list of codes in glyph-id order, format 1 is a list of
// (first_code, n_left) ranges; either may carry a supplement of additional
// (code, SID) pairs resolved against charset, the font's own character set
// (glyph id -> SID, indexed by glyph id). A supplement SID with no matching
// glyph in charset resolves to glyph id 0 and is silently dropped rather
// than rejected, the same treatment an explicit ".notdef" mapping gets; only
// a resolved glyph id at or beyond the codes already assigned is malformed.
func ReadEncoding(t *tape.Tape, charset []StringID) (Encoding, error) {
	format, err := t.ReadUint8()
	if err != nil {
		return Encoding{}, err
	}

	codes := make([]GlyphID, 256)
	nextGID := GlyphID(1)
	switch format & 0x7f {
	case 0:
		nCodes, err := t.ReadUint8()
		if err != nil {
			return Encoding{}, err
		}
		if int(nCodes) >= len(charset) {
			return Encoding{}, postscript.InvalidSince(subSystem, "found an encoding longer than the charset")
		}
		for i := 0; i < int(nCodes); i++ {
			code, err := t.ReadUint8()
			if err != nil {
				return Encoding{}, err
			}
			if codes[code] != 0 {
				return Encoding{}, postscript.InvalidSince(subSystem, "found a malformed format 0 encoding")
			}
			codes[code] = nextGID
			nextGID++
		}
	case 1:
		nRanges, err := t.ReadUint8()
		if err != nil {
			return Encoding{}, err
		}
		for i := 0; i < int(nRanges); i++ {
			first, err := t.ReadUint8()
			if err != nil {
				return Encoding{}, err
			}
			nLeft, err := t.ReadUint8()
			if err != nil {
				return Encoding{}, err
			}
			if int(first)+int(nLeft) > 255 {
				return Encoding{}, postscript.InvalidSince(subSystem, "found a malformed format 1 encoding")
			}
			for code := int(first); code <= int(first)+int(nLeft); code++ {
				if int(nextGID) >= len(charset) {
					return Encoding{}, postscript.InvalidSince(subSystem, "found an encoding longer than the charset")
				}
				if codes[code] != 0 {
					return Encoding{}, postscript.InvalidSince(subSystem, "found a malformed format 1 encoding")
				}
				codes[code] = nextGID
				nextGID++
			}
		}
	default:
		return Encoding{}, postscript.Unsupported(subSystem, "encoding format")
	}

	if format&0x80 != 0 {
		lookup := make(map[StringID]GlyphID, len(charset))
		for gid, sid := range charset {
			lookup[sid] = GlyphID(gid)
		}
		nSups, err := t.ReadUint8()
		if err != nil {
			return Encoding{}, err
		}
		for i := 0; i < int(nSups); i++ {
			code, err := t.ReadUint8()
			if err != nil {
				return Encoding{}, err
			}
			if codes[code] != 0 {
				return Encoding{}, postscript.InvalidSince(subSystem, "found a malformed encoding supplement")
			}
			sid, err := t.ReadUint16()
			if err != nil {
				return Encoding{}, err
			}
			gid := lookup[StringID(sid)]
			if gid >= nextGID {
				return Encoding{}, postscript.InvalidSince(subSystem, "found a malformed encoding supplement")
			}
			if gid != 0 {
				codes[code] = gid
			}
		}
	}

	return Encoding{custom: codes}, nil
}

// standardEncodingSIDs and expertEncodingSIDs are CFF 1.0's two predefined,
// byte-identical-to-Adobe 256-entry glyph-code to StringID tables. A value
// of 0 marks a code with no assigned glyph (".notdef").
var standardEncodingSIDs = [256]uint16{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48,
	49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64,
	65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80,
	81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 96, 97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110,
	0, 111, 112, 113, 114, 0, 115, 116, 117, 118, 119, 120, 121, 122, 0, 123,
	0, 124, 125, 126, 127, 128, 129, 130, 131, 0, 132, 133, 0, 134, 135, 136,
	137, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 138, 0, 139, 0, 0, 0, 0, 140, 141, 142, 143, 0, 0, 0, 0,
	0, 144, 0, 0, 0, 145, 0, 0, 146, 147, 148, 149, 0, 0, 0, 0,
}

var expertEncodingSIDs = [256]uint16{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 229, 230, 0, 231, 232, 233, 234, 235, 236, 237, 238, 13, 14, 15, 99,
	239, 240, 241, 242, 243, 244, 245, 246, 247, 248, 27, 28, 249, 250, 251, 252,
	0, 253, 254, 255, 256, 257, 0, 0, 0, 258, 0, 0, 259, 260, 261, 262,
	0, 0, 263, 264, 265, 0, 266, 109, 110, 267, 268, 269, 0, 270, 271, 272,
	273, 274, 275, 276, 277, 278, 279, 280, 281, 282, 283, 284, 285, 286, 287, 288,
	289, 290, 291, 292, 293, 294, 295, 296, 297, 298, 299, 300, 301, 302, 303, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 304, 305, 306, 0, 0, 307, 308, 309, 310, 311, 0, 312, 0, 0, 313,
	0, 0, 314, 315, 0, 0, 316, 317, 318, 0, 0, 0, 158, 155, 163, 319,
	320, 321, 322, 323, 324, 325, 0, 0, 326, 150, 164, 169, 327, 328, 329, 330,
	331, 332, 333, 334, 335, 336, 337, 338, 339, 340, 341, 342, 343, 344, 345, 346,
	347, 348, 349, 350, 351, 352, 353, 354, 355, 356, 357, 358, 359, 360, 361, 362,
	363, 364, 365, 366, 367, 368, 369, 370, 371, 372, 373, 374, 375, 376, 377, 378,
}
