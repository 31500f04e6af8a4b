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

// CharacterSet maps glyph ids to string identifiers. Index 0 is always
// ".notdef" (StringID 0) and is never stored explicitly.
type CharacterSet []StringID

// ISOAdobeCharacterSet is the predefined ISOAdobe character set.
var ISOAdobeCharacterSet = buildCharacterSet(isoAdobeCharsetSIDs[:])

// ExpertCharacterSet is the predefined Expert character set.
var ExpertCharacterSet = buildCharacterSet(expertCharsetSIDs[:])

// ExpertSubsetCharacterSet is the predefined ExpertSubset character set.
var ExpertSubsetCharacterSet = buildCharacterSet(expertSubsetCharsetSIDs[:])

func buildCharacterSet(sids []uint16) CharacterSet {
	set := make(CharacterSet, len(sids)+1)
	for i, sid := range sids {
		set[i+1] = StringID(sid)
	}
	return set
}

// Get returns the StringID assigned to glyphID, or false if glyphID is out
// of range.
func (set CharacterSet) Get(glyphID GlyphID) (StringID, bool) {
	if int(glyphID) >= len(set) {
		return 0, false
	}
	return set[glyphID], true
}

// ReadCharacterSet parses a custom (non-predefined) character set: format 0
// is a flat list of glyphCount-1 SIDs, formats 1 and 2 are lists of
// (first_sid, n_left) ranges with an 8-bit and 16-bit n_left respectively.
// Parsing stops once glyphCount glyph ids (including the implicit
// ".notdef") have been accounted for.
func ReadCharacterSet(t *tape.Tape, glyphCount int) (CharacterSet, error) {
	format, err := t.ReadUint8()
	if err != nil {
		return nil, err
	}

	set := make(CharacterSet, glyphCount)
	switch format {
	case 0:
		for glyphID := 1; glyphID < glyphCount; glyphID++ {
			sid, err := t.ReadUint16()
			if err != nil {
				return nil, err
			}
			set[glyphID] = StringID(sid)
		}
	case 1, 2:
		glyphID := 1
		for glyphID < glyphCount {
			first, err := t.ReadUint16()
			if err != nil {
				return nil, err
			}
			var nLeft uint32
			if format == 1 {
				value, err := t.ReadUint8()
				if err != nil {
					return nil, err
				}
				nLeft = uint32(value)
			} else {
				value, err := t.ReadUint16()
				if err != nil {
					return nil, err
				}
				nLeft = uint32(value)
			}
			for i := uint32(0); i <= nLeft; i++ {
				if glyphID >= glyphCount {
					return nil, postscript.InvalidSince(subSystem, "found a malformed character set")
				}
				set[glyphID] = StringID(uint32(first) + i)
				glyphID++
			}
		}
	default:
		return nil, postscript.Unsupported(subSystem, "character set format")
	}

	return set, nil
}

// isoAdobeCharsetSIDs, expertCharsetSIDs, and expertSubsetCharsetSIDs are the
// SIDs assigned to glyph ids 1.. in CFF 1.0's three predefined character
// sets; glyph id 0 (".notdef") is always StringID 0 and is added back by
// buildCharacterSet.
var isoAdobeCharsetSIDs = [228]uint16{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
	33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48,
	49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64,
	65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80,
	81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95, 96,
	97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 112,
	113, 114, 115, 116, 117, 118, 119, 120, 121, 122, 123, 124, 125, 126, 127, 128,
	129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142, 143, 144,
	145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157, 158, 159, 160,
	161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172, 173, 174, 175, 176,
	177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187, 188, 189, 190, 191, 192,
	193, 194, 195, 196, 197, 198, 199, 200, 201, 202, 203, 204, 205, 206, 207, 208,
	209, 210, 211, 212, 213, 214, 215, 216, 217, 218, 219, 220, 221, 222, 223, 224,
	225, 226, 227, 228,
}

var expertCharsetSIDs = [165]uint16{
	1, 229, 230, 231, 232, 233, 234, 235, 236, 237, 238, 13, 14, 15, 99, 239,
	240, 241, 242, 243, 244, 245, 246, 247, 248, 27, 28, 249, 250, 251, 252, 253,
	254, 255, 256, 257, 258, 259, 260, 261, 262, 263, 264, 265, 266, 109, 110, 267,
	268, 269, 270, 271, 272, 273, 274, 275, 276, 277, 278, 279, 280, 281, 282, 283,
	284, 285, 286, 287, 288, 289, 290, 291, 292, 293, 294, 295, 296, 297, 298, 299,
	300, 301, 302, 303, 304, 305, 306, 307, 308, 309, 310, 311, 312, 313, 314, 315,
	316, 317, 318, 158, 155, 163, 319, 320, 321, 322, 323, 324, 325, 326, 150, 164,
	169, 327, 328, 329, 330, 331, 332, 333, 334, 335, 336, 337, 338, 339, 340, 341,
	342, 343, 344, 345, 346, 347, 348, 349, 350, 351, 352, 353, 354, 355, 356, 357,
	358, 359, 360, 361, 362, 363, 364, 365, 366, 367, 368, 369, 370, 371, 372, 373,
	374, 375, 376, 377, 378,
}

var expertSubsetCharsetSIDs = [86]uint16{
	1, 231, 232, 235, 236, 237, 238, 13, 14, 15, 99, 239, 240, 241, 242, 243,
	244, 245, 246, 247, 248, 27, 28, 249, 250, 251, 253, 254, 255, 256, 257, 258,
	259, 260, 261, 262, 263, 264, 265, 266, 109, 110, 267, 268, 269, 270, 272, 300,
	301, 302, 305, 314, 315, 158, 155, 163, 320, 321, 322, 323, 324, 325, 326, 150,
	164, 169, 327, 328, 329, 330, 331, 332, 333, 334, 335, 336, 337, 338, 339, 340,
	341, 342, 343, 344, 345, 346,
}
