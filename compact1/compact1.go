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

// Package compact1 decodes version 1.0 of Adobe's Compact Font Format: the
// INDEX/DICT byte structures, the header, the font-set orchestration that
// ties them together, and the static string/encoding/character-set tables
// CFF 1.0 fonts refer to by number.
package compact1

// GlyphID enumerates the glyphs of a font. Glyph 0 is always .notdef.
type GlyphID uint16

// StringID names a string: indices below NumStandardStrings refer to the
// predefined table, the rest index into a font's own String INDEX.
type StringID uint16
