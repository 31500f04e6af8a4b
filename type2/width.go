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

package type2

// pattern describes one allowed-operand-count family as base + k*step,
// k >= 0. A step of 0 means "exactly base".
type pattern struct {
	base int
	step int
}

// operandPatterns lists, for every path-construction and hint-declaration
// operator, the operand counts the operator accepts once any leading width
// delta has been stripped away. A stack that does not exactly match one of
// these counts carries a surplus leading operand, captured as the glyph's
// width (see (*Interpreter).reduce).
var operandPatterns = map[Operator][]pattern{
	RMoveTo:    {{2, 0}},
	HMoveTo:    {{1, 0}},
	VMoveTo:    {{1, 0}},
	RLineTo:    {{0, 2}},
	HLineTo:    {{0, 1}},
	VLineTo:    {{0, 1}},
	RRCurveTo:  {{0, 6}},
	HHCurveTo:  {{0, 4}, {1, 4}},
	VVCurveTo:  {{0, 4}, {1, 4}},
	HVCurveTo:  {{0, 4}, {1, 4}},
	VHCurveTo:  {{0, 4}, {1, 4}},
	RCurveLine: {{2, 6}},
	RLineCurve: {{6, 2}},
	Flex:       {{13, 0}},
	HFlex:      {{7, 0}},
	Flex1:      {{11, 0}},
	HFlex1:     {{9, 0}},
	HStem:      {{0, 2}},
	VStem:      {{0, 2}},
	HStemHM:    {{0, 2}},
	VStemHM:    {{0, 2}},
	HintMask:   {{0, 2}},
	CntrMask:   {{0, 2}},
}

// largestAllowed returns the largest operand count matching one of patterns
// that does not exceed length, or 0 if none of them fit.
func largestAllowed(length int, patterns []pattern) int {
	best := 0
	for _, p := range patterns {
		if p.step <= 0 {
			if p.base <= length && p.base > best {
				best = p.base
			}
			continue
		}
		if p.base > length {
			continue
		}
		k := (length - p.base) / p.step
		value := p.base + k*p.step
		if value > best {
			best = value
		}
	}
	return best
}
