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

import "github.com/bodoni/postscript"

// readNumber decodes the Type 2 operand at the start of code (code[0] is its
// leading byte), returning the number of bytes consumed (including the
// leading byte). Type
// 2 numbers differ from DICT numbers in one respect: 0xff introduces a
// 16.16 fixed-point real; there is no BCD real (0x1e) or full 4-byte
// integer (0x1d) lead, since those codes name Type 2 operators instead.
func readNumber(code []byte) (float32, int, error) {
	if len(code) == 0 {
		return 0, 0, postscript.InvalidSince(subSystem, "found a truncated number")
	}
	lead := code[0]
	switch {
	case lead >= 0x20 && lead <= 0xf6:
		return float32(int32(lead) - 139), 1, nil
	case lead >= 0xf7 && lead <= 0xfa:
		if len(code) < 2 {
			return 0, 0, postscript.InvalidSince(subSystem, "found a truncated number")
		}
		return float32((int32(lead)-247)*256 + int32(code[1]) + 108), 2, nil
	case lead >= 0xfb && lead <= 0xfe:
		if len(code) < 2 {
			return 0, 0, postscript.InvalidSince(subSystem, "found a truncated number")
		}
		return float32(-(int32(lead)-251)*256 - int32(code[1]) - 108), 2, nil
	case lead == 0x1c:
		if len(code) < 3 {
			return 0, 0, postscript.InvalidSince(subSystem, "found a truncated number")
		}
		value := int16(uint16(code[1])<<8 | uint16(code[2]))
		return float32(value), 3, nil
	case lead == 0xff:
		if len(code) < 5 {
			return 0, 0, postscript.InvalidSince(subSystem, "found a truncated number")
		}
		value := int32(code[1])<<24 | int32(code[2])<<16 | int32(code[3])<<8 | int32(code[4])
		return float32(value) / 65536, 5, nil
	default:
		return 0, 0, postscript.InvalidSince(subSystem, "found a malformed number")
	}
}

// isNumberLead reports whether b can only begin a Type 2 number (as opposed
// to an operator code).
func isNumberLead(b byte) bool {
	return b == 0x1c || b == 0xff || (b >= 0x20 && b <= 0xfe)
}
