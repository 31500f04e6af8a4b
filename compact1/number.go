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
	"strconv"

	"github.com/bodoni/postscript"
	"github.com/bodoni/postscript/tape"
)

// Number is a CFF DICT operand: either an integer or a real.
type Number struct {
	isReal  bool
	integer int32
	real    float32
}

// Integer constructs an integer Number.
func Integer(value int32) Number {
	return Number{integer: value}
}

// Real constructs a real-valued Number.
func Real(value float32) Number {
	return Number{isReal: true, real: value}
}

// IsReal reports whether the Number was encoded as a real.
func (number Number) IsReal() bool {
	return number.isReal
}

// Int returns the Number's integer value, truncating a real toward zero.
func (number Number) Int() int32 {
	if number.isReal {
		return int32(number.real)
	}
	return number.integer
}

// Float returns the Number as a float64, widening an integer.
func (number Number) Float() float64 {
	if number.isReal {
		return float64(number.real)
	}
	return float64(number.integer)
}

// StringID converts a Number into a StringID. Only non-negative integers are
// valid string identifiers.
func (number Number) StringID() (StringID, error) {
	if number.isReal || number.integer < 0 {
		return 0, postscript.InvalidSince(subSystem, "found a malformed string ID")
	}
	return StringID(number.integer), nil
}

// ReadNumber decodes a CFF DICT number given its already-peeked leading
// byte.
func ReadNumber(t *tape.Tape, lead uint8) (Number, error) {
	switch {
	case lead >= 0x20 && lead <= 0xf6:
		if _, err := t.ReadUint8(); err != nil {
			return Number{}, err
		}
		return Integer(int32(lead) - 139), nil
	case lead >= 0xf7 && lead <= 0xfa:
		if _, err := t.ReadUint8(); err != nil {
			return Number{}, err
		}
		b1, err := t.ReadUint8()
		if err != nil {
			return Number{}, err
		}
		return Integer((int32(lead)-247)*256 + int32(b1) + 108), nil
	case lead >= 0xfb && lead <= 0xfe:
		if _, err := t.ReadUint8(); err != nil {
			return Number{}, err
		}
		b1, err := t.ReadUint8()
		if err != nil {
			return Number{}, err
		}
		return Integer(-(int32(lead)-251)*256 - int32(b1) - 108), nil
	case lead == 0x1c:
		if _, err := t.ReadUint8(); err != nil {
			return Number{}, err
		}
		value, err := t.ReadUint16()
		if err != nil {
			return Number{}, err
		}
		return Integer(int32(int16(value))), nil
	case lead == 0x1d:
		if _, err := t.ReadUint8(); err != nil {
			return Number{}, err
		}
		value, err := t.ReadUint32()
		if err != nil {
			return Number{}, err
		}
		return Integer(int32(value)), nil
	case lead == 0x1e:
		if _, err := t.ReadUint8(); err != nil {
			return Number{}, err
		}
		return readReal(t)
	default:
		return Number{}, postscript.InvalidSince(subSystem, "found a malformed number")
	}
}

// readReal decodes the BCD-nibble real-number encoding used by operator
// 0x1e: nibbles are consumed high-first; digits 0-9 append themselves, 0xa
// is a decimal point, 0xb introduces an exponent, 0xc introduces a negative
// exponent, 0xe negates, and 0xf terminates the sequence.
func readReal(t *tape.Tape) (Number, error) {
	var digits []byte
	done := false
	for !done {
		b, err := t.ReadUint8()
		if err != nil {
			return Number{}, err
		}
		for _, nibble := range [2]uint8{b >> 4, b & 0xf} {
			switch {
			case nibble <= 9:
				digits = append(digits, '0'+nibble)
			case nibble == 0xa:
				digits = append(digits, '.')
			case nibble == 0xb:
				digits = append(digits, 'e')
			case nibble == 0xc:
				digits = append(digits, 'e', '-')
			case nibble == 0xe:
				digits = append(digits, '-')
			case nibble == 0xf:
				done = true
			default:
				return Number{}, postscript.InvalidSince(subSystem, "found a malformed real number")
			}
			if done {
				break
			}
		}
	}
	value, err := strconv.ParseFloat(string(digits), 32)
	if err != nil {
		return Number{}, postscript.InvalidSince(subSystem, "found a malformed real number")
	}
	return Real(float32(value)), nil
}

const subSystem = "compact1"
