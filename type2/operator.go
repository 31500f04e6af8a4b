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

// Operator is a Type 2 charstring operator. Single-byte operators occupy
// codes 0x01-0x1f; escaped two-byte operators occupy 0x0c00-0x0c25.
type Operator uint16

const (
	HStem Operator = iota
	VStem
	VMoveTo
	RLineTo
	HLineTo
	VLineTo
	RRCurveTo
	CallSubr
	Return
	EndChar
	HStemHM
	HintMask
	CntrMask
	RMoveTo
	HMoveTo
	VStemHM
	RCurveLine
	RLineCurve
	VVCurveTo
	HHCurveTo
	CallGSubr
	VHCurveTo
	HVCurveTo

	DotSection
	And
	Or
	Not
	Abs
	Add
	Sub
	Div
	Neg
	Eq
	Drop
	Put
	Get
	IfElse
	Random
	Mul
	Sqrt
	Dup
	Exch
	Index
	Roll
	HFlex
	Flex
	HFlex1
	Flex1
)

var operatorCodes = map[uint16]Operator{
	0x01: HStem,
	0x03: VStem,
	0x04: VMoveTo,
	0x05: RLineTo,
	0x06: HLineTo,
	0x07: VLineTo,
	0x08: RRCurveTo,
	0x0a: CallSubr,
	0x0b: Return,
	0x0e: EndChar,
	0x12: HStemHM,
	0x13: HintMask,
	0x14: CntrMask,
	0x15: RMoveTo,
	0x16: HMoveTo,
	0x17: VStemHM,
	0x18: RCurveLine,
	0x19: RLineCurve,
	0x1a: VVCurveTo,
	0x1b: HHCurveTo,
	0x1d: CallGSubr,
	0x1e: VHCurveTo,
	0x1f: HVCurveTo,

	0x0c00: DotSection,
	0x0c03: And,
	0x0c04: Or,
	0x0c05: Not,
	0x0c09: Abs,
	0x0c0a: Add,
	0x0c0b: Sub,
	0x0c0c: Div,
	0x0c0e: Neg,
	0x0c0f: Eq,
	0x0c12: Drop,
	0x0c14: Put,
	0x0c15: Get,
	0x0c16: IfElse,
	0x0c17: Random,
	0x0c18: Mul,
	0x0c1a: Sqrt,
	0x0c1b: Dup,
	0x0c1c: Exch,
	0x0c1d: Index,
	0x0c1e: Roll,
	0x0c22: HFlex,
	0x0c23: Flex,
	0x0c24: HFlex1,
	0x0c25: Flex1,
}

const subSystem = "type2"

// operatorFromCode maps a raw 16-bit Type 2 operator code to an Operator,
// failing on codes outside the closed set Type 2 defines.
func operatorFromCode(code uint16) (Operator, error) {
	operator, ok := operatorCodes[code]
	if !ok {
		return 0, postscript.Unsupported(subSystem, "operator")
	}
	return operator, nil
}
