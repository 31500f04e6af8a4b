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

import "github.com/bodoni/postscript"

// Operator is a DICT operator. Single-byte operators occupy codes
// 0x00-0x15; escaped two-byte operators occupy 0x0c00-0x0c26.
type Operator uint16

// DICT operators, single-byte followed by escaped. EncodingOp, PrivateOp and
// FDSelectOp carry an Op suffix because the package's types use the bare
// names.
const (
	Version Operator = iota
	Notice
	FullName
	FamilyName
	Weight
	FontBBox
	BlueValues
	OtherBlues
	FamilyBlues
	FamilyOtherBlues
	StdHW
	StdVW
	UniqueID
	XUID
	CharSet
	EncodingOp
	CharStrings
	PrivateOp
	Subrs
	DefaultWidthX
	NominalWidthX

	Copyright
	IsFixedPitch
	ItalicAngle
	UnderlinePosition
	UnderlineThickness
	PaintType
	CharStringType
	FontMatrix
	StrokeWidth
	BlueScale
	BlueShift
	BlueFuzz
	StemSnapH
	StemSnapV
	ForceBold
	LanguageGroup
	ExpansionFactor
	InitialRandomSeed
	SyntheticBase
	PostScript
	BaseFontName
	BaseFontBlend
	ROS
	CIDFontVersion
	CIDFontRevision
	CIDFontType
	CIDCount
	UIDBase
	FDArray
	FDSelectOp
	FontName
)

var operatorCodes = map[uint16]Operator{
	0x00: Version,
	0x01: Notice,
	0x02: FullName,
	0x03: FamilyName,
	0x04: Weight,
	0x05: FontBBox,
	0x06: BlueValues,
	0x07: OtherBlues,
	0x08: FamilyBlues,
	0x09: FamilyOtherBlues,
	0x0a: StdHW,
	0x0b: StdVW,
	0x0d: UniqueID,
	0x0e: XUID,
	0x0f: CharSet,
	0x10: EncodingOp,
	0x11: CharStrings,
	0x12: PrivateOp,
	0x13: Subrs,
	0x14: DefaultWidthX,
	0x15: NominalWidthX,

	0x0c00: Copyright,
	0x0c01: IsFixedPitch,
	0x0c02: ItalicAngle,
	0x0c03: UnderlinePosition,
	0x0c04: UnderlineThickness,
	0x0c05: PaintType,
	0x0c06: CharStringType,
	0x0c07: FontMatrix,
	0x0c08: StrokeWidth,
	0x0c09: BlueScale,
	0x0c0a: BlueShift,
	0x0c0b: BlueFuzz,
	0x0c0c: StemSnapH,
	0x0c0d: StemSnapV,
	0x0c0e: ForceBold,
	0x0c11: LanguageGroup,
	0x0c12: ExpansionFactor,
	0x0c13: InitialRandomSeed,
	0x0c14: SyntheticBase,
	0x0c15: PostScript,
	0x0c16: BaseFontName,
	0x0c17: BaseFontBlend,
	0x0c1e: ROS,
	0x0c1f: CIDFontVersion,
	0x0c20: CIDFontRevision,
	0x0c21: CIDFontType,
	0x0c22: CIDCount,
	0x0c23: UIDBase,
	0x0c24: FDArray,
	0x0c25: FDSelectOp,
	0x0c26: FontName,
}

var operatorDefaults = map[Operator][]Number{
	FontBBox:           {Integer(0), Integer(0), Integer(0), Integer(0)},
	CharSet:            {Integer(0)},
	EncodingOp:         {Integer(0)},
	DefaultWidthX:      {Integer(0)},
	NominalWidthX:      {Integer(0)},
	IsFixedPitch:       {Integer(0)},
	ItalicAngle:        {Integer(0)},
	UnderlinePosition:  {Integer(-100)},
	UnderlineThickness: {Integer(50)},
	PaintType:          {Integer(0)},
	CharStringType:     {Integer(2)},
	FontMatrix: {
		Real(0.001), Real(0.0), Real(0.0),
		Real(0.001), Real(0.0), Real(0.0),
	},
	StrokeWidth:       {Integer(0)},
	BlueScale:         {Real(0.039625)},
	BlueShift:         {Integer(7)},
	BlueFuzz:          {Integer(1)},
	ForceBold:         {Integer(0)},
	LanguageGroup:     {Integer(0)},
	ExpansionFactor:   {Real(0.06)},
	InitialRandomSeed: {Integer(0)},
	CIDFontVersion:    {Integer(0)},
	CIDFontRevision:   {Integer(0)},
	CIDFontType:       {Integer(0)},
	CIDCount:          {Integer(8720)},
}

// operatorFromCode maps a raw 16-bit DICT operator code to an Operator,
// failing on codes outside the closed set CFF 1.0 defines.
func operatorFromCode(code uint16) (Operator, error) {
	operator, ok := operatorCodes[code]
	if !ok {
		return 0, postscript.Unsupported(subSystem, "operator")
	}
	return operator, nil
}

// defaultOperands returns the operand list an operator takes on when it is
// absent from a DICT, or nil if the operator carries no default.
func defaultOperands(operator Operator) []Number {
	return operatorDefaults[operator]
}
