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

	"github.com/bodoni/postscript"
	"github.com/bodoni/postscript/tape"
)

// Header is CFF's four-byte file header.
type Header struct {
	Major      uint8
	Minor      uint8
	HeaderSize uint8
	OffsetSize uint8
}

// Private is a font's (or font dict's) private dictionary together with its
// local subroutine index, which is empty when the dictionary carries no
// Subrs entry.
type Private struct {
	Operations  Operations
	Subroutines Index
}

// CharacterIDKeyedRecord is the per-font state of a CID-keyed font: the ROS
// triple, the glyph-id to font-dict map, the FDArray's top dictionaries, and
// one Private per font dict.
type CharacterIDKeyedRecord struct {
	Registry   StringID
	Ordering   StringID
	Supplement Number
	FDSelect   FDSelect
	Operations []Operations
	Records    []Private
}

// Record is either a name-keyed font's own Private dictionary, or a
// CID-keyed font's FDSelect-driven set of them. Exactly one field is set.
type Record struct {
	NameKeyed        *Private
	CharacterIDKeyed *CharacterIDKeyedRecord
}

// FontSet is the fully materialized result of parsing a CFF region: one
// font-set-wide header, name list, string accessor and global subroutine
// index, plus one entry per font in each of Operations, Encodings,
// CharacterSets, CharacterStrings, and Records.
type FontSet struct {
	Header           Header
	Names            []string
	Operations       []Operations
	Strings          Strings
	Subroutines      Index
	Encodings        []Encoding
	CharacterSets    []CharacterSet
	CharacterStrings []Index
	Records          []Record
}

// ReadFontSet parses a whole CFF region starting at the tape's current
// position. All offsets recorded in top dictionaries are relative to this
// starting position, so a CFF fragment embedded at a non-zero offset inside
// a larger container (e.g. an OpenType file's `CFF ` table) parses the same
// as a standalone one.
func ReadFontSet(t *tape.Tape) (*FontSet, error) {
	start, err := t.Position()
	if err != nil {
		return nil, err
	}

	header, err := readHeader(t)
	if err != nil {
		return nil, err
	}
	if err := t.Jump(start + uint64(header.HeaderSize)); err != nil {
		return nil, err
	}

	nameIndex, err := ReadIndex(t)
	if err != nil {
		return nil, err
	}
	names := Names(nameIndex)

	topDictIndex, err := ReadIndex(t)
	if err != nil {
		return nil, err
	}
	operations, err := Dictionaries(topDictIndex)
	if err != nil {
		return nil, err
	}
	if len(operations) != len(names) {
		return nil, postscript.InvalidSince(subSystem, "found a mismatched number of top dictionaries")
	}

	stringIndex, err := ReadIndex(t)
	if err != nil {
		return nil, err
	}
	strings := NewStrings(Names(stringIndex))

	subroutines, err := ReadIndex(t)
	if err != nil {
		return nil, err
	}

	fontSet := &FontSet{
		Header:      header,
		Names:       names,
		Operations:  operations,
		Strings:     strings,
		Subroutines: subroutines,
	}

	for _, op := range operations {
		charStrings, glyphCount, err := readCharacterStrings(t, start, op)
		if err != nil {
			return nil, err
		}

		charset, err := readCharacterSetFor(t, start, op, glyphCount)
		if err != nil {
			return nil, err
		}

		encoding, err := readEncodingFor(t, start, op, charset)
		if err != nil {
			return nil, err
		}

		var record Record
		if op.Has(ROS) {
			cid, err := readCharacterIDKeyedRecord(t, start, op, glyphCount)
			if err != nil {
				return nil, err
			}
			record.CharacterIDKeyed = cid
		} else {
			private, err := readPrivate(t, start, op)
			if err != nil {
				return nil, err
			}
			record.NameKeyed = private
		}

		fontSet.CharacterStrings = append(fontSet.CharacterStrings, charStrings)
		fontSet.CharacterSets = append(fontSet.CharacterSets, charset)
		fontSet.Encodings = append(fontSet.Encodings, encoding)
		fontSet.Records = append(fontSet.Records, record)
	}

	return fontSet, nil
}

func readHeader(t *tape.Tape) (Header, error) {
	major, err := t.ReadUint8()
	if err != nil {
		return Header{}, err
	}
	minor, err := t.ReadUint8()
	if err != nil {
		return Header{}, err
	}
	headerSize, err := t.ReadUint8()
	if err != nil {
		return Header{}, err
	}
	offsetSize, err := t.ReadUint8()
	if err != nil {
		return Header{}, err
	}
	if major != 1 {
		return Header{}, postscript.Unsupported(subSystem, "CFF version")
	}
	if headerSize < 4 || offsetSize < 1 || offsetSize > 4 {
		return Header{}, postscript.InvalidSince(subSystem, "found a malformed header")
	}
	return Header{Major: major, Minor: minor, HeaderSize: headerSize, OffsetSize: offsetSize}, nil
}

func readCharacterStrings(t *tape.Tape, start uint64, op Operations) (Index, int, error) {
	if op.GetInt(CharStringType, 2) != 2 {
		return Index{}, 0, postscript.Unsupported(subSystem, "charstring type")
	}
	offset := op.GetInt(CharStrings, 0)
	if err := t.Jump(start + uint64(offset)); err != nil {
		return Index{}, 0, err
	}
	index, err := ReadIndex(t)
	if err != nil {
		return Index{}, 0, err
	}
	return index, len(index.Chunks), nil
}

func readCharacterSetFor(t *tape.Tape, start uint64, op Operations, glyphCount int) (CharacterSet, error) {
	offset := op.GetInt(CharSet, 0)
	switch offset {
	case 0:
		return ISOAdobeCharacterSet, nil
	case 1:
		return ExpertCharacterSet, nil
	case 2:
		return ExpertSubsetCharacterSet, nil
	default:
		if err := t.Jump(start + uint64(offset)); err != nil {
			return nil, err
		}
		return ReadCharacterSet(t, glyphCount)
	}
}

func readEncodingFor(t *tape.Tape, start uint64, op Operations, charset CharacterSet) (Encoding, error) {
	offset := op.GetInt(EncodingOp, 0)
	switch offset {
	case 0:
		return StandardEncoding, nil
	case 1:
		return ExpertEncoding, nil
	default:
		if err := t.Jump(start + uint64(offset)); err != nil {
			return Encoding{}, err
		}
		return ReadEncoding(t, charset)
	}
}

func readCharacterIDKeyedRecord(t *tape.Tape, start uint64, op Operations, glyphCount int) (*CharacterIDKeyedRecord, error) {
	registryNumber, orderingNumber, supplementNumber, err := getTriple(op, ROS)
	if err != nil {
		return nil, err
	}
	registry, err := registryNumber.StringID()
	if err != nil {
		return nil, err
	}
	ordering, err := orderingNumber.StringID()
	if err != nil {
		return nil, err
	}

	fdArrayOffset := op.GetInt(FDArray, 0)
	if err := t.Jump(start + uint64(fdArrayOffset)); err != nil {
		return nil, err
	}
	fdArrayIndex, err := ReadIndex(t)
	if err != nil {
		return nil, err
	}
	fdOperations, err := Dictionaries(fdArrayIndex)
	if err != nil {
		return nil, err
	}
	if len(fdOperations) == 0 {
		return nil, postscript.InvalidSince(subSystem, "found no font dictionaries")
	}

	fdSelectOffset := op.GetInt(FDSelectOp, 0)
	if err := t.Jump(start + uint64(fdSelectOffset)); err != nil {
		return nil, err
	}
	fdSelect, err := ReadFDSelect(t, glyphCount, len(fdOperations))
	if err != nil {
		return nil, err
	}

	records := make([]Private, len(fdOperations))
	for i, fdOp := range fdOperations {
		private, err := readPrivate(t, start, fdOp)
		if err != nil {
			return nil, err
		}
		records[i] = *private
	}

	return &CharacterIDKeyedRecord{
		Registry:   registry,
		Ordering:   ordering,
		Supplement: supplementNumber,
		FDSelect:   fdSelect,
		Operations: fdOperations,
		Records:    records,
	}, nil
}

// readPrivate reads a font's (or font dict's) Private dictionary and, if
// present, its local Subrs index. A missing Subrs entry yields an empty
// Index rather than an error, matching CID-keyed fonts whose font dicts are
// not required to carry local subroutines.
func readPrivate(t *tape.Tape, start uint64, op Operations) (*Private, error) {
	sizeNumber, offsetNumber, ok := op.GetDouble(PrivateOp)
	if !ok {
		return nil, postscript.InvalidSince(subSystem, "found a missing private dictionary")
	}
	size := sizeNumber.Int()
	offset := offsetNumber.Int()
	if size < 0 || offset < 0 {
		return nil, postscript.InvalidSince(subSystem, "found a malformed private dictionary reference")
	}

	if err := t.Jump(start + uint64(offset)); err != nil {
		return nil, err
	}
	blob, err := t.ReadBytes(int(size))
	if err != nil {
		return nil, err
	}
	operations, err := ReadOperations(tape.New(bytes.NewReader(blob)))
	if err != nil {
		return nil, err
	}

	subroutines := Index{}
	if subrsOffset, ok := operations.GetSingle(Subrs); ok {
		if err := t.Jump(start + uint64(offset) + uint64(subrsOffset.Int())); err != nil {
			return nil, err
		}
		subroutines, err = ReadIndex(t)
		if err != nil {
			return nil, err
		}
	}

	return &Private{Operations: operations, Subroutines: subroutines}, nil
}

func getTriple(op Operations, operator Operator) (Number, Number, Number, error) {
	operands := op.Get(operator)
	if len(operands) != 3 {
		return Number{}, Number{}, Number{}, postscript.InvalidSince(subSystem, "found a malformed ROS")
	}
	return operands[0], operands[1], operands[2], nil
}
