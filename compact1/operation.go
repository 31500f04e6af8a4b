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
	"io"

	"github.com/bodoni/postscript"
	"github.com/bodoni/postscript/tape"
)

// Operation is a single (operator, operands) pair from a DICT blob.
type Operation struct {
	Operator Operator
	Operands []Number
}

// Operations is an ordered DICT: the operations in source byte order. Get
// and its variants look up the first operation matching an operator,
// falling back to the operator's default operands when it is absent.
type Operations []Operation

// ReadOperation decodes a single (operands, operator) tuple: it consumes
// numbers until it hits a byte that can only be an operator code, then
// consumes the operator itself (two bytes if escaped via 0x0c, one byte
// otherwise).
func ReadOperation(t *tape.Tape) (Operation, error) {
	var operands []Number
	for {
		lead, err := t.PeekUint8()
		if err == io.EOF {
			if len(operands) == 0 {
				return Operation{}, io.EOF
			}
			return Operation{}, postscript.InvalidSince(subSystem, "found a truncated operation")
		}
		if err != nil {
			return Operation{}, err
		}
		if lead == 0x1c || lead == 0x1d || lead == 0x1e || (lead >= 0x20 && lead <= 0xfe) {
			number, err := ReadNumber(t, lead)
			if err == io.EOF {
				return Operation{}, postscript.InvalidSince(subSystem, "found a truncated operation")
			}
			if err != nil {
				return Operation{}, err
			}
			operands = append(operands, number)
			continue
		}

		var code uint16
		if lead == 0x0c {
			value, err := t.ReadUint16()
			if err != nil {
				return Operation{}, err
			}
			code = value
		} else {
			value, err := t.ReadUint8()
			if err != nil {
				return Operation{}, err
			}
			code = uint16(value)
		}
		operator, err := operatorFromCode(code)
		if err != nil {
			return Operation{}, err
		}
		return Operation{Operator: operator, Operands: operands}, nil
	}
}

// ReadOperations decodes a whole DICT blob: a sequence of operations ending
// at end-of-blob. Running out of input exactly at an operation boundary is
// not an error — it is the only legitimate silent end-of-input in this
// package — but running out mid-operation still fails.
func ReadOperations(t *tape.Tape) (Operations, error) {
	var operations Operations
	for {
		operation, err := ReadOperation(t)
		if err == io.EOF {
			return operations, nil
		}
		if err != nil {
			return nil, err
		}
		operations = append(operations, operation)
	}
}

// Get returns the operands stored for operator, or its default operands if
// it is absent, or nil if it has neither.
func (operations Operations) Get(operator Operator) []Number {
	for _, operation := range operations {
		if operation.Operator == operator {
			return operation.Operands
		}
	}
	return defaultOperands(operator)
}

// GetSingle returns the first operand of the first matching operation (or
// its default), and reports whether one was found.
func (operations Operations) GetSingle(operator Operator) (Number, bool) {
	operands := operations.Get(operator)
	if len(operands) == 0 {
		return Number{}, false
	}
	return operands[0], true
}

// GetDouble returns the first two operands of the first matching operation
// (or its default), and reports whether they were found.
func (operations Operations) GetDouble(operator Operator) (Number, Number, bool) {
	operands := operations.Get(operator)
	if len(operands) < 2 {
		return Number{}, Number{}, false
	}
	return operands[0], operands[1], true
}

// GetInt returns the integer value of the first operand of operator, or
// fallback if the operator (and its default) carry no operands.
func (operations Operations) GetInt(operator Operator, fallback int32) int32 {
	value, ok := operations.GetSingle(operator)
	if !ok {
		return fallback
	}
	return value.Int()
}

// Has reports whether operator appears explicitly in operations (ignoring
// defaults) — used for the ROS-presence check that distinguishes
// character-ID-keyed fonts from name-keyed ones.
func (operations Operations) Has(operator Operator) bool {
	for _, operation := range operations {
		if operation.Operator == operator {
			return true
		}
	}
	return false
}
