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

import (
	"io"
	"math"

	"github.com/bodoni/postscript"
)

// maxCallDepth bounds CallSubr/CallGSubr nesting, matching the limit the
// CFF specification recommends implementations enforce.
const maxCallDepth = 10

// Operation is one emitted step of charstring interpretation: a
// path-construction operator, a hint declaration, a hint mask, or the
// terminal EndChar. Arithmetic, stack, conditional, and subroutine
// operators never reach the caller — the Interpreter folds them into the
// step that produced the next emitted Operation.
type Operation struct {
	Operator Operator
	Operands []float32

	// Mask holds the mask bytes consumed by a HintMask or CntrMask
	// operator; it is nil for every other operator.
	Mask []byte
}

type frame struct {
	code []byte
	pos  int
}

// Interpreter executes a single Type 2 char-string as a stream of
// Operations, resolving CallSubr/CallGSubr against caller-supplied global
// and local subroutine arrays. It owns no subroutine bytes; it only borrows
// slices into the arrays given to NewInterpreter.
type Interpreter struct {
	global [][]byte
	local  [][]byte

	code   []byte
	pos    int
	frames []frame

	stack []float32
	stems int

	widthSet     bool
	width        float32
	widthPresent bool

	storage []float32

	done bool
}

// NewInterpreter creates an Interpreter that executes charString, resolving
// subroutine calls against globalSubroutines and localSubroutines.
func NewInterpreter(charString []byte, globalSubroutines, localSubroutines [][]byte) *Interpreter {
	return &Interpreter{
		code:   charString,
		global: globalSubroutines,
		local:  localSubroutines,
	}
}

// Width reports the glyph's width delta, if one was present as a leading
// operand of the first path-construction, hint-declaration, hint-mask, or
// EndChar operator encountered. It is only meaningful once Next has
// returned at least one Operation.
func (interp *Interpreter) Width() (float32, bool) {
	return interp.width, interp.widthPresent
}

var endCharPatterns = []pattern{{base: 0}, {base: 4}}

// Next advances the interpreter to the next emitted Operation. Arithmetic,
// stack, conditional, and subroutine operators are applied transparently
// and never surface here. Next returns io.EOF once EndChar has been
// processed and every active caller has unwound cleanly.
func (interp *Interpreter) Next() (Operation, error) {
	if interp.done {
		return Operation{}, io.EOF
	}

	for {
		for interp.pos < len(interp.code) && isNumberLead(interp.code[interp.pos]) {
			value, n, err := readNumber(interp.code[interp.pos:])
			if err != nil {
				return Operation{}, err
			}
			interp.stack = append(interp.stack, value)
			interp.pos += n
		}
		if interp.pos >= len(interp.code) {
			return Operation{}, postscript.InvalidSince(subSystem, "found an incomplete charstring")
		}

		lead := interp.code[interp.pos]
		var code uint16
		if lead == 0x0c {
			if interp.pos+1 >= len(interp.code) {
				return Operation{}, postscript.InvalidSince(subSystem, "found an incomplete charstring")
			}
			code = 0x0c00 | uint16(interp.code[interp.pos+1])
			interp.pos += 2
		} else {
			code = uint16(lead)
			interp.pos++
		}

		operator, err := operatorFromCode(code)
		if err != nil {
			return Operation{}, err
		}

		switch operator {
		case RMoveTo, HMoveTo, VMoveTo, RLineTo, HLineTo, VLineTo, RRCurveTo,
			HHCurveTo, VVCurveTo, HVCurveTo, VHCurveTo, RCurveLine, RLineCurve,
			Flex, HFlex, Flex1, HFlex1:
			operands := interp.reduce(operandPatterns[operator])
			return Operation{Operator: operator, Operands: operands}, nil

		case HStem, VStem, HStemHM, VStemHM:
			interp.stems += len(interp.stack) / 2
			operands := interp.reduce(operandPatterns[operator])
			return Operation{Operator: operator, Operands: operands}, nil

		case HintMask, CntrMask:
			interp.stems += len(interp.stack) / 2
			operands := interp.reduce(operandPatterns[operator])
			maskLength := (interp.stems + 7) / 8
			if interp.pos+maskLength > len(interp.code) {
				return Operation{}, postscript.InvalidSince(subSystem, "found an incomplete hint mask")
			}
			mask := append([]byte(nil), interp.code[interp.pos:interp.pos+maskLength]...)
			interp.pos += maskLength
			return Operation{Operator: operator, Operands: operands, Mask: mask}, nil

		case EndChar:
			for _, caller := range interp.frames {
				if caller.pos != len(caller.code) {
					return Operation{}, postscript.InvalidSince(subSystem, "found trailing data after end")
				}
			}
			operands := interp.reduce(endCharPatterns)
			interp.done = true
			return Operation{Operator: EndChar, Operands: operands}, nil

		case DotSection:
			interp.stack = interp.stack[:0]

		case CallSubr, CallGSubr:
			if err := interp.call(operator); err != nil {
				return Operation{}, err
			}

		case Return:
			if len(interp.frames) == 0 {
				return Operation{}, postscript.InvalidSince(subSystem, "found a return without a caller")
			}
			last := len(interp.frames) - 1
			interp.code, interp.pos = interp.frames[last].code, interp.frames[last].pos
			interp.frames = interp.frames[:last]

		default:
			if err := interp.applyArithmetic(operator); err != nil {
				return Operation{}, err
			}
		}
	}
}

// reduce applies the width-extraction rule (§4.9.1): the largest operand
// count allowed by patterns that does not exceed the stack's length is
// emitted from the tail of the stack; if a leading surplus operand remains
// and a width has not yet been captured, that leading operand is the
// glyph's width. The stack is cleared either way.
func (interp *Interpreter) reduce(patterns []pattern) []float32 {
	length := len(interp.stack)
	required := largestAllowed(length, patterns)
	if required < length && !interp.widthSet {
		interp.width = interp.stack[0]
		interp.widthPresent = true
	}
	interp.widthSet = true

	operands := append([]float32(nil), interp.stack[length-required:]...)
	interp.stack = interp.stack[:0]
	return operands
}

func bias(count int) int {
	switch {
	case count < 1240:
		return 107
	case count < 33900:
		return 1131
	default:
		return 32768
	}
}

func (interp *Interpreter) call(operator Operator) error {
	if len(interp.stack) < 1 {
		return postscript.InvalidSince(subSystem, "found a stack underflow")
	}
	top := len(interp.stack) - 1
	selector := int(interp.stack[top])
	interp.stack = interp.stack[:top]

	subroutines := interp.local
	if operator == CallGSubr {
		subroutines = interp.global
	}
	index := selector + bias(len(subroutines))
	if index < 0 || index >= len(subroutines) {
		return postscript.InvalidSince(subSystem, "failed to find a subroutine")
	}

	if len(interp.frames) >= maxCallDepth {
		return postscript.InvalidSince(subSystem, "found excessive subroutine nesting")
	}
	interp.frames = append(interp.frames, frame{code: interp.code, pos: interp.pos})
	interp.code = subroutines[index]
	interp.pos = 0
	return nil
}

// applyArithmetic handles every operator not already dispatched in Next:
// arithmetic, stack manipulation, and conditional operators. None of them
// emit an Operation.
func (interp *Interpreter) applyArithmetic(operator Operator) error {
	pop1 := func() (float32, error) {
		n := len(interp.stack)
		if n < 1 {
			return 0, postscript.InvalidSince(subSystem, "found a stack underflow")
		}
		value := interp.stack[n-1]
		interp.stack = interp.stack[:n-1]
		return value, nil
	}
	pop2 := func() (float32, float32, error) {
		n := len(interp.stack)
		if n < 2 {
			return 0, 0, postscript.InvalidSince(subSystem, "found a stack underflow")
		}
		a, b := interp.stack[n-2], interp.stack[n-1]
		interp.stack = interp.stack[:n-2]
		return a, b, nil
	}
	truth := func(value bool) float32 {
		if value {
			return 1
		}
		return 0
	}

	switch operator {
	case Abs:
		value, err := pop1()
		if err != nil {
			return err
		}
		if value < 0 {
			value = -value
		}
		interp.stack = append(interp.stack, value)
	case Add:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, a+b)
	case Sub:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, a-b)
	case Div:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		if b == 0 {
			return postscript.InvalidSince(subSystem, "found a division by zero")
		}
		interp.stack = append(interp.stack, a/b)
	case Neg:
		value, err := pop1()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, -value)
	case Mul:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, a*b)
	case Sqrt:
		value, err := pop1()
		if err != nil {
			return err
		}
		if value < 0 {
			return postscript.InvalidSince(subSystem, "found a negative square root operand")
		}
		interp.stack = append(interp.stack, float32(math.Sqrt(float64(value))))
	case Drop:
		_, err := pop1()
		if err != nil {
			return err
		}
	case Dup:
		value, err := pop1()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, value, value)
	case Exch:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, b, a)
	case Index:
		n := len(interp.stack)
		if n < 1 {
			return postscript.InvalidSince(subSystem, "found a stack underflow")
		}
		selector := int(interp.stack[n-1])
		interp.stack = interp.stack[:n-1]
		if selector < 0 {
			selector = 0
		}
		position := len(interp.stack) - 1 - selector
		if position < 0 {
			return postscript.InvalidSince(subSystem, "found an out-of-range index")
		}
		interp.stack = append(interp.stack, interp.stack[position])
	case Roll:
		n := len(interp.stack)
		if n < 2 {
			return postscript.InvalidSince(subSystem, "found a stack underflow")
		}
		shift := int(interp.stack[n-1])
		span := int(interp.stack[n-2])
		interp.stack = interp.stack[:n-2]
		if span <= 0 || span > len(interp.stack) {
			return postscript.InvalidSince(subSystem, "found an invalid roll span")
		}
		roll(interp.stack[len(interp.stack)-span:], shift)
	case And:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, truth(a != 0 && b != 0))
	case Or:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, truth(a != 0 || b != 0))
	case Not:
		value, err := pop1()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, truth(value == 0))
	case Eq:
		a, b, err := pop2()
		if err != nil {
			return err
		}
		interp.stack = append(interp.stack, truth(a == b))
	case IfElse:
		n := len(interp.stack)
		if n < 4 {
			return postscript.InvalidSince(subSystem, "found a stack underflow")
		}
		v1, v2, left, right := interp.stack[n-4], interp.stack[n-3], interp.stack[n-2], interp.stack[n-1]
		interp.stack = interp.stack[:n-4]
		if left <= right {
			interp.stack = append(interp.stack, v1)
		} else {
			interp.stack = append(interp.stack, v2)
		}
	case Random, Put, Get:
		return postscript.Unsupported(subSystem, "operator")
	default:
		return postscript.Unsupported(subSystem, "operator")
	}
	return nil
}

// roll rotates data's elements by shift positions, positive shift moving
// elements toward the top (the end of the slice).
func roll(data []float32, shift int) {
	n := len(data)
	shift %= n
	if shift < 0 {
		shift += n
	}
	if shift == 0 {
		return
	}
	rotated := make([]float32, n)
	for i, value := range data {
		rotated[(i+shift)%n] = value
	}
	copy(data, rotated)
}
