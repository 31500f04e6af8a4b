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
	"math"
	"testing"

	"github.com/bodoni/postscript/tape"
)

func TestReadNumberIntegers(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  int32
	}{
		{[]byte{0x8b}, 0},
		{[]byte{0xef}, 100},
		{[]byte{0x27}, -100},
		{[]byte{0xfa, 0x7c}, 1000},
		{[]byte{0xfe, 0x7c}, -1000},
		{[]byte{0x1c, 0x27, 0x10}, 10000},
		{[]byte{0x1d, 0x00, 0x01, 0x86, 0xa0}, 100000},
	}
	for _, c := range cases {
		tp := tape.New(bytes.NewReader(c.bytes))
		number, err := ReadNumber(tp, c.bytes[0])
		if err != nil {
			t.Fatalf("%v: %v", c.bytes, err)
		}
		if number.IsReal() {
			t.Fatalf("%v: got a real number, want an integer", c.bytes)
		}
		if got := number.Int(); got != c.want {
			t.Errorf("%v: got %d, want %d", c.bytes, got, c.want)
		}
	}
}

func TestReadNumberReals(t *testing.T) {
	cases := []struct {
		bytes []byte
		want  float64
		tol   float64
	}{
		{[]byte{0x1e, 0xe2, 0xa2, 0x5f, 0x0f}, -2.25, 1e-9},
		{[]byte{0x1e, 0x0a, 0x14, 0x05, 0x41, 0xc3, 0xff, 0x0f}, 0.140541e-3, 1e-9},
	}
	for _, c := range cases {
		tp := tape.New(bytes.NewReader(c.bytes))
		number, err := ReadNumber(tp, c.bytes[0])
		if err != nil {
			t.Fatalf("%v: %v", c.bytes, err)
		}
		if !number.IsReal() {
			t.Fatalf("%v: got an integer, want a real number", c.bytes)
		}
		if got := number.Float(); math.Abs(got-c.want) > c.tol {
			t.Errorf("%v: got %v, want %v", c.bytes, got, c.want)
		}
	}
}

func TestReadNumberMalformed(t *testing.T) {
	tp := tape.New(bytes.NewReader([]byte{0x1e, 0xff}))
	if _, err := ReadNumber(tp, 0x1e); err == nil {
		t.Fatal("expected a malformed real number error")
	}
}

func TestStringIDRejectsNegativeAndReal(t *testing.T) {
	if _, err := Integer(-1).StringID(); err == nil {
		t.Error("expected an error for a negative integer")
	}
	if _, err := Real(1.5).StringID(); err == nil {
		t.Error("expected an error for a real number")
	}
	id, err := Integer(42).StringID()
	if err != nil {
		t.Fatal(err)
	}
	if id != StringID(42) {
		t.Errorf("got %d, want 42", id)
	}
}
