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

// Package postscript provides the shared error type used by the tape,
// compact1 and type2 packages.
package postscript

import "fmt"

// Error reports a failure to parse a PostScript font program. There is a
// single error kind; SubSystem names the package that raised it and Reason
// is a human-readable description.
type Error struct {
	SubSystem string
	Reason    string
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s", err.SubSystem, err.Reason)
}

// InvalidSince constructs an Error reporting a malformed structure.
func InvalidSince(subSystem, reason string) error {
	return &Error{SubSystem: subSystem, Reason: reason}
}

// Unsupported constructs an Error reporting a syntactically valid but
// unsupported configuration (a format or version this package does not
// implement).
func Unsupported(subSystem, what string) error {
	return &Error{SubSystem: subSystem, Reason: "found an unsupported " + what}
}
