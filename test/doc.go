// This file is part of GLKit.
//
// GLKit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GLKit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GLKit.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. A bool is a success when true, an error is a
// success when nil, and the nil type is always a success. The nil/success
// interpretation follows from how errors work in Go (nil indicating no
// error).
//
// ExpectEquality compares like-typed values for exact equality, which is the
// wrong tool for most floating point results. ExpectApproximate exists for
// those, testing that a value is within a tolerance of the expected value.
//
// The Demand variants of these functions are the same except that failure is
// a test fatality rather than a test error. They are useful when subsequent
// test steps depend on the demanded condition.
//
// The Writer type implements the io.Writer interface and should be used to
// capture diagnostic output for inspection.
package test
