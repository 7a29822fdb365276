// This file is part of Gopher81.
//
// Gopher81 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher81 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher81.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles functions that remove common boilerplate from tests
// written with the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and should be used
// when the rest of the test depends on the value being correct. For example,
// testing the length of two slices before iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() test for success under conditions
// suitable for the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious. Because of how errors usually work (nil to
// indicate no error) we need to interpret nil as success.
//
// All functions take an optional list of tags. The tags are printed as part
// of the failure message and help identify which of many similar tests (in a
// loop for example) has failed.
//
// The CompareWriter type implements io.Writer and is used to
// capture output from the emulation. For example, the output of a Z80 test
// program that prints through an emulated BDOS.
package test
