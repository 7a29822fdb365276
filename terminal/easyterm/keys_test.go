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

package easyterm_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/terminal/easyterm"
	"github.com/jetsetilly/gopher81/test"
)

func TestDecode(t *testing.T) {
	k := easyterm.Decode([]byte("ab1"))
	test.ExpectEquality(t, len(k), 3)
	test.ExpectEquality(t, k[0], easyterm.Key('a'))
	test.ExpectEquality(t, k[2], easyterm.Key('1'))

	k = easyterm.Decode([]byte("\x1b[Ax\x1b[D\x1bOB"))
	test.ExpectEquality(t, len(k), 4)
	test.ExpectEquality(t, k[0], easyterm.KeyUp)
	test.ExpectEquality(t, k[1], easyterm.Key('x'))
	test.ExpectEquality(t, k[2], easyterm.KeyLeft)
	test.ExpectEquality(t, k[3], easyterm.KeyDown)

	// lone escape and an unknown sequence
	k = easyterm.Decode([]byte("\x1b\x1b[2~q"))
	test.ExpectEquality(t, len(k), 2)
	test.ExpectEquality(t, k[0], easyterm.KeyEsc)
	test.ExpectEquality(t, k[1], easyterm.Key('q'))

	// incomplete sequence at end of input
	k = easyterm.Decode([]byte("z\x1b[1"))
	test.ExpectEquality(t, len(k), 1)
	test.ExpectEquality(t, k[0], easyterm.Key('z'))

	k = easyterm.Decode([]byte{3, 13})
	test.ExpectEquality(t, k[0], easyterm.KeyInterrupt)
	test.ExpectEquality(t, k[1], easyterm.KeyReturn)
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, easyterm.KeyUp.String(), "up")
	test.ExpectEquality(t, easyterm.KeyInterrupt.String(), "ctrl-C")
	test.ExpectEquality(t, easyterm.Key('g').String(), "g")
	test.ExpectEquality(t, easyterm.KeyDelete.String(), "delete")
}
