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

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher81/hardware/keyboard"
	"github.com/jetsetilly/gopher81/test"
)

func TestLoadCommand(t *testing.T) {
	taps, err := loadCommand("pong")
	test.ExpectSuccess(t, err)

	// LOAD keyword, open quote, four letters, close quote and NEWLINE
	test.DemandEquality(t, len(taps), 8)
	test.ExpectEquality(t, taps[0].String(), keyboard.J.String())
	test.ExpectEquality(t, taps[1].String(), "SHIFT+P")
	test.ExpectEquality(t, taps[2].String(), "P")
	test.ExpectEquality(t, taps[6].String(), "SHIFT+P")
	test.ExpectEquality(t, taps[7].String(), "NEWLINE")

	_, err = loadCommand("a_b")
	test.ExpectFailure(t, err)
}

func TestLaunch(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOk)
	test.ExpectSuccess(t, strings.Contains(w.String(), "RUN"))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, w), exitArgsError)

	w.Clear()
	missing := filepath.Join(t.TempDir(), "missing.rom")
	test.ExpectEquality(t, launch([]string{"DISASM", "-rom", missing}, w), exitRunError)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in DISASM mode"))
}
