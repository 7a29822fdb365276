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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher81/logger"
	"github.com/jetsetilly/gopher81/terminal/easyterm/ansi"
	"github.com/jetsetilly/gopher81/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "memory", "write to ROM")
	log.Log(logger.Allow, "memory", "write to ROM")
	log.Log(logger.Allow, "memory", "write to ROM")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "memory: write to ROM (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibit bool

func (p prohibit) AllowLogging() bool {
	return !bool(p)
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit(true), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Logf(prohibit(false), "tag", "detail %d", 10)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail 10\n")

	w.Reset()
	log.Log(logger.Deny, "tag", "denied")
	log.Log(logger.PermissionFunc(func() bool { return true }), "tag", "allowed")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail 10\ntag: allowed\n")
}

type stringer struct{}

func (stringer) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	var w test.CompareWriter

	log.SetEcho(&w)
	log.Log(logger.Allow, "ula", "vsync")
	test.ExpectSuccess(t, w.Compare("ula: vsync\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "ula", "hsync")
	test.ExpectSuccess(t, w.Compare("ula: vsync\n"))
}

func TestCentralPermissions(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	logger.Log(logger.Allow, "tape", "loaded")
	logger.Logf(logger.Allow, "tape", "%d bytes", 100)
	logger.Log(logger.Deny, "tape", "denied")
	logger.Logf(logger.Deny, "tape", "%d denied", 1)
	logger.Log(logger.PermissionFunc(func() bool { return false }), "tape", "denied")
	logger.Logf(logger.PermissionFunc(func() bool { return true }), "tape", "%s", "allowed")

	var w test.CompareWriter
	logger.Write(&w)
	test.ExpectEquality(t, w.String(), "tape: loaded\ntape: 100 bytes\ntape: allowed\n")
}

func TestColorizer(t *testing.T) {
	var w test.CompareWriter
	c := logger.NewColorizer(&w)

	n, err := c.Write([]byte("ula: vsync\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 11)
	test.ExpectEquality(t, w.String(), ansi.DimPens["cyan"]+"ula"+ansi.NormalPen+": vsync\r\n")
}
