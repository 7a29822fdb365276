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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher81/modalflag"
	"github.com/jetsetilly/gopher81/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-quiet", "game.p", "extra"})
	quiet := md.AddBool("quiet", false, "suppress log")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *quiet, true)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "game.p")
	test.ExpectEquality(t, md.GetArg(1), "extra")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"game.p"})
	md.AddSubModes("run", "tape")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "game.p")
}

func TestSelectedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "tape", "-rate", "22050", "encode", "game.p"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("RUN", "TAPE")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "TAPE")

	md.NewMode()
	rate := md.AddInt("rate", 44100, "sample rate")
	md.AddSubModes("decode", "encode")
	test.ExpectEquality(t, md.Parsed(), false)

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Parsed(), true)
	test.ExpectEquality(t, *rate, 22050)
	test.ExpectEquality(t, md.Mode(), "ENCODE")
	test.ExpectEquality(t, md.Path(), "TAPE/ENCODE")
	test.ExpectEquality(t, md.String(), "TAPE/ENCODE")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "game.p")

	var set []string
	md.Visit(func(f string) { set = append(set, f) })
	test.ExpectEquality(t, strings.Join(set, ","), "rate")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	md.AddSubModes("RUN", "TAPE")

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectEquality(t, md.Mode(), "")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "TAPE")
	md.AddString("rom", "", "ROM file")
	md.AddInt("frames", 10, "number of frames")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage:\n"+
		"  -frames (default 10)\n    \tnumber of frames\n"+
		"  -rom\n    \tROM file\n"+
		"  modes: RUN, TAPE (default RUN)\n"))

	tw.Clear()
	md.NewArgs([]string{"-h"})
	md.AdditionalHelp("extra help")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage:\n  no flags\n\nextra help\n"))
}
