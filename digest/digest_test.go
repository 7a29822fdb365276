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

package digest_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher81/digest"
	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/test"
)

func frame(number int, ink ...int) television.Frame {
	f := television.Frame{
		Number: number,
		Width:  television.FrameWidth,
		Height: television.FrameHeight,
		Pixels: make([]uint8, television.FrameWidth*television.FrameHeight),
	}
	for _, i := range ink {
		f.Pixels[i] = 1
	}
	return f
}

func TestVideo(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()

	test.ExpectEquality(t, a.Hash(), strings.Repeat("0", 40))

	test.ExpectSuccess(t, a.NewFrame(frame(1, 100)))
	test.ExpectSuccess(t, b.NewFrame(frame(1, 100)))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Frames(), 1)

	test.ExpectSuccess(t, a.NewFrame(frame(2, 100)))
	test.ExpectSuccess(t, b.NewFrame(frame(2, 101)))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// identical frames give a different digest because the digest is
	// chained
	c := digest.NewVideo()
	test.ExpectSuccess(t, c.NewFrame(frame(1)))
	h := c.Hash()
	test.ExpectSuccess(t, c.NewFrame(frame(2)))
	test.ExpectInequality(t, c.Hash(), h)

	c.ResetDigest()
	test.ExpectEquality(t, c.Hash(), strings.Repeat("0", 40))
	test.ExpectEquality(t, c.Frames(), 0)
	test.ExpectSuccess(t, c.NewFrame(frame(1)))
	test.ExpectEquality(t, c.Hash(), h)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	for i := range 3000 {
		a.SetLevel(i%2 == 0, uint64(i*100))
		b.SetLevel(i%2 == 0, uint64(i*100))
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), strings.Repeat("0", 40))

	// asking for the hash does not change it
	test.ExpectEquality(t, a.Hash(), b.Hash())

	a.SetLevel(true, 300100)
	b.SetLevel(true, 300101)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	a.SetLevel(false, 5)
	b.SetLevel(false, 5)
	test.ExpectEquality(t, a.Hash(), b.Hash())
}

func TestMachine(t *testing.T) {
	// loop: IN A,(FEh); OUT (FFh),A; JR loop
	rom := []uint8{0xdb, 0xfe, 0xd3, 0xff, 0x18, 0xfa}

	run := func() string {
		m, err := hardware.NewMachine(nil)
		test.DemandSuccess(t, err)
		m.Env.Quiet = true
		test.DemandSuccess(t, m.LoadROM(rom))

		dig := digest.NewVideo()
		m.AddFrameTrigger(dig)
		test.DemandSuccess(t, m.RunForFrameCount(5, nil))
		test.ExpectEquality(t, dig.Frames(), 5)
		return dig.Hash()
	}

	test.ExpectEquality(t, run(), run())
}
