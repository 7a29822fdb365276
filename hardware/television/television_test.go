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

package television_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/test"
)

type trigger struct {
	frames []int
	err    error
}

func (trg *trigger) NewFrame(f television.Frame) error {
	trg.frames = append(trg.frames, f.Number)
	return trg.err
}

type displayFile struct{}

func (displayFile) DisplayFile() [addresses.DisplayRows][addresses.DisplayColumns]uint8 {
	var d [addresses.DisplayRows][addresses.DisplayColumns]uint8
	d[0][0] = 0x26
	return d
}

func newTelevision(t *testing.T) *television.Television {
	t.Helper()
	env, err := instance.NewInstance(&clocks.Clock{}, nil)
	test.DemandSuccess(t, err)
	env.Quiet = true
	return television.NewTelevision(env)
}

func TestDrawing(t *testing.T) {
	tv := newTelevision(t)

	tv.NewScanline()
	tv.NewScanline()
	tv.DrawPattern(10, 0b10100001)

	// clipped at both edges
	tv.DrawPattern(-4, 0xff)
	tv.DrawPattern(television.FrameWidth-2, 0xff)

	test.ExpectSuccess(t, tv.NewFrame())

	f := tv.LastFrame()
	test.ExpectEquality(t, f.Number, 1)
	test.ExpectEquality(t, f.Ink(10, 2), true)
	test.ExpectEquality(t, f.Ink(11, 2), false)
	test.ExpectEquality(t, f.Ink(12, 2), true)
	test.ExpectEquality(t, f.Ink(17, 2), true)
	test.ExpectEquality(t, f.Ink(10, 1), false)
	test.ExpectEquality(t, f.Ink(0, 2), true)
	test.ExpectEquality(t, f.Ink(3, 2), true)
	test.ExpectEquality(t, f.Ink(4, 2), false)
	test.ExpectEquality(t, f.Ink(television.FrameWidth-1, 2), true)
	test.ExpectEquality(t, f.Ink(television.FrameWidth, 2), false)
	test.ExpectEquality(t, f.InkCount(), 3+4+2)
	test.ExpectEquality(t, tv.Scanline(), 0)
}

func TestBuffering(t *testing.T) {
	tv := newTelevision(t)

	tv.DrawPattern(0, 0xff)
	test.ExpectSuccess(t, tv.NewFrame())
	first := tv.LastFrame()
	kept := first.Copy()

	// the second frame is drawn in another buffer
	tv.DrawPattern(8, 0x0f)
	test.ExpectSuccess(t, tv.NewFrame())
	second := tv.LastFrame()
	test.ExpectEquality(t, second.Number, 2)
	test.ExpectEquality(t, second.InkCount(), 4)
	test.ExpectEquality(t, first.InkCount(), 8)

	// the fourth frame is drawn in the buffer of the first, which is cleared
	// when the third frame completes
	test.ExpectSuccess(t, tv.NewFrame())
	test.ExpectEquality(t, tv.LastFrame().InkCount(), 0)
	test.ExpectEquality(t, first.InkCount(), 0)
	test.ExpectEquality(t, second.InkCount(), 4)
	test.ExpectEquality(t, kept.InkCount(), 8)
}

func TestBeyondFrame(t *testing.T) {
	tv := newTelevision(t)

	for i := 0; i < television.FrameHeight+10; i++ {
		tv.NewScanline()
	}
	tv.DrawPattern(0, 0xff)
	test.ExpectSuccess(t, tv.NewFrame())
	test.ExpectEquality(t, tv.LastFrame().InkCount(), 0)
}

func TestTriggers(t *testing.T) {
	tv := newTelevision(t)
	tv.SetDisplayFile(displayFile{})

	trg := &trigger{}
	tv.AddFrameTrigger(trg)

	test.ExpectSuccess(t, tv.NewFrame())
	test.ExpectSuccess(t, tv.NewFrame())
	test.ExpectEquality(t, len(trg.frames), 2)
	test.ExpectEquality(t, trg.frames[1], 2)
	test.ExpectEquality(t, tv.LastFrame().Text[0][0], uint8(0x26))

	trg.err = errors.New("test error")
	test.ExpectFailure(t, tv.NewFrame())
	test.ExpectEquality(t, tv.FrameNum(), 3)

	tv.RemoveFrameTrigger(trg)
	test.ExpectSuccess(t, tv.NewFrame())
	test.ExpectEquality(t, len(trg.frames), 3)

	tv.Reset()
	test.ExpectEquality(t, tv.FrameNum(), 0)
}
