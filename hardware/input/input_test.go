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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/hardware/input"
	"github.com/jetsetilly/gopher81/hardware/keyboard"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/test"
)

type keys struct {
	pressed map[keyboard.Key]bool
}

func (k *keys) SetKeyState(key keyboard.Key, pressed bool) error {
	k.pressed[key] = pressed
	return nil
}

type recorder struct {
	events []input.Event
}

func (r *recorder) RecordEvent(ev input.Event) error {
	r.events = append(r.events, ev)
	return nil
}

type playback map[int][]input.Event

func (pb playback) GetPlayback(frame int) ([]input.Event, error) {
	return pb[frame], nil
}

func frame(inp *input.Input, n int) error {
	return inp.NewFrame(television.Frame{Number: n})
}

func TestTaps(t *testing.T) {
	k := &keys{pressed: make(map[keyboard.Key]bool)}
	inp := input.NewInput(k)
	inp.HoldFrames = 2
	inp.GapFrames = 1

	rec := &recorder{}
	test.ExpectSuccess(t, inp.AttachRecorder(rec))

	test.ExpectEquality(t, inp.Idle(), true)
	test.ExpectSuccess(t, inp.PushTap(input.Tap{keyboard.Shift, keyboard.P}))
	test.ExpectSuccess(t, inp.PushTap(input.Tap{keyboard.A}))
	test.ExpectEquality(t, inp.Pending(), 2)
	test.ExpectEquality(t, inp.Idle(), false)

	// shift+P held for frames 1 and 2
	test.ExpectSuccess(t, frame(inp, 1))
	test.ExpectEquality(t, k.pressed[keyboard.Shift], true)
	test.ExpectEquality(t, k.pressed[keyboard.P], true)
	test.ExpectEquality(t, inp.Pending(), 1)
	test.ExpectSuccess(t, frame(inp, 2))
	test.ExpectEquality(t, k.pressed[keyboard.P], true)

	// released for frame 3
	test.ExpectSuccess(t, frame(inp, 3))
	test.ExpectEquality(t, k.pressed[keyboard.Shift], false)
	test.ExpectEquality(t, k.pressed[keyboard.P], false)
	test.ExpectEquality(t, k.pressed[keyboard.A], false)

	// A for frames 4 and 5
	test.ExpectSuccess(t, frame(inp, 4))
	test.ExpectEquality(t, k.pressed[keyboard.A], true)
	test.ExpectSuccess(t, frame(inp, 5))
	test.ExpectSuccess(t, frame(inp, 6))
	test.ExpectEquality(t, k.pressed[keyboard.A], false)
	test.ExpectEquality(t, inp.Idle(), false)
	test.ExpectSuccess(t, frame(inp, 7))
	test.ExpectEquality(t, inp.Idle(), true)

	test.DemandEquality(t, len(rec.events), 6)
	test.ExpectEquality(t, rec.events[0], input.Event{Frame: 1, Key: keyboard.Shift, Pressed: true})
	test.ExpectEquality(t, rec.events[1], input.Event{Frame: 1, Key: keyboard.P, Pressed: true})
	test.ExpectEquality(t, rec.events[2], input.Event{Frame: 3, Key: keyboard.P, Pressed: false})
	test.ExpectEquality(t, rec.events[3], input.Event{Frame: 3, Key: keyboard.Shift, Pressed: false})
	test.ExpectEquality(t, rec.events[4], input.Event{Frame: 4, Key: keyboard.A, Pressed: true})
	test.ExpectEquality(t, rec.events[5], input.Event{Frame: 6, Key: keyboard.A, Pressed: false})
}

func TestQueueFull(t *testing.T) {
	inp := input.NewInput(&keys{pressed: make(map[keyboard.Key]bool)})
	var err error
	for i := 0; i < 100 && err == nil; i++ {
		err = inp.PushTap(input.Tap{keyboard.Space})
	}
	test.ExpectFailure(t, err)
}

func TestPlayback(t *testing.T) {
	k := &keys{pressed: make(map[keyboard.Key]bool)}
	inp := input.NewInput(k)

	pb := playback{
		2: {{Frame: 2, Key: keyboard.Newline, Pressed: true}},
		5: {{Frame: 5, Key: keyboard.Newline, Pressed: false}},
	}
	test.ExpectSuccess(t, inp.AttachPlayback(pb))
	test.ExpectFailure(t, inp.AttachRecorder(&recorder{}))

	// taps are ignored during playback
	test.ExpectSuccess(t, inp.PushTap(input.Tap{keyboard.Q}))

	test.ExpectSuccess(t, frame(inp, 1))
	test.ExpectEquality(t, k.pressed[keyboard.Newline], false)
	test.ExpectSuccess(t, frame(inp, 2))
	test.ExpectEquality(t, k.pressed[keyboard.Newline], true)
	test.ExpectEquality(t, k.pressed[keyboard.Q], false)
	test.ExpectSuccess(t, frame(inp, 5))
	test.ExpectEquality(t, k.pressed[keyboard.Newline], false)
	test.ExpectEquality(t, inp.Pending(), 0)

	test.ExpectSuccess(t, inp.AttachPlayback(nil))
	test.ExpectSuccess(t, inp.AttachRecorder(&recorder{}))
}

func TestTapString(t *testing.T) {
	test.ExpectEquality(t, input.Tap{keyboard.Shift, keyboard.Num0}.String(), "SHIFT+0")
	test.ExpectEquality(t, input.Event{Frame: 3, Key: keyboard.A, Pressed: true}.String(), "frame 3: A pressed")
}
