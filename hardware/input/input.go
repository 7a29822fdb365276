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

package input

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/keyboard"
	"github.com/jetsetilly/gopher81/hardware/television"
)

// Default timing of taps, in frames.
const (
	DefaultHoldFrames = 4
	DefaultGapFrames  = 4
)

// the number of taps that can be waiting
const queueLength = 64

// QueueFull is returned by PushTap() when the tap cannot be queued.
const QueueFull = "input: tap queue is full: %v dropped"

// KeyState is implemented by the keyboard of the machine.
type KeyState interface {
	SetKeyState(key keyboard.Key, pressed bool) error
}

// Tap is a set of keys pressed and then released together.
type Tap []keyboard.Key

func (t Tap) String() string {
	s := make([]string, len(t))
	for i, k := range t {
		s[i] = k.String()
	}
	return strings.Join(s, "+")
}

// Event is a change to the state of a key.
type Event struct {
	Frame   int
	Key     keyboard.Key
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("frame %d: %s pressed", ev.Frame, ev.Key)
	}
	return fmt.Sprintf("frame %d: %s released", ev.Frame, ev.Key)
}

// Input feeds keypresses to the keyboard. It implements the
// television.FrameTrigger interface.
type Input struct {
	keys KeyState

	HoldFrames int
	GapFrames  int

	pushed chan Tap

	// the tap currently pressed. nil during the gap or when idle
	current Tap

	// frames remaining until the current tap is released or until the gap
	// ends
	countdown int

	recorder EventRecorder
	playback EventPlayback
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(keys KeyState) *Input {
	return &Input{
		keys:       keys,
		HoldFrames: DefaultHoldFrames,
		GapFrames:  DefaultGapFrames,
		pushed:     make(chan Tap, queueLength),
	}
}

// PushTap queues a tap. It is safe to call from any goroutine.
func (inp *Input) PushTap(tap Tap) error {
	select {
	case inp.pushed <- tap:
	default:
		return curated.Errorf(QueueFull, tap)
	}
	return nil
}

// Pending returns the number of taps waiting. The tap currently being pressed
// is not included.
func (inp *Input) Pending() int {
	return len(inp.pushed)
}

// Idle returns true if no tap is being pressed, no tap is waiting and the
// gap after the most recent tap is over.
func (inp *Input) Idle() bool {
	return inp.current == nil && inp.countdown == 0 && len(inp.pushed) == 0
}

// NewFrame implements the television.FrameTrigger interface.
func (inp *Input) NewFrame(f television.Frame) error {
	if inp.playback != nil {
		return inp.handlePlayback(f.Number)
	}

	if inp.countdown > 0 {
		inp.countdown--
		if inp.countdown > 0 {
			return nil
		}
	}

	if inp.current != nil {
		for i := len(inp.current) - 1; i >= 0; i-- {
			if err := inp.set(f.Number, inp.current[i], false); err != nil {
				return err
			}
		}
		inp.current = nil
		inp.countdown = inp.GapFrames
		if inp.countdown > 0 {
			return nil
		}
	}

	select {
	case tap := <-inp.pushed:
		for _, k := range tap {
			if err := inp.set(f.Number, k, true); err != nil {
				return err
			}
		}
		inp.current = tap
		inp.countdown = max(inp.HoldFrames, 1)
	default:
	}

	return nil
}

func (inp *Input) set(frame int, key keyboard.Key, pressed bool) error {
	if err := inp.keys.SetKeyState(key, pressed); err != nil {
		return curated.Errorf("input: %v", err)
	}
	if inp.recorder != nil {
		return inp.recorder.RecordEvent(Event{Frame: frame, Key: key, Pressed: pressed})
	}
	return nil
}
