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
	"github.com/jetsetilly/gopher81/curated"
)

// EventRecorder implementations keep every key event.
type EventRecorder interface {
	RecordEvent(Event) error
}

// EventPlayback implementations return the events that happen at the frame.
// Returning no events for a frame is not an error.
type EventPlayback interface {
	GetPlayback(frame int) ([]Event, error)
}

// AttachRecorder attaches an EventRecorder. A nil value removes the recorder.
func (inp *Input) AttachRecorder(r EventRecorder) error {
	if r != nil && inp.playback != nil {
		return curated.Errorf("input: attach recorder: a playback is already attached")
	}
	inp.recorder = r
	return nil
}

// AttachPlayback attaches an EventPlayback. Taps pushed while a playback is
// attached are ignored. A nil value removes the playback.
func (inp *Input) AttachPlayback(pb EventPlayback) error {
	if pb != nil && inp.recorder != nil {
		return curated.Errorf("input: attach playback: a recorder is already attached")
	}
	inp.playback = pb
	return nil
}

func (inp *Input) handlePlayback(frame int) error {
	// drain taps so that they do not happen when the playback is removed
	for len(inp.pushed) > 0 {
		<-inp.pushed
	}

	evs, err := inp.playback.GetPlayback(frame)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		if err := inp.keys.SetKeyState(ev.Key, ev.Pressed); err != nil {
			return curated.Errorf("input: %v", err)
		}
	}
	return nil
}
