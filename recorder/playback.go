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

package recorder

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/digest"
	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/input"
	"github.com/jetsetilly/gopher81/hardware/keyboard"
)

// Patterns for errors returned by the Playback.
const (
	PlaybackError     = "playback: %v"
	PlaybackHashError = "playback: unexpected video at line %d (frame %d)"
)

type playbackEntry struct {
	event input.Event
	hash  string

	// the line in the recording file the entry appears
	line int
}

// Playback returns the events of a recording file. It implements the
// input.EventPlayback interface.
type Playback struct {
	filename string
	header   header

	sequence []playbackEntry
	seqCt    int

	digest *digest.Video

	// the frame of the final event
	endFrame int
}

// NewPlayback reads the recording file. The Playback should be attached to a
// machine with AttachToMachine().
func NewPlayback(filename string) (*Playback, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	plb := &Playback{
		filename: filename,
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < numHeaderLines || lines[lineMagic] != magic {
		return nil, curated.Errorf(PlaybackError, fmt.Sprintf("%s is not a recording", filename))
	}

	plb.header.romHash = lines[lineROMHash]
	plb.header.ramSize, err = strconv.Atoi(lines[lineRAMSize])
	if err != nil {
		return nil, curated.Errorf(PlaybackError, fmt.Sprintf("line %d: %v", lineRAMSize+1, err))
	}

	for i := numHeaderLines; i < len(lines); i++ {
		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("expected %d fields at line %d", numFields, i+1))
		}

		entry := playbackEntry{line: i + 1, hash: toks[fieldHash]}

		entry.event.Frame, err = strconv.Atoi(toks[fieldFrame])
		if err != nil {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("line %d: %v", i+1, err))
		}
		if entry.event.Frame < plb.endFrame {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("line %d: frame out of order", i+1))
		}
		plb.endFrame = entry.event.Frame

		entry.event.Key, err = keyboard.ParseKey(toks[fieldKey])
		if err != nil {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("line %d: %v", i+1, err))
		}

		switch toks[fieldState] {
		case statePressed:
			entry.event.Pressed = true
		case stateReleased:
		default:
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("line %d: unknown key state (%s)", i+1, toks[fieldState]))
		}

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

func (plb *Playback) String() string {
	var frame int
	if plb.digest != nil {
		frame = plb.digest.Frames()
	}
	if plb.endFrame == 0 {
		return fmt.Sprintf("%d/0", frame)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", frame, plb.endFrame, 100*float64(frame)/float64(plb.endFrame))
}

// AttachToMachine checks that the machine matches the one the recording was
// made with, resets it and attaches the Playback to the input.
func (plb *Playback) AttachToMachine(m *hardware.Machine, inp *input.Input) error {
	h := machineHeader(m)
	if h.romHash != plb.header.romHash {
		return curated.Errorf(PlaybackError, "recording was made with a different ROM")
	}
	if h.ramSize != plb.header.ramSize {
		return curated.Errorf(PlaybackError, fmt.Sprintf("recording was made with %dK of RAM not %dK", plb.header.ramSize, h.ramSize))
	}

	if err := m.Reset(); err != nil {
		return curated.Errorf(PlaybackError, err)
	}

	if err := inp.AttachPlayback(plb); err != nil {
		return curated.Errorf(PlaybackError, err)
	}

	plb.digest = digest.NewVideo()
	plb.seqCt = 0
	m.AddFrameTrigger(plb.digest)

	return nil
}

// EndFrame returns true once the emulation has passed the frame of the final
// event.
func (plb *Playback) EndFrame() bool {
	return plb.seqCt >= len(plb.sequence) && plb.digest.Frames() >= plb.endFrame
}

// GetPlayback implements the input.EventPlayback interface.
func (plb *Playback) GetPlayback(frame int) ([]input.Event, error) {
	var evs []input.Event

	for plb.seqCt < len(plb.sequence) {
		entry := plb.sequence[plb.seqCt]
		if entry.event.Frame > frame {
			break
		}
		if entry.event.Frame < frame {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("event at line %d missed (frame %d)", entry.line, frame))
		}
		plb.seqCt++

		if entry.hash != plb.digest.Hash() {
			return nil, curated.Errorf(PlaybackHashError, entry.line, frame)
		}
		evs = append(evs, entry.event)
	}

	return evs, nil
}
