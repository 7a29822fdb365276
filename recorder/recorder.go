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
	"bufio"
	"fmt"
	"os"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/digest"
	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/input"
	"github.com/jetsetilly/gopher81/logger"
)

// RecordingError is the pattern for errors returned by the Recorder.
const RecordingError = "recorder: %v"

// Recorder writes key events to a file. It implements the
// input.EventRecorder interface.
type Recorder struct {
	m      *hardware.Machine
	file   *os.File
	output *bufio.Writer
	digest *digest.Video
	events int
}

// NewRecorder creates the recording file and attaches the Recorder to the
// input. The machine is reset.
func NewRecorder(filename string, m *hardware.Machine, inp *input.Input) (*Recorder, error) {
	if err := m.Reset(); err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec := &Recorder{
		m:      m,
		file:   f,
		output: bufio.NewWriter(f),
		digest: digest.NewVideo(),
	}

	_, err = rec.output.WriteString(machineHeader(m).String())
	if err != nil {
		f.Close()
		return nil, curated.Errorf(RecordingError, err)
	}

	err = inp.AttachRecorder(rec)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(RecordingError, err)
	}

	m.AddFrameTrigger(rec.digest)
	logger.Logf(m.Env, "recorder", "recording to %s", filename)

	return rec, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("%s (%d events)", rec.file.Name(), rec.events)
}

// RecordEvent implements the input.EventRecorder interface.
func (rec *Recorder) RecordEvent(ev input.Event) error {
	state := stateReleased
	if ev.Pressed {
		state = statePressed
	}

	_, err := fmt.Fprintf(rec.output, "%d%s%s%s%s%s%s\n",
		ev.Frame, fieldSep, ev.Key, fieldSep, state, fieldSep, rec.digest.Hash())
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	rec.events++

	return nil
}

// End the recording and close the file.
func (rec *Recorder) End() error {
	err := rec.output.Flush()
	if err != nil {
		rec.file.Close()
		return curated.Errorf(RecordingError, err)
	}

	err = rec.file.Close()
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}

	logger.Logf(rec.m.Env, "recorder", "%d events recorded", rec.events)
	return nil
}
