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

package regression

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/database"
	"github.com/jetsetilly/gopher81/govern"
	"github.com/jetsetilly/gopher81/hardware/input"
	"github.com/jetsetilly/gopher81/recorder"
	"github.com/jetsetilly/gopher81/tape"
)

const playbackEntryType = "playback"

const (
	playbackFieldROM int = iota
	playbackFieldTapeDir
	playbackFieldScript
	playbackFieldNotes
	numPlaybackFields
)

// PlaybackRegression plays back a keyboard recording. Playback regressions
// can take a while to run because they extend over many frames.
type PlaybackRegression struct {
	ROM     string
	TapeDir string
	Script  string
	Notes   string
}

// NewPlaybackRegression is the preferred method of initialisation for the
// PlaybackRegression type. The tape directory can be empty if the recording
// does not LOAD any programs.
func NewPlaybackRegression(rom string, tapeDir string, script string, notes string) *PlaybackRegression {
	return &PlaybackRegression{
		ROM:     absPath(rom),
		TapeDir: absPath(tapeDir),
		Script:  script,
		Notes:   notes,
	}
}

func deserialisePlaybackEntry(fields []string) (database.Entry, error) {
	if len(fields) != numPlaybackFields {
		return nil, curated.Errorf(RegressionError, fmt.Sprintf("playback entry has %d fields (expected %d)", len(fields), numPlaybackFields))
	}

	return &PlaybackRegression{
		ROM:     fields[playbackFieldROM],
		TapeDir: fields[playbackFieldTapeDir],
		Script:  fields[playbackFieldScript],
		Notes:   fields[playbackFieldNotes],
	}, nil
}

// EntryType implements the database.Entry interface.
func (reg *PlaybackRegression) EntryType() string {
	return playbackEntryType
}

// String implements the database.Entry interface.
func (reg *PlaybackRegression) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("[%s] %s", reg.EntryType(), filepath.Base(reg.Script)))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *PlaybackRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.ROM,
		reg.TapeDir,
		reg.Script,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface. The copy of the
// recording in the scripts directory is removed.
func (reg *PlaybackRegression) CleanUp() error {
	err := os.Remove(reg.Script)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (reg *PlaybackRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	fmt.Fprint(output, msg)

	plb, err := recorder.NewPlayback(reg.Script)
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}

	m, err := newMachine(reg.ROM)
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}

	if reg.TapeDir != "" {
		dk := tape.NewDeck(m, reg.TapeDir)
		defer dk.Eject()
	}

	inp := input.NewInput(m)
	m.AddFrameTrigger(inp)

	err = plb.AttachToMachine(m, inp)
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}

	// progress is shown once a second
	progress := time.Now()

	err = m.Run(func() (govern.State, error) {
		if plb.EndFrame() {
			return govern.Ending, nil
		}
		if time.Since(progress) >= time.Second {
			progress = time.Now()
			fmt.Fprintf(output, "\r%s [frame %d]", msg, m.TV.FrameNum())
		}
		return govern.Running, nil
	})

	if err != nil {
		if curated.Has(err, recorder.PlaybackHashError) {
			return false, err.Error(), nil
		}
		return false, "", curated.Errorf(RegressionError, err)
	}

	if newRegression {
		script, err := reg.copyScript()
		if err != nil {
			return false, "", curated.Errorf(RegressionError, err)
		}
		reg.Script = script
	}

	return true, "", nil
}

// copyScript copies the recording to the scripts directory and returns the
// name of the copy.
func (reg *PlaybackRegression) copyScript() (string, error) {
	name := strings.TrimSuffix(filepath.Base(reg.Script), filepath.Ext(reg.Script))
	name = fmt.Sprintf("playback_%s_%s", name, time.Now().Format("20060102_150405.000000"))

	script, err := resourcePath(filepath.Join(regressionPath, regressionScripts), name)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(script); err == nil {
		return "", fmt.Errorf("script already exists (%s)", script)
	}

	data, err := os.ReadFile(reg.Script)
	if err != nil {
		return "", err
	}

	err = os.WriteFile(script, data, 0o600)
	if err != nil {
		return "", err
	}

	return script, nil
}
