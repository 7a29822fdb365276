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
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/database"
	"github.com/jetsetilly/gopher81/digest"
	"github.com/jetsetilly/gopher81/govern"
)

const videoEntryType = "video"

const (
	videoFieldROM int = iota
	videoFieldNumFrames
	videoFieldDigest
	videoFieldNotes
	numVideoFields
)

// VideoRegression runs a ROM from reset for a number of frames.
type VideoRegression struct {
	ROM       string
	NumFrames int
	Notes     string
	digest    string
}

// NewVideoRegression is the preferred method of initialisation for the
// VideoRegression type.
func NewVideoRegression(rom string, numFrames int, notes string) *VideoRegression {
	return &VideoRegression{
		ROM:       absPath(rom),
		NumFrames: numFrames,
		Notes:     notes,
	}
}

func deserialiseVideoEntry(fields []string) (database.Entry, error) {
	if len(fields) != numVideoFields {
		return nil, curated.Errorf(RegressionError, fmt.Sprintf("video entry has %d fields (expected %d)", len(fields), numVideoFields))
	}

	reg := &VideoRegression{
		ROM:    fields[videoFieldROM],
		digest: fields[videoFieldDigest],
		Notes:  fields[videoFieldNotes],
	}

	var err error
	reg.NumFrames, err = strconv.Atoi(fields[videoFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf(RegressionError, fmt.Sprintf("invalid number of frames (%s)", fields[videoFieldNumFrames]))
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg *VideoRegression) EntryType() string {
	return videoEntryType
}

// String implements the database.Entry interface.
func (reg *VideoRegression) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("[%s] %s frames=%d", reg.EntryType(), filepath.Base(reg.ROM), reg.NumFrames))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *VideoRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.ROM,
		strconv.Itoa(reg.NumFrames),
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *VideoRegression) CleanUp() error {
	return nil
}

func (reg *VideoRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	fmt.Fprint(output, msg)

	if reg.NumFrames <= 0 {
		return false, "", curated.Errorf(RegressionError, "number of frames must be positive")
	}

	m, err := newMachine(reg.ROM)
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}

	dig := digest.NewVideo()
	m.AddFrameTrigger(dig)

	err = m.RunForFrameCount(reg.NumFrames, func(frame int) (govern.State, error) {
		if frame%50 == 0 {
			fmt.Fprintf(output, "\r%s [%d/%d]", msg, frame, reg.NumFrames)
		}
		return govern.Running, nil
	})
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}

	if newRegression {
		reg.digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.digest {
		return false, fmt.Sprintf("digest mismatch after %d frames", reg.NumFrames), nil
	}

	return true, "", nil
}
