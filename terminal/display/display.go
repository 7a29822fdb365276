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

package display

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/terminal/easyterm/ansi"
)

// Mode selects what the display draws.
type Mode int

// List of valid Mode values.
const (
	ModeText Mode = iota
	ModePixels
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModePixels:
		return "pixels"
	}
	return "unknown"
}

// ParseMode returns the Mode named by the string.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "text":
		return ModeText, nil
	case "pixels":
		return ModePixels, nil
	}
	return ModeText, curated.Errorf(DisplayError, fmt.Sprintf("unknown mode (%s)", s))
}

// DisplayError is the pattern for errors returned by the package.
const DisplayError = "display: %v"

// Display draws frames to the output. Output is only written when it differs
// from the previous frame.
type Display struct {
	output io.Writer
	mode   Mode

	// shown below the display
	status string

	// the pixel mode area grows to cover every ink pixel seen so far. this
	// stops the display moving as the amount of ink changes
	area image.Rectangle

	prev string
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(output io.Writer, mode Mode) *Display {
	return &Display{
		output: output,
		mode:   mode,
	}
}

// Start switches to the alternative screen and hides the cursor.
func (d *Display) Start() error {
	_, err := io.WriteString(d.output, ansi.AltScreen+ansi.ClearScreen+ansi.CursorHide)
	if err != nil {
		return curated.Errorf(DisplayError, err)
	}
	return nil
}

// End restores the screen that was visible before Start().
func (d *Display) End() error {
	_, err := io.WriteString(d.output, ansi.NormalPen+ansi.CursorShow+ansi.MainScreen)
	if err != nil {
		return curated.Errorf(DisplayError, err)
	}
	return nil
}

// SetStatus changes the line shown below the display. The line is drawn with
// the next frame.
func (d *Display) SetStatus(status string) {
	d.status = status
}

// NewFrame implements the television.FrameTrigger interface.
func (d *Display) NewFrame(f television.Frame) error {
	var s strings.Builder
	s.WriteString(ansi.CursorHome)

	switch d.mode {
	case ModeText:
		s.WriteString(RenderText(f.Text))
	case ModePixels:
		d.area = d.area.Union(InkBounds(f))
		s.WriteString(RenderPixels(f, d.area))
	}

	s.WriteString(ansi.ClearLine)
	s.WriteString(ansi.StatusPen)
	s.WriteString(d.status)
	s.WriteString(ansi.NormalPen)

	if s.String() == d.prev {
		return nil
	}
	d.prev = s.String()

	_, err := io.WriteString(d.output, d.prev)
	if err != nil {
		return curated.Errorf(DisplayError, err)
	}
	return nil
}
