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

package television

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
)

// Dimensions of a frame in pixels. The width is the number of pixels the ULA
// can draw in one scanline and the height is generous enough for every
// display mode the ROM uses.
const (
	FrameWidth  = 414
	FrameHeight = 320
)

// Frame is a completed video frame.
type Frame struct {
	// the frame number increases by one for every completed frame
	Number int

	Width  int
	Height int

	// one byte per pixel in row order. a value of 1 is ink and 0 is paper
	Pixels []uint8

	// the characters of the display file at the moment the frame completed
	Text [addresses.DisplayRows][addresses.DisplayColumns]uint8
}

// Ink returns true if the pixel at x, y is ink. Coordinates outside the frame
// are paper.
func (f Frame) Ink(x int, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.Pixels[y*f.Width+x] != 0
}

// InkCount returns the number of ink pixels in the frame.
func (f Frame) InkCount() int {
	var n int
	for _, p := range f.Pixels {
		if p != 0 {
			n++
		}
	}
	return n
}

// Copy returns a copy of the frame that does not share its pixel buffer with
// the television.
func (f Frame) Copy() Frame {
	c := f
	c.Pixels = make([]uint8, len(f.Pixels))
	copy(c.Pixels, f.Pixels)
	return c
}

func (f Frame) String() string {
	return fmt.Sprintf("frame %d (%dx%d, %d ink)", f.Number, f.Width, f.Height, f.InkCount())
}

// Dump writes the pixels between the two scanlines as text, one character per
// pixel.
func (f Frame) Dump(top int, bottom int) string {
	var s strings.Builder
	for y := top; y < bottom && y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Ink(x, y) {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
