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
	"image"
	"strings"

	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/terminal/easyterm/ansi"
)

// rows are separated with a carriage return as well as a line feed so that
// output is correct whether or not the terminal translates line feeds
const lineEnd = "\r\n"

// RenderText draws the characters of the display file. Inverse characters are
// drawn with the inverse pen.
func RenderText(text [addresses.DisplayRows][addresses.DisplayColumns]uint8) string {
	var s strings.Builder

	for _, row := range text {
		inverse := false
		for _, c := range row {
			r, inv := Glyph(c)
			if inv != inverse {
				if inv {
					s.WriteString(ansi.InversePen)
				} else {
					s.WriteString(ansi.NormalPen)
				}
				inverse = inv
			}
			s.WriteRune(r)
		}
		if inverse {
			s.WriteString(ansi.NormalPen)
		}
		s.WriteString(lineEnd)
	}

	return s.String()
}

// InkBounds returns the smallest rectangle containing every ink pixel of the
// frame. The rectangle is empty if there is no ink.
func InkBounds(f television.Frame) image.Rectangle {
	var r image.Rectangle
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.Ink(x, y) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

// RenderPixels draws the area of the frame inside the rectangle. Each
// character cell covers two pixels horizontally and two vertically.
func RenderPixels(f television.Frame, area image.Rectangle) string {
	var s strings.Builder

	for y := area.Min.Y; y < area.Max.Y; y += 2 {
		for x := area.Min.X; x < area.Max.X; x += 2 {
			var q uint8
			if f.Ink(x, y) {
				q |= 0x01
			}
			if f.Ink(x+1, y) {
				q |= 0x02
			}
			if f.Ink(x, y+1) {
				q |= 0x04
			}
			if f.Ink(x+1, y+1) {
				q |= 0x08
			}
			s.WriteRune(quadrants[q])
		}
		s.WriteString(lineEnd)
	}

	return s.String()
}
