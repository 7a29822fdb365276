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

// Package ansi defines the ANSI control sequences used to draw the emulated
// display and the status line in a terminal.
package ansi

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
)

// UnknownStyle is returned by ColorBuild() for unrecognised names.
const UnknownStyle = "ansi: unknown %s (%s)"

var colors = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

var attributes = map[string]int{
	"BOLD":      1,
	"DIM":       2,
	"UNDERLINE": 4,
	"INVERSE":   7,
}

// NormalPen is the sequence for regular text.
var NormalPen string

// InversePen is the sequence for inverse video text. The ZX81 character set
// uses inverse video for the upper half of the character codes.
var InversePen string

// StatusPen is used for the status line below the display.
var StatusPen string

// DimPens is the table of dimmed pens, keyed by lower case colour name.
var DimPens map[string]string

func init() {
	NormalPen, _ = ColorBuild("", "", "", false)
	InversePen, _ = ColorBuild("", "", "inverse", false)
	StatusPen, _ = ColorBuild("yellow", "normal", "", true)

	DimPens = make(map[string]string)
	for c := range colors {
		DimPens[strings.ToLower(c)], _ = ColorBuild(c, "", "dim", false)
	}
}

// ColorBuild creates the sequence for the pen and paper colours and the
// attribute. Empty strings leave that part of the style unchanged. The bright
// flag selects the bright version of the pen colour.
func ColorBuild(pen, paper, attribute string, bright bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", curated.Errorf(UnknownStyle, "pen", pen)
		}
		if bright {
			c += 90
		} else {
			c += 30
		}
		codes = append(codes, fmt.Sprint(c))
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", curated.Errorf(UnknownStyle, "paper", paper)
		}
		codes = append(codes, fmt.Sprint(c+40))
	}

	if attribute != "" && !strings.EqualFold(attribute, "normal") {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", curated.Errorf(UnknownStyle, "attribute", attribute)
		}
		codes = append(codes, fmt.Sprint(a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}

// Screen and cursor control.
const (
	ClearScreen = "\033[2J"
	ClearLine   = "\033[2K"
	CursorHome  = "\033[H"
	CursorHide  = "\033[?25l"
	CursorShow  = "\033[?25h"
	AltScreen   = "\033[?1049h"
	MainScreen  = "\033[?1049l"
)

// CursorPosition moves the cursor to the row and column. Both count from one.
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
