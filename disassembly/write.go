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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
)

// Line is one line of a listing. A line is either a blessed instruction or a
// single byte of data.
type Line struct {
	Address uint16
	Label   string
	Hex     string
	Text    string
	Code    bool
}

func (l Line) String() string {
	return fmt.Sprintf("%04X  %-12s  %s", l.Address, l.Hex, l.Text)
}

// Listing returns the lines of the disassembly in address order.
func (dsm *Disassembly) Listing() []Line {
	var lines []Line

	a := int(dsm.from)
	for a <= int(dsm.to) {
		e := dsm.entries[a-int(dsm.from)]

		l := Line{
			Address: e.Address,
			Label:   addresses.Routines[e.Address],
		}

		// an instruction that runs past the end of the range is shown as data
		if e.Level == EntryLevelBlessed && a+len(e.Bytes)-1 <= int(dsm.to) {
			l.Hex = e.Hex()
			l.Text = e.String()
			l.Code = true
			a += len(e.Bytes)
		} else {
			l.Hex = fmt.Sprintf("%02x", e.Bytes[0])
			l.Text = fmt.Sprintf("DEFB $%02X", e.Bytes[0])
			a++
		}

		lines = append(lines, l)
	}

	return lines
}

// Write the listing to the io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, l := range dsm.Listing() {
		if l.Label != "" {
			if _, err := fmt.Fprintf(output, "%s:\n", l.Label); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(output, l.String()); err != nil {
			return err
		}
	}
	return nil
}

// Grep writes the lines of code that contain the pattern. The comparison is
// case insensitive.
func (dsm *Disassembly) Grep(output io.Writer, pattern string) error {
	pattern = strings.ToUpper(pattern)
	for _, l := range dsm.Listing() {
		if !l.Code || !strings.Contains(strings.ToUpper(l.Text), pattern) {
			continue
		}
		if _, err := fmt.Fprintln(output, l.String()); err != nil {
			return err
		}
	}
	return nil
}
