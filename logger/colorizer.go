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

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopher81/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is printed with a dim pen and the detail with the normal pen.
//
// Suitable as an argument to SetEcho() when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := strings.Builder{}
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			s.WriteString(ansi.DimPens["cyan"])
			s.WriteString(tag)
			s.WriteString(ansi.NormalPen)
			s.WriteString(": ")
			s.WriteString(detail)
		} else {
			s.WriteString(l)
		}
		s.WriteString("\r\n")
	}

	_, err := c.out.Write([]byte(s.String()))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
