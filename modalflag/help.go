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

package modalflag

import (
	"flag"
	"fmt"
	"strings"
)

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var s strings.Builder

	if md.Path() == "" {
		s.WriteString("Usage:\n")
	} else {
		fmt.Fprintf(&s, "Usage of %s mode:\n", md.Path())
	}

	var nflags int
	md.flags.VisitAll(func(f *flag.Flag) {
		nflags++
		fmt.Fprintf(&s, "  -%s", f.Name)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(&s, " (default %s)", f.DefValue)
		}
		fmt.Fprintf(&s, "\n    \t%s\n", f.Usage)
	})

	if len(md.subModes) > 0 {
		fmt.Fprintf(&s, "  modes: %s (default %s)\n", strings.Join(md.subModes, ", "), md.subModes[0])
	} else if nflags == 0 {
		s.WriteString("  no flags\n")
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(&s, "\n%s\n", md.additionalHelp)
	}

	md.Output.Write([]byte(s.String()))
}
