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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher81/curated"
)

// InvalidResult is the pattern for errors returned by IsValid().
const InvalidResult = "execution: invalid result: %v"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Defn == nil {
		return curated.Errorf(InvalidResult, fmt.Sprintf("no definition for instruction at %#04x", r.Address))
	}

	if !r.Final {
		return curated.Errorf(InvalidResult, fmt.Sprintf("execution of %s not finalised", r.Defn.Mnemonic))
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(InvalidResult, fmt.Sprintf("unexpected number of bytes read during decode of %s (%d instead of %d)",
			r.Defn.Mnemonic, r.ByteCount, r.Defn.Bytes))
	}

	if r.Taken {
		if !r.Defn.IsConditional() {
			return curated.Errorf(InvalidResult, fmt.Sprintf("%s is not conditional", r.Defn.Mnemonic))
		}
		if r.Cycles != r.Defn.Taken {
			return curated.Errorf(InvalidResult, fmt.Sprintf("number of cycles wrong for %s (%d instead of %d)",
				r.Defn.Mnemonic, r.Cycles, r.Defn.Taken))
		}
		return nil
	}

	if r.Cycles != r.Defn.Cycles || r.Cycles == 0 {
		return curated.Errorf(InvalidResult, fmt.Sprintf("number of cycles wrong for %s (%d instead of %d)",
			r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles))
	}

	return nil
}
