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

import "github.com/jetsetilly/gopher81/hardware/memory/addresses"

// FrameTrigger implementations are notified of every completed frame. The
// Frame should be treated as read-only.
type FrameTrigger interface {
	NewFrame(Frame) error
}

// DisplayFile implementations decode the character contents of the screen.
// The television uses the DisplayFile to fill the Text field of a completed
// frame.
type DisplayFile interface {
	DisplayFile() [addresses.DisplayRows][addresses.DisplayColumns]uint8
}
