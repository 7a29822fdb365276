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

//go:build !statsview

package statsview

import "github.com/jetsetilly/gopher81/logger"

// DefaultAddress of the statistics server.
const DefaultAddress = "localhost:12681"

// Launch does nothing when the statsview build tag is absent.
func Launch(perm logger.Permission, _ string) {
	logger.Log(perm, "statsview", "not available in this build")
}

// Available returns true if the statistics server has been built into the
// program.
func Available() bool {
	return false
}
