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

//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gopher81/logger"
)

// DefaultAddress of the statistics server.
const DefaultAddress = "localhost:12681"

const path = "/debug/statsview"

// Launch the statistics server in a new goroutine. An empty address selects
// DefaultAddress.
func Launch(perm logger.Permission, addr string) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(perm, "statsview", "runtime statistics at http://%s%s", addr, path)
	logger.Logf(perm, "statsview", "pprof at http://%s/debug/pprof/", addr)
}

// Available returns true if the statistics server has been built into the
// program.
func Available() bool {
	return true
}
