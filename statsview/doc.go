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

// Package statsview runs a local HTTP server showing runtime statistics of
// the emulator process. The server is only included when the program is built
// with the statsview tag:
//
//	go build -tags statsview .
//
// Without the tag Launch() logs a message and returns and Available() is
// false. Graphs are served by github.com/go-echarts/statsview, which also
// mounts the standard pprof handlers under /debug/pprof/.
package statsview
