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

// Package performance measures the speed of the emulation.
//
// Check() runs a machine for a fixed duration and reports the number of
// frames per second achieved, optionally while profiling. RunProfiler() can
// be used on its own to profile any function. CalcFPS() converts a frame
// count and a duration to frames per second and to a percentage of the
// refresh rate of the ZX81.
package performance
