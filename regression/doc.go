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

// Package regression facilitates the regression testing of the emulation.
// Tests are stored in a database in the resource directory and are run with
// RegressRun().
//
// There are two types of test. A VideoRegression runs a ROM from reset for a
// number of frames and compares the video digest with the digest recorded
// when the test was added. A PlaybackRegression plays back a keyboard
// recording. The video digest is checked by the playback at every event in
// the recording.
package regression
