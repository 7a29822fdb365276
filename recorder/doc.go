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

// Package recorder saves the key events of an emulation to a file and plays
// them back. Alongside every event is the digest of the video output at the
// moment the event happened. On playback the digest is checked, so a
// recording doubles as a regression test of the emulation.
//
// Recorder and Playback both reset the machine when they are attached. The
// ROM and the RAM size must be the same for the playback as they were for the
// recording.
package recorder
