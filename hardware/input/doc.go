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

// Package input presses and releases keys of the ZX81 keyboard in step with
// the frames of the emulation.
//
// Keypresses from the user arrive as a Tap, a set of keys pressed together.
// Taps can be pushed from any goroutine. Each tap is held for HoldFrames
// frames and followed by GapFrames frames with no key pressed, which gives
// the keyboard routine of the ROM time to see each key and to see it
// released. The keys of a tap are pressed in order, so a shifted character
// should list Shift first.
//
// Every change of key state is an Event and can be recorded with an
// EventRecorder. An EventPlayback replaces the user's taps with previously
// recorded events. See the recorder package for implementations of both.
package input
