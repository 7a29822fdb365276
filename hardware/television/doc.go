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

// Package television assembles the video signal generated by the ULA into
// frames. The ZX81 produces no picture of its own accord: pixels are pushed
// to the television during the display routine of the ROM and the frame is
// completed when the ULA starts VSYNC.
//
// Completed frames are handed to the caller of the Machine's RunFrame()
// function and to any FrameTrigger that has been added to the television.
// The pixel buffer of a completed frame is left untouched while the next frame
// is drawn and is reused once two more frames have completed. Callers that
// need to keep the frame for longer should use the Copy() function.
package television
