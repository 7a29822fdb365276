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

// Package hardware is the base package for the ZX81 emulation. The Machine
// type composes the CPU, memory, IO ports, keyboard, ULA and television into a
// single clock domain.
//
// The emulation is driven one instruction at a time with Step() or one frame
// at a time with RunFrame(). Run() and RunForFrameCount() put RunFrame() in a
// loop and consult a continue check between frames. All of these functions
// must be called from the same goroutine. SetKeyState() is the exception and
// can be called from any goroutine.
//
// The frame returned by RunFrame() shares its pixel buffer with the
// television. The buffer is reused two frames later so a caller that wants to
// keep a frame should use the Copy() function of the Frame type.
package hardware
