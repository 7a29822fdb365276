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

// Package display draws completed frames of the emulated television in a
// terminal. There are two modes. Text mode draws the characters of the
// display file, using the block graphics characters of unicode for the
// graphics of the ZX81 character set and inverse video for the inverse
// characters. Pixel mode draws the frame itself, four pixels to each
// character cell.
//
// A Display implements the television.FrameTrigger interface and should be
// added to the machine with AddFrameTrigger().
package display
