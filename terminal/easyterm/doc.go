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

// Package easyterm puts a posix terminal into raw mode for the emulator's
// text display and reads keypresses from it. Terminal modes are handled with
// github.com/pkg/term/termios and the terminal size with golang.org/x/sys/unix.
//
// Keypresses are decoded into Key values by Decode(), which recognises the
// cursor key escape sequences. The ansi sub-package has the escape sequences
// for drawing.
package easyterm
