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

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TerminalError is the pattern for errors returned by the package.
const TerminalError = "easyterm: %v"

// Geometry is the size of the terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is a posix terminal. The terminal is in raw mode between Open() and
// Close().
type Terminal struct {
	input  *os.File
	output *os.File

	restore unix.Termios

	crit     sync.Mutex
	geometry Geometry

	// closed to stop the resize handler
	quit chan struct{}
	done chan struct{}
}

// Open the terminal and put it into raw mode. Output is written to the output
// file and keypresses are read from the input file.
func Open(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf(TerminalError, "input and output files are required")
	}

	t := &Terminal{
		input:  input,
		output: output,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	err := termios.Tcgetattr(t.input.Fd(), &t.restore)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	raw := t.restore
	termios.Cfmakeraw(&raw)

	// keep output processing so that newlines still return the carriage
	raw.Oflag |= unix.OPOST
	err = termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &raw)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	_ = t.updateGeometry()

	go func() {
		winch := make(chan os.Signal, 1)
		signal.Notify(winch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(winch)
			close(t.done)
		}()

		for {
			select {
			case <-winch:
				_ = t.updateGeometry()
			case <-t.quit:
				return
			}
		}
	}()

	return t, nil
}

// Close returns the terminal to the mode it was in before Open() was called.
func (t *Terminal) Close() error {
	close(t.quit)
	<-t.done

	_ = termios.Tcflush(t.input.Fd(), termios.TCIFLUSH)
	err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.restore)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Print formatted string to the terminal.
func (t *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(t.output, s, a...)
}

// Write implements the io.Writer interface.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.output.Write(p)
}

// Read implements the io.Reader interface. Bytes are returned as soon as they
// are typed.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.input.Read(p)
}

func (t *Terminal) updateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(t.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}

	t.crit.Lock()
	defer t.crit.Unlock()
	t.geometry.Rows = int(ws.Row)
	t.geometry.Cols = int(ws.Col)

	return nil
}

// Geometry returns the most recent size of the terminal. The size is updated
// whenever the terminal is resized.
func (t *Terminal) Geometry() Geometry {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.geometry
}

// Suspend the process in the same way as the shell's job control would. The
// terminal is restored before the process stops and put back into raw mode
// when it continues.
func (t *Terminal) Suspend() error {
	var raw unix.Termios
	if err := termios.Tcgetattr(t.input.Fd(), &raw); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &t.restore); err != nil {
		return curated.Errorf(TerminalError, err)
	}

	if err := syscall.Kill(os.Getpid(), syscall.SIGTSTP); err != nil {
		return curated.Errorf(TerminalError, err)
	}

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCSANOW, &raw); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
