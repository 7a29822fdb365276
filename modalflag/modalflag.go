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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
	"time"
)

// Modes is a mode aware replacement for flag.FlagSet. The zero value is ready
// to use once NewArgs() has been called. Help is discarded if Output is nil.
type Modes struct {
	Output io.Writer

	args []string

	// index of the first argument not yet consumed by a call to Parse()
	consumed int

	// flags for the current mode. replaced on every call to NewMode()
	flags *flag.FlagSet

	// candidate modes for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// every mode selected so far
	path []string

	additionalHelp string
	parsed         bool
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// arguments have been parsed and the caller should continue. check
	// Mode() if sub-modes were added before Parse()
	ParseContinue ParseResult = iota

	// help has been printed to Output
	ParseHelp

	// the accompanying error explains the problem
	ParseError
)

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the argument list and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.consumed = 0
	md.NewMode()
}

// NewMode clears the flags and sub-modes ready for the next call to Parse().
// Arguments consumed by earlier calls to Parse() are not seen again.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet(md.Path(), flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.parsed = false
}

// AddSubModes adds to the list of modes that Parse() will look for. The first
// mode added is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the flag and mode summary.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed is true once Parse() has been called for the current mode, even if
// the result was an error.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// Mode returns the most recently selected mode. Empty if no mode has been
// selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// Parse the flags for the current mode and select the next mode if any
// sub-modes have been added.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	err := md.flags.Parse(md.args[md.consumed:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// flags end at the first non-flag argument
	md.consumed = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if arg := strings.ToUpper(md.flags.Arg(0)); slices.Contains(md.subModes, arg) {
		mode = arg
		md.consumed++
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a selected
// mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.consumed:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that was set on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
