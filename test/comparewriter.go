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

package test

import "strings"

// CompareWriter captures everything written to it so that it can be compared
// with an expected string.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface. It never fails.
func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.buffer.Write(p)
}

// Clear forgets everything written so far.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare returns true if the captured output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.buffer.String() == s
}

// Len returns the number of bytes written since the last Clear().
func (tw *CompareWriter) Len() int {
	return tw.buffer.Len()
}

// Lines returns the captured output split into lines. A trailing newline does
// not create an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
