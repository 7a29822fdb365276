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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". The pattern is what the Is() and Has()
// functions compare against. Formatting is deferred until Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the formatted message with duplicate adjacent parts removed.
// Parts are separated by a colon and a space.
func (er curated) Error() string {
	return normalise(fmt.Sprintf(er.pattern, er.values...))
}

func normalise(s string) string {
	p := strings.Split(s, ": ")
	n := make([]string, 1, len(p))
	n[0] = p[0]
	for _, q := range p[1:] {
		if q != n[len(n)-1] {
			n = append(n, q)
		}
	}
	return strings.Join(n, ": ")
}

// Unwrap returns every value that is an error. Implements the interface used
// by errors.Is() and errors.As() in the standard library.
func (er curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain. The chain can pass through errors created by fmt.Errorf() with
// the %w verb.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, u := range e.Unwrap() {
			if Has(u, pattern) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(e.Unwrap(), pattern)
	}

	return false
}

// Pattern returns the pattern of a curated error. Returns the empty string
// for any other error.
func Pattern(err error) string {
	var er curated
	if errors.As(err, &er) {
		return er.pattern
	}
	return ""
}
