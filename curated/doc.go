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

// Package curated wraps the plain Go error type with errors that remember the
// pattern they were created with. The pattern is the identity of the error.
//
// Curated errors are created with Errorf(), which takes a formatting pattern
// and placeholder values, in the same way as fmt.Errorf(). Patterns that need
// to be tested for should be exported as constants from the package that
// produces them. For example:
//
//	const BadImage = "memory: bad image: %v"
//
//	err := curated.Errorf(BadImage, "image is empty")
//
//	if curated.Is(err, BadImage) {
//		...
//	}
//
// Has() is similar to Is() but searches the whole chain of wrapped errors:
//
//	const ConfigurationError = "configuration error: %v"
//
//	f := curated.Errorf(ConfigurationError, err)
//
//	curated.Is(f, BadImage)   // false
//	curated.Has(f, BadImage)  // true
//
// IsAny() answers whether the error was created by Errorf() at all. In
// practice this distinguishes the errors we expect from those we did not.
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. For the purposes of this package an error message is
// made up of parts separated by ": ". For example:
//
//	curated.Errorf("tape: %v", curated.Errorf("tape: no such program"))
//
// will print as:
//
//	tape: no such program
//
// Curated errors cooperate with the errors package of the standard library.
// The first error value in the list of placeholder values is returned by
// Unwrap() and so errors.Is() and errors.As() will see through a curated
// error to an os.PathError (for example).
package curated
