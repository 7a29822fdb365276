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

package database

// Deserialiser creates an Entry from the fields stored in the database.
type Deserialiser func(fields []string) (Entry, error)

// SerialisedEntry is the Entry data represented as a list of strings. The
// strings must not contain the field or entry separators.
type SerialisedEntry []string

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string that identifies the type of the entry in
	// the database
	EntryType() string

	// String returns information about the entry in a human readable format
	String() string

	// Serialise returns the entry in the form stored in the database
	Serialise() (SerialisedEntry, error)

	// CleanUp is called when the entry is deleted from the database
	CleanUp() error
}
