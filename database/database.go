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

import (
	"fmt"
	"io"
	"sort"

	"github.com/jetsetilly/gopher81/curated"
)

// Sentinal error patterns.
const (
	DatabaseError = "database: %v"
	NotAvailable  = "database: not available (%v)"
	KeyError      = "database: key not available (%v)"
)

// arbitrary maximum number of entries
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldType
	numLeaderFields
)

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}

// NumEntries returns the number of entries in the database.
func (db Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		_, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key])
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the database. The key of the new entry is returned.
func (db *Session) Add(ent Entry) (int, error) {
	if _, ok := db.entryTypes[ent.EntryType()]; !ok {
		return -1, curated.Errorf(DatabaseError, "unregistered entry type: "+ent.EntryType())
	}

	// find spare key
	for key := 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			db.entries[key] = ent
			return key, nil
		}
	}

	return -1, curated.Errorf(DatabaseError, fmt.Sprintf("maximum entries exceeded (max %d)", maxEntries))
}

// Get returns the entry with the key.
func (db Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(KeyError, key)
	}
	return ent, nil
}

// Delete the entry with the key. The entry's CleanUp() function is called.
func (db *Session) Delete(key int) error {
	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(KeyError, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	delete(db.entries, key)

	return nil
}
