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

// SelectAll entries in the database in key order.
//
// onSelect() should return true if the selection is to continue. Selection
// ends immediately if onSelect() returns an error.
func (db Session) SelectAll(onSelect func(key int, ent Entry) (bool, error)) error {
	return db.SelectKeys(onSelect)
}

// SelectKeys is the same as SelectAll() but only entries with one of the keys
// are selected. An empty key list selects every entry.
func (db Session) SelectKeys(onSelect func(key int, ent Entry) (bool, error), keys ...int) error {
	filter := make(map[int]bool, len(keys))
	for _, k := range keys {
		filter[k] = true
	}

	for _, key := range db.SortedKeyList() {
		if len(filter) > 0 && !filter[key] {
			continue
		}

		cont, err := onSelect(key, db.entries[key])
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}
