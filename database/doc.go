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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat file.
//
// Use of a database requires a session. A session is started with
// StartSession() and ended with EndSession(). For example (error handling
// removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initSession)
//	defer db.EndSession(true)
//
// The activity argument says what will happen during the session. The file is
// created by ActivityCreating if it does not already exist. ActivityReading
// sessions can never commit changes.
//
// The init function is called before the file is read and should register
// every entry type the database might contain:
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", deserialiseFoo)
//	}
//
// The deserialiser receives the fields of an entry, not including the key or
// the entry type, and returns a value that satisfies the Entry interface.
package database
