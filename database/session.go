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
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
)

// Activity describes what will happen to the database during a session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session is an open database.
type Session struct {
	dbfile   *os.File
	activity Activity

	entryTypes map[string]Deserialiser
	entries    map[int]Entry
}

// StartSession opens the database file and reads every entry. The init
// function should register the entry types with RegisterEntryType().
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		activity:   activity,
		entryTypes: make(map[string]Deserialiser),
		entries:    make(map[int]Entry),
	}

	var flags int

	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	var err error

	db.dbfile, err = os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NotAvailable, path)
		}
		return nil, curated.Errorf(DatabaseError, err)
	}

	if init != nil {
		err = init(db)
		if err != nil {
			db.dbfile.Close()
			return nil, err
		}
	}

	err = db.readDBFile()
	if err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database file. Entries are written back to the file
// if commitChanges is true, unless the session is an ActivityReading session.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return curated.Errorf(DatabaseError, "no session to end")
	}

	defer func() {
		db.dbfile = nil
	}()

	if commitChanges && db.activity != ActivityReading {
		err := db.writeDBFile()
		if err != nil {
			db.dbfile.Close()
			return err
		}
	}

	err := db.dbfile.Close()
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

// RegisterEntryType tells the database what entries it may expect and how to
// create them.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf(DatabaseError, "duplicate entry type: "+id)
	}
	db.entryTypes[id] = des
	return nil
}

func (db *Session) readDBFile() error {
	_, err := db.dbfile.Seek(0, io.SeekStart)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	b, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	for i, line := range strings.Split(string(b), entrySep) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf(DatabaseError, "missing fields on line "+strconv.Itoa(i+1))
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf(DatabaseError, "invalid key on line "+strconv.Itoa(i+1))
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf(DatabaseError, "duplicate key on line "+strconv.Itoa(i+1))
		}

		des, ok := db.entryTypes[fields[leaderFieldType]]
		if !ok {
			return curated.Errorf(DatabaseError, "unknown entry type on line "+strconv.Itoa(i+1))
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		db.entries[key] = ent
	}

	return nil
}

func (db *Session) writeDBFile() error {
	var s strings.Builder

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		for _, f := range fields {
			if strings.Contains(f, fieldSep) || strings.Contains(f, entrySep) {
				return curated.Errorf(DatabaseError, "field contains a separator: "+f)
			}
		}

		s.WriteString(recordHeader(key, ent.EntryType()))
		for _, f := range fields {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)
	}

	err := db.dbfile.Truncate(0)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	_, err = db.dbfile.WriteAt([]byte(s.String()), 0)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}
