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

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/database"
	"github.com/jetsetilly/gopher81/paths"
	"github.com/jetsetilly/gopher81/terminal/easyterm/ansi"
)

// RegressionError is the pattern for errors returned by the regression
// package.
const RegressionError = "regression: %v"

const (
	regressionPath    = "regression"
	regressionDBFile  = "db"
	regressionScripts = "scripts"
)

// resourcePath is replaced in tests
var resourcePath = paths.ResourcePath

// Regressor is the interface implemented by every regression type.
type Regressor interface {
	database.Entry

	// regress runs the test. newRegression is true if the test is being added to the
	// database. the output is used for progress information and the msg
	// argument is printed with that information. a false result with a nil
	// error indicates a failed test. the failure string explains the failure
	regress(newRegression bool, output io.Writer, msg string) (bool, string, error)
}

func dbPath() (string, error) {
	return resourcePath(regressionPath, regressionDBFile)
}

func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(videoEntryType, deserialiseVideoEntry); err != nil {
		return err
	}
	if err := db.RegisterEntryType(playbackEntryType, deserialisePlaybackEntry); err != nil {
		return err
	}
	return nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		if curated.Is(err, database.NotAvailable) {
			_, err = io.WriteString(output, "database is empty\n")
			return err
		}
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression test to the database. The test is run
// before it is added and is only added if it succeeds.
func RegressAdd(output io.Writer, reg Regressor) error {
	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, fail, err := reg.regress(true, output, msg)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	if !ok {
		return curated.Errorf(RegressionError, fail)
	}

	key, err := db.Add(reg)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "\r%s%03d added: %s\n", ansi.ClearLine, key, reg)

	return nil
}

// RegressDelete removes the entry with the key from the database. The
// confirmation reader is read for a y/n answer.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", key))
	}

	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	n, err := confirmation.Read(confirm)
	if err != nil && err != io.EOF {
		return curated.Errorf(RegressionError, err)
	}

	if n > 0 && strings.ToLower(string(confirm[:1])) == "y" {
		err = db.Delete(v)
		if err != nil {
			return curated.Errorf(RegressionError, err)
		}
		fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)
	}

	return nil
}

// RegressRun runs the regression tests with the keys, or every test if no
// keys are given. Details of errors are only shown if verbose is true.
func RegressRun(output io.Writer, verbose bool, filterKeys []string) error {
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", k))
		}
		keys = append(keys, v)
	}

	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	var numSucceed, numFail, numError int

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf(RegressionError, "database entry is not a regression test")
		}

		msg := fmt.Sprintf("running: %03d %s", key, reg)
		ok, fail, err := reg.regress(false, output, msg)

		fmt.Fprintf(output, "\r%s", ansi.ClearLine)

		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "         %v\n", err)
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose && fail != "" {
				fmt.Fprintf(output, "         %s\n", fail)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		return true, nil
	}

	err = db.SelectKeys(onSelect, keys...)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [%d with errors]", numError)
	}
	fmt.Fprintln(output)

	if numFail > 0 || numError > 0 {
		return curated.Errorf(RegressionError, "not all tests succeeded")
	}

	return nil
}
