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

// Package preferences holds the preference values for the hardware of the
// emulated machine. Preferences can be shared by more than one machine.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/prefs"
)

// List of valid values for the RAMReset preference.
const (
	RAMZero   = "zero"
	RAMRandom = "random"
	RAMKeep   = "keep"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk      *prefs.Disk
	filename string

	// size of the RAM in KB. the only valid values are 1, 2 and 16
	RAMSize prefs.Int

	// what happens to RAM on reset. one of RAMZero, RAMRandom or RAMKeep
	RAMReset prefs.String

	// the value seen on the data bus when no device drives it
	FloatingBus prefs.Int

	// writes to ROM are reported as errors rather than being silently dropped
	TrapROMWrites prefs.Bool

	// the number of cycles RunFrame() will execute without seeing the end of a
	// frame before giving up
	StallBudget prefs.Int

	// check every CPU step against the instruction definitions
	Validate prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The filename argument is the preferences file to load from and save
// to. If the filename is empty then the preferences exist only in memory.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{
		filename: filename,
	}

	p.RAMSize.SetHookPre(func(v prefs.Value) error {
		switch v.(int) {
		case 1, 2, 16:
			return nil
		}
		return fmt.Errorf("ram size must be 1, 2 or 16 (not %d)", v.(int))
	})
	p.RAMReset.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case RAMZero, RAMRandom, RAMKeep:
			return nil
		}
		return fmt.Errorf("ram reset must be one of %s", strings.Join([]string{RAMZero, RAMRandom, RAMKeep}, ", "))
	})
	p.FloatingBus.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 255 {
			return fmt.Errorf("floating bus value must be a byte")
		}
		return nil
	})
	p.StallBudget.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("stall budget must be positive")
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ramsize", &p.RAMSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ramreset", &p.RAMReset)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.floatingbus", &p.FloatingBus)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trapromwrites", &p.TrapROMWrites)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.stallbudget", &p.StallBudget)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.validate", &p.Validate)
	if err != nil {
		return nil, err
	}

	if filename != "" {
		err = p.dsk.Load(true)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RAMSize.Set(16)
	p.RAMReset.Set(RAMZero)
	p.FloatingBus.Set(0xff)
	p.TrapROMWrites.Set(false)
	p.StallBudget.Set(3250000)
	p.Validate.Set(true)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.filename == "" {
		return nil
	}
	err := p.dsk.Load(false)
	if curated.Is(err, prefs.NoPrefsFile) {
		return nil
	}
	return err
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.filename == "" {
		return nil
	}
	return p.dsk.Save()
}
