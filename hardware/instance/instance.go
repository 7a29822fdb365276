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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Machine type, but is not actually the Machine
// itself.
package instance

import (
	"github.com/jetsetilly/gopher81/hardware/preferences"
	"github.com/jetsetilly/gopher81/random"
)

// Live is a copy of the preference values that are consulted on every
// instruction. Reading a prefs value is an atomic load and the hot path of
// the emulation is better served by plain fields.
//
// The values are refreshed with the UpdateLive() function.
type Live struct {
	FloatingBus   uint8
	TrapROMWrites bool
	StallBudget   uint64
	Validate      bool
}

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type.
type Instance struct {
	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences

	Live Live

	// instances running ahead of the main emulation, or in tests, should not
	// add to the central log
	Quiet bool
}

// AllowLogging implements the logger.Permission interface.
func (ins *Instance) AllowLogging() bool {
	return !ins.Quiet
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new in-memory preferences
// instance will be created. Providing a non-nil value allows the preferences
// of more than one Machine to be synchronised.
func NewInstance(clock random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clock),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs
	ins.UpdateLive()

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
	ins.UpdateLive()
}

// UpdateLive refreshes the Live field from the current preferences.
func (ins *Instance) UpdateLive() {
	ins.Live = Live{
		FloatingBus:   uint8(ins.Prefs.FloatingBus.Get().(int)),
		TrapROMWrites: ins.Prefs.TrapROMWrites.Get().(bool),
		StallBudget:   uint64(ins.Prefs.StallBudget.Get().(int)),
		Validate:      ins.Prefs.Validate.Get().(bool),
	}
}
