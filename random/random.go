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

// Package random provides a source of random numbers that is sensitive to the
// time within the emulation. Two machines with the same seed and the same
// history will see the same random numbers.
package random

import (
	"math/rand"
	"time"
)

// Clock is the source of emulation time.
type Clock interface {
	Now() uint64
}

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.clock != nil {
		t = int64(rnd.clock.Now())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(t))
	}
	return rand.New(rand.NewSource(baseSeed + t))
}

// Intn returns a random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill the byte slice with random values.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
