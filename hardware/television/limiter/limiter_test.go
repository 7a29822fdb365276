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

package limiter_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/hardware/television/limiter"
	"github.com/jetsetilly/gopher81/test"
)

// tolerance of measurement
const measurementTolerance = 0.05
const numSecondsPerTest = 2

func TestTicker(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	for _, hz := range []float32{50.0, 100.0} {
		lmtr.SetLimit(hz)
		for range int(hz * numSecondsPerTest) {
			lmtr.CheckFrame()
			lmtr.MeasureActual()
		}
		rate := lmtr.Measured.Load().(float32)
		test.ExpectSuccess(t, rate >= hz*(1.0-measurementTolerance) && rate <= hz*(1.0+measurementTolerance), hz, rate)
	}
}

func TestNudge(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	lmtr.Active = true
	lmtr.Nudge.Store(3)
	for range 3 {
		lmtr.CheckFrame()
	}
	test.ExpectEquality(t, lmtr.Nudge.Load(), int32(0))
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), float32(50.0))
}
