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

// Package limiter paces the emulation to the refresh rate of the ZX81 and
// measures the rate actually achieved.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher81/hardware/clocks"
)

// MatchRefreshRate can be used with SetLimit() to limit the emulation to the
// refresh rate of the machine.
const MatchRefreshRate float32 = -1.0

// Limiter waits on a ticker so that calls to CheckFrame() happen no more often
// than the requested rate.
type Limiter struct {
	// whether to wait every frame. when false CheckFrame() only counts frames
	// for the measurement
	Active bool

	// the refresh rate of the machine
	RefreshRate atomic.Value // float32

	// the rate the limiter is trying to achieve
	IdealFPS atomic.Value // float32

	// the measured number of frames per second
	Measured atomic.Value // float32

	// a positive nudge value skips the wait for that many frames. used when
	// the caller knows it has fallen behind
	Nudge atomic.Int32

	// the ticker fires once every pulseCtLimit frames. waiting on every frame
	// is unnecessarily expensive at higher rates
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limit is set to the refresh rate of the ZX81.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		Active: true,
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.RefreshRate.Store(float32(clocks.FramesPerSecond))

	lmtr.pulse = time.NewTicker(time.Millisecond * 20)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(MatchRefreshRate)

	return lmtr
}

// SetLimit sets the number of frames per second. A value of zero or less
// (including MatchRefreshRate) sets the limit to the refresh rate.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	nudge := lmtr.Nudge.Load()
	if nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured field once a second. It is cheap enough
// to call every frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the tickers used by the limiter. The limiter should not be used after
// Stop() has been called.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
