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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/govern"
	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/television/limiter"
)

// Leadtime is the time the emulation runs before measurement begins. This
// gives the frame rate time to settle.
var Leadtime = 2 * time.Second

// Check the performance of the machine by running it for the duration. If
// uncapped is false the emulation is limited to the refresh rate of the
// ZX81.
func Check(output io.Writer, profile Profile, m *hardware.Machine, uncapped bool, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive (%v)", duration)
	}

	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()
	lmtr.Active = !uncapped

	var startFrame int
	var endFrame int

	runner := func() error {
		lead := time.NewTimer(Leadtime)
		defer lead.Stop()

		var end <-chan time.Time

		return m.Run(func() (govern.State, error) {
			lmtr.CheckFrame()

			select {
			case <-lead.C:
				startFrame = m.TV.FrameNum()
				t := time.NewTimer(duration)
				end = t.C
			case <-end:
				endFrame = m.TV.FrameNum()
				return govern.Ending, nil
			default:
			}

			return govern.Running, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, io.EOF) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
