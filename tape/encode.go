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

package tape

import (
	"math"

	"github.com/jetsetilly/gopher81/curated"
)

// Encode converts programs to a recording. Each program is preceded and
// followed by a period of silence. A sample rate of zero means the
// DefaultSampleRate.
func Encode(sampleRate int, programs ...Program) (PCM, error) {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}

	sr := float64(sampleRate)
	high := int(math.Round(sr * pulseHigh))
	low := int(math.Round(sr * pulseLow))
	gap := int(math.Round(sr * bitGap))
	silence := int(math.Round(sr * leader))

	p := PCM{SampleRate: sr}

	level := func(v float32, n int) {
		for range n {
			p.Data = append(p.Data, v)
		}
	}

	level(-1, silence)

	for _, prog := range programs {
		err := prog.Validate()
		if err != nil {
			return PCM{}, err
		}

		name := EncodeName(prog.Name)
		if len(name) == 0 {
			return PCM{}, curated.Errorf(BadProgram, "program has no name")
		}

		for _, b := range append(name, prog.Data...) {
			for bit := 7; bit >= 0; bit-- {
				n := zeroPulses
				if b&(1<<bit) != 0 {
					n = onePulses
				}
				for range n {
					level(1, high)
					level(-1, low)
				}
				level(-1, gap)
			}
		}

		level(-1, silence)
	}

	return p, nil
}
