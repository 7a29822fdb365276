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

// Timing of the tape signal, in seconds.
const (
	pulseHigh = 150e-6
	pulseLow  = 150e-6
	bitGap    = 1300e-6
	leader    = 1.0

	// a gap longer than this between pulses ends a bit
	bitGapThreshold = 650e-6

	// a gap longer than this ends a program
	programGapThreshold = 0.5
)

// Number of pulses in the burst for each bit value.
const (
	zeroPulses = 4
	onePulses  = 9

	// bursts with fewer pulses are noise. bursts with more pulses than this
	// are a one
	noisePulses   = 2
	zeroMaxPulses = 6
)

// DefaultSampleRate is the sample rate used by Encode() when none is given.
const DefaultSampleRate = 44100
