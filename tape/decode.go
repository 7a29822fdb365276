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
	"fmt"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/logger"
)

// the longest name accepted when splitting the name from the program
const maxNameLength = 127

// decoder collects pulses into bits and bits into bytes
type decoder struct {
	perm logger.Permission

	pulses  int
	current uint8
	bits    int
	data    []uint8

	programs []Program
}

func (dec *decoder) endBit() {
	if dec.pulses < noisePulses {
		dec.pulses = 0
		return
	}

	dec.current <<= 1
	if dec.pulses > zeroMaxPulses {
		dec.current |= 0x01
	}
	dec.pulses = 0

	dec.bits++
	if dec.bits == 8 {
		dec.data = append(dec.data, dec.current)
		dec.current = 0
		dec.bits = 0
	}
}

func (dec *decoder) endProgram() error {
	dec.endBit()

	if dec.bits != 0 {
		logger.Logf(dec.perm, "tape", "%d stray bits at end of program", dec.bits)
		dec.bits = 0
		dec.current = 0
	}

	if len(dec.data) == 0 {
		return nil
	}

	var n int
	for n < len(dec.data) && n < maxNameLength && dec.data[n]&0x80 == 0 {
		n++
	}
	if n >= len(dec.data)-1 || n >= maxNameLength {
		return curated.Errorf(BadRecording, "cannot find end of program name")
	}

	p := Program{
		Name: DecodeName(dec.data[:n+1]),
		Data: dec.data[n+1:],
	}
	dec.data = nil

	err := p.Validate()
	if err != nil {
		return curated.Errorf(BadRecording, err)
	}

	logger.Logf(dec.perm, "tape", "found program: %s", p)
	dec.programs = append(dec.programs, p)

	return nil
}

// Decode finds the programs in a recording. Programs are separated by
// silence.
func Decode(perm logger.Permission, p PCM) ([]Program, error) {
	if p.SampleRate == 0 {
		return nil, curated.Errorf(BadRecording, "sample rate is zero")
	}

	dec := decoder{perm: perm}

	threshold := p.threshold()
	bitGap := int(p.SampleRate * bitGapThreshold)
	programGap := int(p.SampleRate * programGapThreshold)

	var high bool
	fall := -1

	for i, s := range p.Data {
		level := s > threshold

		if level && !high && fall >= 0 {
			gap := i - fall
			if gap > programGap {
				err := dec.endProgram()
				if err != nil {
					return nil, err
				}
			} else if gap > bitGap {
				dec.endBit()
			}
		}

		if level && !high {
			dec.pulses++
		} else if !level && high {
			fall = i
		}

		high = level
	}

	err := dec.endProgram()
	if err != nil {
		return nil, err
	}

	if len(dec.programs) == 0 {
		return nil, curated.Errorf(BadRecording, fmt.Sprintf("no programs in %s of recording", p))
	}

	return dec.programs, nil
}
