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

// Package wavwriter records the MIC output of the ULA to a WAV file. Level
// changes are collected in memory and the file is written when the recording
// is closed. It is therefore only suitable for short recordings, like a
// program being saved.
package wavwriter

import (
	"os"

	"github.com/youpy/go-wav"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/logger"
)

// SampleRate of the WAV file.
const SampleRate = 22050

// sample values for the two levels. samples are unsigned eight bit values
const (
	levelLow  = 0x20
	levelHigh = 0xe0
)

type change struct {
	high  bool
	clock uint64
}

// WavWriter implements the ula.MICRecorder interface.
type WavWriter struct {
	perm     logger.Permission
	filename string
	changes  []change
}

// New is the preferred method of initialisation for the WavWriter type.
func New(perm logger.Permission, filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}
	err = f.Close()
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	return &WavWriter{
		perm:     perm,
		filename: filename,
	}, nil
}

// SetLevel implements the ula.MICRecorder interface.
func (aw *WavWriter) SetLevel(high bool, clock uint64) {
	if len(aw.changes) > 0 && aw.changes[len(aw.changes)-1].high == high {
		return
	}
	aw.changes = append(aw.changes, change{high: high, clock: clock})
}

// samples renders the level changes at the sample rate. the recording begins
// with the first level change and ends with the last
func (aw *WavWriter) samples() []wav.Sample {
	if len(aw.changes) == 0 {
		return nil
	}

	origin := aw.changes[0].clock
	at := func(clock uint64) int {
		return int((clock - origin) * SampleRate / clocks.ZX81)
	}

	var buffer []wav.Sample
	for i := 0; i < len(aw.changes)-1; i++ {
		v := levelLow
		if aw.changes[i].high {
			v = levelHigh
		}
		for range at(aw.changes[i+1].clock) - len(buffer) {
			w := wav.Sample{}
			w.Values[0] = v
			buffer = append(buffer, w)
		}
	}

	return buffer
}

// Close writes the recording to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	buffer := aw.samples()

	enc := wav.NewWriter(f, uint32(len(buffer)), 1, SampleRate, 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(aw.perm, "wavwriter", "writing %d samples to %s", len(buffer), aw.filename)

	err = enc.WriteSamples(buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
