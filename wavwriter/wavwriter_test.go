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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/tape"
	"github.com/jetsetilly/gopher81/test"
	"github.com/jetsetilly/gopher81/wavwriter"
)

type quiet struct{}

func (quiet) AllowLogging() bool {
	return false
}

func TestWavWriter(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "mic.wav")

	aw, err := wavwriter.New(quiet{}, filename)
	test.DemandSuccess(t, err)

	// one second of a square wave with a period of 0.2 seconds
	const period = clocks.ZX81 / 5
	for i := range 11 {
		aw.SetLevel(i%2 == 1, uint64(1000+i*period/2))

		// repeated levels are ignored
		aw.SetLevel(i%2 == 1, uint64(1000+i*period/2+10))
	}
	test.DemandSuccess(t, aw.Close())

	info, err := os.Stat(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(44+wavwriter.SampleRate))

	pcm, err := tape.ReadPCM(quiet{}, filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pcm.SampleRate, float64(wavwriter.SampleRate))
	test.ExpectEquality(t, len(pcm.Data), wavwriter.SampleRate)

	// the first level is low and the level changes every 0.1 seconds
	test.ExpectEquality(t, pcm.Data[10] < pcm.Data[wavwriter.SampleRate/10+10], true)
	test.ExpectEquality(t, pcm.Data[10], pcm.Data[wavwriter.SampleRate/5+10])
}
