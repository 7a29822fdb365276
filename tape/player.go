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

	"github.com/jetsetilly/gopher81/hardware/clocks"
)

// Player plays a recording into the EAR socket of the ULA. It implements the
// ula.TapePlayer interface.
//
// Playback starts the first time the ULA reads the EAR socket after the
// player has been attached or rewound.
type Player struct {
	pcm       PCM
	threshold float32

	playing bool
	start   uint64
	clock   uint64
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(pcm PCM) *Player {
	return &Player{
		pcm:       pcm,
		threshold: pcm.threshold(),
	}
}

func (pl *Player) String() string {
	if !pl.playing {
		return fmt.Sprintf("stopped [%s]", pl.pcm)
	}
	return fmt.Sprintf("%.02fs of %.02fs", pl.position(pl.clock), pl.pcm.Duration())
}

// position in seconds at the cycle clock
func (pl *Player) position(clock uint64) float64 {
	return float64(clock-pl.start) / clocks.ZX81
}

// Rewind the recording. Playback will start again on the next read of the
// EAR socket.
func (pl *Player) Rewind() {
	pl.playing = false
}

// Finished returns true if the end of the recording has been reached.
func (pl *Player) Finished() bool {
	return pl.playing && pl.position(pl.clock) >= pl.pcm.Duration()
}

// EAR implements the ula.TapePlayer interface.
func (pl *Player) EAR(clock uint64) bool {
	if !pl.playing {
		pl.playing = true
		pl.start = clock
	}
	pl.clock = clock

	i := int(pl.position(clock) * pl.pcm.SampleRate)
	if i >= len(pl.pcm.Data) {
		return false
	}
	return pl.pcm.Data[i] > pl.threshold
}
