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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the number of level changes collected before the digest is updated
const audioBufferLength = 1024

// each entry in the audio buffer is the number of cycles since the previous
// level change followed by the new level
const audioEntryLength = 9

// Audio is a chained SHA-1 of the MIC output of the ULA. It implements the
// ula.MICRecorder interface.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
	n      int

	clock uint64
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer: make([]byte, sha1.Size+audioBufferLength*audioEntryLength),
	}
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Level changes that have not been
// flushed are included in the hash but are not yet part of the chain.
func (dig *Audio) Hash() string {
	if dig.n == 0 {
		return fmt.Sprintf("%x", dig.digest)
	}
	copy(dig.buffer, dig.digest[:])
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:sha1.Size+dig.n*audioEntryLength]))
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.n = 0
	dig.clock = 0
}

// SetLevel implements the ula.MICRecorder interface.
func (dig *Audio) SetLevel(high bool, clock uint64) {
	i := sha1.Size + dig.n*audioEntryLength
	binary.LittleEndian.PutUint64(dig.buffer[i:], clock-dig.clock)
	if high {
		dig.buffer[i+8] = 1
	} else {
		dig.buffer[i+8] = 0
	}
	dig.clock = clock

	dig.n++
	if dig.n >= audioBufferLength {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.n = 0
}
