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
	"fmt"

	"github.com/jetsetilly/gopher81/hardware/television"
)

// Video is a chained SHA-1 of the pixels of every frame. It implements the
// television.FrameTrigger interface.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// Video instance should be added to the machine with AddFrameTrigger().
func NewVideo() *Video {
	return &Video{
		// the head of the pixel buffer holds the digest of the previous
		// frame
		pixels: make([]byte, sha1.Size+television.FrameWidth*television.FrameHeight),
	}
}

func (dig *Video) String() string {
	return fmt.Sprintf("%s (frame %d)", dig.Hash(), dig.frameNum)
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// Frames returns the number of the most recent frame included in the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// NewFrame implements the television.FrameTrigger interface.
func (dig *Video) NewFrame(frame television.Frame) error {
	copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[sha1.Size:], frame.Pixels)
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frame.Number
	return nil
}
