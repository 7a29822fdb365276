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

package television

import (
	"fmt"

	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/logger"
)

// Television receives pixels from the ULA and builds them into frames.
type Television struct {
	env *instance.Instance

	// pixel buffers in rotation. one is being drawn and the others belong to
	// the two most recently completed frames
	buffers [3][]uint8
	drawing int

	scanline int
	frameNum int

	// the most recently completed frame
	lastFrame Frame

	displayFile   DisplayFile
	frameTriggers []FrameTrigger
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision(env *instance.Instance) *Television {
	tv := &Television{
		env: env,
	}
	for i := range tv.buffers {
		tv.buffers[i] = make([]uint8, FrameWidth*FrameHeight)
	}
	tv.Reset()
	return tv
}

func (tv *Television) String() string {
	return fmt.Sprintf("FR=%04d SL=%03d", tv.frameNum, tv.scanline)
}

// Reset the television. The frame number returns to zero.
func (tv *Television) Reset() {
	for i := range tv.buffers {
		clear(tv.buffers[i])
	}
	tv.drawing = 0
	tv.scanline = 0
	tv.frameNum = 0
	tv.lastFrame = Frame{
		Width:  FrameWidth,
		Height: FrameHeight,
		Pixels: tv.buffers[len(tv.buffers)-1],
	}
}

// SetDisplayFile sets the source of the Text field of completed frames.
func (tv *Television) SetDisplayFile(df DisplayFile) {
	tv.displayFile = df
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	tv.frameTriggers = append(tv.frameTriggers, f)
}

// RemoveFrameTrigger removes a FrameTrigger previously added with
// AddFrameTrigger().
func (tv *Television) RemoveFrameTrigger(f FrameTrigger) {
	for i := range tv.frameTriggers {
		if tv.frameTriggers[i] == f {
			tv.frameTriggers = append(tv.frameTriggers[:i], tv.frameTriggers[i+1:]...)
			return
		}
	}
}

// NewScanline moves drawing to the start of the next scanline. Scanlines
// beyond the bottom of the frame are not drawn.
func (tv *Television) NewScanline() {
	tv.scanline++
}

// Scanline returns the scanline currently being drawn.
func (tv *Television) Scanline() int {
	return tv.scanline
}

// DrawPattern draws the eight bits of a character pattern, most significant
// bit first, starting at pixel x of the current scanline. A set bit is ink.
func (tv *Television) DrawPattern(x int, pattern uint8) {
	if tv.scanline >= FrameHeight || x >= FrameWidth {
		return
	}

	row := tv.buffers[tv.drawing][tv.scanline*FrameWidth : (tv.scanline+1)*FrameWidth]
	for b := 0; b < 8; b++ {
		px := x + b
		if px < 0 || px >= FrameWidth {
			continue
		}
		row[px] = (pattern >> (7 - b)) & 0x01
	}
}

// NewFrame completes the frame being drawn. FrameTriggers are notified with
// the completed frame and the first error returned by a trigger is returned.
//
// Drawing continues in the buffer of the frame completed two frames ago,
// which is cleared.
func (tv *Television) NewFrame() error {
	tv.frameNum++

	tv.lastFrame = Frame{
		Number: tv.frameNum,
		Width:  FrameWidth,
		Height: FrameHeight,
		Pixels: tv.buffers[tv.drawing],
	}
	if tv.displayFile != nil {
		tv.lastFrame.Text = tv.displayFile.DisplayFile()
	}

	if tv.scanline > FrameHeight {
		logger.Logf(tv.env, "television", "frame taller than %d scanlines", FrameHeight)
	}

	tv.drawing = (tv.drawing + 1) % len(tv.buffers)
	clear(tv.buffers[tv.drawing])
	tv.scanline = 0

	for _, f := range tv.frameTriggers {
		err := f.NewFrame(tv.lastFrame)
		if err != nil {
			return err
		}
	}

	return nil
}

// FrameNum returns the number of the most recently completed frame.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// LastFrame returns the most recently completed frame. The pixel buffer is
// shared with the television and is reused after two more frames complete.
func (tv *Television) LastFrame() Frame {
	return tv.lastFrame
}
