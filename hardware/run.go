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

package hardware

import (
	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/govern"
	"github.com/jetsetilly/gopher81/hardware/television"
)

// RunFrame steps the machine until the ULA completes a frame. The completed
// frame is returned and its pixels are unchanged by the next call to
// RunFrame().
//
// If no frame is completed within the number of cycles given by the stall
// budget preference then a StalledFrame error is returned. The machine is left
// in the state it was in when the budget ran out and RunFrame() can be called
// again.
func (m *Machine) RunFrame() (television.Frame, error) {
	if m.fault != nil {
		return television.Frame{}, m.fault
	}

	frameNum := m.TV.FrameNum()
	budget := m.Env.Live.StallBudget
	start := m.Clock.Now()

	for m.TV.FrameNum() == frameNum {
		if m.Clock.Now()-start >= budget {
			return television.Frame{}, curated.Errorf(StalledFrame, budget)
		}

		err := m.Step()
		if err != nil {
			return television.Frame{}, err
		}
	}

	return m.TV.LastFrame(), nil
}

// Run sets the emulation running, one frame at a time, until the continue
// check returns govern.Ending. The continue check is called between frames
// and a nil value means run forever.
//
// A Paused state causes the continue check to be called again without
// running a frame. It is up to the continue check to wait on whatever
// resumes the emulation.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err = m.RunFrame()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames. The
// continue check is called after each frame with the number of the frame just
// completed and can end the run early. Useful for tests and for headless runs.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	for range numFrames {
		frame, err := m.RunFrame()
		if err != nil {
			return err
		}

		state, err := continueCheck(frame.Number)
		if err != nil {
			return err
		}
		if state == govern.Ending {
			return nil
		}
	}

	return nil
}
