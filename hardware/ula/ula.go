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

package ula

import (
	"fmt"

	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/cpu"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/logger"
)

// CPU is the part of the CPU the ULA needs. It is implemented by cpu.CPU.
type CPU interface {
	Now() uint64
	RequestInterrupt(cpu.Interrupt)
	ClearInterrupt(cpu.Interrupt)
}

// TapePlayer implementations supply the signal on the EAR socket.
type TapePlayer interface {
	// EAR returns the level of the signal at the cycle clock
	EAR(clock uint64) bool
}

// MICRecorder implementations receive the signal on the MIC socket. The level
// is low while vertical sync is on.
type MICRecorder interface {
	SetLevel(high bool, clock uint64)
}

// ULA implements the video and timing logic of the ZX81. It implements the
// cpu.Observer interface and the ports.Reader and ports.Writer interfaces.
type ULA struct {
	env *instance.Instance
	mc  CPU
	mem cpubus.Peeker
	tv  *television.Television

	tape TapePlayer
	mic  MICRecorder

	// the cycle clock at the start of the current line
	lineStart uint64

	// the line counter selects the row of the character pattern. it is only
	// three bits wide
	lcntr uint8

	nmiGen bool
	vsync  bool

	// number of HSYNC pulses since the start of the frame
	hsyncs int

	// the frame is not drawn after the frame completion has returned an
	// error. the error is returned by the next call to Err()
	err error
}

// NewULA is the preferred method of initialisation for the ULA type.
func NewULA(env *instance.Instance, mc CPU, mem cpubus.Peeker, tv *television.Television) *ULA {
	ula := &ULA{
		env: env,
		mc:  mc,
		mem: mem,
		tv:  tv,
	}
	ula.Reset()
	return ula
}

func (ula *ULA) String() string {
	return fmt.Sprintf("LCNTR=%d NMI=%v VSYNC=%v HS=%d", ula.lcntr, ula.nmiGen, ula.vsync, ula.hsyncs)
}

// Reset the ULA. The line starts at the current cycle clock.
func (ula *ULA) Reset() {
	ula.lineStart = ula.mc.Now()
	ula.lcntr = 0
	ula.nmiGen = false
	ula.vsync = false
	ula.hsyncs = 0
	ula.err = nil
}

// AttachTape connects a player to the EAR socket. A nil value disconnects the
// current player.
func (ula *ULA) AttachTape(tape TapePlayer) {
	ula.tape = tape
}

// AttachMIC connects a recorder to the MIC socket. A nil value disconnects the
// current recorder.
func (ula *ULA) AttachMIC(mic MICRecorder) {
	ula.mic = mic
}

// NMIGenerator returns true if the NMI generator is on.
func (ula *ULA) NMIGenerator() bool {
	return ula.nmiGen
}

// VSync returns true if vertical sync is on.
func (ula *ULA) VSync() bool {
	return ula.vsync
}

// LineCounter returns the value of the three bit line counter.
func (ula *ULA) LineCounter() uint8 {
	return ula.lcntr
}

// Err returns, and clears, the error from the most recent frame completion.
func (ula *ULA) Err() error {
	err := ula.err
	ula.err = nil
	return err
}

// Advance the ULA to the cycle clock, generating every HSYNC pulse that has
// fallen due.
func (ula *ULA) Advance(clock uint64) {
	for clock >= ula.lineStart+clocks.Scanline {
		ula.lineStart += clocks.Scanline
		ula.hsync()
	}
}

func (ula *ULA) hsync() {
	ula.hsyncs++
	ula.tv.NewScanline()

	// the line counter is held at zero during vertical sync
	if !ula.vsync {
		ula.lcntr = (ula.lcntr + 1) & 0x07
	}

	if ula.nmiGen {
		ula.mc.RequestInterrupt(cpu.NMI)
	}
}

// realign the HSYNC counter to the cycle clock
func (ula *ULA) realign(clock uint64) {
	ula.Advance(clock)
	ula.lineStart = clock
}

// Fetch implements the cpu.Observer interface.
func (ula *ULA) Fetch(f cpu.FetchCycle) uint8 {
	ula.Advance(f.Clock)

	// INT is wired to address line A6 during the refresh part of the cycle
	if f.Refresh&0x40 == 0 {
		ula.mc.RequestInterrupt(cpu.Maskable)
	} else {
		ula.mc.ClearInterrupt(cpu.Maskable)
	}

	if f.Address&0x8000 == 0 || f.Data&0x40 != 0 || f.Halted {
		return f.Data
	}

	i := uint16(f.Refresh>>8) & 0xfe
	pattern := ula.mem.Peek(i<<8 | uint16(f.Data&0x3f)<<3 | uint16(ula.lcntr))
	if f.Data&0x80 != 0 {
		pattern = ^pattern
	}

	x := (int(f.Clock) - int(ula.lineStart)) * clocks.PixelsPerCycle
	ula.tv.DrawPattern(x, pattern)

	return 0x00
}

// Acknowledge implements the cpu.Observer interface.
func (ula *ULA) Acknowledge(kind cpu.Interrupt, clock uint64) {
	if kind == cpu.Maskable {
		ula.realign(clock)
	}
}

// ReadPort implements the ports.Reader interface. The ULA responds to ports
// with A0 low.
func (ula *ULA) ReadPort(port uint16) (uint8, uint8) {
	if port&0x01 != 0 {
		return 0, 0
	}

	clock := ula.mc.Now()
	ula.Advance(clock)

	if !ula.nmiGen && !ula.vsync {
		ula.startVSync(clock)
	}

	// the line counter is held at zero for the whole of VSYNC. this is
	// also true when a read occurs with VSYNC already on
	if ula.vsync {
		ula.lcntr = 0
	}

	if ula.tape != nil {
		if ula.tape.EAR(clock) {
			return 0x80, 0x80
		}
		return 0x00, 0x80
	}

	return 0, 0
}

func (ula *ULA) startVSync(clock uint64) {
	ula.vsync = true
	ula.lcntr = 0
	if ula.mic != nil {
		ula.mic.SetLevel(false, clock)
	}

	err := ula.tv.NewFrame()
	if err != nil && ula.err == nil {
		ula.err = err
	}
	ula.hsyncs = 0
}

// WritePort implements the ports.Writer interface. Every write ends vertical
// sync. A write to a port with A0 low turns the NMI generator on and a write
// with A1 low turns it off.
func (ula *ULA) WritePort(port uint16, _ uint8) {
	clock := ula.mc.Now()
	ula.realign(clock)

	if ula.vsync {
		ula.vsync = false
		if ula.mic != nil {
			ula.mic.SetLevel(true, clock)
		}
	}
	ula.lcntr = 0

	switch {
	case port&0x01 == 0 && port&0x02 == 0:
		logger.Logf(ula.env, "ula", "write to port %#04x has both A0 and A1 low", port)
	case port&0x01 == 0:
		ula.nmiGen = true
	case port&0x02 == 0:
		ula.nmiGen = false
	}
}
