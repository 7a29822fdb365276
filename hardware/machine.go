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
	"fmt"
	"os"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/cpu"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/keyboard"
	"github.com/jetsetilly/gopher81/hardware/memory"
	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
	"github.com/jetsetilly/gopher81/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher81/hardware/ports"
	"github.com/jetsetilly/gopher81/hardware/preferences"
	"github.com/jetsetilly/gopher81/hardware/television"
	"github.com/jetsetilly/gopher81/hardware/ula"
	"github.com/jetsetilly/gopher81/logger"
)

// Machine is the ZX81. Sub-systems are exposed for the benefit of tests and
// tools and should otherwise be reached through the Machine's functions.
type Machine struct {
	Env   *instance.Instance
	Clock *clocks.Clock

	CPU      *cpu.CPU
	Mem      *memory.Memory
	Ports    *ports.Ports
	Keyboard *keyboard.Keyboard
	ULA      *ula.ULA

	// the television is part of the machine because the ULA draws directly
	// into it
	TV *television.Television

	// functions to run when the PC reaches an address
	traps map[uint16]func() error

	// the most recent invariant violation. the machine will not run while
	// this is set
	fault error
}

// NewMachine creates a new ZX81 with the ROM area empty. The prefs argument
// can be nil, in which case a new in-memory set of preferences is used.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	m := &Machine{
		Clock: &clocks.Clock{},
		traps: make(map[uint16]func() error),
	}

	var err error

	m.Env, err = instance.NewInstance(m.Clock, prefs)
	if err != nil {
		return nil, curated.Errorf(ConfigurationError, err)
	}

	m.Mem, err = memory.NewMemory(m.Env)
	if err != nil {
		return nil, curated.Errorf(ConfigurationError, err)
	}

	m.Ports = ports.NewPorts(m.Env)
	m.CPU = cpu.NewCPU(m.Env, m.Mem, m.Ports, m.Clock)
	m.TV = television.NewTelevision(m.Env)
	m.TV.SetDisplayFile(m.Mem)
	m.ULA = ula.NewULA(m.Env, m.CPU, m.Mem, m.TV)
	m.CPU.AttachObserver(m.ULA)
	m.Keyboard = keyboard.NewKeyboard()

	// the keyboard and the ULA share the A0 line for reads. the keyboard
	// drives the low five bits and the ULA drives bit 7 when a tape is
	// attached. the ULA decodes the port itself because writes respond to
	// both A0 and A1
	err = m.Ports.RegisterHandler(ports.LineLow(0), m.Keyboard)
	if err != nil {
		return nil, curated.Errorf(ConfigurationError, err)
	}
	err = m.Ports.RegisterHandler(ports.AnyPort, m.ULA)
	if err != nil {
		return nil, curated.Errorf(ConfigurationError, err)
	}

	err = m.Reset()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s\n%s %s", m.CPU, m.ULA, m.TV)
}

// Reset the machine. Registers return to their post-reset state and RAM is
// treated according to the RAM reset preference. ROM is not touched.
//
// Preferences are reread and a change to the RAM size takes effect. Any
// invariant violation is forgotten.
func (m *Machine) Reset() error {
	m.Env.UpdateLive()

	err := m.Mem.Reset()
	if err != nil {
		return curated.Errorf(ConfigurationError, err)
	}

	m.CPU.Reset()
	m.ULA.Reset()
	m.TV.Reset()
	m.fault = nil

	logger.Log(m.Env, "machine", "reset")

	return nil
}

// LoadImage copies the data into memory at the address. Write protection does
// not apply. The image must lie entirely within the ROM or entirely within
// the RAM.
func (m *Machine) LoadImage(data []uint8, address uint16) error {
	err := m.Mem.LoadImage(data, address)
	if err != nil {
		return curated.Errorf(ConfigurationError, err)
	}
	logger.Logf(m.Env, "machine", "loaded %d bytes at %#04x", len(data), address)
	return nil
}

// LoadROM loads data at the start of the ROM area. A ROM smaller than the ROM
// area is allowed.
func (m *Machine) LoadROM(data []uint8) error {
	if len(data) > memorymap.ROMSize {
		return curated.Errorf(ConfigurationError, fmt.Sprintf("ROM image is %d bytes (maximum is %d)", len(data), memorymap.ROMSize))
	}
	return m.LoadImage(data, memorymap.OriginROM)
}

// LoadROMFile loads a ZX81 ROM from a file. Unlike LoadROM() the file must
// fill the ROM area exactly.
func (m *Machine) LoadROMFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ConfigurationError, err)
	}
	if len(data) != memorymap.ROMSize {
		return curated.Errorf(ConfigurationError, fmt.Sprintf("%s is not a ZX81 ROM (%d bytes)", filename, len(data)))
	}
	return m.LoadROM(data)
}

// SetKeyState presses or releases a key. Safe to call from any goroutine.
func (m *Machine) SetKeyState(key keyboard.Key, pressed bool) error {
	return m.Keyboard.SetKeyState(key, pressed)
}

// AttachTape connects a player to the EAR socket. A nil value disconnects the
// current player.
func (m *Machine) AttachTape(tape ula.TapePlayer) {
	m.ULA.AttachTape(tape)
}

// AttachMIC connects a recorder to the MIC socket. A nil value disconnects the
// current recorder.
func (m *Machine) AttachMIC(mic ula.MICRecorder) {
	m.ULA.AttachMIC(mic)
}

// AddFrameTrigger registers a FrameTrigger with the television.
func (m *Machine) AddFrameTrigger(f television.FrameTrigger) {
	m.TV.AddFrameTrigger(f)
}

// DisplayFile returns the characters of the display file as they are now. See
// also the Text field of the Frame type, which is the display file at the
// moment the frame was completed.
func (m *Machine) DisplayFile() [addresses.DisplayRows][addresses.DisplayColumns]uint8 {
	return m.Mem.DisplayFile()
}
