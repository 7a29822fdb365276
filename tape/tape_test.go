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

package tape_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware"
	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/memory/addresses"
	"github.com/jetsetilly/gopher81/tape"
	"github.com/jetsetilly/gopher81/test"
)

type quiet struct{}

func (quiet) AllowLogging() bool {
	return false
}

// newProgram creates a program of the minimum sensible size. E_LINE points to
// the end of the data
func newProgram(name string, fill uint8) tape.Program {
	data := make([]uint8, addresses.Program-addresses.ProgramImage+4)
	for i := range data {
		data[i] = fill + uint8(i)
	}
	eline := addresses.ProgramImage + uint16(len(data))
	i := addresses.E_LINE - addresses.ProgramImage
	data[i] = uint8(eline)
	data[i+1] = uint8(eline >> 8)
	return tape.Program{Name: name, Data: data}
}

func TestCharset(t *testing.T) {
	n := tape.EncodeName("Hello.P")
	test.ExpectEquality(t, len(n), 7)
	test.ExpectEquality(t, n[0], 38+7)
	test.ExpectEquality(t, n[5], 27)
	test.ExpectEquality(t, n[6], 0x80|(38+15))
	test.ExpectEquality(t, tape.DecodeName(n), "hello.p")

	test.ExpectEquality(t, tape.DecodeName(tape.EncodeName("(0-9)")), "(0-9)")
	test.ExpectEquality(t, tape.DecodeName([]uint8{0x00, 0x0b, 0x80 | 38}), "__a")

	// decoding stops at the end of the name
	test.ExpectEquality(t, tape.DecodeName([]uint8{38, 0x80 | 39, 40}), "ab")
	test.ExpectEquality(t, len(tape.EncodeName("")), 0)
}

func TestProgram(t *testing.T) {
	p := newProgram("test", 0)
	test.ExpectSuccess(t, p.Validate())

	short := tape.Program{Name: "short", Data: make([]uint8, 10)}
	test.ExpectEquality(t, curated.Is(short.Validate(), tape.BadProgram), true)

	bad := newProgram("bad", 0)
	bad.Data = bad.Data[:len(bad.Data)-1]
	test.ExpectEquality(t, curated.Is(bad.Validate(), tape.BadProgram), true)

	dir := t.TempDir()
	filename, err := p.Save(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, filename, filepath.Join(dir, "test.p"))

	l, err := tape.LoadProgram(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Name, "test")
	test.ExpectEquality(t, string(l.Data), string(p.Data))

	_, err = tape.LoadProgram(filepath.Join(dir, "missing.p"))
	test.ExpectEquality(t, curated.Is(err, tape.FileError), true)
}

func TestEncodeDecode(t *testing.T) {
	a := newProgram("first", 0)
	b := newProgram("second2", 0x80)

	pcm, err := tape.Encode(0, a, b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pcm.SampleRate, float64(tape.DefaultSampleRate))

	progs, err := tape.Decode(quiet{}, pcm)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(progs), 2)
	test.ExpectEquality(t, progs[0].Name, "first")
	test.ExpectEquality(t, string(progs[0].Data), string(a.Data))
	test.ExpectEquality(t, progs[1].Name, "second2")
	test.ExpectEquality(t, string(progs[1].Data), string(b.Data))

	// a lower sample rate is still good enough
	pcm, err = tape.Encode(22050, a)
	test.DemandSuccess(t, err)
	progs, err = tape.Decode(quiet{}, pcm)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(progs), 1)
	test.ExpectEquality(t, string(progs[0].Data), string(a.Data))

	// programs must have a name
	_, err = tape.Encode(0, newProgram("", 0))
	test.ExpectEquality(t, curated.Is(err, tape.BadProgram), true)

	// silence contains no programs
	_, err = tape.Decode(quiet{}, tape.PCM{SampleRate: 44100, Data: make([]float32, 44100)})
	test.ExpectEquality(t, curated.Is(err, tape.BadRecording), true)
}

func TestWAV(t *testing.T) {
	a := newProgram("wav", 0x40)
	pcm, err := tape.Encode(0, a)
	test.DemandSuccess(t, err)

	filename := filepath.Join(t.TempDir(), "wav.wav")
	test.DemandSuccess(t, tape.WriteWAV(filename, pcm))
	test.ExpectEquality(t, tape.IsRecording(filename), true)
	test.ExpectEquality(t, tape.IsRecording("wav.p"), false)

	l, err := tape.ReadPCM(quiet{}, filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.SampleRate, pcm.SampleRate)
	test.ExpectEquality(t, len(l.Data), len(pcm.Data))

	progs, err := tape.Decode(quiet{}, l)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(progs), 1)
	test.ExpectEquality(t, progs[0].Name, "wav")
	test.ExpectEquality(t, string(progs[0].Data), string(a.Data))
}

func TestPlayer(t *testing.T) {
	pcm, err := tape.Encode(0, newProgram("player", 0))
	test.DemandSuccess(t, err)

	at := func(seconds float64) uint64 {
		return uint64(seconds * clocks.ZX81)
	}

	pl := tape.NewPlayer(pcm)
	test.ExpectEquality(t, pl.Finished(), false)

	// the first read starts the tape. the recording begins with silence
	const start = 1000
	test.ExpectEquality(t, pl.EAR(start), false)
	test.ExpectEquality(t, pl.EAR(start+at(0.5)), false)

	// the first pulse comes straight after the leader
	test.ExpectEquality(t, pl.EAR(start+at(1.0001)), true)
	test.ExpectEquality(t, pl.EAR(start+at(1.0002)), false)
	test.ExpectEquality(t, pl.Finished(), false)

	test.ExpectEquality(t, pl.EAR(start+at(pcm.Duration()+1)), false)
	test.ExpectEquality(t, pl.Finished(), true)

	// rewinding starts the tape again at the next read
	pl.Rewind()
	test.ExpectEquality(t, pl.EAR(50000000), false)
	test.ExpectEquality(t, pl.EAR(50000000+at(1.0001)), true)
}

// deckROM calls the LOAD routine with DE pointing to a name at 5000h
func deckROM(carry bool) []uint8 {
	flag := uint8(0xb7) // OR A
	if carry {
		flag = 0x37 // SCF
	}
	return []uint8{
		0x31, 0xf0, 0x7f, // LD SP,7FF0h
		0x11, 0x00, 0x50, // LD DE,5000h
		flag,
		0xcd, 0x43, 0x03, // CALL 0343h
		0x76, // HALT
	}
}

func newDeckMachine(t *testing.T, dir string, name string, carry bool) (*hardware.Machine, *tape.Deck) {
	t.Helper()

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	m.Env.Quiet = true
	test.DemandSuccess(t, m.LoadROM(deckROM(carry)))
	test.DemandSuccess(t, m.LoadImage(tape.EncodeName(name), 0x5000))

	dk := tape.NewDeck(m, dir)
	for range 4 {
		test.DemandSuccess(t, m.Step())
	}

	return m, dk
}

func TestDeck(t *testing.T) {
	dir := t.TempDir()

	p := newProgram("hello", 0x10)
	_, err := p.Save(dir)
	test.DemandSuccess(t, err)

	pcm, err := tape.Encode(0, newProgram("other", 0x20), newProgram("game", 0x30))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tape.WriteWAV(filepath.Join(dir, "game.wav"), pcm))

	// load from .p file. the trap returns to the instruction after the CALL
	m, dk := newDeckMachine(t, dir, "hello", false)
	test.ExpectEquality(t, m.CPU.PC, 0x000a)
	test.ExpectEquality(t, m.CPU.SP, 0x7ff0)
	test.ExpectEquality(t, dk.Loaded.Name, "hello")
	for i, v := range p.Data {
		test.ExpectEquality(t, m.Mem.Peek(addresses.ProgramImage+uint16(i)), v, i)
	}

	// load from recording. the program with the requested name is chosen
	m, dk = newDeckMachine(t, dir, "game", false)
	test.ExpectEquality(t, m.CPU.PC, 0x000a)
	test.ExpectEquality(t, dk.Loaded.Name, "game")
	test.ExpectEquality(t, m.Mem.Peek(addresses.ProgramImage), 0x30)

	// program that does not exist
	m, _ = newDeckMachine(t, dir, "missing", false)
	test.ExpectEquality(t, m.CPU.PC, addresses.ReportNoName)

	// carry flag means there was no name
	m, dk = newDeckMachine(t, dir, "hello", true)
	test.ExpectEquality(t, m.CPU.PC, addresses.ReportNoName)
	test.ExpectEquality(t, dk.Loaded.Name, "")

	_, err = dk.Find("missing")
	test.ExpectEquality(t, curated.Is(err, tape.ProgramMissing), true)

	// ejecting the deck removes the trap
	dk.Eject()
	test.DemandSuccess(t, m.Reset())
	for range 4 {
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, m.CPU.PC, 0x0343)
}

func TestProgramFromMemory(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	m.Env.Quiet = true

	p := newProgram("mem", 0x55)
	test.DemandSuccess(t, m.LoadImage(p.Data, addresses.ProgramImage))

	c, err := tape.ProgramFromMemory(m.Mem, "copy")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Name, "copy")
	test.ExpectEquality(t, string(c.Data), string(p.Data))

	test.DemandSuccess(t, m.Reset())
	_, err = tape.ProgramFromMemory(m.Mem, "empty")
	test.ExpectEquality(t, curated.Is(err, tape.BadProgram), true)
}
