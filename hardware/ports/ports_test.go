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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/clocks"
	"github.com/jetsetilly/gopher81/hardware/instance"
	"github.com/jetsetilly/gopher81/hardware/ports"
	"github.com/jetsetilly/gopher81/test"
)

type device struct {
	value  uint8
	driven uint8
	writes []uint16
}

func (d *device) ReadPort(_ uint16) (uint8, uint8) {
	return d.value, d.driven
}

func (d *device) WritePort(port uint16, _ uint8) {
	d.writes = append(d.writes, port)
}

type readOnly struct{}

func (readOnly) ReadPort(_ uint16) (uint8, uint8) {
	return 0x00, 0x01
}

func newPorts(t *testing.T, floating uint8) *ports.Ports {
	t.Helper()
	var clk clocks.Clock
	env, err := instance.NewInstance(&clk, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, env.Prefs.FloatingBus.Set(floating))
	env.UpdateLive()
	return ports.NewPorts(env)
}

func TestFloatingBus(t *testing.T) {
	p := newPorts(t, 0xff)
	test.ExpectEquality(t, p.In(0x00fe), 0xff)

	p = newPorts(t, 0x5a)
	test.ExpectEquality(t, p.In(0x1234), 0x5a)

	// unclaimed writes are harmless
	p.Out(0x00fd, 0x00)
}

func TestAliasing(t *testing.T) {
	p := newPorts(t, 0xff)

	d := &device{value: 0x00, driven: 0x1f}
	test.DemandSuccess(t, p.RegisterHandler(ports.LineLow(0), d))

	// every port with A0 low reaches the device
	test.ExpectEquality(t, p.In(0xfefe), 0xe0)
	test.ExpectEquality(t, p.In(0x00fe), 0xe0)
	test.ExpectEquality(t, p.In(0x7f00), 0xe0)

	// and no port with A0 high
	test.ExpectEquality(t, p.In(0xfeff), 0xff)

	p.Out(0x00fe, 0x00)
	p.Out(0x00fd, 0x00)
	test.ExpectEquality(t, len(d.writes), 1)
	test.ExpectEquality(t, d.writes[0], 0x00fe)
}

func TestWiredAND(t *testing.T) {
	p := newPorts(t, 0x00)

	a := &device{value: 0xf0, driven: 0xff}
	b := &device{value: 0x3f, driven: 0x0f}
	test.DemandSuccess(t, p.RegisterHandler(ports.LineLow(0), a))
	test.DemandSuccess(t, p.RegisterHandler(ports.LineLow(1), b))

	// only a responds
	test.ExpectEquality(t, p.In(0x0002), 0xf0)

	// only b responds. undriven bits take the floating value
	test.ExpectEquality(t, p.In(0x0001), 0x0f)

	// both respond. low nibble is 0x0 & 0xf
	test.ExpectEquality(t, p.In(0x0000), 0xf0)

	// both receive the write
	p.Out(0x0000, 0x00)
	test.ExpectEquality(t, len(a.writes), 1)
	test.ExpectEquality(t, len(b.writes), 1)
}

func TestRegistration(t *testing.T) {
	p := newPorts(t, 0xff)

	err := p.RegisterHandler(ports.LineLow(0), struct{}{})
	test.ExpectEquality(t, curated.Is(err, ports.BadDevice), true)

	test.ExpectSuccess(t, p.RegisterHandler(ports.LineLow(0), readOnly{}))
	test.ExpectEquality(t, p.In(0x00fe), 0xfe)

	// read only devices ignore writes
	p.Out(0x00fe, 0x00)
}

func TestAnyPort(t *testing.T) {
	p := newPorts(t, 0xff)
	d := &device{value: 0x00, driven: 0x80}
	test.DemandSuccess(t, p.RegisterHandler(ports.AnyPort, d))

	test.ExpectEquality(t, p.In(0x0001), 0x7f)
	test.ExpectEquality(t, p.In(0xffff), 0x7f)
	p.Out(0x1234, 0x00)
	test.ExpectEquality(t, len(d.writes), 1)
}
