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

// Package ports implements the IO address space of the ZX81.
//
// The ZX81 has no port decoder as such. Devices watch individual address
// lines and respond whenever their line is low, so a device answers to every
// port value that has that line low. Any number of devices can respond to the
// same IN instruction.
//
// Each device drives only some of the data lines. A line that no device
// drives keeps the floating bus value. A line driven by more than one device
// is low if any of them pull it low (a wired AND).
package ports

import (
	"fmt"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/hardware/instance"
)

// Sentinal error returned by RegisterHandler().
const (
	BadDevice = "ports: device %T implements neither ports.Reader nor ports.Writer"
)

// Decoder returns true if the device responds to the port. The port is the
// full sixteen bit value on the address bus.
type Decoder func(port uint16) bool

// LineLow returns a Decoder that matches any port with the address line low.
func LineLow(line int) Decoder {
	mask := uint16(1) << line
	return func(port uint16) bool {
		return port&mask == 0
	}
}

// AnyPort is a Decoder that matches every port. Devices registered with
// AnyPort decode the address themselves.
func AnyPort(uint16) bool {
	return true
}

// Reader is implemented by devices that respond to IN instructions. The
// driven value has a bit set for every data line the device drives. Bits of
// value outside of driven are ignored.
type Reader interface {
	ReadPort(port uint16) (value uint8, driven uint8)
}

// Writer is implemented by devices that respond to OUT instructions.
type Writer interface {
	WritePort(port uint16, data uint8)
}

type handler struct {
	decode Decoder
	reader Reader
	writer Writer
}

// Ports is the IO address space. It implements the cpubus.IO interface.
type Ports struct {
	env      *instance.Instance
	handlers []handler
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(env *instance.Instance) *Ports {
	return &Ports{
		env: env,
	}
}

func (p *Ports) String() string {
	return fmt.Sprintf("%d port handlers", len(p.handlers))
}

// RegisterHandler adds a device to the IO address space. The device must
// implement Reader, Writer or both. Handlers are consulted in the order they
// were registered.
func (p *Ports) RegisterHandler(decode Decoder, device any) error {
	h := handler{decode: decode}
	h.reader, _ = device.(Reader)
	h.writer, _ = device.(Writer)
	if h.reader == nil && h.writer == nil {
		return curated.Errorf(BadDevice, device)
	}
	p.handlers = append(p.handlers, h)
	return nil
}

// In is an implementation of cpubus.IO.
func (p *Ports) In(port uint16) uint8 {
	acc := uint8(0xff)
	var driven uint8

	for _, h := range p.handlers {
		if h.reader == nil || !h.decode(port) {
			continue
		}
		v, mask := h.reader.ReadPort(port)
		acc &= v | ^mask
		driven |= mask
	}

	return (acc & driven) | (p.env.Live.FloatingBus &^ driven)
}

// Out is an implementation of cpubus.IO.
func (p *Ports) Out(port uint16, data uint8) {
	for _, h := range p.handlers {
		if h.writer == nil || !h.decode(port) {
			continue
		}
		h.writer.WritePort(port, data)
	}
}
