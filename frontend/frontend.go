// This file is part of Regsim.
//
// Regsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regsim.  If not, see <https://www.gnu.org/licenses/>.

package frontend

import (
	"fmt"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/hardware"
)

// Sentinel errors.
const (
	TransactionTimeout = "frontend: %s timeout after %d ticks"
)

// Stats are the running totals for a FrontEnd.
type Stats struct {
	Reads    uint64
	Writes   uint64
	Timeouts uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("reads=%d writes=%d timeouts=%d", s.Reads, s.Writes, s.Timeouts)
}

// FrontEnd issues transactions to a peripheral. It must be created with
// NewFrontEnd().
type FrontEnd struct {
	p *hardware.Peripheral

	// number of ticks to wait before acknowledging a response
	AckDelay int

	// ticks consumed by the front-end
	ticks uint64

	stats Stats
}

// NewFrontEnd is the preferred method of initialisation for the FrontEnd
// type.
func NewFrontEnd(p *hardware.Peripheral) *FrontEnd {
	return &FrontEnd{p: p}
}

// Peripheral returns the peripheral being driven.
func (fe *FrontEnd) Peripheral() *hardware.Peripheral {
	return fe.p
}

// Ticks returns the number of ticks consumed by the front-end.
func (fe *FrontEnd) Ticks() uint64 {
	return fe.ticks
}

// Stats returns the running totals.
func (fe *FrontEnd) Stats() Stats {
	return fe.stats
}

func (fe *FrontEnd) step() {
	fe.p.Step()
	fe.ticks++
}

// Tick the peripheral without starting a transaction.
func (fe *FrontEnd) Tick(n int) {
	for i := 0; i < n; i++ {
		fe.step()
	}
}

// wait steps the peripheral until the condition is true. the condition is
// checked before each step.
func (fe *FrontEnd) wait(phase string, cond func() bool) error {
	timeout := fe.p.Env.Prefs.Timeout.Get().(int)
	for n := 0; !cond(); n++ {
		if n >= timeout {
			fe.stats.Timeouts++
			return curated.Errorf(TransactionTimeout, phase, n)
		}
		fe.step()
	}
	return nil
}

// Poke writes the value to the register at offset.
func (fe *FrontEnd) Poke(offset uint8, value uint32) error {
	pins := &fe.p.Pins

	pins.AWVALID = true
	pins.AWADDR = uint32(offset)
	err := fe.wait("write address", func() bool { return pins.AWREADY })
	if err != nil {
		pins.AWVALID = false
		return err
	}
	fe.step()
	pins.AWVALID = false

	pins.WVALID = true
	pins.WDATA = value
	err = fe.wait("write data", func() bool { return pins.WREADY })
	if err != nil {
		pins.WVALID = false
		return err
	}
	fe.step()
	pins.WVALID = false

	err = fe.wait("write response", func() bool { return pins.BVALID })
	if err != nil {
		return err
	}
	fe.Tick(fe.AckDelay)
	pins.BREADY = true
	fe.step()
	pins.BREADY = false

	fe.stats.Writes++

	return nil
}

// Peek reads the register at offset. The value returned is the value
// presented by the peripheral at the moment the front-end acknowledges it.
func (fe *FrontEnd) Peek(offset uint8) (uint32, error) {
	pins := &fe.p.Pins

	pins.ARVALID = true
	pins.ARADDR = uint32(offset)
	err := fe.wait("read address", func() bool { return pins.ARREADY })
	if err != nil {
		pins.ARVALID = false
		return 0, err
	}
	fe.step()
	pins.ARVALID = false

	err = fe.wait("read data", func() bool { return pins.RVALID })
	if err != nil {
		return 0, err
	}
	fe.Tick(fe.AckDelay)
	v := pins.RDATA
	pins.RREADY = true
	fe.step()
	pins.RREADY = false

	fe.stats.Reads++

	return v, nil
}
