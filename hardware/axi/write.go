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

package axi

import (
	"fmt"

	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/hardware/memory/addresses"
	"github.com/jetsetilly/regsim/hardware/memory/bus"
	"github.com/jetsetilly/regsim/logger"
)

// WriteState is the state of the write channel.
type WriteState int

// List of valid WriteState values.
const (
	WriteIdle WriteState = iota
	AddressLatched
	ResponsePending
)

func (s WriteState) String() string {
	switch s {
	case WriteIdle:
		return "idle"
	case AddressLatched:
		return "address latched"
	case ResponsePending:
		return "response pending"
	}
	return "unknown"
}

// WriteChannel is the write half of the bus. It must be created with
// NewWriteChannel().
type WriteChannel struct {
	env  *environment.Environment
	port bus.ChannelBus

	state WriteState
	addr  uint8

	next struct {
		state WriteState
		addr  uint8

		// a write to be performed by Commit()
		write bool
		data  uint32
	}

	// number of completed transactions since reset
	transactions uint64
}

// NewWriteChannel is the preferred method of initialisation for the
// WriteChannel type.
func NewWriteChannel(env *environment.Environment, port bus.ChannelBus) *WriteChannel {
	wc := &WriteChannel{
		env:  env,
		port: port,
	}
	wc.Reset()
	return wc
}

// Reset the channel to the idle state. Any transaction in progress is lost.
func (wc *WriteChannel) Reset() {
	wc.state = WriteIdle
	wc.addr = 0
	wc.next.state = WriteIdle
	wc.next.addr = 0
	wc.next.write = false
	wc.transactions = 0
}

func (wc *WriteChannel) String() string {
	if wc.state == WriteIdle {
		return wc.state.String()
	}
	return fmt.Sprintf("%s (%s)", wc.state, addresses.Name(wc.addr))
}

// State returns the current state of the channel.
func (wc *WriteChannel) State() WriteState {
	return wc.state
}

// Transactions returns the number of completed transactions since reset.
func (wc *WriteChannel) Transactions() uint64 {
	return wc.transactions
}

// Evaluate the next state of the channel from the pins. The pins should be
// the same as those given to the most recent call to Drive(), with the
// requester's signals updated.
func (wc *WriteChannel) Evaluate(pins Pins) {
	wc.next.state = wc.state
	wc.next.addr = wc.addr
	wc.next.write = false

	switch wc.state {
	case WriteIdle:
		if pins.AWVALID {
			wc.next.addr = uint8(pins.AWADDR)
			wc.next.state = AddressLatched
		}
	case AddressLatched:
		if pins.WVALID {
			wc.next.write = true
			wc.next.data = pins.WDATA
			wc.next.state = ResponsePending
		}
	case ResponsePending:
		if pins.BREADY {
			wc.next.state = WriteIdle
		}
	}
}

// Commit the state decided by the most recent call to Evaluate(). Any
// register write happens here.
func (wc *WriteChannel) Commit() {
	if wc.next.write {
		if !wc.port.Write(wc.next.addr, wc.next.data) {
			logger.Logf(wc.env, "axi", "write of %08x to %s dropped", wc.next.data, addresses.Name(wc.next.addr))
		}
	}

	if wc.state == ResponsePending && wc.next.state == WriteIdle {
		wc.transactions++
	}

	wc.state = wc.next.state
	wc.addr = wc.next.addr
}

// Drive sets the peripheral's write channel signals in the pins.
func (wc *WriteChannel) Drive(pins *Pins) {
	pins.AWREADY = wc.state == WriteIdle
	pins.WREADY = wc.state == AddressLatched
	pins.BVALID = wc.state == ResponsePending
	pins.BRESP = OKAY
}
