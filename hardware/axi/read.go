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

// ReadState is the state of the read channel.
type ReadState int

// List of valid ReadState values.
const (
	ReadIdle ReadState = iota
	DataReturn
)

func (s ReadState) String() string {
	switch s {
	case ReadIdle:
		return "idle"
	case DataReturn:
		return "data return"
	}
	return "unknown"
}

// ReadChannel is the read half of the bus. It must be created with
// NewReadChannel().
type ReadChannel struct {
	env  *environment.Environment
	port bus.ChannelBus

	state ReadState
	addr  uint8

	next struct {
		state ReadState
		addr  uint8
	}

	// number of completed transactions since reset
	transactions uint64
}

// NewReadChannel is the preferred method of initialisation for the
// ReadChannel type.
func NewReadChannel(env *environment.Environment, port bus.ChannelBus) *ReadChannel {
	rc := &ReadChannel{
		env:  env,
		port: port,
	}
	rc.Reset()
	return rc
}

// Reset the channel to the idle state. Any transaction in progress is lost.
func (rc *ReadChannel) Reset() {
	rc.state = ReadIdle
	rc.addr = 0
	rc.next.state = ReadIdle
	rc.next.addr = 0
	rc.transactions = 0
}

func (rc *ReadChannel) String() string {
	if rc.state == ReadIdle {
		return rc.state.String()
	}
	return fmt.Sprintf("%s (%s)", rc.state, addresses.Name(rc.addr))
}

// State returns the current state of the channel.
func (rc *ReadChannel) State() ReadState {
	return rc.state
}

// Transactions returns the number of completed transactions since reset.
func (rc *ReadChannel) Transactions() uint64 {
	return rc.transactions
}

// Evaluate the next state of the channel from the pins.
func (rc *ReadChannel) Evaluate(pins Pins) {
	rc.next.state = rc.state
	rc.next.addr = rc.addr

	switch rc.state {
	case ReadIdle:
		if pins.ARVALID {
			rc.next.addr = uint8(pins.ARADDR)
			rc.next.state = DataReturn
		}
	case DataReturn:
		if pins.RREADY {
			rc.next.state = ReadIdle
		}
	}
}

// Commit the state decided by the most recent call to Evaluate().
func (rc *ReadChannel) Commit() {
	if rc.state == ReadIdle && rc.next.state == DataReturn {
		if _, ok := rc.port.Read(rc.next.addr); !ok {
			logger.Logf(rc.env, "axi", "read of unmapped offset 0x%02x", rc.next.addr)
		}
	}

	if rc.state == DataReturn && rc.next.state == ReadIdle {
		rc.transactions++
	}

	rc.state = rc.next.state
	rc.addr = rc.next.addr
}

// Drive sets the peripheral's read channel signals in the pins. RDATA is
// decoded from the register file as it is now, so a requester that is slow
// to acknowledge will see any change made by the compute engine.
func (rc *ReadChannel) Drive(pins *Pins) {
	pins.ARREADY = rc.state == ReadIdle
	pins.RVALID = rc.state == DataReturn
	pins.RRESP = OKAY
	pins.RDATA = 0

	if rc.state == DataReturn {
		pins.RDATA = rc.decode()
	}
}

func (rc *ReadChannel) decode() uint32 {
	v, ok := rc.port.Read(rc.addr)
	if ok {
		return v
	}
	if rc.env.Prefs.Sentinel.Get().(bool) {
		return addresses.Sentinel
	}
	return 0
}
