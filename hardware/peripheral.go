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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/hardware/axi"
	"github.com/jetsetilly/regsim/hardware/compute"
	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
	"github.com/jetsetilly/regsim/hardware/memory/regfile"
	"github.com/jetsetilly/regsim/logger"
)

// Peripheral is the add-one peripheral and its bus interface.
type Peripheral struct {
	Env *environment.Environment

	// the signals between the requester and the peripheral. the requester
	// signals should be set before calling Step()
	Pins axi.Pins

	Mem    *regfile.RegisterFile
	Write  *axi.WriteChannel
	Read   *axi.ReadChannel
	Engine *compute.Engine

	// number of ticks since reset
	ticks uint64
}

// NewPeripheral creates a new peripheral and everything associated with it.
func NewPeripheral(env *environment.Environment) (*Peripheral, error) {
	p := &Peripheral{
		Env: env,
		Mem: regfile.NewRegisterFile(),
	}

	busPort, err := p.Mem.ClaimBusPort()
	if err != nil {
		return nil, err
	}

	enginePort, err := p.Mem.ClaimEnginePort()
	if err != nil {
		return nil, err
	}

	// both channels share the bus port. they never write in the same tick
	// because only the write channel writes
	p.Write = axi.NewWriteChannel(env, busPort)
	p.Read = axi.NewReadChannel(env, busPort)
	p.Engine = compute.NewEngine(env, enginePort)

	p.Reset()

	return p, nil
}

// Reset returns every state machine to idle and zeroes the register file.
// The requester signals in Pins are also cleared.
func (p *Peripheral) Reset() {
	p.Mem.Reset()
	p.Write.Reset()
	p.Read.Reset()
	p.Engine.Reset()
	p.Pins = axi.Pins{}
	p.drive()
	p.ticks = 0
	logger.Log(p.Env, "peripheral", "reset")
}

// Ticks returns the number of ticks since reset.
func (p *Peripheral) Ticks() uint64 {
	return p.ticks
}

// Outputs returns the current value of the output bank.
func (p *Peripheral) Outputs() [memorymap.NumRegisters]uint32 {
	return p.Mem.Snapshot().Output
}

// drive the peripheral's signals in Pins from the current state.
func (p *Peripheral) drive() {
	p.Write.Drive(&p.Pins)
	p.Read.Drive(&p.Pins)
}

func (p *Peripheral) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("tick %d\n", p.ticks))
	s.WriteString(fmt.Sprintf("write: %s\n", p.Write))
	s.WriteString(fmt.Sprintf("read: %s\n", p.Read))
	s.WriteString(fmt.Sprintf("engine: %s\n", p.Engine))
	s.WriteString(p.Mem.String())
	return s.String()
}
