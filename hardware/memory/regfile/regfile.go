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

package regfile

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/hardware/memory/addresses"
	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
)

// Sentinel errors.
const (
	PortClaimed = "regfile: %s port already claimed"
	PokeRefused = "regfile: cannot poke %s: owned by compute engine"
	Unmapped    = "regfile: unmapped offset (0x%02x)"
)

// Registers is a copy of the contents of the register file.
type Registers struct {
	Input   [memorymap.NumRegisters]uint32
	Output  [memorymap.NumRegisters]uint32
	Control uint32
	Status  uint32
}

// Start returns true if the start bit of the control register is set.
func (r Registers) Start() bool {
	return r.Control&addresses.StartBit == addresses.StartBit
}

// Done returns true if the done bit of the status register is set.
func (r Registers) Done() bool {
	return r.Status&addresses.DoneBit == addresses.DoneBit
}

// Read returns the value of the register at the offset. The boolean return
// value is false if the offset is unmapped.
func (r Registers) Read(offset uint8) (uint32, bool) {
	area, idx := memorymap.MapAddress(offset)
	switch area {
	case memorymap.Input:
		return r.Input[idx], true
	case memorymap.Output:
		return r.Output[idx], true
	case memorymap.Control:
		return r.Control, true
	case memorymap.Status:
		return r.Status, true
	}
	return 0, false
}

func (r Registers) String() string {
	s := strings.Builder{}
	for i := 0; i < memorymap.NumRegisters; i++ {
		s.WriteString(fmt.Sprintf("in%d=%08x out%d=%08x\n", i, r.Input[i], i, r.Output[i]))
	}
	s.WriteString(fmt.Sprintf("control=%08x status=%08x", r.Control, r.Status))
	return s.String()
}

// RegisterFile is the bank of 32-bit registers. It must be created with
// NewRegisterFile().
type RegisterFile struct {
	input   [memorymap.NumRegisters]uint32
	output  [memorymap.NumRegisters]uint32
	control uint32

	// bit 0 of the status register mirrors the done flag. the other bits are
	// always zero so we don't need to store the full register
	done bool

	busPort    *BusPort
	enginePort *EnginePort
}

// NewRegisterFile is the preferred method of initialisation for the
// RegisterFile type. All registers are zero.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// ClaimBusPort returns the port through which the bus channels access the
// register file. The port can only be claimed once.
func (rf *RegisterFile) ClaimBusPort() (*BusPort, error) {
	if rf.busPort != nil {
		return nil, curated.Errorf(PortClaimed, "bus")
	}
	rf.busPort = &BusPort{rf: rf}
	return rf.busPort, nil
}

// ClaimEnginePort returns the port through which the compute engine accesses
// the register file. The port can only be claimed once.
func (rf *RegisterFile) ClaimEnginePort() (*EnginePort, error) {
	if rf.enginePort != nil {
		return nil, curated.Errorf(PortClaimed, "engine")
	}
	rf.enginePort = &EnginePort{rf: rf}
	return rf.enginePort, nil
}

// Reset sets every register to zero. Claimed ports remain claimed.
func (rf *RegisterFile) Reset() {
	rf.input = [memorymap.NumRegisters]uint32{}
	rf.output = [memorymap.NumRegisters]uint32{}
	rf.control = 0
	rf.done = false
}

func (rf *RegisterFile) status() uint32 {
	if rf.done {
		return addresses.DoneBit
	}
	return 0
}

// Snapshot returns a copy of the current register values.
func (rf *RegisterFile) Snapshot() Registers {
	return Registers{
		Input:   rf.input,
		Output:  rf.output,
		Control: rf.control,
		Status:  rf.status(),
	}
}

func (rf *RegisterFile) String() string {
	return rf.Snapshot().String()
}

// Peek implements the bus.DebuggerBus interface.
func (rf *RegisterFile) Peek(offset uint8) (uint32, error) {
	v, ok := rf.Snapshot().Read(offset)
	if !ok {
		return 0, curated.Errorf(Unmapped, offset)
	}
	return v, nil
}

// Poke implements the bus.DebuggerBus interface. Engine owned registers
// cannot be poked.
func (rf *RegisterFile) Poke(offset uint8, value uint32) error {
	area, idx := memorymap.MapAddress(offset)
	switch area {
	case memorymap.Input:
		rf.input[idx] = value
	case memorymap.Control:
		rf.control = value
	case memorymap.Output, memorymap.Status:
		return curated.Errorf(PokeRefused, addresses.Name(offset))
	default:
		return curated.Errorf(Unmapped, offset)
	}
	return nil
}
