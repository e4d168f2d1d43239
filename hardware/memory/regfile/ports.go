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
	"github.com/jetsetilly/regsim/hardware/memory/addresses"
	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
)

// BusPort is the bus side of the register file. It implements the
// bus.ChannelBus interface.
type BusPort struct {
	rf *RegisterFile
}

// Read implements the bus.ChannelBus interface.
func (p *BusPort) Read(offset uint8) (uint32, bool) {
	return p.rf.Snapshot().Read(offset)
}

// Write implements the bus.ChannelBus interface. Only the input bank and the
// control register are written to.
func (p *BusPort) Write(offset uint8, data uint32) bool {
	area, idx := memorymap.MapAddress(offset)
	switch area {
	case memorymap.Input:
		p.rf.input[idx] = data
	case memorymap.Control:
		p.rf.control = data
	default:
		return false
	}
	return true
}

// EnginePort is the compute engine side of the register file. It implements
// the bus.EngineBus interface.
type EnginePort struct {
	rf *RegisterFile
}

// Input implements the bus.EngineBus interface.
func (p *EnginePort) Input(idx int) uint32 {
	return p.rf.input[idx]
}

// Start implements the bus.EngineBus interface.
func (p *EnginePort) Start() bool {
	return p.rf.control&addresses.StartBit == addresses.StartBit
}

// SetOutput implements the bus.EngineBus interface.
func (p *EnginePort) SetOutput(idx int, data uint32) {
	p.rf.output[idx] = data
}

// SetDone implements the bus.EngineBus interface.
func (p *EnginePort) SetDone(done bool) {
	p.rf.done = done
}
