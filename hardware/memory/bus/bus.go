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

package bus

// ChannelBus defines the operations available to the write and read channel
// state machines. Only the input bank and the control register can be
// written to. Every register can be read.
type ChannelBus interface {
	// Read returns the value of the register at the offset. The boolean
	// return value is false if the offset is unmapped
	Read(offset uint8) (uint32, bool)

	// Write the value to the register at the offset. The boolean return value
	// is false if the register is not writeable from the bus, in which case
	// the write has been dropped
	Write(offset uint8, data uint32) bool
}

// EngineBus defines the operations available to the compute engine. The
// engine reads the input bank and the start bit and writes the output bank
// and the done bit.
type EngineBus interface {
	Input(idx int) uint32
	Start() bool
	SetOutput(idx int, data uint32)
	SetDone(done bool)
}

// DebuggerBus defines the meta-operations for all memory areas. Think of
// these functions as "debugging" functions, that is operations outside of
// the normal operation of the peripheral.
type DebuggerBus interface {
	Peek(offset uint8) (uint32, error)
	Poke(offset uint8, value uint32) error
}
