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

// Step advances the peripheral by one tick.
func (p *Peripheral) Step() {
	// every component sees the same state of the peripheral
	regs := p.Mem.Snapshot()
	pins := p.Pins

	p.Write.Evaluate(pins)
	p.Read.Evaluate(pins)
	p.Engine.Evaluate(regs)

	// the engine must commit after the write channel
	p.Write.Commit()
	p.Read.Commit()
	p.Engine.Commit()

	p.drive()
	p.ticks++
}
