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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
	"github.com/jetsetilly/regsim/test"
)

func TestMapAddress(t *testing.T) {
	for i := 0; i < memorymap.NumRegisters; i++ {
		a, idx := memorymap.MapAddress(uint8(i * 4))
		test.ExpectEquality(t, a, memorymap.Input)
		test.ExpectEquality(t, idx, i)

		a, idx = memorymap.MapAddress(uint8(0x20 + i*4))
		test.ExpectEquality(t, a, memorymap.Output)
		test.ExpectEquality(t, idx, i)
	}

	// low bits ignored inside a bank
	a, idx := memorymap.MapAddress(0x1f)
	test.ExpectEquality(t, a, memorymap.Input)
	test.ExpectEquality(t, idx, 7)
	a, idx = memorymap.MapAddress(0x23)
	test.ExpectEquality(t, a, memorymap.Output)
	test.ExpectEquality(t, idx, 0)

	a, _ = memorymap.MapAddress(0x40)
	test.ExpectEquality(t, a, memorymap.Control)
	a, _ = memorymap.MapAddress(0x44)
	test.ExpectEquality(t, a, memorymap.Status)

	// control and status are exact match
	for _, o := range []uint8{0x41, 0x42, 0x43, 0x45, 0x46, 0x47, 0x48, 0x50, 0xff} {
		a, _ = memorymap.MapAddress(o)
		test.ExpectEquality(t, a, memorymap.Unmapped, o)
	}
}

func TestOffset(t *testing.T) {
	o, ok := memorymap.Offset(memorymap.Output, 3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, o, 0x2c)

	_, ok = memorymap.Offset(memorymap.Input, 8)
	test.ExpectFailure(t, ok)

	_, ok = memorymap.Offset(memorymap.Unmapped, 0)
	test.ExpectFailure(t, ok)

	// every canonical offset decodes back to the same area and index
	for _, area := range []memorymap.Area{memorymap.Input, memorymap.Output, memorymap.Control, memorymap.Status} {
		for i := 0; i < memorymap.NumRegisters; i++ {
			o, ok := memorymap.Offset(area, i)
			test.DemandSuccess(t, ok)
			a, idx := memorymap.MapAddress(o)
			test.ExpectEquality(t, a, area)
			if area == memorymap.Input || area == memorymap.Output {
				test.ExpectEquality(t, idx, i)
			}
		}
	}
}
