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

package memorymap

// Area represents the different areas of the register map.
type Area int

func (a Area) String() string {
	switch a {
	case Input:
		return "input"
	case Output:
		return "output"
	case Control:
		return "control"
	case Status:
		return "status"
	}

	return "unmapped"
}

// List of valid Area values.
const (
	Unmapped Area = iota
	Input
	Output
	Control
	Status
)

// NumRegisters is the number of registers in the input and output banks.
const NumRegisters = 8

// The origin and memory top of each area.
const (
	OriginInput   = uint8(0x00)
	MemtopInput   = uint8(0x1f)
	OriginOutput  = uint8(0x20)
	MemtopOutput  = uint8(0x3f)
	OffsetControl = uint8(0x40)
	OffsetStatus  = uint8(0x44)
)

// MapAddress returns the area the offset belongs to and, for the input and
// output areas, the index of the register in the bank. The index is zero for
// all other areas.
func MapAddress(offset uint8) (Area, int) {
	switch {
	case offset <= MemtopInput:
		return Input, int(offset >> 2)
	case offset <= MemtopOutput:
		return Output, int((offset - OriginOutput) >> 2)
	case offset == OffsetControl:
		return Control, 0
	case offset == OffsetStatus:
		return Status, 0
	}
	return Unmapped, 0
}

// Offset returns the canonical offset of the register in the area. The index
// is ignored for the control and status areas. The boolean return value is
// false for the unmapped area or an out of range index.
func Offset(area Area, idx int) (uint8, bool) {
	switch area {
	case Input:
		if idx >= 0 && idx < NumRegisters {
			return OriginInput + uint8(idx<<2), true
		}
	case Output:
		if idx >= 0 && idx < NumRegisters {
			return OriginOutput + uint8(idx<<2), true
		}
	case Control:
		return OffsetControl, true
	case Status:
		return OffsetStatus, true
	}
	return 0, false
}
