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

package addresses

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
)

// Canonical is the canonical name for each register, indexed by offset.
var Canonical = map[uint8]string{}

// Symbols is the reverse of the Canonical map.
var Symbols = map[string]uint8{}

func init() {
	for i := 0; i < memorymap.NumRegisters; i++ {
		o, _ := memorymap.Offset(memorymap.Input, i)
		Canonical[o] = fmt.Sprintf("INPUT%d", i)
		o, _ = memorymap.Offset(memorymap.Output, i)
		Canonical[o] = fmt.Sprintf("OUTPUT%d", i)
	}
	Canonical[memorymap.OffsetControl] = "CONTROL"
	Canonical[memorymap.OffsetStatus] = "STATUS"

	for o, s := range Canonical {
		Symbols[s] = o
	}
}

// Lookup returns the offset for the symbol. Symbols are not case sensitive.
func Lookup(symbol string) (uint8, bool) {
	o, ok := Symbols[strings.ToUpper(symbol)]
	return o, ok
}

// Name returns the canonical name for the offset. Offsets that are not
// canonical are given as a hex value.
func Name(offset uint8) string {
	if s, ok := Canonical[offset]; ok {
		return s
	}
	return fmt.Sprintf("0x%02x", offset)
}
