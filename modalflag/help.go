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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// help writes usage information for the current mode to Output.
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var flags strings.Builder
	md.flags.VisitAll(func(f *flag.Flag) {
		name, usage := flag.UnquoteUsage(f)
		flags.WriteString(fmt.Sprintf("  -%s", f.Name))
		if name != "" {
			flags.WriteString(fmt.Sprintf(" %s", name))
		}
		flags.WriteString(fmt.Sprintf("\n    \t%s", usage))
		switch f.DefValue {
		case "", "0", "false", "0s":
		default:
			flags.WriteString(fmt.Sprintf(" (default %s)", f.DefValue))
		}
		flags.WriteString("\n")
	})

	if flags.Len() == 0 && len(md.subModes) == 0 {
		io.WriteString(md.Output, "No help available")
		if p := md.Path(); p != "" {
			io.WriteString(md.Output, fmt.Sprintf(" for %s", p))
		}
		io.WriteString(md.Output, "\n")
		return
	}

	if p := md.Path(); p != "" {
		io.WriteString(md.Output, fmt.Sprintf("Usage for %s mode:\n", p))
	} else {
		io.WriteString(md.Output, "Usage:\n")
	}

	io.WriteString(md.Output, flags.String())

	if len(md.subModes) > 0 {
		if flags.Len() > 0 {
			io.WriteString(md.Output, "\n")
		}
		io.WriteString(md.Output, fmt.Sprintf("  available sub-modes: %s\n", strings.Join(md.subModes, ", ")))
		io.WriteString(md.Output, fmt.Sprintf("    default: %s\n", md.subModes[0]))
	}

	if md.additionalHelp != "" {
		io.WriteString(md.Output, "\n")
		io.WriteString(md.Output, md.additionalHelp)
		io.WriteString(md.Output, "\n")
	}
}
