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

package monitor

import "sort"

// monitor keywords
const (
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdTick   = "TICK"
	cmdReset  = "RESET"
	cmdRegs   = "REGS"
	cmdAddOne = "ADDONE"
	cmdScript = "SCRIPT"
	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdPrefs  = "PREFS"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

// keyword used to select a bus transaction for PEEK and POKE.
const kwBus = "BUS"

type command struct {
	usage string
	help  string
}

var commands = map[string]command{
	cmdPeek:   {"PEEK <register> [BUS]", "Inspect a register"},
	cmdPoke:   {"POKE <register> <value> [BUS]", "Modify an input or control register"},
	cmdTick:   {"TICK [n]", "Advance the peripheral by n ticks (default 1)"},
	cmdReset:  {"RESET", "Reset the peripheral. All registers are zeroed"},
	cmdRegs:   {"REGS", "Display the register file and the state of each state machine"},
	cmdAddOne: {"ADDONE [base]", "Run the add-one host test over the bus"},
	cmdScript: {"SCRIPT <file>", "Run a Lua host script"},
	cmdLog:    {"LOG [n|CLEAR]", "Display the last n log entries (default all) or clear the log"},
	cmdMemviz: {"MEMVIZ <file>", "Write a graphviz dump of the peripheral to file"},
	cmdPrefs:  {"PREFS [LATENCY|SENTINEL|TIMEOUT <value>|SAVE|LOAD|DEFAULT]", "Display or change the hardware preferences"},
	cmdHelp:   {"HELP [command]", "List commands or display help for a command"},
	cmdQuit:   {"QUIT", "Leave the monitor"},
}

// commandList returns the sorted list of command keywords.
func commandList() []string {
	l := make([]string, 0, len(commands))
	for k := range commands {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}
