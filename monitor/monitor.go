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

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/hardware/compute"
	"github.com/jetsetilly/regsim/hardware/memory/addresses"
	"github.com/jetsetilly/regsim/host"
	"github.com/jetsetilly/regsim/logger"
	"github.com/jetsetilly/regsim/monitor/terminal"
	"github.com/jetsetilly/regsim/script"
)

// Sentinel errors.
const (
	UnknownCommand  = "monitor: unknown command (%s)"
	BadArguments    = "monitor: %s: %s"
	UnknownRegister = "monitor: unknown register (%s)"
)

// Monitor is the interactive command line. It must be created with
// NewMonitor().
type Monitor struct {
	env  *environment.Environment
	term terminal.Terminal

	p  *hardware.Peripheral
	fe *frontend.FrontEnd

	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(env *environment.Environment, term terminal.Terminal) (*Monitor, error) {
	p, err := hardware.NewPeripheral(env)
	if err != nil {
		return nil, fmt.Errorf("monitor: %w", err)
	}

	return &Monitor{
		env:  env,
		term: term,
		p:    p,
		fe:   frontend.NewFrontEnd(p),
	}, nil
}

// Peripheral returns the peripheral being monitored.
func (mon *Monitor) Peripheral() *hardware.Peripheral {
	return mon.p
}

// Start the input loop. Returns when the QUIT command is issued or when
// the terminal reports that input has ended.
func (mon *Monitor) Start() error {
	if err := mon.term.Initialise(); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer mon.term.CleanUp()

	mon.running = true
	for mon.running {
		input, err := mon.term.TermRead(mon.prompt())
		if err != nil {
			switch {
			case curated.Is(err, terminal.UserInterrupt):
				mon.printLine(terminal.StyleFeedback, "use QUIT to leave the monitor")
				continue
			case curated.Is(err, terminal.UserAbort):
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		if err := mon.ProcessInput(input); err != nil {
			mon.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

func (mon *Monitor) prompt() terminal.Prompt {
	var content string
	if s := mon.p.Engine.State(); s != compute.Idle {
		content = s.String()
	}
	return terminal.Prompt{
		Content: content,
		Tick:    mon.p.Ticks(),
	}
}

func (mon *Monitor) printLine(sty terminal.Style, s string, a ...any) {
	s = strings.TrimRight(fmt.Sprintf(s, a...), "\n")
	if len(s) == 0 {
		return
	}
	mon.term.TermPrintLine(sty, s)
}

// styleWriter implements the io.Writer interface. Each line written is sent
// to the terminal with the same style.
type styleWriter struct {
	mon   *Monitor
	style terminal.Style
}

func (mon *Monitor) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{mon: mon, style: sty}
}

func (wrt styleWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		wrt.mon.printLine(wrt.style, "%s", l)
	}
	return len(p), nil
}

// parseRegister accepts a canonical register name or a numeric offset.
func parseRegister(s string) (uint8, error) {
	if o, ok := addresses.Lookup(s); ok {
		return o, nil
	}
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, curated.Errorf(UnknownRegister, s)
	}
	return uint8(v), nil
}

func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ProcessInput runs a single line of input. Empty lines are ignored.
func (mon *Monitor) ProcessInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]
	mon.printLine(terminal.StyleEcho, "%s", strings.Join(append([]string{cmd}, args...), " "))

	switch cmd {
	case cmdPeek:
		return mon.peek(args)
	case cmdPoke:
		return mon.poke(args)
	case cmdTick:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return curated.Errorf(BadArguments, cmd, "tick count must be a positive number")
			}
		}
		mon.fe.Tick(n)
		mon.printLine(terminal.StyleFeedback, "engine: %s", mon.p.Engine)
	case cmdReset:
		mon.p.Reset()
		mon.printLine(terminal.StyleFeedback, "peripheral reset")
	case cmdRegs:
		mon.printLine(terminal.StyleRegisters, "%s", mon.p)
	case cmdAddOne:
		opts := host.DefaultOptions
		if len(args) > 0 {
			v, err := parseValue(args[0])
			if err != nil {
				return curated.Errorf(BadArguments, cmd, err)
			}
			opts.Base = v
		}
		_, err := host.AddOne(mon.fe, mon.printStyle(terminal.StyleFeedback), opts)
		if err != nil {
			return err
		}
	case cmdScript:
		if len(args) != 1 {
			return curated.Errorf(BadArguments, cmd, "script filename required")
		}
		scr := script.NewScript(mon.fe, mon.printStyle(terminal.StyleFeedback))
		defer scr.Close()
		if err := scr.RunFile(context.Background(), args[0]); err != nil {
			return err
		}
		n, _ := scr.Expectations()
		mon.printLine(terminal.StyleFeedback, "script complete: %d expectations met", n)
	case cmdLog:
		return mon.log(args)
	case cmdMemviz:
		if len(args) != 1 {
			return curated.Errorf(BadArguments, cmd, "output filename required")
		}
		f, err := os.Create(args[0])
		if err != nil {
			return curated.Errorf(BadArguments, cmd, err)
		}
		memviz.Map(f, mon.p)
		if err := f.Close(); err != nil {
			return curated.Errorf(BadArguments, cmd, err)
		}
		mon.printLine(terminal.StyleFeedback, "graphviz dump written to %s", args[0])
	case cmdPrefs:
		return mon.prefs(args)
	case cmdHelp:
		return mon.help(args)
	case cmdQuit:
		mon.running = false
	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

func isBus(args []string, n int) (bool, error) {
	switch len(args) {
	case n:
		return false, nil
	case n + 1:
		if strings.ToUpper(args[n]) == kwBus {
			return true, nil
		}
	}
	return false, fmt.Errorf("unexpected arguments")
}

func (mon *Monitor) peek(args []string) error {
	if len(args) < 1 {
		return curated.Errorf(BadArguments, cmdPeek, "register required")
	}
	offset, err := parseRegister(args[0])
	if err != nil {
		return err
	}
	bus, err := isBus(args, 1)
	if err != nil {
		return curated.Errorf(BadArguments, cmdPeek, err)
	}

	var v uint32
	if bus {
		v, err = mon.fe.Peek(offset)
	} else {
		v, err = mon.p.Mem.Peek(offset)
	}
	if err != nil {
		return err
	}

	mon.printLine(terminal.StyleFeedback, "%s -> 0x%08x", addresses.Name(offset), v)
	return nil
}

func (mon *Monitor) poke(args []string) error {
	if len(args) < 2 {
		return curated.Errorf(BadArguments, cmdPoke, "register and value required")
	}
	offset, err := parseRegister(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return curated.Errorf(BadArguments, cmdPoke, err)
	}
	bus, err := isBus(args, 2)
	if err != nil {
		return curated.Errorf(BadArguments, cmdPoke, err)
	}

	if bus {
		err = mon.fe.Poke(offset, v)
	} else {
		err = mon.p.Mem.Poke(offset, v)
	}
	if err != nil {
		return err
	}

	mon.printLine(terminal.StyleFeedback, "%s <- 0x%08x", addresses.Name(offset), v)
	return nil
}

func (mon *Monitor) log(args []string) error {
	w := mon.printStyle(terminal.StyleLog)
	if len(args) == 0 {
		logger.Write(w)
		return nil
	}

	if strings.ToUpper(args[0]) == "CLEAR" {
		logger.Clear()
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return curated.Errorf(BadArguments, cmdLog, "number of entries must be a positive number")
	}
	logger.Tail(w, n)
	return nil
}

func (mon *Monitor) prefs(args []string) error {
	p := mon.env.Prefs

	if len(args) > 0 {
		var err error
		switch strings.ToUpper(args[0]) {
		case "SAVE":
			err = p.Save()
		case "LOAD":
			err = p.Load()
		case "DEFAULT":
			p.SetDefaults()
		case "LATENCY", "SENTINEL", "TIMEOUT":
			if len(args) != 2 {
				return curated.Errorf(BadArguments, cmdPrefs, "value required")
			}
			switch strings.ToUpper(args[0]) {
			case "LATENCY":
				err = p.Latency.Set(args[1])
			case "SENTINEL":
				err = p.Sentinel.Set(args[1])
			case "TIMEOUT":
				err = p.Timeout.Set(args[1])
			}
		default:
			return curated.Errorf(BadArguments, cmdPrefs, fmt.Sprintf("unknown argument (%s)", args[0]))
		}
		if err != nil {
			return curated.Errorf(BadArguments, cmdPrefs, err)
		}
	}

	mon.printLine(terminal.StyleFeedback, "%s", p)
	return nil
}

func (mon *Monitor) help(args []string) error {
	if len(args) == 0 {
		mon.printLine(terminal.StyleHelp, "%s", strings.Join(commandList(), " "))
		return nil
	}

	c, ok := commands[strings.ToUpper(args[0])]
	if !ok {
		return curated.Errorf(UnknownCommand, args[0])
	}
	mon.printLine(terminal.StyleHelp, "%s\n  %s", c.usage, c.help)
	return nil
}
