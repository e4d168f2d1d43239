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

//go:build linux || darwin

// Package colorterm implements the Terminal interface for the monitor. It
// supports color output and a small line editor with a command history.
package colorterm

import (
	"bufio"
	"os"
	"unicode/utf8"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/monitor/terminal"
	"github.com/jetsetilly/regsim/monitor/terminal/colorterm/easyterm"
	"github.com/jetsetilly/regsim/monitor/terminal/colorterm/easyterm/ansi"
)

// maximum number of entries in the command history.
const maxHistory = 100

// ColorTerminal implements the monitor's terminal interface with a basic ANSI
// terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader  *bufio.Reader
	history []string

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.reader = bufio.NewReader(os.Stdin)
	ct.history = make([]string, 0, maxHistory)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the line editor has already shown the input
	if style == terminal.StyleEcho {
		return
	}

	ct.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleRegisters:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleLog:
		ct.TermPrint(ansi.DimPens["yellow"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		prompt = terminal.Prompt{}
	}

	ct.CBreakMode()
	defer ct.CanonicalMode()

	input := make([]rune, 0, 64)
	cursor := 0
	historyIdx := len(ct.history)

	redraw := func() {
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint("\r")
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(prompt.String())
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		for i := cursor; i < len(input); i++ {
			ct.TermPrint(ansi.CursorBackwardOne)
		}
	}

	redraw()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", curated.Errorf("colorterm: %v", err)
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.CBreakMode()
			redraw()

		case easyterm.KeyEndOfFile:
			if len(input) == 0 {
				ct.TermPrint("\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.TermPrint("\n")
			s := string(input)
			ct.addHistory(s)
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				redraw()
			}

		case easyterm.KeyEsc:
			// only CSI sequences are recognised. anything else is discarded
			if b, _ := ct.reader.ReadByte(); b != '[' {
				continue
			}
			b, _ := ct.reader.ReadByte()
			switch b {
			case 'A':
				if historyIdx > 0 {
					historyIdx--
					input = []rune(ct.history[historyIdx])
					cursor = len(input)
				}
			case 'B':
				if historyIdx < len(ct.history)-1 {
					historyIdx++
					input = []rune(ct.history[historyIdx])
				} else {
					historyIdx = len(ct.history)
					input = input[:0]
				}
				cursor = len(input)
			case 'C':
				if cursor < len(input) {
					cursor++
				}
			case 'D':
				if cursor > 0 {
					cursor--
				}
			}
			redraw()

		default:
			if r == utf8.RuneError || r < ' ' {
				continue
			}
			input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
			cursor++
			redraw()
		}
	}
}

func (ct *ColorTerminal) addHistory(s string) {
	if s == "" {
		return
	}
	if len(ct.history) > 0 && ct.history[len(ct.history)-1] == s {
		return
	}
	if len(ct.history) >= maxHistory {
		ct.history = ct.history[1:]
	}
	ct.history = append(ct.history, s)
}
