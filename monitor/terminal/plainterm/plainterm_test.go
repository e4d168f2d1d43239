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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/monitor/terminal"
	"github.com/jetsetilly/regsim/monitor/terminal/plainterm"
	"github.com/jetsetilly/regsim/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("peek 0x40\npoke 0x40 1"), out)
	test.ExpectImplements(t, pt, (terminal.Terminal)(nil))
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "peek 0x40")

	// final line without a newline
	s, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "poke 0x40 1")

	_, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleEcho, "not printed")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, out.String(), "ok\n* bad\n")
	test.ExpectEquality(t, len(out.Lines()), 2)

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "quiet")
	pt.TermPrintLine(terminal.StyleError, "loud")
	test.ExpectEquality(t, out.String(), "* loud\n")
}
