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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/regsim/test"
)

func TestRunMode(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ALL OUTPUTS CORRECT"))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-base", "0xfffffffc"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "Input[7] = 0x00000003"))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-base", "banana"}, out), 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error in RUN mode:"))
}

func TestPrefsOverride(t *testing.T) {
	out := &strings.Builder{}
	args := []string{"-prefs", "hardware.latency::1; hardware.colour::red", "run", "-polls", "2", "-interval", "1"}
	test.ExpectEquality(t, launch(context.Background(), args, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "! unused preferences: hardware.colour::red"))

	// a latency longer than the polling period causes the host test to fail
	out.Reset()
	args = []string{"-prefs", "hardware.latency::100", "run", "-polls", "2"}
	test.ExpectEquality(t, launch(context.Background(), args, out), 20)
}

func TestBadArguments(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-nosuchflag"}, out), 10)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "MONITOR"))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"script"}, out), 20)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"monitor", "-term", "fancy"}, out), 20)
}

func TestScriptMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("expect(addone())\nexpect(peek(0x60) == SENTINEL)\n"), 0o600))

	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"script", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "2 expectations, 0 failed"))
}

func TestSoakMode(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"soak", "-workers", "2", "-runs", "3"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "total: 6 runs"))
}

func TestPerformanceMode(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"performance", "-duration", "20ms"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ticks/sec"))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"performance", "-profile", "disk"}, out), 20)
}

func TestVersionMode(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"version"}, out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "regsim "))
}
