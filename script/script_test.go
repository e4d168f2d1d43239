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

package script_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/script"
	"github.com/jetsetilly/regsim/test"
)

func newScript(t *testing.T) (*script.Script, *strings.Builder) {
	t.Helper()

	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	p, err := hardware.NewPeripheral(env)
	test.DemandSuccess(t, err)

	out := &strings.Builder{}
	s := script.NewScript(frontend.NewFrontEnd(p), out)
	t.Cleanup(s.Close)

	return s, out
}

const addOneScript = `
for i = 0, 7 do
	poke(INPUT0 + i*4, 0x10000000 + i)
end
for i = 0, 7 do
	expect(peek(INPUT0 + i*4) == 0x10000000 + i, "readback")
end

poke(CONTROL, 1)
while peek(STATUS) == 0 do
	tick()
end
poke(CONTROL, 0)
expect(peek(STATUS) == 0, "status clear")

for i = 0, 7 do
	expect(peek(OUTPUT0 + i*4) == 0x10000001 + i, "output")
end

expect(peek(0x50) == SENTINEL, "sentinel")
log("done after " .. ticks() .. " ticks")
`

func TestAddOneScript(t *testing.T) {
	s, out := newScript(t)

	err := s.RunString(context.Background(), addOneScript)
	test.ExpectSuccess(t, err)

	n, failed := s.Expectations()
	test.ExpectEquality(t, n, 18)
	test.ExpectEquality(t, failed, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "done after "))
}

func TestExpectationFailure(t *testing.T) {
	s, out := newScript(t)

	err := s.RunString(context.Background(), `
expect(true)
expect(peek(OUTPUT0) == 1, "no run yet")
expect(false)
`)
	test.ExpectSuccess(t, curated.Is(err, script.ExpectationsFailed))
	test.ExpectEquality(t, err.Error(), "script: 2 of 3 expectations failed")
	test.ExpectEquality(t, out.String(), "FAIL: line 3: no run yet\nFAIL: line 4: expectation failed\n")
}

func TestWraparound(t *testing.T) {
	s, _ := newScript(t)

	err := s.RunString(context.Background(), `
poke(INPUT3, -1)
expect(peek(INPUT3) == 0xffffffff)
poke(CONTROL, 1)
tick(10)
expect(peek(OUTPUT3) == 0)
expect(peek(OUTPUT0) == 1)
`)
	test.ExpectSuccess(t, err)
}

func TestAddOneFunction(t *testing.T) {
	s, _ := newScript(t)

	err := s.RunString(context.Background(), `
expect(addone())
expect(addone(0xfffffff0))
reset()
expect(ticks() > 0)
expect(peek(INPUT0) == 0)
`)
	test.ExpectSuccess(t, err)
}

func TestArgumentErrors(t *testing.T) {
	s, _ := newScript(t)

	err := s.RunString(context.Background(), `poke(0x100, 1)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = s.RunString(context.Background(), `poke(INPUT0, 1.5)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = s.RunString(context.Background(), `poke(INPUT0, 0x100000000)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = s.RunString(context.Background(), `this is not lua`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestContext(t *testing.T) {
	s, _ := newScript(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.RunString(ctx, `while true do tick() end`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestRunFile(t *testing.T) {
	s, _ := newScript(t)

	fn := filepath.Join(t.TempDir(), "addone.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(addOneScript), 0o600))
	test.ExpectSuccess(t, s.RunFile(context.Background(), fn))

	err := s.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectFailure(t, err)
}
