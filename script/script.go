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

package script

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware/memory/addresses"
	"github.com/jetsetilly/regsim/host"
	"github.com/jetsetilly/regsim/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinel errors.
const (
	ScriptError        = "script: %v"
	ExpectationsFailed = "script: %d of %d expectations failed"
)

// Script is a Lua interpreter bound to a bus front-end. It must be created
// with NewScript().
type Script struct {
	L      *lua.LState
	fe     *frontend.FrontEnd
	output io.Writer

	expectations int
	failures     int
}

// NewScript is the preferred method of initialisation for the Script type.
// The output writer is used by the log() function and can be io.Discard.
func NewScript(fe *frontend.FrontEnd, output io.Writer) *Script {
	s := &Script{
		L:      lua.NewState(),
		fe:     fe,
		output: output,
	}

	for o, name := range addresses.Canonical {
		s.L.SetGlobal(name, lua.LNumber(o))
	}
	s.L.SetGlobal("SENTINEL", lua.LNumber(addresses.Sentinel))

	s.L.SetGlobal("peek", s.L.NewFunction(s.peek))
	s.L.SetGlobal("poke", s.L.NewFunction(s.poke))
	s.L.SetGlobal("tick", s.L.NewFunction(s.tick))
	s.L.SetGlobal("ticks", s.L.NewFunction(s.ticks))
	s.L.SetGlobal("reset", s.L.NewFunction(s.reset))
	s.L.SetGlobal("addone", s.L.NewFunction(s.addone))
	s.L.SetGlobal("expect", s.L.NewFunction(s.expect))
	s.L.SetGlobal("log", s.L.NewFunction(s.log))

	return s
}

// Close the Lua interpreter. The Script can not be used again.
func (s *Script) Close() {
	s.L.Close()
}

// Expectations returns the number of expectations and the number of those
// that failed.
func (s *Script) Expectations() (int, int) {
	return s.expectations, s.failures
}

// RunFile runs the Lua script in the named file. The context can be used to
// stop a script that does not end.
func (s *Script) RunFile(ctx context.Context, filename string) error {
	return s.run(ctx, func() error { return s.L.DoFile(filename) })
}

// RunString runs the Lua source code.
func (s *Script) RunString(ctx context.Context, source string) error {
	return s.run(ctx, func() error { return s.L.DoString(source) })
}

func (s *Script) run(ctx context.Context, f func() error) error {
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	before := s.failures
	beforeExp := s.expectations

	if err := f(); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	if n := s.failures - before; n > 0 {
		return curated.Errorf(ExpectationsFailed, n, s.expectations-beforeExp)
	}

	return nil
}

// checkOffset returns the register offset argument at position n.
func checkOffset(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > math.MaxUint8 {
		L.ArgError(n, fmt.Sprintf("offset out of range (%d)", v))
	}
	return uint8(v)
}

// checkValue returns the 32-bit value argument at position n. Negative
// values are converted with two's complement.
func checkValue(L *lua.LState, n int) uint32 {
	v := float64(L.CheckNumber(n))
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxUint32 {
		L.ArgError(n, fmt.Sprintf("value out of range (%v)", v))
	}
	return uint32(int64(v))
}

func (s *Script) peek(L *lua.LState) int {
	v, err := s.fe.Peek(checkOffset(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (s *Script) poke(L *lua.LState) int {
	err := s.fe.Poke(checkOffset(L, 1), checkValue(L, 2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (s *Script) tick(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "negative tick count")
	}
	s.fe.Tick(n)
	return 0
}

func (s *Script) ticks(L *lua.LState) int {
	L.Push(lua.LNumber(s.fe.Ticks()))
	return 1
}

func (s *Script) reset(L *lua.LState) int {
	s.fe.Peripheral().Reset()
	return 0
}

func (s *Script) addone(L *lua.LState) int {
	opts := host.DefaultOptions
	if L.GetTop() >= 1 {
		opts.Base = checkValue(L, 1)
	}

	res, err := host.AddOne(s.fe, io.Discard, opts)
	if err != nil && !curated.Is(err, host.OutputMismatch) {
		L.RaiseError("%v", err)
	}

	L.Push(lua.LBool(res.Passed()))
	return 1
}

func (s *Script) expect(L *lua.LState) int {
	s.expectations++
	if lua.LVAsBool(L.Get(1)) {
		return 0
	}

	s.failures++

	msg := L.OptString(2, "")
	if msg == "" {
		msg = "expectation failed"
	}
	if dbg, ok := L.GetStack(1); ok {
		if _, err := L.GetInfo("l", dbg, lua.LNil); err == nil && dbg.CurrentLine > 0 {
			msg = fmt.Sprintf("line %d: %s", dbg.CurrentLine, msg)
		}
	}

	fmt.Fprintf(s.output, "FAIL: %s\n", msg)
	logger.Log(s.fe.Peripheral().Env, "script", msg)

	return 0
}

func (s *Script) log(L *lua.LState) int {
	msg := L.CheckString(1)
	fmt.Fprintln(s.output, msg)
	logger.Log(s.fe.Peripheral().Env, "script", msg)
	return 0
}
