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

package frontend_test

import (
	"testing"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/test"
)

func newFrontEnd(t *testing.T) *frontend.FrontEnd {
	t.Helper()

	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	p, err := hardware.NewPeripheral(env)
	test.DemandSuccess(t, err)

	return frontend.NewFrontEnd(p)
}

func TestTickCost(t *testing.T) {
	fe := newFrontEnd(t)

	test.ExpectSuccess(t, fe.Poke(0x00, 1))
	test.ExpectEquality(t, fe.Ticks(), 3)

	_, err := fe.Peek(0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fe.Ticks(), 5)

	fe.AckDelay = 10
	test.ExpectSuccess(t, fe.Poke(0x00, 1))
	test.ExpectEquality(t, fe.Ticks(), 18)

	test.ExpectEquality(t, fe.Stats(), frontend.Stats{Reads: 1, Writes: 2})
	test.ExpectEquality(t, fe.Peripheral().Ticks(), fe.Ticks())
}

func TestScenario(t *testing.T) {
	fe := newFrontEnd(t)

	for i := 0; i < 8; i++ {
		test.DemandSuccess(t, fe.Poke(uint8(i*4), uint32(0x10000000+i)))
	}
	for i := 0; i < 8; i++ {
		v, err := fe.Peek(uint8(i * 4))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint32(0x10000000+i))
	}

	status, err := fe.Peek(0x44)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, 0)

	test.DemandSuccess(t, fe.Poke(0x40, 1))

	polls := 0
	for status&1 == 0 {
		status, err = fe.Peek(0x44)
		test.DemandSuccess(t, err)
		polls++
	}
	test.ExpectEquality(t, status, 0x1)
	test.ExpectInequality(t, polls, 0)

	// still set while start is high
	status, err = fe.Peek(0x44)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, 0x1)

	test.DemandSuccess(t, fe.Poke(0x40, 0))
	status, err = fe.Peek(0x44)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, 0x0)

	for i := 0; i < 8; i++ {
		v, err := fe.Peek(uint8(0x20 + i*4))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint32(0x10000001+i))
	}
}

func TestSlowRequester(t *testing.T) {
	fe := newFrontEnd(t)

	test.DemandSuccess(t, fe.Poke(0x00, 0x41))
	test.DemandSuccess(t, fe.Poke(0x40, 1))

	// the read address is accepted while the engine is running. the data is
	// acknowledged after the engine has finished
	fe.AckDelay = 10
	v, err := fe.Peek(0x20)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x42)
}

func TestUnmapped(t *testing.T) {
	fe := newFrontEnd(t)

	test.ExpectSuccess(t, fe.Poke(0x50, 0x1234))
	for i := 0; i < 3; i++ {
		v, err := fe.Peek(0x50)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, 0xdeadbeef)
	}
}

func TestTimeout(t *testing.T) {
	fe := newFrontEnd(t)
	p := fe.Peripheral()
	test.DemandSuccess(t, p.Env.Prefs.Timeout.Set(10))

	// leave the read channel stalled in the data return phase
	p.Pins.ARVALID = true
	p.Step()
	p.Pins.ARVALID = false

	_, err := fe.Peek(0x00)
	test.ExpectSuccess(t, curated.Is(err, frontend.TransactionTimeout))
	test.ExpectEquality(t, fe.Ticks(), 10)
	test.ExpectEquality(t, fe.Stats().Timeouts, 1)

	// the write channel is unaffected
	test.ExpectSuccess(t, fe.Poke(0x00, 1))

	p.Reset()
	_, err = fe.Peek(0x00)
	test.ExpectSuccess(t, err)
}
