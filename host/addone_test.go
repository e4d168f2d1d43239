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

package host_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/host"
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

func TestAddOne(t *testing.T) {
	fe := newFrontEnd(t)
	test.ExpectImplements(t, fe, (host.Bus)(nil))

	out := &strings.Builder{}
	res, err := host.AddOne(fe, out, host.DefaultOptions)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, res.Passed())
	test.ExpectEquality(t, res.Correct, 8)
	test.ExpectEquality(t, res.Accuracy, 100)
	for i := 0; i < 8; i++ {
		test.ExpectEquality(t, res.Inputs[i], uint32(0x10000000+i))
		test.ExpectEquality(t, res.Outputs[i], uint32(0x10000001+i))
	}
	test.ExpectInequality(t, res.Polls, 0)

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, " 0   | 0x10000000 | 0x10000001 | 0x10000001 | PASS\n"))
	test.ExpectSuccess(t, strings.Contains(s, " 7   | 0x10000007 | 0x10000008 | 0x10000008 | PASS\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  Correct results: 8/8\n"))
	test.ExpectSuccess(t, strings.Contains(s, "  Accuracy: 100%\n"))
	test.ExpectSuccess(t, strings.Contains(s, "Initial status: 0x00000000\n"))

	// the peripheral is ready for another run
	res, err = host.AddOne(fe, io.Discard, host.Options{Base: 0xfffffff8, PollInterval: 5})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Outputs[7], 0)
	test.ExpectEquality(t, fe.Peripheral().Engine.Runs(), 2)
}

// mockBus is a register file without an engine. outputs and status are
// whatever the test sets them to.
type mockBus struct {
	regs    map[uint8]uint32
	corrupt bool
}

func newMockBus() *mockBus {
	return &mockBus{regs: make(map[uint8]uint32)}
}

func (m *mockBus) Peek(offset uint8) (uint32, error) {
	v := m.regs[offset]
	if m.corrupt && offset == 0x0c {
		v ^= 0x100
	}
	return v, nil
}

func (m *mockBus) Poke(offset uint8, value uint32) error {
	if offset < 0x20 || offset == 0x40 {
		m.regs[offset] = value
	}
	return nil
}

func (m *mockBus) Tick(_ int) {
}

func TestReadbackMismatch(t *testing.T) {
	m := newMockBus()
	m.corrupt = true

	_, err := host.AddOne(m, io.Discard, host.DefaultOptions)
	test.ExpectSuccess(t, curated.Is(err, host.ReadbackMismatch))
}

func TestPollTimeout(t *testing.T) {
	m := newMockBus()

	res, err := host.AddOne(m, io.Discard, host.Options{Base: 1, MaxPolls: 50})
	test.ExpectSuccess(t, curated.Is(err, host.PollTimeout))
	test.ExpectEquality(t, res.Polls, 50)
}

func TestOutputMismatch(t *testing.T) {
	m := newMockBus()
	m.regs[0x44] = 1
	for i := 0; i < 8; i++ {
		m.regs[uint8(0x20+i*4)] = uint32(0x10000001 + i)
	}
	m.regs[0x3c] = 0

	out := &strings.Builder{}
	res, err := host.AddOne(m, out, host.DefaultOptions)
	test.ExpectSuccess(t, curated.Is(err, host.OutputMismatch))
	test.ExpectEquality(t, res.Correct, 7)
	test.ExpectEquality(t, res.Accuracy, 87)
	test.ExpectEquality(t, res.Polls, 1)
	test.ExpectSuccess(t, strings.Contains(out.String(), " 7   | 0x10000007 | 0x00000000 | 0x10000008 | FAIL\n"))
}

func TestTimeoutPropagates(t *testing.T) {
	fe := newFrontEnd(t)
	p := fe.Peripheral()
	test.DemandSuccess(t, p.Env.Prefs.Timeout.Set(5))

	// stall the write channel
	p.Pins.AWVALID = true
	p.Step()
	p.Pins.AWVALID = false

	_, err := host.AddOne(fe, io.Discard, host.DefaultOptions)
	test.ExpectSuccess(t, curated.Has(err, frontend.TransactionTimeout))
}
