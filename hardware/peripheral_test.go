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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/hardware/compute"
	"github.com/jetsetilly/regsim/hardware/govern"
	"github.com/jetsetilly/regsim/test"
)

func newPeripheral(t *testing.T) *hardware.Peripheral {
	t.Helper()

	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	p, err := hardware.NewPeripheral(env)
	test.DemandSuccess(t, err)

	return p
}

// write performs a complete write transaction with an immediate
// acknowledgement of the response.
func write(p *hardware.Peripheral, offset uint8, data uint32) {
	p.Pins.AWVALID = true
	p.Pins.AWADDR = uint32(offset)
	p.Step()
	p.Pins.AWVALID = false

	p.Pins.WVALID = true
	p.Pins.WDATA = data
	p.Step()
	p.Pins.WVALID = false

	p.Pins.BREADY = true
	p.Step()
	p.Pins.BREADY = false
}

// read performs a complete read transaction with an immediate
// acknowledgement of the data.
func read(p *hardware.Peripheral, offset uint8) uint32 {
	p.Pins.ARVALID = true
	p.Pins.ARADDR = uint32(offset)
	p.Step()
	p.Pins.ARVALID = false

	v := p.Pins.RDATA
	p.Pins.RREADY = true
	p.Step()
	p.Pins.RREADY = false

	return v
}

func TestReadBack(t *testing.T) {
	p := newPeripheral(t)

	for i := 0; i < 8; i++ {
		v := uint32(0xa5a50000 + i)
		write(p, uint8(i*4), v)
		test.ExpectEquality(t, read(p, uint8(i*4)), v, i)
	}

	test.ExpectEquality(t, p.Engine.State(), compute.Idle)
}

func TestLatency(t *testing.T) {
	p := newPeripheral(t)

	// the start bit is committed in the data phase of the write. the engine
	// sees it in the next tick, which is the response phase
	write(p, 0x40, 1)
	test.DemandEquality(t, p.Engine.State(), compute.Running)

	for i := 1; i < 4; i++ {
		p.Step()
		test.ExpectFailure(t, p.Mem.Snapshot().Done(), i)
	}
	p.Step()
	test.ExpectSuccess(t, p.Mem.Snapshot().Done())
}

func TestLatencyPreference(t *testing.T) {
	p := newPeripheral(t)
	test.DemandSuccess(t, p.Env.Prefs.Latency.Set(10))

	write(p, 0x40, 1)
	for i := 1; i < 10; i++ {
		p.Step()
		test.ExpectFailure(t, p.Mem.Snapshot().Done(), i)
	}
	p.Step()
	test.ExpectSuccess(t, p.Mem.Snapshot().Done())
}

func TestAddOne(t *testing.T) {
	p := newPeripheral(t)

	in := []uint32{0, 1, 0x7fffffff, 0x80000000, 0xfffffffe, 0xffffffff, 0x12345678, 42}
	for i, v := range in {
		write(p, uint8(i*4), v)
	}
	write(p, 0x40, 1)

	for read(p, 0x44)&1 == 0 {
	}

	for i, v := range in {
		test.ExpectEquality(t, read(p, uint8(0x20+i*4)), v+1, i)
	}
	test.ExpectEquality(t, p.Outputs()[5], 0)
}

func TestDoneClearsNextTick(t *testing.T) {
	p := newPeripheral(t)

	write(p, 0x40, 1)
	test.DemandSuccess(t, p.RunForTicks(4, nil))
	test.DemandSuccess(t, p.Mem.Snapshot().Done())

	// clear the start bit. the write is committed in the data phase and the
	// done flag is clear by the end of the response phase
	p.Pins.AWVALID = true
	p.Pins.AWADDR = 0x40
	p.Step()
	p.Pins.AWVALID = false
	p.Pins.WVALID = true
	p.Pins.WDATA = 0
	p.Step()
	p.Pins.WVALID = false
	test.ExpectSuccess(t, p.Mem.Snapshot().Done())
	p.Pins.BREADY = true
	p.Step()
	p.Pins.BREADY = false
	test.ExpectFailure(t, p.Mem.Snapshot().Done())
	test.ExpectEquality(t, read(p, 0x44), 0)

	// a fresh run has a fresh latency
	write(p, 0x40, 1)
	for i := 1; i < 4; i++ {
		p.Step()
		test.ExpectFailure(t, p.Mem.Snapshot().Done(), i)
	}
	p.Step()
	test.ExpectSuccess(t, p.Mem.Snapshot().Done())
}

func TestSentinel(t *testing.T) {
	p := newPeripheral(t)
	for i := 0; i < 8; i++ {
		write(p, uint8(i*4), 0xffffffff)
	}
	write(p, 0x50, 1)

	for i := 0; i < 5; i++ {
		test.ExpectEquality(t, read(p, 0x50), 0xdeadbeef)
	}
}

func TestBackToBack(t *testing.T) {
	p := newPeripheral(t)

	run := func(base uint32) {
		for i := 0; i < 8; i++ {
			write(p, uint8(i*4), base+uint32(i))
		}
		write(p, 0x40, 1)
		for read(p, 0x44) != 1 {
		}
		write(p, 0x40, 0)
		test.ExpectEquality(t, read(p, 0x44), 0)
		for i := 0; i < 8; i++ {
			test.ExpectEquality(t, read(p, uint8(0x20+i*4)), base+uint32(i)+1)
		}
	}

	run(0x10000000)
	run(0xa0000000)
	test.ExpectEquality(t, p.Engine.Runs(), 2)
}

func TestStartHeldHigh(t *testing.T) {
	p := newPeripheral(t)

	write(p, 0x00, 1)
	write(p, 0x40, 1)
	test.DemandSuccess(t, p.RunForTicks(10, nil))
	test.DemandEquality(t, p.Engine.State(), compute.Done)

	// new inputs are not processed while start is held high
	write(p, 0x00, 100)
	test.DemandSuccess(t, p.RunForTicks(100, nil))
	test.ExpectEquality(t, p.Engine.State(), compute.Done)
	test.ExpectEquality(t, p.Outputs()[0], 2)
	test.ExpectEquality(t, p.Engine.Runs(), 1)
}

func TestReset(t *testing.T) {
	p := newPeripheral(t)
	write(p, 0x00, 1)
	write(p, 0x40, 1)
	p.Pins.AWVALID = true
	p.Step()

	p.Reset()
	test.ExpectEquality(t, p.Ticks(), 0)
	test.ExpectEquality(t, p.Engine.State(), compute.Idle)
	test.ExpectSuccess(t, p.Pins.AWREADY)
	test.ExpectSuccess(t, p.Pins.ARREADY)
	test.ExpectFailure(t, p.Pins.AWVALID)
	test.ExpectEquality(t, read(p, 0x00), 0)
	test.ExpectEquality(t, read(p, 0x40), 0)
}

func TestRun(t *testing.T) {
	p := newPeripheral(t)
	write(p, 0x40, 1)

	paused := 0
	err := p.Run(func() (govern.State, error) {
		if p.Mem.Snapshot().Done() {
			// pausing does not tick
			if paused < 5 {
				paused++
				return govern.Paused, nil
			}
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Ticks(), 7)
	test.ExpectEquality(t, paused, 5)

	test.ExpectFailure(t, p.Run(nil))
}

func TestRunForTicks(t *testing.T) {
	p := newPeripheral(t)

	test.ExpectSuccess(t, p.RunForTicks(100, nil))
	test.ExpectEquality(t, p.Ticks(), 100)

	err := p.RunForTicks(100, func(tick uint64) (govern.State, error) {
		if tick >= 150 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Ticks(), 150)
}
