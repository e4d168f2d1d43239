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

package compute

import (
	"fmt"

	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/hardware/memory/bus"
	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
	"github.com/jetsetilly/regsim/hardware/memory/regfile"
	"github.com/jetsetilly/regsim/logger"
)

// State of the compute engine.
type State int

// List of valid State values.
const (
	Idle State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "unknown"
}

// Engine is the compute engine. It must be created with NewEngine().
type Engine struct {
	env  *environment.Environment
	port bus.EngineBus

	state   State
	counter int

	// latency is sampled from the preferences at the start of every run
	latency int

	// the input bank as it was when the run started
	operands [memorymap.NumRegisters]uint32

	// the decision made by Evaluate() and applied by Commit()
	next struct {
		state    State
		counter  int
		begin    bool
		complete bool
		clear    bool
	}

	// number of completed runs since the last reset
	runs uint64
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(env *environment.Environment, port bus.EngineBus) *Engine {
	e := &Engine{
		env:  env,
		port: port,
	}
	e.Reset()
	return e
}

// Reset the engine to the Idle state. The register file is not touched.
func (e *Engine) Reset() {
	e.state = Idle
	e.counter = 0
	e.latency = 0
	e.operands = [memorymap.NumRegisters]uint32{}
	e.runs = 0
	e.next.state = Idle
	e.next.counter = 0
	e.next.begin = false
	e.next.complete = false
	e.next.clear = false
}

func (e *Engine) String() string {
	switch e.state {
	case Running:
		return fmt.Sprintf("%s %d/%d", e.state, e.counter, e.latency)
	}
	return e.state.String()
}

// State returns the current state of the engine.
func (e *Engine) State() State {
	return e.state
}

// Counter returns the number of ticks the current run has been going.
func (e *Engine) Counter() int {
	return e.counter
}

// Runs returns the number of completed runs since reset.
func (e *Engine) Runs() uint64 {
	return e.runs
}

// Evaluate the next state of the engine from the state of the register file
// at the start of the tick.
func (e *Engine) Evaluate(regs regfile.Registers) {
	e.next.state = e.state
	e.next.counter = e.counter
	e.next.begin = false
	e.next.complete = false
	e.next.clear = false

	switch e.state {
	case Idle:
		if regs.Start() {
			e.next.state = Running
			e.next.counter = 0
			e.next.begin = true
		}
	case Running:
		e.next.counter = e.counter + 1
		if e.next.counter >= e.latency {
			e.next.state = Done
			e.next.counter = 0
			e.next.complete = true
		}
	case Done:
		if !regs.Start() {
			e.next.state = Idle
			e.next.clear = true
		}
	}
}

// Commit the state decided by the most recent call to Evaluate().
func (e *Engine) Commit() {
	e.state = e.next.state
	e.counter = e.next.counter

	switch {
	case e.next.begin:
		e.latency = e.env.Prefs.Latency.Get().(int)
		for i := range e.operands {
			e.operands[i] = e.port.Input(i)
		}
		logger.Logf(e.env, "compute", "run started (latency %d)", e.latency)

	case e.next.complete:
		for i, v := range e.operands {
			e.port.SetOutput(i, v+1)
		}
		e.port.SetDone(true)
		e.runs++
		logger.Logf(e.env, "compute", "run completed (%d)", e.runs)

	case e.next.clear:
		e.port.SetDone(false)
	}
}
