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

package hardware

import (
	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/hardware/govern"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 1000

// Run ticks the peripheral as quickly as possible. The continueCheck()
// function is called after every tick and decides whether to continue.
func (p *Peripheral) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		return curated.Errorf("peripheral: Run() requires a continue check")
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			p.Step()
		case govern.Paused:
		default:
			return curated.Errorf("peripheral: unsupported state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForTicks ticks the peripheral the specified number of times. The
// continueCheck() function can be nil.
func (p *Peripheral) RunForTicks(numTicks uint64, continueCheck func(tick uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ uint64) (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for i := uint64(0); i < numTicks && state != govern.Ending; {
		if state == govern.Running {
			p.Step()
			i++
		}

		state, err = continueCheck(p.ticks)
		if err != nil {
			return err
		}
	}

	return nil
}
