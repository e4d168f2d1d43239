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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/hardware/clocks"
	"github.com/jetsetilly/regsim/host"
)

// sentinel error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Results of a Check().
type Results struct {
	Ticks    uint64
	Runs     int
	Duration time.Duration
}

// TicksPerSecond is the achieved simulation rate.
func (r Results) TicksPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Ticks) / r.Duration.Seconds()
}

func (r Results) String() string {
	tps := r.TicksPerSecond()
	return fmt.Sprintf("%.0f ticks/sec (%d ticks, %d runs in %.2f seconds) %.4f%% of %.0fMHz",
		tps, r.Ticks, r.Runs, r.Duration.Seconds(), clocks.Ratio(tps)*100, clocks.AFI)
}

// Check the performance of the simulation. The add-one host test is run
// repeatedly until the duration has elapsed. CPU, memory and trace profiles
// are created as specified by the Profile argument.
func Check(output io.Writer, env *environment.Environment, profile Profile, duration string) (Results, error) {
	var res Results

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return res, fmt.Errorf("performance: duration must be positive (%s)", duration)
	}

	p, err := hardware.NewPeripheral(env)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}
	fe := frontend.NewFrontEnd(p)

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		start := time.Now()
		defer func() {
			res.Duration = time.Since(start)
			res.Ticks = fe.Ticks()
		}()

		for {
			select {
			case <-timer.C:
				return timedOut
			default:
			}

			r, err := host.AddOne(fe, io.Discard, host.DefaultOptions)
			if err != nil {
				return err
			}
			if !r.Passed() {
				return fmt.Errorf("performance: add-one failed on run %d", res.Runs)
			}
			res.Runs++
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return res, fmt.Errorf("performance: %w", err)
	}

	fmt.Fprintln(output, res.String())

	return res, nil
}
