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

package soak

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/hardware/memory/addresses"
	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
	"github.com/jetsetilly/regsim/host"
)

// Sentinel errors.
const (
	PropertyFailed = "soak: worker %d, run %d: %v"
	BadOptions     = "soak: %s"
)

// Options for Run().
type Options struct {
	Workers int
	Runs    int

	// seed for the random number generators. each worker derives its own
	// stream from the seed and its worker number
	Seed uint64

	// maximum acknowledgement delay used by the front-end
	MaxAckDelay int

	// maximum compute latency. zero means the latency preference is not
	// randomised
	MaxLatency int
}

// DefaultOptions for Run().
var DefaultOptions = Options{
	Workers:     4,
	Runs:        100,
	Seed:        1,
	MaxAckDelay: 3,
	MaxLatency:  16,
}

// WorkerResult is the summary of a single worker.
type WorkerResult struct {
	Runs  int
	Ticks uint64
	Stats frontend.Stats
}

// Results of Run(). One entry per worker.
type Results []WorkerResult

// Runs returns the total number of completed runs.
func (r Results) Runs() int {
	var n int
	for _, w := range r {
		n += w.Runs
	}
	return n
}

// Ticks returns the total number of ticks over all workers.
func (r Results) Ticks() uint64 {
	var n uint64
	for _, w := range r {
		n += w.Ticks
	}
	return n
}

// Run the soak test. A summary of each worker is written to output. The
// first property failure cancels the remaining workers and is returned.
func Run(ctx context.Context, output io.Writer, opts Options) (Results, error) {
	if opts.Workers < 1 {
		return nil, curated.Errorf(BadOptions, "at least one worker required")
	}
	if opts.Runs < 1 {
		return nil, curated.Errorf(BadOptions, "at least one run required")
	}
	if opts.MaxAckDelay < 0 || opts.MaxLatency < 0 {
		return nil, curated.Errorf(BadOptions, "negative maximum")
	}

	res := make(Results, opts.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for i := range opts.Workers {
		g.Go(func() error {
			return worker(ctx, i, opts, &res[i])
		})
	}
	err := g.Wait()

	for i, w := range res {
		fmt.Fprintf(output, "worker %d: %d runs, %d ticks, %s\n", i, w.Runs, w.Ticks, w.Stats)
	}
	fmt.Fprintf(output, "total: %d runs, %d ticks\n", res.Runs(), res.Ticks())

	return res, err
}

func worker(ctx context.Context, id int, opts Options, res *WorkerResult) error {
	env, err := environment.NewEnvironment(environment.Label(fmt.Sprintf("soak%d", id)), nil)
	if err != nil {
		return err
	}
	env.Normalise()

	p, err := hardware.NewPeripheral(env)
	if err != nil {
		return err
	}
	fe := frontend.NewFrontEnd(p)

	rng := rand.New(rand.NewPCG(opts.Seed, uint64(id)))

	defer func() {
		res.Ticks = fe.Ticks()
		res.Stats = fe.Stats()
	}()

	for run := range opts.Runs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := soakRun(fe, rng, opts); err != nil {
			return curated.Errorf(PropertyFailed, id, run, err)
		}
		res.Runs++
	}

	return nil
}

// soakRun performs one randomised add-one run and checks the properties that
// should hold afterwards.
func soakRun(fe *frontend.FrontEnd, rng *rand.Rand, opts Options) error {
	env := fe.Peripheral().Env

	if opts.MaxLatency > 0 {
		if err := env.Prefs.Latency.Set(1 + rng.IntN(opts.MaxLatency)); err != nil {
			return err
		}
	}
	fe.AckDelay = rng.IntN(opts.MaxAckDelay + 1)

	hopts := host.DefaultOptions
	hopts.Base = rng.Uint32()
	hopts.PollInterval = 1 + rng.IntN(3)

	r, err := host.AddOne(fe, io.Discard, hopts)
	if err != nil {
		return err
	}

	// done must have cleared by the time the outputs were read
	status, err := fe.Peek(memorymap.OffsetStatus)
	if err != nil {
		return err
	}
	if status&addresses.DoneBit != 0 {
		return fmt.Errorf("status still done after start cleared (0x%08x)", status)
	}

	// unmapped reads
	offset := memorymap.OffsetStatus + 1 + uint8(rng.IntN(0xff-int(memorymap.OffsetStatus)))
	v, err := fe.Peek(offset)
	if err != nil {
		return err
	}
	expected := addresses.Sentinel
	if !env.Prefs.Sentinel.Get().(bool) {
		expected = 0
	}
	if v != expected {
		return fmt.Errorf("unmapped read of 0x%02x returned 0x%08x", offset, v)
	}

	// unmapped and output writes are dropped
	if err := fe.Poke(offset, rng.Uint32()); err != nil {
		return err
	}
	idx := rng.IntN(memorymap.NumRegisters)
	o, _ := memorymap.Offset(memorymap.Output, idx)
	if err := fe.Poke(o, rng.Uint32()); err != nil {
		return err
	}
	v, err = fe.Peek(o)
	if err != nil {
		return err
	}
	if v != r.Outputs[idx] {
		return fmt.Errorf("output[%d] changed by write: 0x%08x != 0x%08x", idx, v, r.Outputs[idx])
	}

	return nil
}
