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

package host

import (
	"fmt"
	"io"

	"github.com/jetsetilly/regsim/curated"
	"github.com/jetsetilly/regsim/hardware/memory/addresses"
	"github.com/jetsetilly/regsim/hardware/memory/memorymap"
)

// Sentinel errors.
const (
	ReadbackMismatch = "host: input readback mismatch at reg %d: expected 0x%08x, got 0x%08x"
	PollTimeout      = "host: timeout waiting for computation completion after %d polls"
	OutputMismatch   = "host: %d of %d outputs incorrect"
)

// Bus is the register access needed by AddOne(). It is satisfied by the
// frontend.FrontEnd type.
type Bus interface {
	Peek(offset uint8) (uint32, error)
	Poke(offset uint8, value uint32) error

	// Tick without a transaction. Used between polls
	Tick(n int)
}

// Options for AddOne().
type Options struct {
	// the value written to input[0]. input[i] is Base+i
	Base uint32

	// maximum number of polls of the status register
	MaxPolls int

	// ticks between polls of the status register
	PollInterval int
}

// DefaultOptions are the options used by the host test program.
var DefaultOptions = Options{
	Base:         0x10000000,
	MaxPolls:     1000,
	PollInterval: 1,
}

// Result of AddOne().
type Result struct {
	Inputs   [memorymap.NumRegisters]uint32
	Outputs  [memorymap.NumRegisters]uint32
	Polls    int
	Correct  int
	Accuracy int
}

// Passed returns true if every output was correct.
func (r Result) Passed() bool {
	return r.Correct == memorymap.NumRegisters
}

// AddOne runs the add-one test over the bus. Progress is written to output,
// which can be io.Discard.
func AddOne(bus Bus, output io.Writer, opts Options) (Result, error) {
	var res Result

	if opts.MaxPolls <= 0 {
		opts.MaxPolls = DefaultOptions.MaxPolls
	}
	if opts.PollInterval < 0 {
		opts.PollInterval = 0
	}

	inputOffset := func(i int) uint8 {
		o, _ := memorymap.Offset(memorymap.Input, i)
		return o
	}
	outputOffset := func(i int) uint8 {
		o, _ := memorymap.Offset(memorymap.Output, i)
		return o
	}

	fmt.Fprintf(output, "Step 1: Initializing test data\n")
	for i := range res.Inputs {
		res.Inputs[i] = opts.Base + uint32(i)
		fmt.Fprintf(output, "  Input[%d] = 0x%08x\n", i, res.Inputs[i])
	}

	fmt.Fprintf(output, "Step 2: Clearing control register\n")
	if err := bus.Poke(memorymap.OffsetControl, 0); err != nil {
		return res, curated.Errorf("host: clearing control register: %v", err)
	}

	fmt.Fprintf(output, "Step 3: Writing input data\n")
	for i, v := range res.Inputs {
		if err := bus.Poke(inputOffset(i), v); err != nil {
			return res, curated.Errorf("host: writing input register %d: %v", i, err)
		}
		fmt.Fprintf(output, "  Wrote 0x%08x to address 0x%02x\n", v, inputOffset(i))
	}

	fmt.Fprintf(output, "Step 4: Verifying input data readback\n")
	for i, v := range res.Inputs {
		r, err := bus.Peek(inputOffset(i))
		if err != nil {
			return res, curated.Errorf("host: reading input register %d: %v", i, err)
		}
		if r != v {
			return res, curated.Errorf(ReadbackMismatch, i, v, r)
		}
		fmt.Fprintf(output, "  Input[%d] readback: 0x%08x\n", i, r)
	}

	fmt.Fprintf(output, "Step 5: Checking initial status\n")
	status, err := bus.Peek(memorymap.OffsetStatus)
	if err != nil {
		return res, curated.Errorf("host: reading status register: %v", err)
	}
	fmt.Fprintf(output, "Initial status: 0x%08x\n", status)

	fmt.Fprintf(output, "Step 6: Starting Add-One computation\n")
	if err := bus.Poke(memorymap.OffsetControl, addresses.StartBit); err != nil {
		return res, curated.Errorf("host: starting computation: %v", err)
	}

	fmt.Fprintf(output, "Step 7: Waiting for computation to complete\n")
	status = 0
	for status&addresses.DoneBit == 0 && res.Polls < opts.MaxPolls {
		bus.Tick(opts.PollInterval)
		status, err = bus.Peek(memorymap.OffsetStatus)
		if err != nil {
			return res, curated.Errorf("host: reading status register during polling: %v", err)
		}
		res.Polls++
		if res.Polls%100 == 0 {
			fmt.Fprintf(output, "  Polling... count=%d, status=0x%08x\n", res.Polls, status)
		}
	}
	if status&addresses.DoneBit == 0 {
		return res, curated.Errorf(PollTimeout, res.Polls)
	}
	fmt.Fprintf(output, "Computation completed after %d polls\n", res.Polls)

	fmt.Fprintf(output, "Step 8: Clearing start bit\n")
	if err := bus.Poke(memorymap.OffsetControl, 0); err != nil {
		return res, curated.Errorf("host: clearing start bit: %v", err)
	}

	fmt.Fprintf(output, "Step 9: Reading output data\n")
	for i := range res.Outputs {
		res.Outputs[i], err = bus.Peek(outputOffset(i))
		if err != nil {
			return res, curated.Errorf("host: reading output register %d: %v", i, err)
		}
		fmt.Fprintf(output, "  Output[%d] = 0x%08x\n", i, res.Outputs[i])
	}

	fmt.Fprintf(output, "Step 10: Verifying results\n")
	res.Tabulate(output)

	if !res.Passed() {
		return res, curated.Errorf(OutputMismatch, memorymap.NumRegisters-res.Correct, memorymap.NumRegisters)
	}

	return res, nil
}

// Tabulate writes the results comparison table and summary. It also updates
// the Correct and Accuracy fields.
func (r *Result) Tabulate(output io.Writer) {
	fmt.Fprintf(output, "\nRESULTS COMPARISON:\n")
	fmt.Fprintf(output, "Reg# | Input      | Output     | Expected   | Status\n")
	fmt.Fprintf(output, "-----|------------|------------|------------|-------\n")

	r.Correct = 0
	for i := range r.Inputs {
		expected := r.Inputs[i] + 1
		status := "FAIL"
		if r.Outputs[i] == expected {
			status = "PASS"
			r.Correct++
		}
		fmt.Fprintf(output, "%2d   | 0x%08x | 0x%08x | 0x%08x | %s\n", i, r.Inputs[i], r.Outputs[i], expected, status)
	}
	r.Accuracy = r.Correct * 100 / memorymap.NumRegisters

	fmt.Fprintf(output, "\nSUMMARY:\n")
	fmt.Fprintf(output, "  Correct results: %d/%d\n", r.Correct, memorymap.NumRegisters)
	fmt.Fprintf(output, "  Accuracy: %d%%\n", r.Accuracy)
	if r.Passed() {
		fmt.Fprintf(output, "ALL OUTPUTS CORRECT\n")
	} else {
		fmt.Fprintf(output, "SOME OUTPUTS INCORRECT\n")
	}
}
