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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/regsim/environment"
	"github.com/jetsetilly/regsim/frontend"
	"github.com/jetsetilly/regsim/hardware"
	"github.com/jetsetilly/regsim/hardware/clocks"
	"github.com/jetsetilly/regsim/host"
	"github.com/jetsetilly/regsim/logger"
	"github.com/jetsetilly/regsim/modalflag"
	"github.com/jetsetilly/regsim/monitor"
	"github.com/jetsetilly/regsim/monitor/terminal"
	"github.com/jetsetilly/regsim/monitor/terminal/colorterm"
	"github.com/jetsetilly/regsim/monitor/terminal/plainterm"
	"github.com/jetsetilly/regsim/performance"
	"github.com/jetsetilly/regsim/prefs"
	"github.com/jetsetilly/regsim/script"
	"github.com/jetsetilly/regsim/soak"
	"github.com/jetsetilly/regsim/statsview"
	"github.com/jetsetilly/regsim/version"
)

func main() {
	// ctrl-c cancels the context. modes that loop for a long time (SOAK,
	// SCRIPT) check the context and end gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "SCRIPT", "SOAK", "PERFORMANCE", "VERSION")
	prefsOverride := md.AddString("prefs", "", "override hardware preferences (eg. \"hardware.latency::8; hardware.sentinel::false\")")
	echoLog := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				fmt.Fprintf(output, "! unused preferences: %s\n", s)
			}
		}()
	}

	if *echoLog {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "MONITOR":
		err = monitorMode(md, output)

	case "SCRIPT":
		err = scriptMode(ctx, md, output)

	case "SOAK":
		err = soakMode(ctx, md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// newFrontEnd creates the main peripheral and a front-end to drive it.
func newFrontEnd(ackDelay int) (*frontend.FrontEnd, error) {
	env, err := environment.NewEnvironment(environment.MainPeripheral, nil)
	if err != nil {
		return nil, err
	}

	p, err := hardware.NewPeripheral(env)
	if err != nil {
		return nil, err
	}

	fe := frontend.NewFrontEnd(p)
	fe.AckDelay = ackDelay

	return fe, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	base := md.AddString("base", fmt.Sprintf("0x%08x", host.DefaultOptions.Base), "value written to input[0]")
	maxPolls := md.AddInt("polls", host.DefaultOptions.MaxPolls, "maximum number of status polls")
	interval := md.AddInt("interval", host.DefaultOptions.PollInterval, "ticks between status polls")
	ackDelay := md.AddInt("ackdelay", 0, "ticks before the host acknowledges a response")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	b, err := strconv.ParseUint(*base, 0, 32)
	if err != nil {
		return fmt.Errorf("base value: %w", err)
	}

	fe, err := newFrontEnd(*ackDelay)
	if err != nil {
		return err
	}

	opts := host.Options{
		Base:         uint32(b),
		MaxPolls:     *maxPolls,
		PollInterval: *interval,
	}

	fmt.Fprintf(output, "=== Add-One Peripheral Test ===\n")
	_, err = host.AddOne(fe, output, opts)
	fmt.Fprintf(output, "\n%d ticks (%s at %.0fMHz) %s\n", fe.Ticks(), clocks.Duration(fe.Ticks()), clocks.AFI, fe.Stats())

	return err
}

func monitorMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in monitor mode: COLOR, PLAIN")
	stats := new(bool)
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, output)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	if *stats {
		statsview.Launch(output)
	}

	env, err := environment.NewEnvironment(environment.MainPeripheral, nil)
	if err != nil {
		return err
	}

	mon, err := monitor.NewMonitor(env, term)
	if err != nil {
		return err
	}

	return mon.Start()
}

func scriptMode(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	ackDelay := md.AddInt("ackdelay", 0, "ticks before the host acknowledges a response")
	md.AdditionalHelp("A Lua script file is required.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	fe, err := newFrontEnd(*ackDelay)
	if err != nil {
		return err
	}

	scr := script.NewScript(fe, output)
	defer scr.Close()

	err = scr.RunFile(ctx, md.GetArg(0))
	n, failed := scr.Expectations()
	fmt.Fprintf(output, "%d expectations, %d failed, %d ticks\n", n, failed, fe.Ticks())

	return err
}

func soakMode(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	workers := md.AddInt("workers", soak.DefaultOptions.Workers, "number of parallel peripherals")
	runs := md.AddInt("runs", soak.DefaultOptions.Runs, "number of runs per peripheral")
	seed := md.AddInt("seed", int(soak.DefaultOptions.Seed), "random number seed")
	maxAck := md.AddInt("maxack", soak.DefaultOptions.MaxAckDelay, "maximum acknowledgement delay")
	maxLatency := md.AddInt("maxlatency", soak.DefaultOptions.MaxLatency, "maximum compute latency (0 to use preference)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	_, err = soak.Run(ctx, output, soak.Options{
		Workers:     *workers,
		Runs:        *runs,
		Seed:        uint64(*seed),
		MaxAckDelay: *maxAck,
		MaxLatency:  *maxLatency,
	})

	return err
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profile files: CPU, MEM, TRACE, ALL (comma separated)")
	stats := new(bool)
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	env, err := environment.NewEnvironment(environment.MainPeripheral, nil)
	if err != nil {
		return err
	}

	_, err = performance.Check(output, env, prf, *duration)
	return err
}
