// This file is part of Mipsim.
//
// Mipsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mipsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mipsim.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/mipsim/debugger"
	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/debugger/terminal"
	"github.com/jetsetilly/mipsim/debugger/terminal/colorterm"
	"github.com/jetsetilly/mipsim/debugger/terminal/plainterm"
	"github.com/jetsetilly/mipsim/digest"
	"github.com/jetsetilly/mipsim/disassembly"
	"github.com/jetsetilly/mipsim/hardware"
	"github.com/jetsetilly/mipsim/hardware/memory/memorymap"
	"github.com/jetsetilly/mipsim/loader"
	"github.com/jetsetilly/mipsim/logger"
	"github.com/jetsetilly/mipsim/modalflag"
	"github.com/jetsetilly/mipsim/performance"
	"github.com/jetsetilly/mipsim/statsview"
	"github.com/jetsetilly/mipsim/version"
)

// exit values.
const (
	exitArguments = 10
	exitMode      = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch the program in the mode specified by the arguments. Returns the
// value to use with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("DEBUG", "RUN", "DISASM", "VERSION")

	echoLog := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "run stats server (only available with the statsview build tag)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! statsview is not available in this build")
		}
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(ctx, md)

	case "RUN":
		err = run(ctx, md, output)

	case "DISASM":
		err = disasm(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return 0
}

// loadProgram loads the single program named in the remaining arguments.
func loadProgram(md *modalflag.Modes, format string) (loader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return loader.Loader{}, fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return loader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := loader.NewLoader(md.GetArg(0), format)
	if err := ld.Load(); err != nil {
		return ld, err
	}

	return ld, nil
}

func debug(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", loader.FormatAuto, "program format: AUTO, HEX, BIN")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	sim := hardware.NewSimulator()
	if err := sim.Load(ld.Words); err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(sim, term)
	if err != nil {
		return err
	}

	// the debugger handles interrupts itself so the context used by the
	// debugger must not be cancelled by the interrupt signal
	return dbg.Start(context.WithoutCancel(ctx))
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	format := md.AddString("format", loader.FormatAuto, "program format: AUTO, HEX, BIN")
	cycles := md.AddUint("cycles", 0, "maximum number of instructions to execute (0 for no limit)")
	profile := md.AddBool("profile", false, "write cpu and memory profiles of the simulation")
	withDigest := md.AddBool("digest", false, "print a hash of every register state of the simulation")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	sim := hardware.NewSimulator()
	if err := sim.Load(ld.Words); err != nil {
		return err
	}

	dig := digest.NewRegisters()

	limit := uint64(*cycles)
	var count uint64
	runSim := func() error {
		_, err := sim.RunWithCheck(func() (govern.State, error) {
			if err := ctx.Err(); err != nil {
				return govern.Halted, err
			}
			if *withDigest {
				dig.Update(sim.CPU.Current)
			}
			if limit > 0 && count >= limit {
				return govern.Halted, nil
			}
			count++
			return govern.Running, nil
		})
		return err
	}

	if *profile {
		err = performance.ProfileCPU("run.cpu.profile", runSim)
		if err == nil {
			err = performance.ProfileMem("run.mem.profile")
		}
	} else {
		err = runSim()
	}
	if err != nil {
		return err
	}

	if !sim.IsHalted() {
		fmt.Fprintf(output, "! program did not halt after %d instructions\n", sim.InstructionCount)
	}
	if sim.UnknownCount > 0 {
		fmt.Fprintf(output, "! %d unknown instructions executed\n", sim.UnknownCount)
	}

	io.WriteString(output, sim.DumpRegisters().String())

	if *withDigest {
		dig.Update(sim.CPU.Current)
		fmt.Fprintf(output, "digest: %s\n", dig.Hash())
	}

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	format := md.AddString("format", loader.FormatAuto, "program format: AUTO, HEX, BIN")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	dsm := disassembly.FromProgram(memorymap.OriginText, ld.Words)
	return dsm.Write(output, disassembly.WriteAttr{ByteCode: *bytecode})
}
