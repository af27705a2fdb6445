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


package debugger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/debugger/terminal"
	"github.com/jetsetilly/mipsim/debugger/terminal/commandline"
	"github.com/jetsetilly/mipsim/disassembly"
	"github.com/jetsetilly/mipsim/hardware/cpu/execution"
	"github.com/jetsetilly/mipsim/hardware/cpu/registers"
	"github.com/jetsetilly/mipsim/hardware/memory"
	"github.com/jetsetilly/mipsim/hardware/memory/memorymap"
	"github.com/jetsetilly/mipsim/logger"
	"github.com/k0kubun/pp/v3"
)

// the number of log entries shown by the LOG command.
const logTail = 10

// parseCommand scans user input for a valid command and acts upon it. The
// empty string is valid and does nothing.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := commandline.TokeniseInput(input)

	// check validity of input. this allows us to catch errors early and in
	// many cases to ignore the "success" flag when calling tokens.Get()
	if err := debuggerCommands.ValidateTokens(tokens); err != nil {
		return err
	}

	command, ok := tokens.Get()
	if !ok {
		return nil
	}

	switch command {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdQuestion:
		dbg.printLine(terminal.StyleHelp, helpMenu)

	case cmdQuit:
		dbg.quit()

	case cmdSim:
		if dbg.sim.IsHalted() {
			dbg.printLine(terminal.StyleFeedback, "Simulation Stopped.")
			return nil
		}

		dbg.printLine(terminal.StyleFeedback, "Simulation Started...")
		_, err := dbg.run(func() (govern.State, error) {
			return govern.Running, nil
		})
		if err != nil {
			return err
		}
		if dbg.sim.IsHalted() {
			dbg.printLine(terminal.StyleFeedback, "Simulation Finished.")
		}

	case cmdRun:
		if dbg.sim.IsHalted() {
			dbg.printLine(terminal.StyleFeedback, "Simulation Stopped.")
			return nil
		}

		cycles, _ := tokens.Get()
		target, _ := commandline.ParseNumber(cycles)

		dbg.printLine(terminal.StyleFeedback, "Running simulator for %d cycles...", target)

		var count uint32
		_, err := dbg.run(func() (govern.State, error) {
			if count >= target {
				return govern.Halted, nil
			}
			count++
			return govern.Running, nil
		})
		if err != nil {
			return err
		}
		if dbg.sim.IsHalted() {
			dbg.printLine(terminal.StyleFeedback, "Simulation Stopped.")
		}

	case cmdStep:
		if dbg.sim.IsHalted() {
			dbg.printLine(terminal.StyleFeedback, "Simulation Stopped.")
			return nil
		}

		count := uint32(1)
		if s, ok := tokens.Get(); ok {
			count, _ = commandline.ParseNumber(s)
		}

		for i := uint32(0); i < count && !dbg.sim.IsHalted(); i++ {
			before := dbg.sim.CPU.Current
			if _, err := dbg.sim.Step(1); err != nil {
				return err
			}
			dbg.printLine(terminal.StyleCPUStep, formatStep(dbg.sim.CPU.LastResult, before, dbg.sim.CPU.Current))
		}

	case cmdRDump:
		dbg.printLine(terminal.StyleFeedback, dbg.sim.DumpRegisters().String())

	case cmdMDump:
		s, _ := tokens.Get()
		start, _ := commandline.ParseHex(s)
		s, _ = tokens.Get()
		stop, _ := commandline.ParseHex(s)

		if stop < start {
			return curated.Errorf("stop address (0x%08x) is before start address (0x%08x)", stop, start)
		}

		if option, ok := tokens.Get(); ok && option == "BYTES" {
			r := dbg.sim.Mem.Region(start)
			if r == nil {
				return curated.Errorf(memory.AddressError, start, 1)
			}
			dbg.printLine(terminal.StyleFeedback, "%s\n%s", r, r.Dump(start, stop))
			return nil
		}

		b := strings.Builder{}
		b.WriteString("-------------------------------------------------------------\n")
		b.WriteString(fmt.Sprintf("Memory content [0x%08x..0x%08x] :\n", start, stop))
		b.WriteString("-------------------------------------------------------------\n")
		b.WriteString("\t[Address in Hex (Dec) ]\t[Value]\n")
		for _, w := range dbg.sim.ReadMemoryRange(start, stop) {
			b.WriteString(fmt.Sprintf("\t0x%08x (%d) :\t0x%08x\n", w.Address, w.Address, w.Value))
		}
		dbg.printLine(terminal.StyleFeedback, b.String())

	case cmdReset:
		dbg.sim.Reset()
		dbg.printLine(terminal.StyleFeedback, "simulator reset. %d words loaded into memory", dbg.sim.ProgramSize())

	case cmdInput:
		s, _ := tokens.Get()
		reg, err := registers.Parse(s)
		if err != nil {
			return err
		}
		s, _ = tokens.Get()
		v, _ := commandline.ParseNumber(s)
		if err := dbg.sim.WriteRegister(reg, v); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s = 0x%08x", registers.Label(reg), v)

	case cmdHigh:
		s, _ := tokens.Get()
		v, _ := commandline.ParseNumber(s)
		dbg.sim.WriteHI(v)
		dbg.printLine(terminal.StyleFeedback, "HI = 0x%08x", v)

	case cmdLow:
		s, _ := tokens.Get()
		v, _ := commandline.ParseNumber(s)
		dbg.sim.WriteLO(v)
		dbg.printLine(terminal.StyleFeedback, "LO = 0x%08x", v)

	case cmdPrint:
		attr := disassembly.WriteAttr{}
		if s, ok := tokens.Get(); ok && s == "BYTECODE" {
			attr.ByteCode = true
		}
		dsm := disassembly.FromProgram(memorymap.OriginText, dbg.sim.Program())
		if err := dsm.Write(dbg.writerInStyle(terminal.StyleFeedback), attr); err != nil {
			return err
		}

	case cmdLast:
		dbg.printLast()

	case cmdState:
		p := pp.New()
		p.SetColoringEnabled(dbg.term.IsInteractive())
		dbg.printLine(terminal.StyleFeedback, p.Sprint(dbg.sim.CPU.Current))

	case cmdMemMap:
		dbg.printLine(terminal.StyleFeedback, memorymap.Summary())

	case cmdMemviz:
		filename, _ := tokens.Get()
		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()

		// the CPU snapshot does not include memory
		w := bufio.NewWriter(f)
		memviz.Map(w, dbg.sim.CPU.Snapshot())
		if err := w.Flush(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, "CPU state written to %s", filename)

	case cmdGrep:
		scope := disassembly.GrepAll
		search, _ := tokens.Get()
		switch search {
		case "MNEMONIC":
			scope = disassembly.GrepMnemonic
			search, _ = tokens.Get()
		case "OPERAND":
			scope = disassembly.GrepOperand
			search, _ = tokens.Get()
		}

		dsm := disassembly.FromProgram(memorymap.OriginText, dbg.sim.Program())
		n, err := dsm.Grep(dbg.writerInStyle(terminal.StyleFeedback), scope, search, false)
		if err != nil {
			return err
		}
		if n == 0 {
			dbg.printLine(terminal.StyleFeedback, "%s not found in program", search)
		}

	case cmdLog:
		option, _ := tokens.Get()
		switch option {
		case "LAST":
			logger.Tail(dbg.writerInStyle(terminal.StyleLog), 1)
		case "CLEAR":
			logger.Clear()
		default:
			logger.Tail(dbg.writerInStyle(terminal.StyleLog), logTail)
		}

	default:
		return curated.Errorf("%s is not yet implemented", command)
	}

	return nil
}

// run the simulation until the program halts, until the continueCheck
// function stops it or until the user interrupts it. Returns the number of
// instructions executed.
func (dbg *Debugger) run(continueCheck func() (govern.State, error)) (int, error) {
	ctx, stop := signal.NotifyContext(dbg.ctx, os.Interrupt)
	defer stop()

	n, err := dbg.sim.RunWithCheck(func() (govern.State, error) {
		if err := ctx.Err(); err != nil {
			return govern.Halted, err
		}
		return continueCheck()
	})

	if err != nil {
		if errors.Is(err, context.Canceled) {
			dbg.printLine(terminal.StyleFeedback, "Simulation Interrupted after %d instructions.", n)
			return n, nil
		}
		return n, err
	}

	return n, nil
}

// formatStep returns the disassembly of an executed instruction followed by
// the registers that it changed.
func formatStep(res execution.Result, before registers.State, after registers.State) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[0x%08x]\t%s", res.Address, disassembly.Format(res.Address, res.Instruction)))

	for i := range after.GPR {
		if before.GPR[i] != after.GPR[i] {
			s.WriteString(fmt.Sprintf("\t%s=0x%08x", registers.Label(i), after.GPR[i]))
		}
	}
	if before.HI != after.HI {
		s.WriteString(fmt.Sprintf("\tHI=0x%08x", after.HI))
	}
	if before.LO != after.LO {
		s.WriteString(fmt.Sprintf("\tLO=0x%08x", after.LO))
	}

	if res.Halted {
		s.WriteString("\t[halted]")
	}
	if res.Error != "" {
		s.WriteString(fmt.Sprintf("\t(%s)", res.Error))
	}

	return s.String()
}
