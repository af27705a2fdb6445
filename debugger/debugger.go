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
	"context"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/terminal"
	"github.com/jetsetilly/mipsim/debugger/terminal/commandline"
	"github.com/jetsetilly/mipsim/disassembly"
	"github.com/jetsetilly/mipsim/hardware"
	"github.com/jetsetilly/mipsim/logger"
)

// the content of the prompt shown to the user.
const promptContent = "MU-MIPS SIM:"

// Debugger is the basic debugging frontend for the simulator.
type Debugger struct {
	sim  *hardware.Simulator
	term terminal.Terminal

	// parent context of all simulation runs. SIM and RUN create a child
	// context which is cancelled by the interrupt signal
	ctx context.Context

	// the input loop continues while running is true
	running bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session. The simulator should have a program loaded before the
// debugging session is started.
func NewDebugger(sim *hardware.Simulator, term terminal.Terminal) (*Debugger, error) {
	if sim == nil {
		return nil, curated.Errorf("debugger: no simulator")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		sim:  sim,
		term: term,
		ctx:  context.Background(),
	}

	return dbg, nil
}

// Start the main debugger sequence. The function returns when the user
// quits, when input is exhausted or when the context is cancelled.
func (dbg *Debugger) Start(ctx context.Context) error {
	dbg.ctx = ctx

	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	dbg.printLine(terminal.StyleFeedback, "**************************")
	dbg.printLine(terminal.StyleFeedback, "Welcome to MU-MIPS SIM...")
	dbg.printLine(terminal.StyleFeedback, "**************************")
	dbg.printLine(terminal.StyleFeedback, "%d words loaded into memory", dbg.sim.ProgramSize())

	logger.Log(logger.Allow, "debugger", "session started")

	return dbg.inputLoop()
}

func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Type:    terminal.PromptTypeRunning,
		Content: promptContent,
	}
	if dbg.sim.IsHalted() {
		p.Type = terminal.PromptTypeHalted
	}
	return p
}

// inputLoop reads and acts upon user input until the user quits.
func (dbg *Debugger) inputLoop() error {
	dbg.running = true

	for dbg.running {
		if err := dbg.ctx.Err(); err != nil {
			return nil
		}

		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserAbort) {
				dbg.quit()
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to exit")
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// quit prints the farewell message and stops the input loop.
func (dbg *Debugger) quit() {
	dbg.printLine(terminal.StyleFeedback, "**************************")
	dbg.printLine(terminal.StyleFeedback, "Exiting MU-MIPS! Good Bye...")
	dbg.printLine(terminal.StyleFeedback, "**************************")
	dbg.running = false
	logger.Log(logger.Allow, "debugger", "session ended")
}

// printLast shows the result of the most recent instruction.
func (dbg *Debugger) printLast() {
	if dbg.sim.CPU.HasReset() {
		dbg.printLine(terminal.StyleFeedback, "no instruction has been executed")
		return
	}
	res := dbg.sim.CPU.LastResult
	dbg.printLine(terminal.StyleCPUStep, "%s\t%s", res.String(), disassembly.Format(res.Address, res.Instruction))
}
