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
	"fmt"

	"github.com/jetsetilly/mipsim/debugger/terminal/commandline"
)

// debugger keywords.
const (
	cmdSim   = "SIM"
	cmdRun   = "RUN"
	cmdStep  = "STEP"
	cmdRDump = "RDUMP"
	cmdMDump = "MDUMP"
	cmdReset = "RESET"
	cmdInput = "INPUT"
	cmdHigh  = "HIGH"
	cmdLow   = "LOW"
	cmdPrint = "PRINT"
	cmdQuit  = "QUIT"

	cmdLast   = "LAST"
	cmdState  = "STATE"
	cmdMemMap = "MEMMAP"
	cmdMemviz = "MEMVIZ"
	cmdGrep   = "GREP"
	cmdLog    = "LOG"
)

const cmdHelp = "HELP"

// the traditional help command.
const cmdQuestion = "?"

var commandTemplate = []string{
	cmdSim,
	cmdRun + " %<cycles>N",
	cmdStep + " (%<cycles>N)",
	cmdRDump,
	cmdMDump + " %<start>X %<stop>X (BYTES)",
	cmdReset,
	cmdInput + " %<register>S %<value>N",
	cmdHigh + " %<value>N",
	cmdLow + " %<value>N",
	cmdPrint + " (BYTECODE)",
	cmdQuit,

	cmdLast,
	cmdState,
	cmdMemMap,
	cmdMemviz + " %<file>F",
	cmdGrep + " (MNEMONIC|OPERAND) %<search>S",
	cmdLog + " (LAST|CLEAR)",
	cmdQuestion,
}

var debuggerCommands *commandline.Commands

func init() {
	var err error

	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(fmt.Errorf("error parsing command template: %w", err))
	}

	err = debuggerCommands.AddHelp(cmdHelp, helps)
	if err != nil {
		panic(fmt.Errorf("error adding help command: %w", err))
	}
}
