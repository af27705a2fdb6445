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


//go:build !windows

// Package colorterm implements the Terminal interface for the mipsim
// debugger. It supports color output, history and tab completion.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/mipsim/debugger/terminal"
	"github.com/jetsetilly/mipsim/debugger/terminal/colorterm/easyterm"
)

// the maximum number of entries in the command history.
const maxHistory = 100

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader *bufio.Reader

	commandHistory [][]rune
	tabCompletion  terminal.TabCompletion

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([][]rune, 0, maxHistory)
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return ct.reader.Buffered() > 0
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// addHistory appends the input to the command history unless it is the same
// as the most recent entry.
func (ct *ColorTerminal) addHistory(input []rune) {
	if len(input) == 0 {
		return
	}
	if n := len(ct.commandHistory); n > 0 && string(ct.commandHistory[n-1]) == string(input) {
		return
	}
	if len(ct.commandHistory) >= maxHistory {
		ct.commandHistory = ct.commandHistory[1:]
	}
	h := make([]rune, len(input))
	copy(h, input)
	ct.commandHistory = append(ct.commandHistory, h)
}
