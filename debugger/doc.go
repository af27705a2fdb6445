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


// Package debugger implements the interactive command loop of the simulator.
// The command set follows the traditional MU-MIPS simulator with some
// additional commands for inspecting the machine state.
//
// Commands are case-insensitive and can be abbreviated to any unique
// prefix. The HELP command lists all commands and will give detailed help for
// a single command.
//
// Input and output is through an implementation of the terminal.Terminal
// interface.
package debugger
