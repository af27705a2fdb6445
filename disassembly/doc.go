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

// Package disassembly converts program words into assembly language.
//
// For quick disassemblies of a single instruction the Format() function can
// be used. A complete program listing is created with FromProgram() or, for
// the contents of an already running simulation, FromMemory(). The resulting
// Disassembly can then be written or searched.
//
// The disassembly is linear. Every word is decoded as an instruction,
// whether or not the program ever executes it.
package disassembly
