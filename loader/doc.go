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

// Package loader is used to specify and load the program to run on the
// simulator. The Loader type records where the program came from and a
// hash of the loaded data, in addition to the program itself.
//
// Programs can be loaded from local files or over HTTP. Two formats are
// supported:
//
//	HEX: one 32bit word per line, written in hexadecimal, with an optional
//	     0x prefix. Blank lines are ignored and so is anything following
//	     a # character.
//
//	BIN: raw little-endian words. The length of the data must be a multiple
//	     of four.
//
// The format is decided by the file extension unless it is specified
// explicitly.
package loader
