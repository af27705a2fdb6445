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

// Package memorymap facilitates the translation of addresses to the memory
// area in which they reside. There are five areas, each one mebibyte in
// size. The areas are disjoint and the gaps between them are unmapped.
//
//	Text   0x00400000 -> 0x004fffff
//	Data   0x10000000 -> 0x100fffff
//	Stack  0x7ff00000 -> 0x7fffffff
//	KText  0x80000000 -> 0x800fffff
//	KData  0x90000000 -> 0x900fffff
//
// The MapAddress() function returns the offset of an address into its area.
// The Summary() function returns a printable table of the areas.
package memorymap
