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

// Package memory implements the address space of the simulated machine. The
// address space is divided into areas, defined in the memorymap package. Each
// area is backed by a byte slice and is represented by the Region type.
//
//	                            ---- Text
//	                           |
//	                           |---- Data
//	    CPU ---- cpu bus ---- *
//	                           |---- Stack
//	                           |
//	                           |---- KText
//	                           |
//	                            ---- KData
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the area and to an offset into that area. See the memorymap package.
//
// The CPU accesses memory through the cpubus.Memory interface, which the
// Memory type implements. The debugger uses the Peek() and Poke() functions,
// which have the same effect as Read32() and Write32() but which do not log
// unmapped accesses.
//
// Accesses to unmapped addresses do not stop the machine. Reads return zero
// and writes are ignored. An error matching the AddressError pattern is
// returned so that the caller can record the event if it wishes.
package memory
