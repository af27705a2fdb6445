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

// Package registers implements the architecturally visible state of the CPU:
// the program counter, the 32 general purpose registers and the HI/LO pair
// used by the multiply and divide instructions.
//
// The State type is a value type. Assigning one State to another creates a
// complete and independent copy. The CPU uses this to keep two states, the
// current state and the next state, and to swap them at the end of every
// instruction.
//
// Note that register zero is not hardwired to zero. A write to register zero
// will change its value.
package registers
