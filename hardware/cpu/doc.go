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

// Package cpu implements the CPU of the simulated machine. The CPU executes
// one 32bit instruction per cycle. It fetches the instruction word from the
// address pointed to by the program counter, decodes the word with the
// instructions package and then executes it.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument to NewCPU().
//
// The CPU keeps two copies of the register state. The Current state is the
// state of the machine before the instruction, the Next state is the state
// of the machine after the instruction. Instruction execution reads from
// Current and writes only to Next. At the end of the cycle Next becomes
// Current.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Let's assume mem is an instance of memory.Memory with a program loaded at
// the start of the text region.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset(memorymap.OriginText)
//
//	for {
//		state, err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		if state == govern.Halted {
//			break
//		}
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// The Execute() function contains the semantics of every instruction. It is
// a function rather than a method of the CPU type so that it can be called
// and tested with any pair of register states.
package cpu
