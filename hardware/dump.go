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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mipsim/hardware/cpu/registers"
)

// Word is a single word of memory and its address.
type Word struct {
	Address uint32
	Value   uint32
}

// ReadMemoryRange returns the words from the start address to the end address
// inclusive. The addresses advance in steps of four. Unmapped addresses read
// as zero. An end address before the start address returns an empty slice.
func (sim *Simulator) ReadMemoryRange(start uint32, end uint32) []Word {
	var w []Word
	if end < start {
		return w
	}

	for a := uint64(start); a <= uint64(end); a += 4 {
		w = append(w, Word{
			Address: uint32(a),
			Value:   sim.Mem.Peek(uint32(a)),
		})
	}

	return w
}

// Dump is a copy of the register values and the instruction count.
type Dump struct {
	InstructionCount uint32
	PC               uint32
	GPR              [registers.NumRegisters]uint32
	HI               uint32
	LO               uint32
}

// DumpRegisters returns a copy of the current register values.
func (sim *Simulator) DumpRegisters() Dump {
	return Dump{
		InstructionCount: sim.InstructionCount,
		PC:               sim.CPU.Current.PC,
		GPR:              sim.CPU.Current.GPR,
		HI:               sim.CPU.Current.HI,
		LO:               sim.CPU.Current.LO,
	}
}

const rule = "-------------------------------------\n"

// String formats the dump in the traditional register dump layout.
func (d Dump) String() string {
	s := strings.Builder{}
	s.WriteString(rule)
	s.WriteString("Dumping Register Content\n")
	s.WriteString(rule)
	s.WriteString(fmt.Sprintf("# Instructions Executed\t: %d\n", d.InstructionCount))
	s.WriteString(fmt.Sprintf("PC\t: 0x%08x\n", d.PC))
	s.WriteString(rule)
	s.WriteString("[Register]\t[Value]\n")
	s.WriteString(rule)
	for i, v := range d.GPR {
		s.WriteString(fmt.Sprintf("[R%d]\t: 0x%08x\n", i, v))
	}
	s.WriteString(rule)
	s.WriteString(fmt.Sprintf("[HI]\t: 0x%08x\n", d.HI))
	s.WriteString(fmt.Sprintf("[LO]\t: 0x%08x\n", d.LO))
	s.WriteString(rule)
	return s.String()
}
