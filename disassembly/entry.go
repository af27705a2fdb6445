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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
	"github.com/jetsetilly/mipsim/hardware/cpu/registers"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address     uint32
	Instruction instructions.Instruction

	// string representations of the instruction
	Mnemonic string
	Operand  string
}

// newEntry decodes the word found at the address.
func newEntry(address uint32, word uint32) *Entry {
	e := &Entry{
		Address:     address,
		Instruction: instructions.Decode(word),
	}
	e.Mnemonic, e.Operand = fields(address, e.Instruction)
	return e
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Mnemonic
	}
	return fmt.Sprintf("%s %s", e.Mnemonic, e.Operand)
}

// Format returns the assembly language representation of the instruction.
// The address is used to calculate the destination of jumps and branches.
func Format(address uint32, ins instructions.Instruction) string {
	m, o := fields(address, ins)
	if o == "" {
		return m
	}
	return fmt.Sprintf("%s %s", m, o)
}

func reg(r uint8) string {
	return registers.Label(int(r))
}

// fields returns the mnemonic and operand of the instruction.
func fields(address uint32, ins instructions.Instruction) (string, string) {
	op := ins.Operator()
	if op == instructions.Unknown {
		return "unknown", fmt.Sprintf("0x%08x", ins.Word)
	}

	mnemonic := ins.Defn.Mnemonic
	var operand string

	switch op {
	case instructions.SLL, instructions.SRL, instructions.SRA:
		operand = fmt.Sprintf("%s, %s, %d", reg(ins.Rd), reg(ins.Rt), ins.Shamt)

	case instructions.MULT, instructions.MULTU, instructions.DIV, instructions.DIVU:
		operand = fmt.Sprintf("%s, %s", reg(ins.Rs), reg(ins.Rt))

	case instructions.MFHI, instructions.MFLO:
		operand = reg(ins.Rd)

	case instructions.MTHI, instructions.MTLO, instructions.JR:
		operand = reg(ins.Rs)

	case instructions.JALR:
		operand = fmt.Sprintf("%s, %s", reg(ins.Rd), reg(ins.Rs))

	case instructions.SYSCALL:

	case instructions.ADDI, instructions.ADDIU, instructions.SLTI:
		operand = fmt.Sprintf("%s, %s, %d", reg(ins.Rt), reg(ins.Rs), int16(ins.Imm))

	case instructions.ANDI, instructions.ORI, instructions.XORI:
		operand = fmt.Sprintf("%s, %s, 0x%04x", reg(ins.Rt), reg(ins.Rs), ins.Imm)

	case instructions.LUI:
		operand = fmt.Sprintf("%s, 0x%04x", reg(ins.Rt), ins.Imm)

	case instructions.LW, instructions.SW, instructions.SH, instructions.SB:
		operand = fmt.Sprintf("%s, %d(%s)", reg(ins.Rt), int16(ins.Imm), reg(ins.Rs))

	case instructions.BEQ, instructions.BNE:
		operand = fmt.Sprintf("%s, %s, 0x%08x", reg(ins.Rs), reg(ins.Rt), address+4+ins.SignExtImm()<<2)

	case instructions.BLEZ, instructions.BGTZ:
		operand = fmt.Sprintf("%s, 0x%08x", reg(ins.Rs), address+4+ins.SignExtImm()<<2)

	case instructions.J, instructions.JAL:
		operand = fmt.Sprintf("0x%08x", (address&0xf0000000)|(ins.Target<<2))

	default:
		// register format ALU instructions
		operand = fmt.Sprintf("%s, %s, %s", reg(ins.Rd), reg(ins.Rs), reg(ins.Rt))
	}

	return mnemonic, operand
}
