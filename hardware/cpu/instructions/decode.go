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

package instructions

import "fmt"

// Instruction is a decoded instruction word. Only the fields used by the
// instruction's Format are populated. The remaining fields are zero.
type Instruction struct {
	Word uint32
	Defn *Definition

	// register and immediate formats
	Rs uint8
	Rt uint8

	// register format
	Rd    uint8
	Shamt uint8

	// immediate format
	Imm uint16

	// jump format. 26 bits
	Target uint32
}

// Operator is a shortcut for ins.Defn.Operator.
func (ins Instruction) Operator() Operator {
	if ins.Defn == nil {
		return Unknown
	}
	return ins.Defn.Operator
}

// SignExtImm returns the immediate value sign extended to 32 bits.
func (ins Instruction) SignExtImm() uint32 {
	return uint32(int32(int16(ins.Imm)))
}

// ZeroExtImm returns the immediate value zero extended to 32 bits.
func (ins Instruction) ZeroExtImm() uint32 {
	return uint32(ins.Imm)
}

func (ins Instruction) String() string {
	if ins.Defn == nil {
		return "undecoded instruction"
	}
	switch ins.Defn.Format {
	case Register:
		return fmt.Sprintf("%s rs=%d rt=%d rd=%d shamt=%d", ins.Defn.Mnemonic, ins.Rs, ins.Rt, ins.Rd, ins.Shamt)
	case Immediate:
		return fmt.Sprintf("%s rs=%d rt=%d imm=%#04x", ins.Defn.Mnemonic, ins.Rs, ins.Rt, ins.Imm)
	case Jump:
		return fmt.Sprintf("%s target=%#07x", ins.Defn.Mnemonic, ins.Target)
	}
	return ins.Defn.Mnemonic
}

// Decode an instruction word.
func Decode(word uint32) Instruction {
	ins := Instruction{Word: word}

	opcode := uint8(word >> 26)
	if opcode == 0 {
		ins.Defn = byFunct[word&0x3f]
	} else {
		ins.Defn = byOpcode[opcode]
	}

	if ins.Defn == nil {
		ins.Defn = &definitions[Unknown]
		return ins
	}

	switch ins.Defn.Format {
	case Register:
		ins.Rs = uint8(word>>21) & 0x1f
		ins.Rt = uint8(word>>16) & 0x1f
		ins.Rd = uint8(word>>11) & 0x1f
		ins.Shamt = uint8(word>>6) & 0x1f
	case Immediate:
		ins.Rs = uint8(word>>21) & 0x1f
		ins.Rt = uint8(word>>16) & 0x1f
		ins.Imm = uint16(word)
	case Jump:
		ins.Target = word & 0x03ffffff
	}

	return ins
}

// EncodeR builds a register format instruction word. Panics if the operator
// is not a register format instruction.
func EncodeR(o Operator, rd, rs, rt, shamt uint8) uint32 {
	defn := mustFormat(o, Register)
	return uint32(rs&0x1f)<<21 | uint32(rt&0x1f)<<16 | uint32(rd&0x1f)<<11 | uint32(shamt&0x1f)<<6 | uint32(defn.Funct)
}

// EncodeI builds an immediate format instruction word. Panics if the
// operator is not an immediate format instruction.
func EncodeI(o Operator, rt, rs uint8, imm uint16) uint32 {
	defn := mustFormat(o, Immediate)
	return uint32(defn.Opcode)<<26 | uint32(rs&0x1f)<<21 | uint32(rt&0x1f)<<16 | uint32(imm)
}

// EncodeJ builds a jump format instruction word. The target is the 26bit
// word index and not a byte address. Panics if the operator is not a jump
// format instruction.
func EncodeJ(o Operator, target uint32) uint32 {
	defn := mustFormat(o, Jump)
	return uint32(defn.Opcode)<<26 | target&0x03ffffff
}

func mustFormat(o Operator, f Format) *Definition {
	defn := Lookup(o)
	if defn.Operator == Unknown || defn.Format != f {
		panic(fmt.Sprintf("instructions: %s is not a %s format instruction", o, f))
	}
	return defn
}
