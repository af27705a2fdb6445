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

// Operator identifies the operation performed by an instruction.
type Operator int

// List of operators.
const (
	Unknown Operator = iota

	// register format
	ADD
	ADDU
	SUB
	SUBU
	MULT
	MULTU
	DIV
	DIVU
	AND
	OR
	XOR
	NOR
	SLT
	SLL
	SRL
	SRA
	MFHI
	MFLO
	MTHI
	MTLO
	JR
	JALR
	SYSCALL

	// immediate format
	ADDI
	ADDIU
	ANDI
	ORI
	XORI
	SLTI
	LUI
	LW
	SW
	SH
	SB
	BEQ
	BNE
	BLEZ
	BGTZ

	// jump format
	J
	JAL

	numOperators
)

func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return fmt.Sprintf("operator(%d)", int(o))
	}
	return definitions[o].Mnemonic
}

// Definition describes a single instruction of the instruction set.
type Definition struct {
	Operator Operator
	Mnemonic string
	Format   Format
	Effect   Effect

	// opcode is bits 31-26 of the instruction word. for register format
	// instructions opcode is zero and funct (bits 5-0) identifies the
	// instruction
	Opcode uint8
	Funct  uint8
}

func (defn Definition) String() string {
	if defn.Format == Register {
		return fmt.Sprintf("%s [%s] opcode=%#02x funct=%#02x effect=%s", defn.Mnemonic, defn.Format, defn.Opcode, defn.Funct, defn.Effect)
	}
	return fmt.Sprintf("%s [%s] opcode=%#02x effect=%s", defn.Mnemonic, defn.Format, defn.Opcode, defn.Effect)
}

// IsBranch returns true if the instruction is a conditional branch.
func (defn Definition) IsBranch() bool {
	switch defn.Operator {
	case BEQ, BNE, BLEZ, BGTZ:
		return true
	}
	return false
}

// definitions is indexed by Operator.
var definitions = [numOperators]Definition{
	Unknown: {Unknown, "unknown", Register, Read, 0xff, 0xff},

	ADD:     {ADD, "add", Register, Read, 0x00, 0x20},
	ADDU:    {ADDU, "addu", Register, Read, 0x00, 0x21},
	SUB:     {SUB, "sub", Register, Read, 0x00, 0x22},
	SUBU:    {SUBU, "subu", Register, Read, 0x00, 0x23},
	MULT:    {MULT, "mult", Register, Read, 0x00, 0x18},
	MULTU:   {MULTU, "multu", Register, Read, 0x00, 0x19},
	DIV:     {DIV, "div", Register, Read, 0x00, 0x1a},
	DIVU:    {DIVU, "divu", Register, Read, 0x00, 0x1b},
	AND:     {AND, "and", Register, Read, 0x00, 0x24},
	OR:      {OR, "or", Register, Read, 0x00, 0x25},
	XOR:     {XOR, "xor", Register, Read, 0x00, 0x26},
	NOR:     {NOR, "nor", Register, Read, 0x00, 0x27},
	SLT:     {SLT, "slt", Register, Read, 0x00, 0x2a},
	SLL:     {SLL, "sll", Register, Read, 0x00, 0x00},
	SRL:     {SRL, "srl", Register, Read, 0x00, 0x02},
	SRA:     {SRA, "sra", Register, Read, 0x00, 0x03},
	MFHI:    {MFHI, "mfhi", Register, Read, 0x00, 0x10},
	MFLO:    {MFLO, "mflo", Register, Read, 0x00, 0x12},
	MTHI:    {MTHI, "mthi", Register, Read, 0x00, 0x11},
	MTLO:    {MTLO, "mtlo", Register, Read, 0x00, 0x13},
	JR:      {JR, "jr", Register, Flow, 0x00, 0x08},
	JALR:    {JALR, "jalr", Register, Subroutine, 0x00, 0x09},
	SYSCALL: {SYSCALL, "syscall", Register, Interrupt, 0x00, 0x0c},

	ADDI:  {ADDI, "addi", Immediate, Read, 0x08, 0},
	ADDIU: {ADDIU, "addiu", Immediate, Read, 0x09, 0},
	ANDI:  {ANDI, "andi", Immediate, Read, 0x0c, 0},
	ORI:   {ORI, "ori", Immediate, Read, 0x0d, 0},
	XORI:  {XORI, "xori", Immediate, Read, 0x0e, 0},
	SLTI:  {SLTI, "slti", Immediate, Read, 0x0a, 0},
	LUI:   {LUI, "lui", Immediate, Read, 0x0f, 0},
	LW:    {LW, "lw", Immediate, Read, 0x23, 0},
	SW:    {SW, "sw", Immediate, Write, 0x2b, 0},
	SH:    {SH, "sh", Immediate, Write, 0x29, 0},
	SB:    {SB, "sb", Immediate, Write, 0x28, 0},
	BEQ:   {BEQ, "beq", Immediate, Flow, 0x04, 0},
	BNE:   {BNE, "bne", Immediate, Flow, 0x05, 0},
	BLEZ:  {BLEZ, "blez", Immediate, Flow, 0x06, 0},
	BGTZ:  {BGTZ, "bgtz", Immediate, Flow, 0x07, 0},

	J:   {J, "j", Jump, Flow, 0x02, 0},
	JAL: {JAL, "jal", Jump, Subroutine, 0x03, 0},
}

// lookup tables built from the definitions table
var (
	byOpcode [64]*Definition
	byFunct  [64]*Definition
)

func init() {
	for i := range definitions {
		defn := &definitions[i]
		if defn.Operator == Unknown {
			continue
		}
		if defn.Opcode == 0 {
			byFunct[defn.Funct] = defn
		} else {
			byOpcode[defn.Opcode] = defn
		}
	}
}

// Lookup returns the definition for the operator.
func Lookup(o Operator) *Definition {
	if o < 0 || o >= numOperators {
		return &definitions[Unknown]
	}
	return &definitions[o]
}
