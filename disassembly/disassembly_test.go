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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/mipsim/disassembly"
	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
	"github.com/jetsetilly/mipsim/hardware/memory"
	"github.com/jetsetilly/mipsim/hardware/memory/memorymap"
	"github.com/jetsetilly/mipsim/test"
)

const origin = memorymap.OriginText

func TestFormat(t *testing.T) {
	type formatTest struct {
		word     uint32
		expected string
	}

	tests := []formatTest{
		{0x00221820, "add $v1, $at, $v0"},
		{0x24020005, "addiu $v0, $zero, 5"},
		{instructions.EncodeI(instructions.ADDI, 8, 8, 0xffff), "addi $t0, $t0, -1"},
		{0x3c01000a, "lui $at, 0x000a"},
		{instructions.EncodeI(instructions.ORI, 1, 1, 0x00ff), "ori $at, $at, 0x00ff"},
		{instructions.EncodeI(instructions.LW, 8, 29, 4), "lw $t0, 4($sp)"},
		{instructions.EncodeI(instructions.SB, 8, 29, 0xfffc), "sb $t0, -4($sp)"},
		{instructions.EncodeR(instructions.SRA, 8, 0, 9, 4), "sra $t0, $t1, 4"},
		{instructions.EncodeR(instructions.MULT, 0, 8, 9, 0), "mult $t0, $t1"},
		{instructions.EncodeR(instructions.MFHI, 8, 0, 0, 0), "mfhi $t0"},
		{instructions.EncodeR(instructions.JR, 0, 31, 0, 0), "jr $ra"},
		{instructions.EncodeR(instructions.JALR, 31, 8, 0, 0), "jalr $ra, $t0"},
		{0x08100004, "j 0x00400010"},
		{instructions.EncodeJ(instructions.JAL, 0x00100004), "jal 0x00400010"},
		{instructions.EncodeI(instructions.BEQ, 9, 8, 3), "beq $t0, $t1, 0x00400010"},
		{instructions.EncodeI(instructions.BGTZ, 0, 8, 0xffff), "bgtz $t0, 0x00400000"},
		{0x0000000c, "syscall"},
		{0xfc000000, "unknown 0xfc000000"},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, disassembly.Format(origin, instructions.Decode(tt.word)), tt.expected)
	}
}

func TestWrite(t *testing.T) {
	dsm := disassembly.FromProgram(origin, []uint32{0x2402000a, 0x0000000c})

	cw := &test.CompareWriter{}
	test.ExpectSuccess(t, dsm.Write(cw, disassembly.WriteAttr{}))
	test.ExpectSuccess(t, cw.Compare("[0x00400000]\taddiu $v0, $zero, 10\n[0x00400004]\tsyscall\n"))

	cw.Clear()
	test.ExpectSuccess(t, dsm.Write(cw, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectSuccess(t, cw.Compare("[0x00400000]\t2402000a\taddiu $v0, $zero, 10\n[0x00400004]\t0000000c\tsyscall\n"))
}

func TestFromMemory(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.Poke(origin+4, 0x0000000c))

	dsm, err := disassembly.FromMemory(mem, origin, origin+4)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 2)
	test.ExpectEquality(t, dsm.Entries[0].String(), "sll $zero, $zero, 0")

	e, ok := dsm.Get(origin + 4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Mnemonic, "syscall")

	_, ok = dsm.Get(origin + 8)
	test.ExpectFailure(t, ok)
	_, ok = dsm.Get(origin + 2)
	test.ExpectFailure(t, ok)

	_, err = disassembly.FromMemory(mem, origin+4, origin)
	test.ExpectFailure(t, err)
}

func TestGrep(t *testing.T) {
	dsm := disassembly.FromProgram(origin, []uint32{0x2402000a, 0x00221820, 0x0000000c})

	cw := &test.CompareWriter{}
	n, err := dsm.Grep(cw, disassembly.GrepMnemonic, "ADD", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	cw.Clear()
	n, err = dsm.Grep(cw, disassembly.GrepOperand, "$v0", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	cw.Clear()
	n, err = dsm.Grep(cw, disassembly.GrepAll, "syscall", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, cw.Compare("[0x00400008]\tsyscall\n"))
}
