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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
	"github.com/jetsetilly/mipsim/test"
)

func TestDecodeIsTotal(t *testing.T) {
	// sample the word space. every opcode with a spread of function codes
	for opcode := uint32(0); opcode < 64; opcode++ {
		for funct := uint32(0); funct < 64; funct++ {
			w := opcode<<26 | 0x0155aa40 | funct
			ins := instructions.Decode(w)
			if !test.ExpectSuccess(t, ins.Defn != nil, w) {
				return
			}
			test.ExpectEquality(t, ins.Word, w)
		}
	}

	ins := instructions.Decode(0xfc000000)
	test.ExpectEquality(t, ins.Operator(), instructions.Unknown)

	// opcode 1 (REGIMM) is not implemented
	ins = instructions.Decode(0x04000000)
	test.ExpectEquality(t, ins.Operator(), instructions.Unknown)

	// funct 0x01 is not used
	ins = instructions.Decode(0x00000001)
	test.ExpectEquality(t, ins.Operator(), instructions.Unknown)
}

func TestDecodeFields(t *testing.T) {
	// addiu $v0, $zero, 5
	ins := instructions.Decode(0x24020005)
	test.ExpectEquality(t, ins.Operator(), instructions.ADDIU)
	test.ExpectEquality(t, ins.Rs, uint8(0))
	test.ExpectEquality(t, ins.Rt, uint8(2))
	test.ExpectEquality(t, ins.Imm, uint16(5))

	// addi $v0, $zero, 5
	ins = instructions.Decode(0x20020005)
	test.ExpectEquality(t, ins.Operator(), instructions.ADDI)

	// lui $at, 0x000a
	ins = instructions.Decode(0x3c01000a)
	test.ExpectEquality(t, ins.Operator(), instructions.LUI)
	test.ExpectEquality(t, ins.Rt, uint8(1))
	test.ExpectEquality(t, ins.Imm, uint16(0x000a))

	// add $v1, $at, $v0
	ins = instructions.Decode(0x00221820)
	test.ExpectEquality(t, ins.Operator(), instructions.ADD)
	test.ExpectEquality(t, ins.Rs, uint8(1))
	test.ExpectEquality(t, ins.Rt, uint8(2))
	test.ExpectEquality(t, ins.Rd, uint8(3))
	test.ExpectEquality(t, ins.Shamt, uint8(0))

	// sra $t0, $t1, 4
	ins = instructions.Decode(0x00094103)
	test.ExpectEquality(t, ins.Operator(), instructions.SRA)
	test.ExpectEquality(t, ins.Rt, uint8(9))
	test.ExpectEquality(t, ins.Rd, uint8(8))
	test.ExpectEquality(t, ins.Shamt, uint8(4))

	// syscall
	ins = instructions.Decode(0x0000000c)
	test.ExpectEquality(t, ins.Operator(), instructions.SYSCALL)
	test.ExpectEquality(t, ins.Defn.Effect, instructions.Interrupt)

	// j 0x00400010
	ins = instructions.Decode(0x08100004)
	test.ExpectEquality(t, ins.Operator(), instructions.J)
	test.ExpectEquality(t, ins.Target, uint32(0x00100004))
	test.ExpectEquality(t, ins.Rs, uint8(0))
	test.ExpectEquality(t, ins.Imm, uint16(0))
}

func TestImmediateExtension(t *testing.T) {
	ins := instructions.Decode(instructions.EncodeI(instructions.ADDI, 1, 0, 0xfffe))
	test.ExpectEquality(t, ins.SignExtImm(), uint32(0xfffffffe))
	test.ExpectEquality(t, ins.ZeroExtImm(), uint32(0x0000fffe))

	ins = instructions.Decode(instructions.EncodeI(instructions.ADDI, 1, 0, 0x7fff))
	test.ExpectEquality(t, ins.SignExtImm(), uint32(0x00007fff))
}

func TestBranchDefinitions(t *testing.T) {
	test.ExpectSuccess(t, instructions.Lookup(instructions.BEQ).IsBranch())
	test.ExpectSuccess(t, instructions.Lookup(instructions.BGTZ).IsBranch())
	test.ExpectFailure(t, instructions.Lookup(instructions.J).IsBranch())
	test.ExpectFailure(t, instructions.Lookup(instructions.JR).IsBranch())
}
