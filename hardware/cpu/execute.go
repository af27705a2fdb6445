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

package cpu

import (
	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/hardware/cpu/execution"
	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
	"github.com/jetsetilly/mipsim/hardware/cpu/registers"
	"github.com/jetsetilly/mipsim/hardware/memory/cpubus"
)

// ExitSyscall is the value of the $v0 register that causes the syscall
// instruction to halt the CPU.
const ExitSyscall = 0x0a

// Execute the decoded instruction. Register values are read from curr and
// results are written to next. Memory is read and written through mem.
//
// The caller should initialise next as a copy of curr. The program counter in
// next is only changed by jump instructions and by taken branches and in
// those cases the Flow field of the returned Result is true. Otherwise it is
// the responsibility of the caller to advance the program counter.
//
// Problems that do not stop execution, such as an access to unmapped memory
// or a division by zero, are recorded in the Error field of the Result.
//
// Returns govern.Halted if the instruction was the exit syscall.
func Execute(ins instructions.Instruction, curr registers.State, next *registers.State, mem cpubus.Memory) (execution.Result, govern.State) {
	result := execution.Result{
		Address:     curr.PC,
		Instruction: ins,
	}

	rs := curr.GPR[ins.Rs]
	rt := curr.GPR[ins.Rt]

	// effective address of load and store instructions
	ea := rs + ins.SignExtImm()

	// branch target if branch is taken
	branch := curr.PC + 4 + ins.SignExtImm()<<2

	memErr := func(err error) {
		if err != nil && result.Error == "" {
			result.Error = err.Error()
		}
	}

	switch ins.Operator() {
	case instructions.ADD, instructions.ADDU:
		next.GPR[ins.Rd] = rs + rt

	case instructions.SUB, instructions.SUBU:
		next.GPR[ins.Rd] = rs - rt

	case instructions.MULT:
		p := uint64(int64(int32(rs)) * int64(int32(rt)))
		next.HI = uint32(p >> 32)
		next.LO = uint32(p)

	case instructions.MULTU:
		p := uint64(rs) * uint64(rt)
		next.HI = uint32(p >> 32)
		next.LO = uint32(p)

	case instructions.DIV:
		if rt == 0 {
			result.Error = curated.Errorf(DivideByZero, ins.Defn.Mnemonic).Error()
			break
		}
		next.LO = uint32(int32(rs) / int32(rt))
		next.HI = uint32(int32(rs) % int32(rt))

	case instructions.DIVU:
		if rt == 0 {
			result.Error = curated.Errorf(DivideByZero, ins.Defn.Mnemonic).Error()
			break
		}
		next.LO = rs / rt
		next.HI = rs % rt

	case instructions.AND:
		next.GPR[ins.Rd] = rs & rt

	case instructions.OR:
		next.GPR[ins.Rd] = rs | rt

	case instructions.XOR:
		next.GPR[ins.Rd] = rs ^ rt

	case instructions.NOR:
		next.GPR[ins.Rd] = ^(rs | rt)

	case instructions.SLT:
		next.GPR[ins.Rd] = boolToWord(int32(rs) < int32(rt))

	case instructions.SLL:
		next.GPR[ins.Rd] = rt << ins.Shamt

	case instructions.SRL:
		next.GPR[ins.Rd] = rt >> ins.Shamt

	case instructions.SRA:
		next.GPR[ins.Rd] = uint32(int32(rt) >> ins.Shamt)

	case instructions.MFHI:
		next.GPR[ins.Rd] = curr.HI

	case instructions.MFLO:
		next.GPR[ins.Rd] = curr.LO

	case instructions.MTHI:
		next.HI = rs

	case instructions.MTLO:
		next.LO = rs

	case instructions.JR:
		next.PC = rs
		result.Flow = true

	case instructions.JALR:
		next.GPR[ins.Rd] = curr.PC + 8
		next.PC = rs
		result.Flow = true

	case instructions.SYSCALL:
		if curr.GPR[registers.V0] == ExitSyscall {
			result.Halted = true
			return result, govern.Halted
		}
		result.Error = curated.Errorf(UnhandledSyscall, curr.GPR[registers.V0]).Error()

	case instructions.ADDI, instructions.ADDIU:
		next.GPR[ins.Rt] = rs + ins.SignExtImm()

	case instructions.ANDI:
		next.GPR[ins.Rt] = rs & ins.ZeroExtImm()

	case instructions.ORI:
		next.GPR[ins.Rt] = rs | ins.ZeroExtImm()

	case instructions.XORI:
		next.GPR[ins.Rt] = rs ^ ins.ZeroExtImm()

	case instructions.SLTI:
		next.GPR[ins.Rt] = boolToWord(int32(rs) < int32(ins.SignExtImm()))

	case instructions.LUI:
		next.GPR[ins.Rt] = uint32(ins.Imm) << 16

	case instructions.LW:
		v, err := mem.Read32(ea)
		memErr(err)
		next.GPR[ins.Rt] = v

	case instructions.SW:
		memErr(mem.Write32(ea, rt))

	case instructions.SH:
		memErr(mem.Write16(ea, uint16(rt)))

	case instructions.SB:
		memErr(mem.Write8(ea, uint8(rt)))

	case instructions.BEQ:
		if rs == rt {
			next.PC = branch
			result.Flow = true
		}

	case instructions.BNE:
		if rs != rt {
			next.PC = branch
			result.Flow = true
		}

	case instructions.BLEZ:
		if int32(rs) <= 0 {
			next.PC = branch
			result.Flow = true
		}

	case instructions.BGTZ:
		if int32(rs) > 0 {
			next.PC = branch
			result.Flow = true
		}

	case instructions.J:
		next.PC = jumpTarget(curr.PC, ins.Target)
		result.Flow = true

	case instructions.JAL:
		next.GPR[registers.RA] = curr.PC + 8
		next.PC = jumpTarget(curr.PC, ins.Target)
		result.Flow = true

	default:
		result.Error = curated.Errorf(UnknownOperator, ins.Word).Error()
	}

	return result, govern.Running
}

// the upper four bits of the jump target are taken from the address of the
// jump instruction
func jumpTarget(pc uint32, target uint32) uint32 {
	return (pc & 0xf0000000) | (target << 2)
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
