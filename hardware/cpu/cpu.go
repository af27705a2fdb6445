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
	"github.com/jetsetilly/mipsim/hardware/memory"
	"github.com/jetsetilly/mipsim/hardware/memory/cpubus"
	"github.com/jetsetilly/mipsim/logger"
)

// Sentinel error patterns.
const (
	HaltedError      = "cpu: cpu is halted"
	BadRegister      = "cpu: no such register (%d)"
	FetchError       = "cpu: instruction fetch failed: %v"
	DivideByZero     = "cpu: division by zero (%s)"
	UnhandledSyscall = "cpu: unhandled syscall (%#x)"
	UnknownOperator  = "cpu: unknown instruction (%08x)"
	NotPlumbed       = "cpu: no memory has been plumbed in"
)

// CPU implements the processor of the simulated machine.
type CPU struct {
	// the state of the registers before and after the current instruction.
	// outside of ExecuteInstruction() the two states are identical
	Current registers.State
	Next    registers.State

	mem cpubus.Memory

	// the result of the most recent instruction. reset by Reset()
	LastResult execution.Result

	// the cpu has executed the exit syscall. requires a Reset()
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is not reset and the state of the registers is zero.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem: mem,
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy has no
// memory attached and must be plumbed with Plumb() before it can execute.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.mem = nil
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return mc.Current.String()
}

// Reset zeroes all registers and sets the program counter.
func (mc *CPU) Reset(pc uint32) {
	mc.LastResult.Reset()
	mc.Current.Reset(pc)
	mc.Next = mc.Current
	mc.Halted = false
}

// HasReset checks whether the CPU has been reset and no instruction has been
// executed since.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Instruction.Defn == nil
}

// SetRegister changes the value of a general purpose register. Both the
// current and the next state are changed.
func (mc *CPU) SetRegister(reg int, value uint32) error {
	if reg < 0 || reg >= registers.NumRegisters {
		return curated.Errorf(BadRegister, reg)
	}
	mc.Current.GPR[reg] = value
	mc.Next.GPR[reg] = value
	return nil
}

// SetHI changes the value of the HI register in both the current and next
// state.
func (mc *CPU) SetHI(value uint32) {
	mc.Current.HI = value
	mc.Next.HI = value
}

// SetLO changes the value of the LO register in both the current and next
// state.
func (mc *CPU) SetLO(value uint32) {
	mc.Current.LO = value
	mc.Next.LO = value
}

// LoadPC changes the value of the program counter in both the current and
// next state.
func (mc *CPU) LoadPC(address uint32) {
	mc.Current.PC = address
	mc.Next.PC = address
}

// ExecuteInstruction performs a single cycle: fetch, decode and execute of
// the instruction pointed to by the program counter.
//
// Accesses to unmapped memory do not stop execution. They are logged and
// recorded in LastResult.Error. Any other error from the memory
// implementation is returned.
//
// Returns govern.Halted if the instruction halted the CPU, govern.Running
// otherwise.
func (mc *CPU) ExecuteInstruction() (govern.State, error) {
	if mc.Halted {
		return govern.Halted, curated.Errorf(HaltedError)
	}
	if mc.mem == nil {
		return govern.Running, curated.Errorf(NotPlumbed)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Current.PC

	w, fetchErr := mc.mem.Read32(mc.Current.PC)
	if fetchErr != nil {
		if !curated.Is(fetchErr, memory.AddressError) {
			return govern.Running, curated.Errorf(FetchError, fetchErr)
		}
	}

	ins := instructions.Decode(w)

	mc.Next = mc.Current
	result, state := Execute(ins, mc.Current, &mc.Next, mc.mem)
	if fetchErr != nil {
		result.Error = fetchErr.Error()
	}
	if !result.Flow {
		mc.Next.PC = mc.Current.PC + 4
	}
	mc.Current = mc.Next

	result.Final = true
	mc.LastResult = result

	if result.Error != "" {
		logger.Logf(logger.Allow, "cpu", "%s at 0x%08x", result.Error, result.Address)
	}

	if state == govern.Halted {
		mc.Halted = true
	}

	return state, nil
}
