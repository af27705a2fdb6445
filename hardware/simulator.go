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
	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/hardware/cpu"
	"github.com/jetsetilly/mipsim/hardware/cpu/registers"
	"github.com/jetsetilly/mipsim/hardware/memory"
	"github.com/jetsetilly/mipsim/hardware/memory/memorymap"
	"github.com/jetsetilly/mipsim/logger"
)

// HaltedNoop is logged when a halted simulation is asked to run.
const HaltedNoop = "simulation has halted. reset to run again"

// Sentinel error patterns.
const (
	NotReset       = "hardware: simulation has not been reset"
	BadTransition  = "hardware: invalid state change (%s to %s)"
	BadRegister    = "hardware: no such register (%d)"
	ProgramTooLong = "hardware: program of %d words does not fit in the text region"
)

// Simulator is the root of the simulated machine.
type Simulator struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// number of instructions executed since the last reset
	InstructionCount uint32

	// number of unknown instructions executed since the last reset
	UnknownCount int

	state govern.State

	// the program is copied to the text region on every reset
	program []uint32
}

// NewSimulator creates a new Simulator and everything associated with the
// hardware. The simulator is in the Initialising state until a program is
// loaded or until Reset() is called.
func NewSimulator() *Simulator {
	sim := &Simulator{
		Mem:   memory.NewMemory(),
		state: govern.Initialising,
	}
	sim.CPU = cpu.NewCPU(sim.Mem)
	return sim
}

// Load attaches the program to the simulator and resets it. The program is
// placed at the start of the text region.
func (sim *Simulator) Load(program []uint32) error {
	if uint64(len(program))*4 > uint64(memorymap.AreaSize) {
		return curated.Errorf(ProgramTooLong, len(program))
	}

	sim.program = make([]uint32, len(program))
	copy(sim.program, program)

	sim.Reset()
	logger.Logf(logger.Allow, "hardware", "%d words loaded into memory", len(program))

	return nil
}

// Program returns a copy of the loaded program.
func (sim *Simulator) Program() []uint32 {
	p := make([]uint32, len(sim.program))
	copy(p, sim.program)
	return p
}

// ProgramSize returns the number of words in the loaded program.
func (sim *Simulator) ProgramSize() int {
	return len(sim.program)
}

// Reset returns the machine to its initial condition:
//   - all registers and all memory are zeroed
//   - the program is copied to the start of the text region
//   - the PC points to the start of the text region
//   - the instruction count is zeroed
//
// The simulation will be in the Running state after the reset. Calling
// Reset() more than once has the same effect as calling it once.
func (sim *Simulator) Reset() {
	sim.Mem.Reset()
	for i, w := range sim.program {
		// program length is checked by Load() so this can not fail
		_ = sim.Mem.Write32(memorymap.OriginText+uint32(i*4), w)
	}

	sim.CPU.Reset(memorymap.OriginText)
	sim.InstructionCount = 0
	sim.UnknownCount = 0
	sim.state = govern.Running
}

// State returns the current state of the simulation.
func (sim *Simulator) State() govern.State {
	return sim.state
}

// IsHalted returns true if the program has halted. Only Reset() will return
// the simulation to the running state.
func (sim *Simulator) IsHalted() bool {
	return sim.state == govern.Halted
}

// ReadRegister returns the value of the general purpose register.
func (sim *Simulator) ReadRegister(reg int) (uint32, error) {
	if reg < 0 || reg >= registers.NumRegisters {
		return 0, curated.Errorf(BadRegister, reg)
	}
	return sim.CPU.Current.GPR[reg], nil
}

// WriteRegister changes the value of a general purpose register. The change
// is visible to the next instruction.
func (sim *Simulator) WriteRegister(reg int, value uint32) error {
	if reg < 0 || reg >= registers.NumRegisters {
		return curated.Errorf(BadRegister, reg)
	}
	return sim.CPU.SetRegister(reg, value)
}

// ReadHI returns the value of the HI register.
func (sim *Simulator) ReadHI() uint32 {
	return sim.CPU.Current.HI
}

// WriteHI changes the value of the HI register.
func (sim *Simulator) WriteHI(value uint32) {
	sim.CPU.SetHI(value)
}

// ReadLO returns the value of the LO register.
func (sim *Simulator) ReadLO() uint32 {
	return sim.CPU.Current.LO
}

// WriteLO changes the value of the LO register.
func (sim *Simulator) WriteLO(value uint32) {
	sim.CPU.SetLO(value)
}
