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
	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
	"github.com/jetsetilly/mipsim/logger"
)

// checkState returns an error if the simulation has never been reset. A
// halted simulation is not an error but the condition is logged.
func (sim *Simulator) checkState() error {
	switch sim.state {
	case govern.Initialising:
		return curated.Errorf(NotReset)
	case govern.Halted:
		logger.Log(logger.Allow, "hardware", HaltedNoop)
	}
	return nil
}

// cycle executes a single instruction and updates the simulation state.
func (sim *Simulator) cycle() error {
	state, err := sim.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}

	sim.InstructionCount++

	if sim.CPU.LastResult.Instruction.Operator() == instructions.Unknown {
		sim.UnknownCount++
	}

	if !govern.ValidTransition(sim.state, state) {
		return curated.Errorf(BadTransition, sim.state, state)
	}
	if state == govern.Halted {
		logger.Logf(logger.Allow, "hardware", "halted after %d instructions", sim.InstructionCount)
	}
	sim.state = state

	return nil
}

// Step the simulation for up to n cycles. Stepping ends early if the program
// halts. Returns the number of cycles executed.
//
// If the simulation is already halted then no cycles are executed. Use
// IsHalted() to distinguish this from a request for zero cycles.
func (sim *Simulator) Step(n int) (int, error) {
	if err := sim.checkState(); err != nil {
		return 0, err
	}

	var i int
	for i = 0; i < n && sim.state == govern.Running; i++ {
		if err := sim.cycle(); err != nil {
			return i, err
		}
	}

	return i, nil
}
