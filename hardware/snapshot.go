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
	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/hardware/cpu"
	"github.com/jetsetilly/mipsim/hardware/memory"
)

// State stores the simulator sub-systems and counters. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	InstructionCount uint32
	UnknownCount     int
	State            govern.State
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	n := *s
	n.CPU = s.CPU.Snapshot()
	n.Mem = s.Mem.Snapshot()
	return &n
}

// Snapshot the state of the simulator.
func (sim *Simulator) Snapshot() *State {
	return &State{
		CPU:              sim.CPU.Snapshot(),
		Mem:              sim.Mem.Snapshot(),
		InstructionCount: sim.InstructionCount,
		UnknownCount:     sim.UnknownCount,
		State:            sim.state,
	}
}

// Plumb a previously snapshotted state into the simulator. The loaded
// program is not part of the state and is not changed.
func (sim *Simulator) Plumb(state *State) {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// simulation to change what is stored in the state
	s := state.Snapshot()
	sim.CPU = s.CPU
	sim.Mem = s.Mem
	sim.CPU.Plumb(sim.Mem)
	sim.InstructionCount = s.InstructionCount
	sim.UnknownCount = s.UnknownCount
	sim.state = s.State
}
