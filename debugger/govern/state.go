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

package govern

// State indicates the simulation's state.
type State int

// List of possible simulation states.
//
// Initialising is the state of a simulator that has been created but not yet
// reset. Reset() always moves the simulator to the Running state, whatever
// state it is in. The only other transition is from Running to Halted, which
// happens when the program requests it with the exit syscall.
const (
	Initialising State = iota
	Running
	Halted
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	}

	return ""
}

// ValidTransition checks whether a change from one state to another is
// allowed.
//
// Rules:
//
//  1. any state can move to Running (this is a reset)
//
//  2. Running can move to Halted
//
//  3. a state can always move to itself
func ValidTransition(from State, to State) bool {
	if from == to || to == Running {
		return true
	}
	return from == Running && to == Halted
}
