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

// Format of the instruction word.
type Format int

// List of instruction formats.
const (
	// register: opcode rs rt rd shamt funct
	Register Format = iota

	// immediate: opcode rs rt imm
	Immediate

	// jump: opcode target
	Jump
)

func (f Format) String() string {
	switch f {
	case Register:
		return "R"
	case Immediate:
		return "I"
	case Jump:
		return "J"
	}
	return "unknown format"
}

// Effect categorises an instruction by the effect it has.
type Effect int

// List of effect categories.
const (
	// register results and memory loads
	Read Effect = iota

	// memory stores
	Write

	// jumps and branches
	Flow

	// jumps that save a return address
	Subroutine

	// the syscall instruction
	Interrupt
)

func (e Effect) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}
