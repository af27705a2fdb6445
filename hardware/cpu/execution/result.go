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

package execution

import (
	"fmt"

	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
)

// Result records the state/result of the most recently executed instruction.
type Result struct {
	// address of the instruction, the value of the PC when the instruction
	// was fetched
	Address uint32

	// the decoded instruction. the Defn field of the instruction is nil if
	// the CPU has been reset and no instruction has been executed since
	Instruction instructions.Instruction

	// whether the instruction set the PC explicitly. a branch that is not
	// taken does not set Flow
	Flow bool

	// whether the instruction halted the CPU
	Halted bool

	// any non-fatal problem encountered during execution, for example an
	// access to unmapped memory or a division by zero
	Error string

	// whether this data has been finalised. the values of the other fields
	// may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Instruction.Defn == nil {
		return "no instruction executed"
	}

	s := fmt.Sprintf("0x%08x: %08x %s", r.Address, r.Instruction.Word, r.Instruction.Defn.Mnemonic)
	if r.Flow {
		s = fmt.Sprintf("%s [flow]", s)
	}
	if r.Halted {
		s = fmt.Sprintf("%s [halted]", s)
	}
	if r.Error != "" {
		s = fmt.Sprintf("%s (%s)", s, r.Error)
	}
	return s
}
