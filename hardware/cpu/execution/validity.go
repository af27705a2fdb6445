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
	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Instruction.Defn == nil {
		return curated.Errorf("cpu: instruction not decoded")
	}

	if r.Address&0x03 != 0 {
		return curated.Errorf("cpu: instruction at unaligned address (0x%08x)", r.Address)
	}

	switch r.Instruction.Defn.Effect {
	case instructions.Read, instructions.Write:
		if r.Flow {
			return curated.Errorf("cpu: unexpected flow for %s instruction", r.Instruction.Defn.Mnemonic)
		}
	case instructions.Subroutine:
		if !r.Flow {
			return curated.Errorf("cpu: %s instruction did not change flow", r.Instruction.Defn.Mnemonic)
		}
	case instructions.Flow:
		if !r.Flow && !r.Instruction.Defn.IsBranch() {
			return curated.Errorf("cpu: %s instruction did not change flow", r.Instruction.Defn.Mnemonic)
		}
	}

	if r.Halted && r.Instruction.Defn.Effect != instructions.Interrupt {
		return curated.Errorf("cpu: unexpected halt by %s instruction", r.Instruction.Defn.Mnemonic)
	}

	return nil
}
