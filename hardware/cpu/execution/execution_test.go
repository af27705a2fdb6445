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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/mipsim/hardware/cpu/execution"
	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
	"github.com/jetsetilly/mipsim/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "no instruction executed")

	r.Instruction = instructions.Decode(0x24020005)
	r.Address = 0x00400000
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "0x00400000: 24020005 addiu")

	r.Flow = true
	test.ExpectFailure(t, r.IsValid())

	// jal must always change flow
	r.Instruction = instructions.Decode(instructions.EncodeJ(instructions.JAL, 0x100004))
	test.ExpectSuccess(t, r.IsValid())
	r.Flow = false
	test.ExpectFailure(t, r.IsValid())

	// an untaken branch does not change flow
	r.Instruction = instructions.Decode(instructions.EncodeI(instructions.BEQ, 1, 2, 4))
	test.ExpectSuccess(t, r.IsValid())

	r.Halted = true
	test.ExpectFailure(t, r.IsValid())
	r.Instruction = instructions.Decode(0x0000000c)
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "0x00400000: 0000000c syscall [halted]")

	r.Reset()
	test.ExpectFailure(t, r.IsValid())
}
