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

package registers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/mipsim/curated"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 32

// Registers with a special meaning to the CPU.
const (
	// V0 holds the service code for the syscall instruction
	V0 = 2

	// RA is the link register written by the JAL instruction
	RA = 31
)

// Names of the general purpose registers according to the usual calling
// convention. Indexed by register number.
var Names = [NumRegisters]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// Label returns the conventional name of the register, including the dollar
// prefix. Returns the empty string for an invalid register number.
func Label(reg int) string {
	if reg < 0 || reg >= NumRegisters {
		return ""
	}
	return "$" + Names[reg]
}

// UnknownRegister is the pattern of the error returned by Parse().
const UnknownRegister = "registers: unknown register (%s)"

// Parse converts a string to a register number. The string can be the number
// of the register, with or without a leading dollar sign or letter R, or the
// conventional name of the register, with or without a leading dollar sign.
//
//	"2", "$2", "r2", "R2", "v0", "$v0"
//
// are all register two.
func Parse(s string) (int, error) {
	r := strings.ToLower(strings.TrimSpace(s))
	r = strings.TrimPrefix(r, "$")

	for i, n := range Names {
		if r == n {
			return i, nil
		}
	}

	// alternative name for fp
	if r == "s8" {
		return 30, nil
	}

	r = strings.TrimPrefix(r, "r")
	n, err := strconv.ParseUint(r, 10, 8)
	if err != nil || n >= NumRegisters {
		return 0, curated.Errorf(UnknownRegister, s)
	}

	return int(n), nil
}

// State is a snapshot of all architecturally visible registers.
type State struct {
	PC  uint32
	GPR [NumRegisters]uint32
	HI  uint32
	LO  uint32
}

// Reset zeroes all registers and sets the program counter.
func (st *State) Reset(pc uint32) {
	*st = State{PC: pc}
}

// String lists the PC, HI and LO registers and any general purpose register
// with a non-zero value.
func (st State) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=0x%08x HI=0x%08x LO=0x%08x", st.PC, st.HI, st.LO))
	for i, v := range st.GPR {
		if v != 0 {
			s.WriteString(fmt.Sprintf(" %s=0x%08x", Label(i), v))
		}
	}
	return s.String()
}

// Diff returns the labels of the registers whose value differs between the
// two states.
func (st State) Diff(other State) []string {
	var d []string
	if st.PC != other.PC {
		d = append(d, "PC")
	}
	for i := range st.GPR {
		if st.GPR[i] != other.GPR[i] {
			d = append(d, Label(i))
		}
	}
	if st.HI != other.HI {
		d = append(d, "HI")
	}
	if st.LO != other.LO {
		d = append(d, "LO")
	}
	return d
}
