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


// Package digest produces a cryptographic hash of the register state of the
// simulator as it executes a program. The hash can be used to compare the
// execution of a program with a previous execution. If the hashes differ
// then the executions differ.
//
// The hash is chained. The previous hash is included in the data of the next
// hash so the final hash depends on every intermediate register state and not
// only on the final state.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/mipsim/hardware/cpu/registers"
)

// Digest implementations compute a hash of the simulation.
type Digest interface {
	Hash() string
	ResetDigest()
}

// the number of bytes required to store a register state: PC, the GPRs, HI
// and LO.
const stateLen = (registers.NumRegisters + 3) * 4

// Registers is a chained hash of the register state.
type Registers struct {
	digest [sha1.Size]byte
	data   [sha1.Size + stateLen]byte
	count  int
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	return &Registers{}
}

// Hash implements the Digest interface.
func (dig *Registers) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Registers) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.count = 0
}

// Count returns the number of states added to the digest since the last
// reset.
func (dig *Registers) Count() int {
	return dig.count
}

// Update adds the register state to the digest.
func (dig *Registers) Update(state registers.State) {
	copy(dig.data[:], dig.digest[:])

	b := dig.data[sha1.Size:]
	binary.LittleEndian.PutUint32(b, state.PC)
	for i, v := range state.GPR {
		binary.LittleEndian.PutUint32(b[4+i*4:], v)
	}
	binary.LittleEndian.PutUint32(b[stateLen-8:], state.HI)
	binary.LittleEndian.PutUint32(b[stateLen-4:], state.LO)

	dig.digest = sha1.Sum(dig.data[:])
	dig.count++
}
