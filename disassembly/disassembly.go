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

package disassembly

import (
	"github.com/jetsetilly/mipsim/curated"
)

// Peeker is the memory interface required by FromMemory().
type Peeker interface {
	Peek(address uint32) uint32
}

// Disassembly is a linear disassembly of a block of words.
type Disassembly struct {
	Origin  uint32
	Entries []*Entry
}

// FromProgram disassembles the program words. The first word is at the
// origin address.
func FromProgram(origin uint32, program []uint32) *Disassembly {
	dsm := &Disassembly{
		Origin:  origin,
		Entries: make([]*Entry, 0, len(program)),
	}
	for i, w := range program {
		dsm.Entries = append(dsm.Entries, newEntry(origin+uint32(i*4), w))
	}
	return dsm
}

// FromMemory disassembles the words of memory from the start address to the
// end address inclusive.
func FromMemory(mem Peeker, start uint32, end uint32) (*Disassembly, error) {
	if end < start {
		return nil, curated.Errorf("disassembly: end address (0x%08x) is before start address (0x%08x)", end, start)
	}

	dsm := &Disassembly{Origin: start}
	for a := uint64(start); a <= uint64(end); a += 4 {
		dsm.Entries = append(dsm.Entries, newEntry(uint32(a), mem.Peek(uint32(a))))
	}
	return dsm, nil
}

// Get returns the entry for the address. Returns false if the address is not
// part of the disassembly.
func (dsm *Disassembly) Get(address uint32) (*Entry, bool) {
	if address < dsm.Origin || (address-dsm.Origin)&0x03 != 0 {
		return nil, false
	}
	i := int((address - dsm.Origin) / 4)
	if i >= len(dsm.Entries) {
		return nil, false
	}
	return dsm.Entries[i], true
}
