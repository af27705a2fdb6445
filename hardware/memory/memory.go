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

package memory

import (
	"encoding/binary"
	"strings"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/hardware/memory/memorymap"
)

// AddressError is the pattern of the error returned when an access is to an
// address that is not mapped to a memory region. Also returned when the
// access starts inside a region but extends past the end of it.
const AddressError = "memory: address 0x%08x is not mapped (%d byte access)"

// Memory is the entire address space of the machine.
type Memory struct {
	Regions []*Region

	// quick access to the text region, which is where programs are loaded
	Text *Region

	// regions indexed by memorymap.Area. the entry for memorymap.Undefined
	// is always nil
	areas [memorymap.NumAreas]*Region
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All regions are allocated and zeroed.
func NewMemory() *Memory {
	mem := &Memory{}
	for _, a := range memorymap.Areas {
		mem.Regions = append(mem.Regions, newRegion(a, a.Origin(), a.Memtop()))
	}
	mem.index()
	return mem
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	for _, r := range mem.Regions {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := &Memory{}
	for _, r := range mem.Regions {
		n.Regions = append(n.Regions, r.snapshot())
	}
	n.index()
	return n
}

func (mem *Memory) index() {
	for _, r := range mem.Regions {
		mem.areas[r.area] = r
	}
	mem.Text = mem.areas[memorymap.Text]
}

// Reset zeroes all regions.
func (mem *Memory) Reset() {
	for _, r := range mem.Regions {
		r.reset()
	}
}

// resolve the address to the bytes it refers to. all width bytes must be in
// the same region.
func (mem *Memory) resolve(address uint32, width uint32) ([]uint8, error) {
	offset, area := memorymap.MapAddress(address)
	r := mem.areas[area]
	if r == nil || offset+width > uint32(len(r.data)) {
		return nil, curated.Errorf(AddressError, address, width)
	}
	return r.data[offset : offset+width], nil
}

// Read32 is an implementation of cpubus.Memory. Returns zero for an address
// that is not mapped.
func (mem *Memory) Read32(address uint32) (uint32, error) {
	b, err := mem.resolve(address, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Write32 is an implementation of cpubus.Memory. Writes to an address that
// is not mapped are ignored.
func (mem *Memory) Write32(address uint32, data uint32) error {
	b, err := mem.resolve(address, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, data)
	return nil
}

// Write16 is an implementation of cpubus.Memory.
func (mem *Memory) Write16(address uint32, data uint16) error {
	b, err := mem.resolve(address, 2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, data)
	return nil
}

// Write8 is an implementation of cpubus.Memory.
func (mem *Memory) Write8(address uint32, data uint8) error {
	b, err := mem.resolve(address, 1)
	if err != nil {
		return err
	}
	b[0] = data
	return nil
}

// Peek returns the word at the address without any side effects. Unmapped
// addresses return zero.
func (mem *Memory) Peek(address uint32) uint32 {
	v, _ := mem.Read32(address)
	return v
}

// Poke writes the word to the address. Unlike Write32() the AddressError is
// not recoverable from the debugger's point of view so it is returned to the
// caller to report.
func (mem *Memory) Poke(address uint32, value uint32) error {
	return mem.Write32(address, value)
}

// Region returns the region for the address, or nil if the address is not
// mapped.
func (mem *Memory) Region(address uint32) *Region {
	_, area := memorymap.MapAddress(address)
	return mem.areas[area]
}
