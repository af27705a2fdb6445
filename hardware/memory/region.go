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
	"encoding/hex"
	"fmt"

	"github.com/jetsetilly/mipsim/hardware/memory/memorymap"
)

// Region is a contiguous, byte addressable area of memory.
type Region struct {
	area   memorymap.Area
	origin uint32
	memtop uint32
	data   []uint8
}

func newRegion(area memorymap.Area, origin uint32, memtop uint32) *Region {
	return &Region{
		area:   area,
		origin: origin,
		memtop: memtop,
		data:   make([]uint8, memtop-origin+1),
	}
}

func (r *Region) String() string {
	return fmt.Sprintf("%s [0x%08x -> 0x%08x]", r.area, r.origin, r.memtop)
}

// Label returns the name of the region.
func (r *Region) Label() string {
	return r.area.String()
}

// Area returns the memory area the region covers.
func (r *Region) Area() memorymap.Area {
	return r.area
}

// Origin returns the first address of the region.
func (r *Region) Origin() uint32 {
	return r.origin
}

// Memtop returns the last address of the region. Memtop is inclusive.
func (r *Region) Memtop() uint32 {
	return r.memtop
}

// Dump returns a hex dump of the bytes between the two addresses. Addresses
// outside of the region are clamped.
func (r *Region) Dump(from uint32, to uint32) string {
	if from < r.origin {
		from = r.origin
	}
	if to > r.memtop {
		to = r.memtop
	}
	if from > to {
		return ""
	}
	return hex.Dump(r.data[from-r.origin : to-r.origin+1])
}

func (r *Region) reset() {
	clear(r.data)
}

func (r *Region) snapshot() *Region {
	n := *r
	n.data = make([]uint8, len(r.data))
	copy(n.data, r.data)
	return &n
}
