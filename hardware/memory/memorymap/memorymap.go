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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case Text:
		return "Text"
	case Data:
		return "Data"
	case Stack:
		return "Stack"
	case KText:
		return "KText"
	case KData:
		return "KData"
	}

	return "undefined"
}

// The different memory areas. Undefined is the area of any address that
// doesn't fall within one of the other areas.
const (
	Undefined Area = iota
	Text
	Data
	Stack
	KText
	KData

	// NumAreas is the number of Area values, including Undefined
	NumAreas
)

// Areas lists all defined areas in order of their origin.
var Areas = []Area{Text, Data, Stack, KText, KData}

// AreaSize is the number of bytes in every memory area.
const AreaSize = uint32(0x00100000)

// The origin and memtop for each area of memory. Memtop is inclusive.
const (
	OriginText  = uint32(0x00400000)
	MemtopText  = OriginText + AreaSize - 1
	OriginData  = uint32(0x10000000)
	MemtopData  = OriginData + AreaSize - 1
	OriginStack = uint32(0x7ff00000)
	MemtopStack = OriginStack + AreaSize - 1
	OriginKText = uint32(0x80000000)
	MemtopKText = OriginKText + AreaSize - 1
	OriginKData = uint32(0x90000000)
	MemtopKData = OriginKData + AreaSize - 1
)

// Origin returns the first address in the area. Returns zero for the
// Undefined area.
func (a Area) Origin() uint32 {
	switch a {
	case Text:
		return OriginText
	case Data:
		return OriginData
	case Stack:
		return OriginStack
	case KText:
		return OriginKText
	case KData:
		return OriginKData
	}
	return 0
}

// Memtop returns the last address in the area. Returns zero for the
// Undefined area.
func (a Area) Memtop() uint32 {
	if a == Undefined {
		return 0
	}
	return a.Origin() + AreaSize - 1
}

// MapAddress returns the area the address is in and the offset of the address
// from the origin of that area. The offset is meaningless if the area is
// Undefined.
func MapAddress(address uint32) (uint32, Area) {
	for _, a := range Areas {
		if address >= a.Origin() && address <= a.Memtop() {
			return address - a.Origin(), a
		}
	}
	return 0, Undefined
}
