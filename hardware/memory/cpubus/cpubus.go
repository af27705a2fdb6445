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

// Package cpubus defines the memory operations required by the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory.Memory type implements this interface and maps the address
// to the correct memory area, meaning that the CPU need not care which part
// of memory it is accessing.
//
// Words are little-endian. Write16() and Write8() only change the two or one
// bytes starting at the address.
//
// An error is returned for an address that is not mapped. Implementations
// should return an error that matches memory.AddressError but the CPU treats
// all errors from the Memory interface as recoverable: reads from an unmapped
// address are zero and writes to an unmapped address are ignored.
type Memory interface {
	Read32(address uint32) (uint32, error)
	Write32(address uint32, data uint32) error
	Write16(address uint32, data uint16) error
	Write8(address uint32, data uint8) error
}
