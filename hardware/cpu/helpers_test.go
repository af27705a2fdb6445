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

package cpu_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/hardware/cpu"
	"github.com/jetsetilly/mipsim/hardware/memory"
)

// mockMem is a sparse little-endian memory. addresses with the top byte set
// to 0xff are unmapped
type mockMem struct {
	internal map[uint32]uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make(map[uint32]uint8)}
}

func unmapped(address uint32, width int) error {
	if (address+uint32(width)-1)&0xff000000 == 0xff000000 {
		return curated.Errorf(memory.AddressError, address, width)
	}
	return nil
}

func (mem *mockMem) Read32(address uint32) (uint32, error) {
	if err := unmapped(address, 4); err != nil {
		return 0, err
	}
	var b [4]uint8
	for i := range b {
		b[i] = mem.internal[address+uint32(i)]
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (mem *mockMem) write(address uint32, b []uint8) error {
	if err := unmapped(address, len(b)); err != nil {
		return err
	}
	for i := range b {
		mem.internal[address+uint32(i)] = b[i]
	}
	return nil
}

func (mem *mockMem) Write32(address uint32, data uint32) error {
	return mem.write(address, binary.LittleEndian.AppendUint32(nil, data))
}

func (mem *mockMem) Write16(address uint32, data uint16) error {
	return mem.write(address, binary.LittleEndian.AppendUint16(nil, data))
}

func (mem *mockMem) Write8(address uint32, data uint8) error {
	return mem.write(address, []uint8{data})
}

func (mem *mockMem) putInstructions(origin uint32, words ...uint32) uint32 {
	for _, w := range words {
		_ = mem.Write32(origin, w)
		origin += 4
	}
	return origin
}

func (mem *mockMem) assert(t *testing.T, address uint32, value uint32) {
	t.Helper()
	d, _ := mem.Read32(address)
	if d != value {
		t.Errorf("memory assertion failed (%08x  - wanted %08x at address %08x)", d, value, address)
	}
}

// step executes a single instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) govern.State {
	t.Helper()
	state, err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return state
}
