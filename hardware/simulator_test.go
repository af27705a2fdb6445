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

package hardware_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/hardware"
	"github.com/jetsetilly/mipsim/hardware/cpu/instructions"
	"github.com/jetsetilly/mipsim/hardware/cpu/registers"
	"github.com/jetsetilly/mipsim/hardware/memory/memorymap"
	"github.com/jetsetilly/mipsim/logger"
	"github.com/jetsetilly/mipsim/test"
)

const origin = memorymap.OriginText

// addiu $v0, $zero, 10; syscall
var haltProgram = []uint32{0x2402000a, 0x0000000c}

// j 0x00400000
var loopProgram = []uint32{instructions.EncodeJ(instructions.J, origin>>2)}

func newSimulator(t *testing.T, program []uint32) *hardware.Simulator {
	t.Helper()
	sim := hardware.NewSimulator()
	test.DemandSuccess(t, sim.Load(program))
	return sim
}

func TestNotReset(t *testing.T) {
	sim := hardware.NewSimulator()
	test.ExpectEquality(t, sim.State(), govern.Initialising)

	n, err := sim.Step(1)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, curated.Is(err, hardware.NotReset))

	n, err = sim.Run(context.Background())
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, curated.Is(err, hardware.NotReset))

	sim.Reset()
	test.ExpectEquality(t, sim.State(), govern.Running)
}

func TestHalt(t *testing.T) {
	sim := newSimulator(t, haltProgram)
	test.ExpectEquality(t, sim.ProgramSize(), 2)

	n, err := sim.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, sim.IsHalted())
	test.ExpectEquality(t, sim.InstructionCount, uint32(2))

	v, err := sim.ReadRegister(registers.V0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(10))

	// a halted simulation executes nothing and is not an error
	logger.Clear()
	n, err = sim.Step(5)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sim.InstructionCount, uint32(2))

	n, err = sim.Run(context.Background())
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sim.IsHalted())

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), hardware.HaltedNoop))

	// only reset leaves the halted state
	sim.Reset()
	test.ExpectFailure(t, sim.IsHalted())
	test.ExpectEquality(t, sim.InstructionCount, uint32(0))
}

func TestStepStopsAtHalt(t *testing.T) {
	sim := newSimulator(t, haltProgram)
	n, err := sim.Step(100)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectSuccess(t, sim.IsHalted())
}

func TestStepCount(t *testing.T) {
	sim := newSimulator(t, loopProgram)

	n, err := sim.Step(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, sim.InstructionCount, uint32(1))

	n, err = sim.Step(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, sim.InstructionCount, uint32(2))

	n, err = sim.Step(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, sim.InstructionCount, uint32(12))
	test.ExpectEquality(t, sim.CPU.Current.PC, origin)
}

func TestRunCancellation(t *testing.T) {
	sim := newSimulator(t, loopProgram)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := sim.Run(ctx)
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, sim.State(), govern.Running)

	// stop after a fixed number of cycles
	var count int
	n, err = sim.RunWithCheck(func() (govern.State, error) {
		count++
		if count > 1000 {
			return govern.Halted, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1000)
	test.ExpectEquality(t, sim.InstructionCount, uint32(1000))
	test.ExpectFailure(t, sim.IsHalted())
}

func TestResetIdempotence(t *testing.T) {
	sim := newSimulator(t, haltProgram)
	_, err := sim.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sim.WriteRegister(5, 99))
	test.ExpectSuccess(t, sim.Mem.Poke(memorymap.OriginData, 0x1234))
	sim.WriteHI(1)
	sim.WriteLO(2)

	sim.Reset()
	a := sim.Snapshot()
	sim.Reset()
	b := sim.Snapshot()

	test.ExpectEquality(t, a.CPU.Current, b.CPU.Current)
	test.ExpectEquality(t, a.InstructionCount, b.InstructionCount)
	test.ExpectEquality(t, a.State, govern.Running)
	test.ExpectEquality(t, b.State, govern.Running)
	test.ExpectEquality(t, b.CPU.Current.PC, origin)
	test.ExpectEquality(t, b.CPU.Current.HI, uint32(0))
	test.ExpectEquality(t, b.CPU.Current.GPR[5], uint32(0))
	test.ExpectEquality(t, b.Mem.Peek(memorymap.OriginData), uint32(0))
	test.ExpectEquality(t, b.Mem.Peek(origin), haltProgram[0])
	test.ExpectEquality(t, b.Mem.Peek(origin+4), haltProgram[1])
	test.ExpectEquality(t, b.Mem.Peek(origin+8), uint32(0))
}

func TestSnapshotPlumb(t *testing.T) {
	sim := newSimulator(t, haltProgram)
	s := sim.Snapshot()

	_, err := sim.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, sim.IsHalted())

	sim.Plumb(s)
	test.ExpectFailure(t, sim.IsHalted())
	test.ExpectEquality(t, sim.InstructionCount, uint32(0))

	// the plumbed state is a copy. running again does not change the
	// snapshot
	_, err = sim.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.CPU.Current.GPR[registers.V0], uint32(0))
	test.ExpectEquality(t, sim.CPU.Current.GPR[registers.V0], uint32(10))
}

func TestRegisterAccess(t *testing.T) {
	sim := newSimulator(t, haltProgram)

	test.ExpectSuccess(t, curated.Is(sim.WriteRegister(32, 1), hardware.BadRegister))
	_, err := sim.ReadRegister(-1)
	test.ExpectSuccess(t, curated.Is(err, hardware.BadRegister))

	test.ExpectSuccess(t, sim.WriteRegister(registers.RA, 0xcafe))
	v, err := sim.ReadRegister(registers.RA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xcafe))

	sim.WriteHI(0x11)
	sim.WriteLO(0x22)
	test.ExpectEquality(t, sim.ReadHI(), uint32(0x11))
	test.ExpectEquality(t, sim.ReadLO(), uint32(0x22))

	// writes are visible to the next instruction
	_, err = sim.Step(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sim.CPU.Current.GPR[registers.RA], uint32(0xcafe))
	test.ExpectEquality(t, sim.ReadHI(), uint32(0x11))

	d := sim.DumpRegisters()
	test.ExpectEquality(t, d.InstructionCount, uint32(1))
	test.ExpectEquality(t, d.PC, origin+4)
	test.ExpectSuccess(t, strings.Contains(d.String(), "[R2]\t: 0x0000000a\n"))
	test.ExpectSuccess(t, strings.Contains(d.String(), "[R31]\t: 0x0000cafe\n"))
	test.ExpectSuccess(t, strings.Contains(d.String(), "[HI]\t: 0x00000011\n"))
	test.ExpectSuccess(t, strings.Contains(d.String(), "# Instructions Executed\t: 1\n"))
}

func TestReadMemoryRange(t *testing.T) {
	sim := newSimulator(t, haltProgram)

	w := sim.ReadMemoryRange(origin, origin+4)
	test.DemandEquality(t, len(w), 2)
	test.ExpectEquality(t, w[0], hardware.Word{Address: origin, Value: haltProgram[0]})
	test.ExpectEquality(t, w[1], hardware.Word{Address: origin + 4, Value: haltProgram[1]})

	// end address is inclusive and does not need to be aligned
	w = sim.ReadMemoryRange(origin, origin+9)
	test.ExpectEquality(t, len(w), 3)

	w = sim.ReadMemoryRange(origin+4, origin)
	test.ExpectEquality(t, len(w), 0)

	// unmapped memory reads as zero
	w = sim.ReadMemoryRange(0, 4)
	test.ExpectEquality(t, len(w), 2)
	test.ExpectEquality(t, w[1].Value, uint32(0))

	// top of the address space does not wrap
	w = sim.ReadMemoryRange(0xfffffffc, 0xffffffff)
	test.ExpectEquality(t, len(w), 1)
}

func TestUnknownCount(t *testing.T) {
	sim := newSimulator(t, []uint32{0xfc000000, 0xfc000000, 0x2402000a, 0x0000000c})
	_, err := sim.Run(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sim.UnknownCount, 2)
	test.ExpectEquality(t, sim.InstructionCount, uint32(4))
}

func TestProgramTooLong(t *testing.T) {
	sim := hardware.NewSimulator()
	err := sim.Load(make([]uint32, memorymap.AreaSize/4+1))
	test.ExpectSuccess(t, curated.Is(err, hardware.ProgramTooLong))
	test.ExpectEquality(t, sim.State(), govern.Initialising)
}

func TestProgramIsCopied(t *testing.T) {
	p := []uint32{0x2402000a, 0x0000000c}
	sim := newSimulator(t, p)
	p[0] = 0
	test.ExpectEquality(t, sim.Program()[0], uint32(0x2402000a))
}
