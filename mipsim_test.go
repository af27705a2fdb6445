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


package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/mipsim/test"
)

const program = `# compute 5 + 7 and halt
24020005
24030007
00432020
2402000a
0000000c
`

func writeProgram(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestRunMode(t *testing.T) {
	fn := writeProgram(t, program)
	out := &test.CompareWriter{}

	test.ExpectEquality(t, launch(context.Background(), []string{"run", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "# Instructions Executed\t: 5"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "[R4]\t: 0x0000000c"))
	test.ExpectFailure(t, strings.Contains(out.String(), "did not halt"))
}

func TestRunModeCycleLimit(t *testing.T) {
	fn := writeProgram(t, program)
	out := &test.CompareWriter{}

	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-cycles", "2", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "# Instructions Executed\t: 2"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "did not halt after 2 instructions"))
}

func TestRunModeCancelled(t *testing.T) {
	// a program that loops forever
	fn := writeProgram(t, "08100000\n")
	out := &test.CompareWriter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	test.ExpectEquality(t, launch(ctx, []string{"run", fn}, out), exitMode)
	test.ExpectSuccess(t, strings.Contains(out.String(), "* error in RUN mode"))
}

func TestDisasmMode(t *testing.T) {
	fn := writeProgram(t, program)
	out := &test.CompareWriter{}

	test.ExpectEquality(t, launch(context.Background(), []string{"disasm", "-bytecode", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "[0x00400008]\t00432020\tadd $a0, $v0, $v1\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "[0x00400010]\t0000000c\tsyscall\n"))
}

func TestArgumentErrors(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-nosuchflag"}, out), exitArguments)

	out.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"run"}, out), exitMode)
	test.ExpectSuccess(t, strings.Contains(out.String(), "program file required for RUN mode"))

	out.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"disasm", "a", "b"}, out), exitMode)
	test.ExpectSuccess(t, strings.Contains(out.String(), "too many arguments"))

	out.Clear()
	fn := writeProgram(t, "not a program\n")
	test.ExpectEquality(t, launch(context.Background(), []string{"run", fn}, out), exitMode)
	test.ExpectSuccess(t, strings.Contains(out.String(), "malformed word"))

	out.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"run", filepath.Join(t.TempDir(), "missing.txt")}, out), exitMode)
}

func TestHelp(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available sub-modes: DEBUG, RUN, DISASM, VERSION"))
}

func TestVersionMode(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"version"}, out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Mipsim "))
}

func TestRunModeDigest(t *testing.T) {
	fn := writeProgram(t, program)

	hash := func() string {
		out := &test.CompareWriter{}
		test.ExpectEquality(t, launch(context.Background(), []string{"run", "-digest", fn}, out), 0)
		i := strings.Index(out.String(), "digest: ")
		if i < 0 {
			t.Fatalf("no digest in output")
		}
		return strings.TrimSpace(out.String()[i+len("digest: "):])
	}

	first := hash()
	test.ExpectEquality(t, len(first), 40)
	test.ExpectEquality(t, hash(), first)
}
