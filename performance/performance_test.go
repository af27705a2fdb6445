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


package performance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/performance"
	"github.com/jetsetilly/mipsim/test"
)

func TestProfiles(t *testing.T) {
	dir := t.TempDir()

	var ran bool
	cpu := filepath.Join(dir, "cpu.profile")
	err := performance.ProfileCPU(cpu, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	mem := filepath.Join(dir, "mem.profile")
	test.ExpectSuccess(t, performance.ProfileMem(mem))

	info, err := os.Stat(mem)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, info.Size(), int64(0))

	// file can not be created
	err = performance.ProfileMem(filepath.Join(dir, "missing", "mem.profile"))
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}
