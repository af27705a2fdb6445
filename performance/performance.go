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


// Package performance contains helper functions for profiling the simulator.
// The profiles are written in the pprof format.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/mipsim/curated"
)

// ProfileError is the pattern of all errors returned by the package.
const ProfileError = "performance: %v"

// ProfileCPU executes the run function while profiling the CPU. The profile
// is written to the named file.
func ProfileCPU(filename string, run func() error) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile to the named file.
func ProfileMem(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return curated.Errorf(ProfileError, err)
	}

	return nil
}
