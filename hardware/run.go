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

package hardware

import (
	"context"

	"github.com/jetsetilly/mipsim/debugger/govern"
)

// Run sets the simulation running as quickly as possible until the program
// halts or the context is cancelled. The context is checked between cycles.
//
// Returns the number of cycles executed. If the run ended because of the
// context then the context's error is returned.
//
// If the simulation is already halted then no cycles are executed and no
// error is returned.
func (sim *Simulator) Run(ctx context.Context) (int, error) {
	return sim.RunWithCheck(func() (govern.State, error) {
		if err := ctx.Err(); err != nil {
			return govern.Halted, err
		}
		return govern.Running, nil
	})
}

// RunWithCheck sets the simulation running until the program halts or the
// continueCheck function returns a state other than govern.Running or an
// error. The continueCheck function is called before every cycle. A nil
// continueCheck is allowed.
//
// Returns the number of cycles executed and any error returned by
// continueCheck.
func (sim *Simulator) RunWithCheck(continueCheck func() (govern.State, error)) (int, error) {
	if err := sim.checkState(); err != nil {
		return 0, err
	}

	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var n int
	for sim.state == govern.Running {
		state, err := continueCheck()
		if err != nil {
			return n, err
		}
		if state != govern.Running {
			break
		}

		if err := sim.cycle(); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}
