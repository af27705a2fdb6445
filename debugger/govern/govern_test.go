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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/mipsim/debugger/govern"
	"github.com/jetsetilly/mipsim/test"
)

func TestTransitions(t *testing.T) {
	test.ExpectSuccess(t, govern.ValidTransition(govern.Initialising, govern.Running))
	test.ExpectSuccess(t, govern.ValidTransition(govern.Running, govern.Halted))
	test.ExpectSuccess(t, govern.ValidTransition(govern.Halted, govern.Running))
	test.ExpectSuccess(t, govern.ValidTransition(govern.Halted, govern.Halted))
	test.ExpectFailure(t, govern.ValidTransition(govern.Initialising, govern.Halted))
	test.ExpectFailure(t, govern.ValidTransition(govern.Running, govern.Initialising))
	test.ExpectFailure(t, govern.ValidTransition(govern.Halted, govern.Initialising))
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, govern.Halted.String(), "Halted")
	test.ExpectEquality(t, govern.State(99).String(), "")
}
