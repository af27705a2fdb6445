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


package terminal_test

import (
	"testing"

	"github.com/jetsetilly/mipsim/debugger/terminal"
	"github.com/jetsetilly/mipsim/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: "MU-MIPS SIM:"}
	test.ExpectEquality(t, p.String(), "MU-MIPS SIM:> ")

	p.Type = terminal.PromptTypeHalted
	test.ExpectEquality(t, p.String(), "MU-MIPS SIM: (halted)> ")
}
