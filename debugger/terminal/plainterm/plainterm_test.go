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


package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/terminal"
	"github.com/jetsetilly/mipsim/debugger/terminal/plainterm"
	"github.com/jetsetilly/mipsim/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("rdump\nrun 10\n"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{Content: "MU-MIPS SIM:"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "rdump")

	s, err = pt.TermRead(terminal.Prompt{Content: "MU-MIPS SIM:"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "run 10")

	_, err = pt.TermRead(terminal.Prompt{Content: "MU-MIPS SIM:"})
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	// prompt is not written when input is not a real terminal
	test.ExpectEquality(t, out.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, out.String(), "feedback\n* error\n")

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectEquality(t, out.String(), "* error\n")
}
