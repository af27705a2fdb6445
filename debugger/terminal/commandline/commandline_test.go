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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/terminal/commandline"
	"github.com/jetsetilly/mipsim/test"
)

var testTemplate = []string{
	"RUN %<cycles>N",
	"RDUMP",
	"RESET",
	"MDUMP %<start>X %<end>X",
	"INPUT %<register>S %<value>N",
	"LOG (LAST|CLEAR)",
	"GREP (MNEMONIC|OPERAND) %S",
	"DISPLAY [ON|OFF] (%N)",
}

func TestTokens(t *testing.T) {
	tk := commandline.TokeniseInput("  mdump   0x10000000 \"a b\" ")
	test.ExpectEquality(t, tk.Len(), 3)
	test.ExpectEquality(t, tk.String(), "mdump 0x10000000 a b")

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "mdump")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0x10000000")
	test.ExpectEquality(t, tk.Remaining(), 2)
	test.ExpectEquality(t, tk.Remainder(), "0x10000000 a b")

	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "mdump")

	tk.Get()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "a b")
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)

	// register prefix is not altered
	tk = commandline.TokeniseInput("input $v0 10")
	tk.Get()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "$v0")
}

func TestParseTemplate(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(testTemplate)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmds.Len(), len(testTemplate))
	test.ExpectEquality(t, cmds.Keywords()[0], "DISPLAY")
	test.ExpectEquality(t, cmds.Usage("mdump"), "MDUMP <start> <end>")
	test.ExpectEquality(t, cmds.Usage("log"), "LOG (LAST|CLEAR)")
	test.ExpectEquality(t, cmds.Usage("display"), "DISPLAY [ON|OFF] (%N)")

	bad := [][]string{
		{"RUN %Q"},
		{"RUN [A|B"},
		{"RUN (A|)"},
		{"RUN A]"},
		{"%N"},
		{"RUN", "run"},
	}
	for _, b := range bad {
		_, err := commandline.ParseCommandTemplate(b)
		test.ExpectFailure(t, err, b)
	}
}

func TestValidation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(testTemplate)
	test.DemandSuccess(t, err)

	good := []string{
		"",
		"run 100",
		"run 0x10",
		"rdump",
		"mdump 0x10000000 10000010",
		"input $v0 -1",
		"input 2 0xa",
		"log",
		"log last",
		"log c",
		"grep add",
		"grep mnemonic add",
		"grep operand $t0",
		"display on",
		"display off 1",
	}
	for _, g := range good {
		test.ExpectSuccess(t, cmds.Validate(g), g)
	}

	bad := []string{
		"run",
		"run ten",
		"run 1 2",
		"mdump 0x10000000",
		"mdump xyz 0",
		"input $v0",
		"log first",
		"display",
		"display maybe",
		"foo",
	}
	for _, b := range bad {
		test.ExpectFailure(t, cmds.Validate(b), b)
	}

	err = cmds.Validate("foo")
	test.ExpectSuccess(t, curated.Is(err, commandline.UnrecognisedCommand))

	// RDUMP and RESET share a prefix
	err = cmds.Validate("r")
	test.ExpectSuccess(t, curated.Is(err, commandline.AmbiguousCommand))

	err = cmds.Validate("run")
	test.ExpectSuccess(t, curated.Is(err, commandline.InvalidArguments))
}

func TestNormalisation(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(testTemplate)
	test.DemandSuccess(t, err)

	tk := commandline.TokeniseInput("rd")
	test.DemandSuccess(t, cmds.ValidateTokens(tk))
	s, _ := tk.Get()
	test.ExpectEquality(t, s, "RDUMP")

	tk = commandline.TokeniseInput("lo cl")
	test.DemandSuccess(t, cmds.ValidateTokens(tk))
	test.ExpectEquality(t, tk.String(), "LOG CLEAR")

	tk = commandline.TokeniseInput("grep m add")
	test.DemandSuccess(t, cmds.ValidateTokens(tk))
	test.ExpectEquality(t, tk.String(), "GREP MNEMONIC add")
}

func TestHelp(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(testTemplate)
	test.DemandSuccess(t, err)

	helps := map[string]string{
		"RUN": "Run the simulator for a number of cycles",
	}
	test.DemandSuccess(t, cmds.AddHelp("HELP", helps))
	test.ExpectFailure(t, cmds.AddHelp("HELP", helps))

	test.ExpectSuccess(t, cmds.Validate("help"))
	test.ExpectSuccess(t, cmds.Validate("help run"))
	test.ExpectFailure(t, cmds.Validate("help foo"))

	test.ExpectEquality(t, cmds.Help("run"), "Run the simulator for a number of cycles\n\n  Usage: RUN <cycles>")
	test.ExpectEquality(t, cmds.Help("rdump"), "no help for RDUMP")
	test.ExpectInequality(t, cmds.HelpOverview(), "")
}

func TestNumbers(t *testing.T) {
	n, err := commandline.ParseNumber("-1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(0xffffffff))

	n, err = commandline.ParseNumber("0x7fff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(0x7fff))

	_, err = commandline.ParseNumber("0x100000000")
	test.ExpectFailure(t, err)

	n, err = commandline.ParseHex("10000000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(0x10000000))

	n, err = commandline.ParseHex("0xff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(0xff))
}

func TestTabCompletion(t *testing.T) {
	cmds, err := commandline.ParseCommandTemplate(testTemplate)
	test.DemandSuccess(t, err)

	tc := commandline.NewTabCompletion(cmds)

	test.ExpectEquality(t, tc.Complete("md"), "MDUMP ")
	test.ExpectEquality(t, tc.Complete("nothing"), "nothing")

	// cycle through ambiguous matches
	s := tc.Complete("r")
	test.ExpectEquality(t, s, "RDUMP ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "RESET ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "RUN ")
	s = tc.Complete(s)
	test.ExpectEquality(t, s, "RDUMP ")

	tc.Reset()
	test.ExpectEquality(t, tc.Complete("log c"), "log CLEAR ")
	test.ExpectEquality(t, tc.Complete("log "), "log ")
}
