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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different
// flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DEBUG", "RUN", "DISASM")
//	logging := md.AddBool("log", false, "echo log to stderr")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default mode. If the first argument after the
// flags matches one of the sub-modes then that mode is selected and the
// argument is consumed. All sub-mode comparisons are case insensitive.
//
// After the selected mode has been found, NewMode() prepares the Modes
// instance for the flags of that mode. Parse() is then called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddUint("cycles", 0, "maximum number of cycles")
//		md.Parse()
//		run(md.GetArg(0), *cycles)
//	}
//
// The modes encountered during parsing are recorded and returned by Path(),
// separated by a slash. For example, "RUN" or "DEBUG".
package modalflag
