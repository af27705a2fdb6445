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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. An example
// template would be:
//
//	template := []string {
//		"LIST",
//		"PRINT [%S]",
//		"SORT (RISING|FALLING)",
//	}
//
// Template syntax:
//
//	KEYWORD   a literal keyword. matched case-insensitively. an argument
//	          keyword can be abbreviated to any prefix
//	%N        a number. decimal, or hexadecimal with a 0x prefix
//	%X        a hexadecimal number with or without the 0x prefix
//	%S        any string
//	%F        a filename
//	[a|b]     a required group. exactly one of the alternatives must match
//	(a|b)     an optional group. at most one of the alternatives can match
//
// Groups can be nested and each alternative can be a sequence of elements.
// A placeholder can be given a label for the help text by placing it in
// angle brackets after the percent sign: %<start>X
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("so r")
//	err := cmds.ValidateTokens(toks)
//	if err != nil {
//		panic("validation failed")
//	}
//
// The command keyword can be abbreviated to any prefix that is unique among
// all commands. Successful validation replaces abbreviated keywords with the
// full keyword, so after validation the tokens in the example above will be
// "SORT RISING".
//
// The beauty of validating tokens against the command template is that we can
// simplify and restrict our handling of Get() returned values to only those
// that we know have passed the validation.
package commandline
