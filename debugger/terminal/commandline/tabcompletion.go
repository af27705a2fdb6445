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

package commandline

import (
	"sort"
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
// Repeated calls to Complete() with the result of the previous call cycle
// through the possible completions.
type TabCompletion struct {
	commands *Commands

	matches []string
	match   int

	// the input before and after the most recent completion
	base string
	last string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(commands *Commands) *TabCompletion {
	return &TabCompletion{commands: commands}
}

// Complete the final token of the input. The input is returned unchanged if
// there is nothing to complete.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through matches if the input is unchanged since the last call
	if input != "" && input == tc.last && len(tc.matches) > 0 {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.last = tc.base + tc.matches[tc.match] + " "
		return tc.last
	}

	tc.Reset()

	// a trailing space means there is no partial token to complete
	if input == "" || strings.HasSuffix(input, " ") {
		return input
	}

	tokens := TokeniseInput(input)
	partial := strings.ToUpper(tokens.toks[tokens.Len()-1])

	var candidates []string
	if tokens.Len() == 1 {
		candidates = tc.commands.Keywords()
	} else if cmd, err := tc.commands.lookup(tokens.toks[0]); err == nil {
		candidates = argumentKeywords(cmd.args)
	}

	for _, c := range candidates {
		if strings.HasPrefix(c, partial) {
			tc.matches = append(tc.matches, c)
		}
	}
	if len(tc.matches) == 0 {
		return input
	}
	sort.Strings(tc.matches)

	tc.base = input[:strings.LastIndex(strings.ToUpper(input), partial)]
	tc.last = tc.base + tc.matches[0] + " "

	return tc.last
}

// Reset is called whenever the input changes for reasons other than tab
// completion.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.base = ""
	tc.last = ""
}

// argumentKeywords returns every keyword that appears anywhere in the
// sequence, without duplicates.
func argumentKeywords(seq []*element) []string {
	seen := make(map[string]bool)
	var k []string

	var walk func([]*element)
	walk = func(seq []*element) {
		for _, e := range seq {
			switch e.typ {
			case elementKeyword:
				if !seen[e.tag] {
					seen[e.tag] = true
					k = append(k, e.tag)
				}
			case elementGroup:
				for _, a := range e.alts {
					walk(a)
				}
			}
		}
	}
	walk(seq)

	return k
}
