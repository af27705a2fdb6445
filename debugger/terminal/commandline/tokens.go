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
	"strings"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for easier parsing.
type Tokens struct {
	toks []string
	curr int
}

// TokeniseInput creates and returns a new Tokens instance. Tokens are
// separated by whitespace. Text in double quotes is a single token, with the
// quotes removed.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{}

	var s strings.Builder
	inQuote := false

	flush := func() {
		if s.Len() > 0 {
			tk.toks = append(tk.toks, s.String())
			s.Reset()
		}
	}

	for _, r := range strings.TrimSpace(input) {
		switch {
		case r == '"':
			if inQuote {
				tk.toks = append(tk.toks, s.String())
				s.Reset()
			} else {
				flush()
			}
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			s.WriteRune(r)
		}
	}
	flush()

	return tk
}

// String representation of tokens.
func (tk *Tokens) String() string {
	return strings.Join(tk.toks, " ")
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Remainder returns the remaining tokens as a string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.toks[tk.curr:], " ")
}

// Remaining returns the number of tokens remaining.
func (tk Tokens) Remaining() int {
	return len(tk.toks) - tk.curr
}

// Len returns the number of tokens.
func (tk Tokens) Len() int {
	return len(tk.toks)
}

// Get returns the next token in the list, and a success boolean - if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.toks) {
		return "", false
	}
	tk.curr++
	return tk.toks[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list (without advancing the list), and
// a success boolean - if the end of the token list has been reached, the
// function returns false instead of true.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.toks) {
		return "", false
	}
	return tk.toks[tk.curr], true
}
