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
	"strconv"
	"strings"

	"github.com/jetsetilly/mipsim/curated"
)

// Sentinel error patterns returned by validation.
const (
	UnrecognisedCommand = "unrecognised command (%s)"
	AmbiguousCommand    = "ambiguous command (%s) could be %s"
	InvalidArguments    = "invalid arguments for %s. usage: %s"
)

// Validate input string against command template.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens checks whether the tokens match the command template. On
// success, abbreviated keywords are replaced with the full keyword and the
// tokens are reset so that the first call to Get() returns the command.
//
// An empty list of tokens is valid.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	tokens.Reset()

	if tokens.Len() == 0 {
		return nil
	}

	cmd, err := cmds.lookup(tokens.toks[0])
	if err != nil {
		return err
	}

	v := validator{toks: tokens.toks}
	ok := v.sequence(cmd.args, 1, func(i int) bool {
		return i == len(v.toks)
	})
	if !ok {
		if cmd.keyword == cmds.helpCommand && len(v.toks) > 1 {
			return curated.Errorf("no help for %s", strings.ToUpper(v.toks[1]))
		}
		return curated.Errorf(InvalidArguments, cmd.keyword, cmd.String())
	}

	tokens.toks[0] = cmd.keyword

	return nil
}

// validator matches tokens against template elements. matching uses
// backtracking so that optional groups can be followed by other elements.
type validator struct {
	toks []string
}

// sequence matches the elements beginning at token i. the continuation k is
// called with the index of the first unmatched token and returns whether the
// remainder of the input matches.
func (v *validator) sequence(seq []*element, i int, k func(int) bool) bool {
	if len(seq) == 0 {
		return k(i)
	}
	rest := seq[1:]
	return v.element(seq[0], i, func(j int) bool {
		return v.sequence(rest, j, k)
	})
}

func (v *validator) element(e *element, i int, k func(int) bool) bool {
	switch e.typ {
	case elementKeyword:
		if i >= len(v.toks) {
			return false
		}
		if !strings.HasPrefix(e.tag, strings.ToUpper(v.toks[i])) {
			return false
		}
		if !k(i + 1) {
			return false
		}
		v.toks[i] = e.tag
		return true

	case elementPlaceholder:
		if i >= len(v.toks) || !placeholder(e.tag, v.toks[i]) {
			return false
		}
		return k(i + 1)

	case elementGroup:
		for _, alt := range e.alts {
			if v.sequence(alt, i, k) {
				return true
			}
		}
		if e.optional {
			return k(i)
		}
	}

	return false
}

// placeholder checks whether the token is acceptable for the placeholder.
func placeholder(tag string, tok string) bool {
	switch tag {
	case "%N":
		_, err := ParseNumber(tok)
		return err == nil
	case "%X":
		_, err := ParseHex(tok)
		return err == nil
	case "%S", "%F":
		return tok != ""
	}
	return false
}

// ParseNumber converts a token accepted by the %N placeholder to a 32bit
// value. Negative decimal numbers are converted to their two's complement
// representation.
func ParseNumber(tok string) (uint32, error) {
	if strings.HasPrefix(tok, "-") {
		n, err := strconv.ParseInt(tok, 0, 32)
		return uint32(n), err
	}
	n, err := strconv.ParseUint(tok, 0, 32)
	return uint32(n), err
}

// ParseHex converts a token accepted by the %X placeholder to a 32bit value.
func ParseHex(tok string) (uint32, error) {
	tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
	n, err := strconv.ParseUint(tok, 16, 32)
	return uint32(n), err
}
