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
	"fmt"
	"strings"

	"github.com/jetsetilly/mipsim/curated"
)

type elementType int

const (
	elementKeyword elementType = iota
	elementPlaceholder
	elementGroup
)

// element is a single part of a command template.
type element struct {
	typ elementType

	// keyword or placeholder (eg. %N)
	tag string

	// optional label for placeholders
	label string

	// groups only
	optional bool
	alts     [][]*element
}

func (e *element) String() string {
	switch e.typ {
	case elementKeyword:
		return e.tag
	case elementPlaceholder:
		if e.label != "" {
			return fmt.Sprintf("<%s>", e.label)
		}
		return e.tag
	}

	alts := make([]string, len(e.alts))
	for i, a := range e.alts {
		alts[i] = sequenceString(a)
	}
	if e.optional {
		return fmt.Sprintf("(%s)", strings.Join(alts, "|"))
	}
	return fmt.Sprintf("[%s]", strings.Join(alts, "|"))
}

func sequenceString(seq []*element) string {
	s := make([]string, len(seq))
	for i, e := range seq {
		s[i] = e.String()
	}
	return strings.Join(s, " ")
}

// template is a single parsed command definition.
type template struct {
	keyword string
	args    []*element
}

func (t *template) String() string {
	if len(t.args) == 0 {
		return t.keyword
	}
	return fmt.Sprintf("%s %s", t.keyword, sequenceString(t.args))
}

// lex splits the definition into words and single character symbols.
func lex(defn string) []string {
	var toks []string
	var s strings.Builder

	flush := func() {
		if s.Len() > 0 {
			toks = append(toks, s.String())
			s.Reset()
		}
	}

	inLabel := false
	for _, r := range defn {
		switch {
		case r == '<':
			inLabel = true
			s.WriteRune(r)
		case r == '>':
			inLabel = false
			s.WriteRune(r)
		case inLabel:
			s.WriteRune(r)
		case r == '[' || r == ']' || r == '(' || r == ')' || r == '|':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t':
			flush()
		default:
			s.WriteRune(r)
		}
	}
	flush()

	return toks
}

type parser struct {
	toks []string
	pos  int
}

// parseDefinition parses a single command definition.
func parseDefinition(defn string) (*template, error) {
	p := &parser{toks: lex(defn)}
	if len(p.toks) == 0 {
		return nil, curated.Errorf("commandline: empty definition")
	}

	kw := p.toks[0]
	if strings.ContainsAny(kw, "[]()|%") {
		return nil, curated.Errorf("commandline: command must begin with a keyword (%s)", defn)
	}
	p.pos = 1

	args, err := p.sequence()
	if err != nil {
		return nil, curated.Errorf("commandline: %s: %v", kw, err)
	}
	if p.pos < len(p.toks) {
		return nil, curated.Errorf("commandline: %s: unexpected %s", kw, p.toks[p.pos])
	}

	return &template{keyword: strings.ToUpper(kw), args: args}, nil
}

// sequence parses elements until the end of the definition, the end of a
// group or an alternative separator.
func (p *parser) sequence() ([]*element, error) {
	var seq []*element

	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]

		switch tok {
		case "|", "]", ")":
			return seq, nil

		case "[", "(":
			p.pos++
			g, err := p.group(tok == "(")
			if err != nil {
				return nil, err
			}
			seq = append(seq, g)

		default:
			p.pos++
			e, err := word(tok)
			if err != nil {
				return nil, err
			}
			seq = append(seq, e)
		}
	}

	return seq, nil
}

func (p *parser) group(optional bool) (*element, error) {
	closer := "]"
	if optional {
		closer = ")"
	}

	g := &element{typ: elementGroup, optional: optional}

	for {
		alt, err := p.sequence()
		if err != nil {
			return nil, err
		}
		if len(alt) == 0 {
			return nil, curated.Errorf("empty alternative in group")
		}
		g.alts = append(g.alts, alt)

		if p.pos >= len(p.toks) {
			return nil, curated.Errorf("unterminated group")
		}

		tok := p.toks[p.pos]
		p.pos++

		switch tok {
		case "|":
			continue
		case closer:
			return g, nil
		default:
			return nil, curated.Errorf("mismatched group delimiter (%s)", tok)
		}
	}
}

// word converts a single word of the definition to an element.
func word(tok string) (*element, error) {
	if tok[0] != '%' {
		return &element{typ: elementKeyword, tag: strings.ToUpper(tok)}, nil
	}

	e := &element{typ: elementPlaceholder}

	if len(tok) > 2 && tok[1] == '<' {
		i := strings.IndexRune(tok, '>')
		if i < 0 {
			return nil, curated.Errorf("unterminated placeholder label (%s)", tok)
		}
		e.label = tok[2:i]
		tok = "%" + tok[i+1:]
	}

	switch tok {
	case "%N", "%X", "%S", "%F":
		e.tag = tok
	default:
		return nil, curated.Errorf("unknown placeholder (%s)", tok)
	}

	return e, nil
}
