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
	"sort"
	"strings"

	"github.com/jetsetilly/mipsim/curated"
)

// Commands is the root of the parsed command template.
type Commands struct {
	// commands indexed by keyword
	Index map[string]*template

	cmds []*template

	helpCommand string
	helps       map[string]string
}

// ParseCommandTemplate turns a string representation of a command template
// into a machine friendly representation. The commands are sorted
// alphabetically.
func ParseCommandTemplate(defns []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*template),
	}

	for _, d := range defns {
		t, err := parseDefinition(d)
		if err != nil {
			return nil, err
		}
		if _, ok := cmds.Index[t.keyword]; ok {
			return nil, curated.Errorf("commandline: %s: already defined", t.keyword)
		}
		cmds.cmds = append(cmds.cmds, t)
		cmds.Index[t.keyword] = t
	}

	sort.Sort(cmds)

	return cmds, nil
}

// Len implements sort.Interface.
func (cmds Commands) Len() int {
	return len(cmds.cmds)
}

// Less implements sort.Interface.
func (cmds Commands) Less(i int, j int) bool {
	return cmds.cmds[i].keyword < cmds.cmds[j].keyword
}

// Swap implements sort.Interface.
func (cmds Commands) Swap(i int, j int) {
	cmds.cmds[i], cmds.cmds[j] = cmds.cmds[j], cmds.cmds[i]
}

func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Keywords returns the list of command keywords in alphabetical order.
func (cmds Commands) Keywords() []string {
	k := make([]string, len(cmds.cmds))
	for i, c := range cmds.cmds {
		k[i] = c.keyword
	}
	return k
}

// AddHelp adds a help command to the list of commands. The help command
// takes an optional argument, which is any other command. The helps map
// contains the help text for each command.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	helpCommand = strings.ToUpper(helpCommand)
	if _, ok := cmds.Index[helpCommand]; ok {
		return curated.Errorf("commandline: %s: already defined", helpCommand)
	}

	cmds.helps = helps
	cmds.helpCommand = helpCommand

	defn := strings.Builder{}
	defn.WriteString(helpCommand)
	defn.WriteString(" (")
	for _, c := range cmds.cmds {
		defn.WriteString(c.keyword)
		defn.WriteString("|")
	}
	defn.WriteString(helpCommand)
	defn.WriteString(")")

	t, err := parseDefinition(defn.String())
	if err != nil {
		return err
	}

	cmds.cmds = append(cmds.cmds, t)
	cmds.Index[t.keyword] = t
	sort.Sort(cmds)

	return nil
}

// HelpOverview returns a columnised list of all commands.
func (cmds Commands) HelpOverview() string {
	longest := 0
	for _, c := range cmds.cmds {
		if len(c.keyword) > longest {
			longest = len(c.keyword)
		}
	}
	cols := 80 / (longest + 3)
	colFmt := fmt.Sprintf("%%-%ds", longest+3)

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		s.WriteString(fmt.Sprintf(colFmt, c.keyword))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), " \n")
}

// Help returns the help text and the usage for the keyword.
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	s := strings.Builder{}
	if helpTxt, ok := cmds.helps[keyword]; !ok {
		s.WriteString(fmt.Sprintf("no help for %s", keyword))
	} else {
		s.WriteString(helpTxt)
		if cmd, ok := cmds.Index[keyword]; ok {
			s.WriteString("\n\n  Usage: ")
			s.WriteString(cmd.String())
		}
	}

	return s.String()
}

// Usage returns the usage string for the keyword.
func (cmds Commands) Usage(keyword string) string {
	if cmd, ok := cmds.Index[strings.ToUpper(keyword)]; ok {
		return cmd.String()
	}
	return ""
}

// lookup finds the command for the keyword. The keyword can be abbreviated
// to any unique prefix.
func (cmds Commands) lookup(keyword string) (*template, error) {
	keyword = strings.ToUpper(keyword)

	if c, ok := cmds.Index[keyword]; ok {
		return c, nil
	}

	var matches []*template
	for _, c := range cmds.cmds {
		if strings.HasPrefix(c.keyword, keyword) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, curated.Errorf(UnrecognisedCommand, keyword)
	case 1:
		return matches[0], nil
	}

	k := make([]string, len(matches))
	for i, m := range matches {
		k[i] = m.keyword
	}
	return nil, curated.Errorf(AmbiguousCommand, keyword, strings.Join(k, ", "))
}
