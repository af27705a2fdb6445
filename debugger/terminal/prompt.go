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


package terminal

import (
	"strings"
)

// PromptType indicates the state of the simulator when the prompt is shown.
type PromptType int

// List of prompt types.
const (
	PromptTypeRunning PromptType = iota
	PromptTypeHalted
)

// Prompt specifies the prompt text and the prompt style.
type Prompt struct {
	Type    PromptType
	Content string
}

func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(strings.TrimSpace(p.Content))
	if p.Type == PromptTypeHalted {
		s.WriteString(" (halted)")
	}
	s.WriteString("> ")
	return s.String()
}
