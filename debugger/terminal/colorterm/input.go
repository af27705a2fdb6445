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


//go:build !windows

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/mipsim/curated"
	"github.com/jetsetilly/mipsim/debugger/terminal"
	"github.com/jetsetilly/mipsim/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/mipsim/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	p := prompt.String()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the most recent input is kept when scrolling through history so that
	// the user can return to it
	var pending []rune

	// each iteration redraws the line and then places the cursor
	redraw := func() {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - len(input)))
	}

	for {
		redraw()

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			ct.EasyTerm.TermPrint("\r\n")
			if err == io.EOF {
				return "", curated.Errorf(terminal.UserAbort)
			}
			return "", curated.Errorf("colorterm: %v", err)
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				input = append(s, input[cursor:]...)
				cursor = len(s)
			}
			continue

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\r\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.addHistory(input)
			ct.EasyTerm.TermPrint("\r\n")
			return string(input), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil || r != easyterm.EscCursor {
				break
			}
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				break
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						pending = append(pending[:0], input...)
					}
					history--
					input = append(input[:0:0], ct.commandHistory[history]...)
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = append(input[:0:0], ct.commandHistory[history]...)
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = append(input[:0:0], pending...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.CursorHome:
				cursor = 0
			case easyterm.CursorEnd:
				cursor = len(input)
			case easyterm.CursorDelete:
				// consume the trailing tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ct.commandHistory)
			}
		}

		// any input other than a tab resets the tab completion
		if ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}
	}
}
