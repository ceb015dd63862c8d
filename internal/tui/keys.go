package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Neev4n/termshell/pkg/term"
)

// EventFor maps a bubbletea key press onto a dispatcher event. Keys that
// produce no text become term.Other so the viewport can use them for scrolling.
func EventFor(msg tea.KeyMsg) term.Event {
	switch msg.Type {
	case tea.KeyEnter:
		return term.Submit()
	case tea.KeyBackspace:
		return term.Backspace()
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return term.Other()
		}
		return term.Text(string(msg.Runes))
	case tea.KeySpace:
		return term.Text(" ")
	case tea.KeyTab:
		return term.Text("\t")
	default:
		return term.Other()
	}
}
