package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"concentool/internal/state"
)

const timeBarColor = "#808080"

var (
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	lowTimeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Red when a third of the time is left
)

type keyMap struct {
	Levels  key.Binding
	Reveal  key.Binding // mouse only, never matches a key
	Again   key.Binding
	Decline key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Levels:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "choose level")),
		Reveal:  key.NewBinding(key.WithHelp("click", "reveal card")),
		Again:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "play again")),
		Decline: key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "quit")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// bindings returns the keys that do something on the current screen.
func (k keyMap) bindings(current string) []key.Binding {
	switch current {
	case state.LevelSelect:
		return []key.Binding{k.Levels, k.Quit}
	case state.Playing:
		return []key.Binding{k.Quit}
	case state.Won, state.Lost:
		return []key.Binding{k.Again, k.Decline}
	}
	return nil
}

func (m *Model) View() string {
	if m.game.Done() {
		return ""
	}
	board := m.renderer.Render(m.game.Frame(m.now()))
	return board + "\n" + m.footer()
}

func (m *Model) footer() string {
	s := m.game.State
	helpLine := m.help.ShortHelpView(m.keys.bindings(s.FSM.Current()))
	if !s.FSM.Is(state.Playing) || s.Clock.Limit() == 0 {
		return helpLine
	}

	// help skips bindings without keys, so the mouse hint is drawn here.
	reveal := m.keys.Reveal.Help()
	helpLine = m.help.Styles.ShortKey.Render(reveal.Key) + " " +
		m.help.Styles.ShortDesc.Render(reveal.Desc) +
		m.help.Styles.ShortSeparator.Render(m.help.ShortSeparator) + helpLine

	remaining, limit := s.Clock.Remaining(), s.Clock.Limit()
	label := footerStyle.Render(fmt.Sprintf(" %02d:%02d ", remaining/60, remaining%60))
	if float64(remaining) <= float64(limit)/3.0 {
		label = lowTimeStyle.Render(fmt.Sprintf(" %02d:%02d ", remaining/60, remaining%60))
	}
	bar := m.progress.ViewAs(float64(remaining) / float64(limit))
	return bar + label + helpLine
}
