// Package tui renders the interactive game in the terminal. The model
// wraps a game.Session; the rules live in the game package and the TUI
// only translates key presses into guesses.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/borderhop/core/internal/game"
	"github.com/borderhop/core/internal/graph"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	trailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for one game session.
type Model struct {
	session  *game.Session
	input    textinput.Model
	history  []string
	quitting bool
}

// New builds a model around an in-progress session.
func New(session *game.Session) Model {
	input := textinput.New()
	input.Placeholder = "country name"
	input.CharLimit = 64
	input.Focus()

	return Model{session: session, input: input}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.session.Outcome() != game.InProgress {
				m.quitting = true
				return m, tea.Quit
			}
			guess := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if guess == "" {
				return m, nil
			}
			return m.play(strings.ReplaceAll(guess, "_", " "))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// play applies one guess to the session and records the outcome line.
func (m Model) play(name string) (tea.Model, tea.Cmd) {
	res, err := m.session.Guess(name)
	if err != nil {
		var unknown *graph.UnknownCountryError
		if errors.As(err, &unknown) {
			m.history = append(m.history, badStyle.Render(fmt.Sprintf("%s is not in the dataset", unknown.Name)))
		} else {
			m.history = append(m.history, badStyle.Render(err.Error()))
		}
		return m, nil
	}

	switch {
	case res.Outcome == game.Won:
		m.history = append(m.history, goodStyle.Render(fmt.Sprintf(
			"%s reached with %d mistake(s)", m.session.Target(), game.MaxMistakes-res.MistakesLeft)))
		return m, tea.Quit

	case res.Outcome == game.Lost:
		m.history = append(m.history, badStyle.Render("Game over!"))
		return m, tea.Quit

	case res.Moved:
		m.history = append(m.history, goodStyle.Render(fmt.Sprintf(
			"%s, %d crossing(s) to go", name, m.session.RemainingDistance())))

	default:
		m.history = append(m.history, badStyle.Render(fmt.Sprintf(
			"%s does not get you closer, %d/%d mistakes",
			name, game.MaxMistakes-res.MistakesLeft, game.MaxMistakes)))
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf(
		"Find the shortest path from %s to %s", m.session.Source(), m.session.Target())))
	b.WriteString("\n\n")

	trail := strings.Join(m.session.Trail(), " -> ")
	if m.session.Outcome() == game.Won {
		b.WriteString(trailStyle.Render(trail))
	} else {
		b.WriteString(trailStyle.Render(trail + " -> ... -> " + m.session.Target()))
	}
	b.WriteString("\n\n")

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"mistakes: %d/%d", game.MaxMistakes-m.session.MistakesLeft(), game.MaxMistakes)))
	b.WriteString("\n")

	if m.session.Outcome() == game.InProgress && !m.quitting {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("enter to guess, esc to quit"))
		b.WriteString("\n")
	}

	return b.String()
}
