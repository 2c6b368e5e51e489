package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borderhop/core/internal/game"
	"github.com/borderhop/core/internal/graph"
)

func testSession(t *testing.T) *game.Session {
	t.Helper()
	g := graph.Build(map[string][]string{
		"Chad":         {"Niger"},
		"Niger":        {"Chad", "Algeria"},
		"Algeria":      {"Niger", "South Africa"},
		"South Africa": {"Algeria"},
	})
	s, err := game.Start(g, "Chad", "South Africa")
	require.NoError(t, err)
	return s
}

func typeGuess(m tea.Model, guess string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(guess)})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestModel(t *testing.T) {
	t.Run("initial view shows the challenge", func(t *testing.T) {
		m := New(testSession(t))

		view := m.View()
		assert.Contains(t, view, "Find the shortest path from Chad to South Africa")
		assert.Contains(t, view, "mistakes: 0/3")
	})

	t.Run("correct guess extends the trail", func(t *testing.T) {
		session := testSession(t)
		m := typeGuess(New(session), "Niger")

		assert.Equal(t, "Niger", session.Position())
		assert.Contains(t, m.View(), "Chad -> Niger")
	})

	t.Run("underscores map to spaces", func(t *testing.T) {
		session := testSession(t)
		typeGuess(New(session), "South_Africa")

		assert.Equal(t, game.Won, session.Outcome())
	})

	t.Run("wrong guess burns a mistake", func(t *testing.T) {
		session := testSession(t)
		m := typeGuess(New(session), "Algeria")

		assert.Equal(t, "Chad", session.Position())
		assert.Equal(t, game.MaxMistakes-1, session.MistakesLeft())
		assert.Contains(t, m.View(), "mistakes: 1/3")
	})

	t.Run("unknown guess reports and changes nothing", func(t *testing.T) {
		session := testSession(t)
		m := typeGuess(New(session), "Atlantis")

		assert.Equal(t, game.InProgress, session.Outcome())
		assert.Equal(t, game.MaxMistakes, session.MistakesLeft())
		assert.Contains(t, m.View(), "Atlantis is not in the dataset")
	})

	t.Run("escape quits", func(t *testing.T) {
		m, cmd := New(testSession(t)).Update(tea.KeyMsg{Type: tea.KeyEsc})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.IsType(t, Model{}, m)
	})
}
