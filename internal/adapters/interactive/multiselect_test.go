package interactive

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(m multiSelectModel, keys ...string) multiSelectModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(multiSelectModel)
	}
	return m
}

func TestMultiSelectModel(t *testing.T) {
	items := []string{"currency", "flightVerifier", "label"}

	t.Run("toggle and confirm", func(t *testing.T) {
		m := press(initialMultiSelectModel(items, "Parameters"), " ", "down", "down", " ", "enter")

		assert.True(t, m.done)
		assert.False(t, m.cancelled)
		assert.Equal(t, []int{0, 2}, m.chosen())
	})

	t.Run("select all then none", func(t *testing.T) {
		m := press(initialMultiSelectModel(items, "Parameters"), "a")
		assert.Equal(t, []int{0, 1, 2}, m.chosen())

		m = press(m, "a")
		assert.Empty(t, m.chosen())
	})

	t.Run("cursor stays in range", func(t *testing.T) {
		m := press(initialMultiSelectModel(items, "Parameters"), "down", "down", "down", "down", "k")
		assert.Equal(t, 1, m.cursor)
	})

	t.Run("escape cancels", func(t *testing.T) {
		m := press(initialMultiSelectModel(items, "Parameters"), " ", "esc")
		assert.True(t, m.cancelled)
		assert.Empty(t, m.View())
	})
}
