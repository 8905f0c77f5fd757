package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/floodit/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap(6)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionConfirm},
		{"r", runeKey("r"), core.ActionRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := km.MapKeyToFrame(tt.msg, &frame)
			assert.False(t, quit)
			assert.True(t, frame.Has(tt.action), "expected %s", tt.action)
		})
	}
}

func TestMapKeyToFrameSelect(t *testing.T) {
	km := DefaultKeyMap(6)

	for slot := 1; slot <= 6; slot++ {
		frame := core.NewInputFrame()
		km.MapKeyToFrame(runeKey(string(rune('0'+slot))), &frame)
		assert.True(t, frame.Has(core.ActionSelect))
		assert.Equal(t, slot, frame.Select)
	}

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey("7"), &frame)
	assert.False(t, frame.Has(core.ActionSelect), "only palette slots are bound")
}

func TestMapKeyToFrameQuit(t *testing.T) {
	km := DefaultKeyMap(6)
	frame := core.NewInputFrame()

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame))
	assert.True(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame))
	assert.True(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame))
	assert.Empty(t, frame.Actions)
}

func TestMapMouseToFrame(t *testing.T) {
	frame := core.NewInputFrame()
	MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)
	assert.Empty(t, frame.Actions)

	MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	assert.Empty(t, frame.Actions, "only the left button paints")
}

func TestHelpListsBindings(t *testing.T) {
	km := DefaultKeyMap(6)
	assert.Equal(t, "1-6", km.Paint.Help().Key)
	assert.NotEmpty(t, km.ShortHelp())
	assert.Len(t, km.FullHelp(), 2)
}
