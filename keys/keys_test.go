package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/quanticsoul4772/pcode-go/app"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslateNormal(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want app.EventKind
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, app.EventMoveUp},
		{"k", runes("k"), app.EventMoveUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, app.EventMoveDown},
		{"j", runes("j"), app.EventMoveDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, app.EventConfirm},
		{"e", runes("e"), app.EventConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, app.EventCancel},
		{"q", runes("q"), app.EventCancel},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, app.EventCancel},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, app.EventDelete},
		{"d", runes("d"), app.EventDelete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Translate(tt.msg, app.ModeNormal)
			assert.Equal(t, []app.Event{{Kind: tt.want}}, got)
		})
	}
}

func TestTranslateNormalIgnoresOtherKeys(t *testing.T) {
	km := DefaultKeyMap()

	assert.Nil(t, km.Translate(runes("x"), app.ModeNormal))
	assert.Nil(t, km.Translate(runes("t"), app.ModeNormal), "theme is handled by the program")
	assert.Nil(t, km.Translate(tea.KeyMsg{Type: tea.KeyTab}, app.ModeNormal))
}

func TestTranslateInsert(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []app.Event{app.Char('q')}, km.Translate(runes("q"), app.ModeInsert))
	assert.Equal(t, []app.Event{app.Char('j')}, km.Translate(runes("j"), app.ModeInsert))
	assert.Equal(t, []app.Event{app.Char(' ')}, km.Translate(tea.KeyMsg{Type: tea.KeySpace}, app.ModeInsert))
	assert.Equal(t, []app.Event{{Kind: app.EventConfirm}}, km.Translate(tea.KeyMsg{Type: tea.KeyEnter}, app.ModeInsert))
	assert.Equal(t, []app.Event{{Kind: app.EventCancel}}, km.Translate(tea.KeyMsg{Type: tea.KeyEsc}, app.ModeInsert))
	assert.Equal(t, []app.Event{{Kind: app.EventCancel}}, km.Translate(tea.KeyMsg{Type: tea.KeyCtrlC}, app.ModeInsert))
	assert.Equal(t, []app.Event{{Kind: app.EventBackspace}}, km.Translate(tea.KeyMsg{Type: tea.KeyBackspace}, app.ModeInsert))
	assert.Nil(t, km.Translate(tea.KeyMsg{Type: tea.KeyUp}, app.ModeInsert))
}

func TestTranslatePaste(t *testing.T) {
	km := DefaultKeyMap()

	got := km.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/srv"), Paste: true}, app.ModeInsert)

	assert.Equal(t, []app.Event{app.Char('/'), app.Char('s'), app.Char('r'), app.Char('v')}, got)
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
		}
	}
	assert.Len(t, km.InsertHelp(), 3)
}
