package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// namedKeys maps the names bubbletea prints for special keys back onto their
// key types.
var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+l":    tea.KeyCtrlL,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+x":    tea.KeyCtrlX,
}

// Key returns the message bubbletea delivers for name. Special keys use
// their printed names ("enter", "ctrl+x"); anything else is typed as runes,
// so Key("/") is a slash.
func Key(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// WindowSize creates a window size message for testing responsive layouts.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: height}
}

// InputSequence is a scripted series of messages.
type InputSequence struct {
	msgs []tea.Msg
}

// Keys starts a sequence with one message per key name.
func Keys(names ...string) *InputSequence {
	s := &InputSequence{}
	for _, name := range names {
		s.msgs = append(s.msgs, Key(name))
	}
	return s
}

// Type appends one key press per rune of text, the way a user types it.
func (s *InputSequence) Type(text string) *InputSequence {
	for _, r := range text {
		s.msgs = append(s.msgs, Key(string(r)))
	}
	return s
}

// Then appends arbitrary messages.
func (s *InputSequence) Then(msgs ...tea.Msg) *InputSequence {
	s.msgs = append(s.msgs, msgs...)
	return s
}

// Apply feeds the sequence to model through renderer and returns the final
// model. Commands are recorded by the renderer but not run.
func (s *InputSequence) Apply(model tea.Model, renderer *TestRenderer) tea.Model {
	for _, msg := range s.msgs {
		model, _ = renderer.Update(model, msg)
	}
	return model
}
