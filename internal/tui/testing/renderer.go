// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer drives a Bubble Tea model without a terminal and keeps the
// last rendered frame.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Commands contains the non-nil commands returned by Update calls
	Commands []tea.Cmd

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Render renders a model and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the model and renders the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.UpdateCount++

	next, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}
	r.Output = next.View()

	return next, cmd
}

// Init runs the model's Init command, if any, and feeds its message back.
// Commands that block on a terminal must not be run this way.
func (r *TestRenderer) Init(model tea.Model) tea.Model {
	cmd := model.Init()
	if cmd == nil {
		r.Render(model)
		return model
	}

	if msg := cmd(); msg != nil {
		model, _ = r.Update(model, msg)
	}
	return model
}

// StripANSI removes ANSI escape codes from the output for content-only testing.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the stripped output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.StripANSI(), "\n")
}

// Reset clears all captured data.
func (r *TestRenderer) Reset() {
	r.Output = ""
	r.Commands = nil
	r.UpdateCount = 0
}
