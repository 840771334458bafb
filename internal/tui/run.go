package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// Program runs the catalog TUI.
type Program struct {
	program *tea.Program
}

// New creates a TUI program.
func New(ctx context.Context, opts ...Option) *Program {
	model := NewModel(opts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if model.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if model.config.MouseSupport {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	return &Program{
		program: tea.NewProgram(model, programOpts...),
	}
}

// Start runs the program until the user quits.
func (p *Program) Start() error {
	final, err := p.program.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Quit stops the program.
func (p *Program) Quit() {
	p.program.Quit()
}

// Run starts the TUI and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, opts ...Option) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Restore the terminal even if the program dies mid-render.
	defer func() {
		_, _ = os.Stdout.Write([]byte("\033[?1049l")) // Exit alternate screen
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
		_, _ = os.Stdout.Write([]byte("\033[?1000l")) // Disable mouse
	}()

	err := New(ctx, opts...).Start()
	if err != nil && ctx.Err() != nil {
		// Interrupted by a signal rather than a real failure.
		return nil
	}
	return err
}
