// Package tui runs a hangman session on the terminal with Bubble Tea.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/hangman/game"
)

// Result is the state of a session once the program has exited.
type Result struct {
	Outcome game.Outcome
	Aborted bool // Quit key pressed before the game ended
}

// Run starts the program and blocks until the game ends. The terminal is
// switched to raw mode for the duration of the call and restored on every
// return path, including errors and panics inside the model. Extra options
// are applied after the defaults.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Result, error) {
	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	final, err := tea.NewProgram(m, options...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("terminal session: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("terminal session: unexpected model %T", final)
	}
	return fm.Result(), nil
}
