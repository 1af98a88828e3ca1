package ui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Farewell wipes the screen, resets colors and prints message on its own
// line. Called once the TUI has released the terminal.
func Farewell(out *termenv.Output, message string) {
	out.ClearScreen()
	out.MoveCursor(1, 1)
	out.Reset()
	out.ShowCursor()
	if message != "" {
		fmt.Fprintln(out, message)
	}
}
