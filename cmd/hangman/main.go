package main

import (
	"context"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/drake/hangman/config"
	"github.com/drake/hangman/debug"
	"github.com/drake/hangman/game"
	"github.com/drake/hangman/render"
	"github.com/drake/hangman/ui"
	"github.com/drake/hangman/ui/style"
	"github.com/drake/hangman/ui/tui"
	"github.com/drake/hangman/words"
)

func main() {
	os.Exit(run(config.Default(), os.Stderr))
}

// run returns the process exit status. Every path that reaches the TUI
// returns through tui.Run, which restores the terminal before we print.
func run(cfg config.Config, stderr io.Writer) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	trace, closer, err := debug.Logger(cfg.DebugLog)
	if err != nil {
		log.Warn().Err(err).Msg("debug log disabled")
	}
	defer closer.Close()

	word, err := words.Pick(cfg.WordsFile)
	if err != nil {
		log.Error().Err(err).Msg("cannot start game")
		return 1
	}
	trace.Debug().Int("length", len(word)).Msg("session started")

	state := game.New(word)
	model := tui.NewModel(state, render.NewRenderer(style.DefaultStyles()), trace)

	res, err := tui.Run(context.Background(), model)
	if err != nil {
		log.Error().Err(err).Msg("terminal failure")
		return 1
	}

	ui.Farewell(termenv.NewOutput(os.Stdout), state.Message())
	if res.Aborted {
		return 1
	}
	return 0
}
