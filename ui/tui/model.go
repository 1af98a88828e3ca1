package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/drake/hangman/event"
	"github.com/drake/hangman/game"
	"github.com/drake/hangman/render"
)

// Model is the Bubble Tea model driving one session. Bubble Tea calls View
// before each blocking read and Update once per input message, which makes
// it the game loop: draw, read, apply, evaluate.
type Model struct {
	state    *game.State
	renderer *render.Renderer
	keys     keyMap
	help     help.Model
	log      zerolog.Logger

	// Terminal size from the latest resize; zero until the first one.
	width  int
	height int

	aborted bool
	done    bool
}

// NewModel creates a model for state. state is mutated in place.
func NewModel(state *game.State, renderer *render.Renderer, log zerolog.Logger) Model {
	return Model{
		state:    state,
		renderer: renderer,
		keys:     defaultKeyMap(),
		help:     help.New(),
		log:      log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.ClearScreen,
		tea.HideCursor,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
		m.log.Debug().Msg("session aborted")
		m.aborted = true
		m.done = true
		return m, tea.Quit
	}

	for _, ev := range event.FromMsg(msg) {
		if ev.Kind == event.Resize {
			m.width = ev.Width
			m.height = ev.Height
			m.help.Width = ev.Width
		}

		outcome := m.state.Apply(ev)
		if ev.IsLetter() {
			m.log.Debug().
				Str("guess", string(ev.Rune)).
				Int("errors", m.state.Errors).
				Stringer("outcome", outcome).
				Msg("guess accepted")
		}

		// Remaining keystrokes of a burst are dropped once the game is over.
		if outcome.Done() {
			m.log.Debug().Stringer("outcome", outcome).Str("word", m.state.Word).Msg("session over")
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.renderer.Frame(m.state, m.width, m.height, m.help.View(m.keys))
}

// Result reports how the session ended.
func (m Model) Result() Result {
	return Result{
		Outcome: m.state.Outcome(),
		Aborted: m.aborted,
	}
}
