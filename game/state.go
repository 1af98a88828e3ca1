// Package game holds the hangman session state and the rules that move it
// from Playing to Won or Lost.
package game

import (
	"slices"
	"strings"

	"github.com/drake/hangman/event"
)

// MaxErrors is the number of wrong guesses that loses the game.
const MaxErrors = 6

// Outcome is derived from State on demand, never stored.
type Outcome int

const (
	Playing Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

// Done reports whether the outcome is terminal.
func (o Outcome) Done() bool {
	return o != Playing
}

// State is the mutable session state. The loop driver owns it and passes it
// by pointer; nothing else mutates it.
type State struct {
	Word    string // Secret word, fixed for the session
	Guessed []rune // Every accepted guess in order, duplicates included
	Errors  int    // Guesses not present in Word, duplicates counted
}

// New starts a session for word.
func New(word string) *State {
	return &State{Word: word}
}

// Guess records c and counts it as an error when Word does not contain it.
// Matching is case-sensitive.
func (s *State) Guess(c rune) {
	s.Guessed = append(s.Guessed, c)
	if !strings.ContainsRune(s.Word, c) {
		s.Errors++
	}
}

// Apply processes one input event and returns the outcome after it.
// Only alphabetic key presses change state.
func (s *State) Apply(ev event.Event) Outcome {
	if ev.IsLetter() {
		s.Guess(ev.Rune)
	}
	return s.Outcome()
}

// Revealed reports whether c has been guessed.
func (s *State) Revealed(c rune) bool {
	return slices.Contains(s.Guessed, c)
}

// Outcome evaluates termination. The loss check runs first.
func (s *State) Outcome() Outcome {
	if s.Errors >= MaxErrors {
		return Lost
	}
	for _, c := range s.Word {
		if !s.Revealed(c) {
			return Playing
		}
	}
	return Won
}

// Message is the one line printed once the session is over.
func (s *State) Message() string {
	switch s.Outcome() {
	case Lost:
		return "You lost! The word was: " + s.Word
	case Won:
		return "Congratulations! You won!"
	default:
		return ""
	}
}
