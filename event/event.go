package event

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies the source of an input event
type Kind int

const (
	Key    Kind = iota // A key press; Rune is set for single printable characters
	Mouse              // Any mouse action
	Resize             // Terminal size changed
	Other              // Recognized terminal input with no game meaning
)

func (k Kind) String() string {
	switch k {
	case Key:
		return "key"
	case Mouse:
		return "mouse"
	case Resize:
		return "resize"
	default:
		return "other"
	}
}

// Event is the single unit the game loop consumes per iteration
type Event struct {
	Kind   Kind
	Rune   rune // Key only; 0 for non-character keys
	Width  int  // Resize only
	Height int  // Resize only
}

// KeyRune builds a key event carrying a typed character.
func KeyRune(r rune) Event {
	return Event{Kind: Key, Rune: r}
}

// IsLetter reports whether the event is a key press of an alphabetic
// character. Case is left exactly as typed.
func (e Event) IsLetter() bool {
	return e.Kind == Key && e.Rune != 0 && unicode.IsLetter(e.Rune)
}

// FromMsg translates a Bubble Tea message into input events, one per
// keystroke. Several typed characters may arrive in a single message when
// the terminal delivers them together; each becomes its own event. Pasted
// text is one event without a rune. A nil result means the message is not
// terminal input (commands, ticks, quit signals).
func FromMsg(msg tea.Msg) []Event {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) == 0 {
			return []Event{{Kind: Key}}
		}
		events := make([]Event, len(msg.Runes))
		for i, r := range msg.Runes {
			events[i] = KeyRune(r)
		}
		return events
	case tea.MouseMsg:
		return []Event{{Kind: Mouse}}
	case tea.WindowSizeMsg:
		return []Event{{Kind: Resize, Width: msg.Width, Height: msg.Height}}
	case tea.FocusMsg, tea.BlurMsg:
		return []Event{{Kind: Other}}
	}
	return nil
}
