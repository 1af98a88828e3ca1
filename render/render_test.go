package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/drake/hangman/game"
	"github.com/drake/hangman/ui/style"
)

func TestGallowsThresholds(t *testing.T) {
	// Rows 2..4 of the figure for each error count.
	want := map[int][3]string{
		0: {" |    ", " |     ", " |     "},
		1: {" |   O", " |     ", " |     "},
		2: {" |   O", " |  /  ", " |     "},
		3: {" |   O", ` |  / \`, " |     "},
		4: {" |   O", ` |  /|\`, " |     "},
		5: {" |   O", ` |  /|\`, " |  /  "},
		6: {" |   O", ` |  /|\`, ` |  / \`},
	}

	for errors := 0; errors <= game.MaxErrors; errors++ {
		g := Gallows(errors)
		if len(g) != GallowsHeight {
			t.Fatalf("Gallows(%d) has %d lines, want %d", errors, len(g), GallowsHeight)
		}
		if g[0] != "  ___" || g[1] != " |   |" || g[5] != "_|_" || g[6] != "" {
			t.Errorf("Gallows(%d) frame lines changed: %q", errors, g)
		}
		got := [3]string{g[2], g[3], g[4]}
		if got != want[errors] {
			t.Errorf("Gallows(%d) = %q, want %q", errors, got, want[errors])
		}
	}
}

func TestWordLine(t *testing.T) {
	tests := []struct {
		word    string
		guessed string
		want    string
	}{
		{"cat", "", "_ _ _ \n"},
		{"cat", "c", "c _ _ \n"},
		{"cat", "xta", "_ a t \n"},
		{"moon", "o", "_ o o _ \n"},
		{"Go", "go", "_ o \n"},
		{"", "abc", "\n"},
	}

	for _, tt := range tests {
		got := WordLine(tt.word, []rune(tt.guessed))
		if got != tt.want {
			t.Errorf("WordLine(%q, %q) = %q, want %q", tt.word, tt.guessed, got, tt.want)
		}
	}
}

func TestWordLineRevealsOnlyGuessed(t *testing.T) {
	word := "hangman"
	guessed := []rune("anz")
	slots := strings.Fields(WordLine(word, guessed))
	if len(slots) != len(word) {
		t.Fatalf("got %d slots, want %d", len(slots), len(word))
	}
	for i, c := range word {
		revealed := slots[i] == string(c)
		if revealed != slices.Contains(guessed, c) {
			t.Errorf("slot %d (%q) = %q", i, c, slots[i])
		}
	}
}

func TestCanvasPut(t *testing.T) {
	c := NewCanvas()
	c.Put(1, 1, "title")
	c.Put(3, 3, "ab\ncd")
	c.Put(4, 1, "XY")

	want := "\n titXY\n\n   ab\n   cd"
	if got := c.String(); got != want {
		t.Errorf("canvas = %q, want %q", got, want)
	}
	if c.Height() != 5 {
		t.Errorf("Height() = %d, want 5", c.Height())
	}
}

func TestCanvasClip(t *testing.T) {
	c := NewCanvas()
	c.Put(0, 0, "abcdef")
	c.Put(0, 1, "ghi")
	c.Put(0, 2, "jkl")

	if got := c.Clip(4, 2); got != "abcd\nghi" {
		t.Errorf("Clip(4, 2) = %q", got)
	}
}

func TestCanvasStyledWidth(t *testing.T) {
	c := NewCanvas()
	c.Put(0, 0, "\x1b[1mab\x1b[0m")
	c.Put(4, 0, "z")
	if got := ansi.Strip(c.String()); got != "ab  z" {
		t.Errorf("styled row = %q, want %q", got, "ab  z")
	}
}

func TestFrameLayout(t *testing.T) {
	r := NewRenderer(style.Plain())
	s := game.New("cat")
	s.Guess('a')
	s.Guess('x')
	s.Guess('y')

	lines := strings.Split(ansi.Strip(r.Frame(s, 0, 0, "ctrl+c quit")), "\n")
	want := map[int]string{
		1:  " Hangman Game",
		3:  " Guess the word:",
		4:  "   ___",
		5:  "  |   |",
		6:  "  |   O",
		7:  "  |  /",
		8:  "  |",
		9:  " _|_",
		11: " Word: _ a _",
		13: " Enter a letter:",
		15: " ctrl+c quit",
	}
	for row, text := range want {
		if row >= len(lines) {
			t.Fatalf("frame has %d rows, missing row %d", len(lines), row)
		}
		if lines[row] != text {
			t.Errorf("row %d = %q, want %q", row, lines[row], text)
		}
	}
}

func TestFrameIdempotent(t *testing.T) {
	r := NewRenderer(style.DefaultStyles())
	s := game.New("gopher")
	s.Guess('o')
	s.Guess('q')

	first := r.Frame(s, 80, 24, "")
	second := r.Frame(s, 80, 24, "")
	if first != second {
		t.Errorf("re-render differs:\n%q\n%q", first, second)
	}

	// A fresh renderer, with no cached frame, draws the same text.
	fresh := NewRenderer(style.DefaultStyles()).Frame(s, 80, 24, "")
	if ansi.Strip(fresh) != ansi.Strip(first) {
		t.Errorf("fresh renderer differs:\n%q\n%q", fresh, first)
	}
}

func TestFrameTracksState(t *testing.T) {
	r := NewRenderer(style.Plain())
	s := game.New("go")
	before := r.Frame(s, 0, 0, "")
	s.Guess('g')
	after := r.Frame(s, 0, 0, "")
	if before == after {
		t.Fatal("frame did not change after a correct guess")
	}
	if !strings.Contains(after, "Word: g _") {
		t.Errorf("frame missing revealed letter:\n%s", after)
	}
}

func TestFrameClipped(t *testing.T) {
	r := NewRenderer(style.Plain())
	frame := r.Frame(game.New("cat"), 6, 3, "")
	lines := strings.Split(frame, "\n")
	if len(lines) != 3 {
		t.Fatalf("clipped frame has %d rows, want 3", len(lines))
	}
	for _, l := range lines {
		if ansi.StringWidth(l) > 6 {
			t.Errorf("row %q wider than 6", l)
		}
	}
}
