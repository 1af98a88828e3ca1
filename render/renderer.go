// Package render draws the hangman screen: title, gallows, masked word and
// prompt, each at a fixed position on a character grid.
package render

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/drake/hangman/game"
	"github.com/drake/hangman/ui/style"
)

// Fixed screen positions (0-based rows, column 1).
const (
	col        = 1
	rowTitle   = 1
	rowLabel   = 3
	rowGallows = 4
	rowWord    = rowGallows + GallowsHeight
	rowPrompt  = rowWord + 2
	rowHelp    = rowPrompt + 2
)

const (
	titleText  = "Hangman Game"
	labelText  = "Guess the word:"
	wordText   = "Word: "
	promptText = "Enter a letter:"
)

// frameKey identifies everything a frame depends on. The word line stands
// in for (word, guesses): two states with equal masks draw identically.
type frameKey struct {
	errors        int
	mask          string
	width, height int
	help          string
}

// Renderer composes full frames. Frames are memoized, so redrawing an
// unchanged state is cheap and returns the identical string.
type Renderer struct {
	styles style.Styles
	cache  *lru.Cache[frameKey, string]
}

// NewRenderer creates a renderer with the given styles.
func NewRenderer(styles style.Styles) *Renderer {
	cache, _ := lru.New[frameKey, string](64)
	return &Renderer{styles: styles, cache: cache}
}

// Frame draws the whole screen for s, clipped to width x height (non-positive
// means unbounded). help is shown below the prompt when non-empty.
func (r *Renderer) Frame(s *game.State, width, height int, help string) string {
	key := frameKey{
		errors: s.Errors,
		mask:   WordLine(s.Word, s.Guessed),
		width:  width,
		height: height,
		help:   help,
	}
	if frame, ok := r.cache.Get(key); ok {
		return frame
	}

	frame := r.draw(key).Clip(width, height)
	r.cache.Add(key, frame)
	return frame
}

func (r *Renderer) draw(k frameKey) *Canvas {
	c := NewCanvas()
	c.Put(col, rowTitle, r.styles.Title.Render(titleText))
	c.Put(col, rowLabel, r.styles.Label.Render(labelText))

	for i, line := range Gallows(k.errors) {
		if line == "" {
			continue
		}
		c.Put(col, rowGallows+i, r.styles.Gallows.Render(line))
	}

	c.Put(col, rowWord, r.styles.Label.Render(wordText)+r.styleMask(k.mask))
	c.Put(col, rowPrompt, r.styles.Prompt.Render(promptText))

	if k.help != "" {
		c.Put(col, rowHelp, r.styles.Help.Render(k.help))
	}
	return c
}

// styleMask colors revealed letters and placeholders. The trailing newline
// of the word line is dropped; the canvas row already ends there.
func (r *Renderer) styleMask(mask string) string {
	var b strings.Builder
	for _, c := range strings.TrimSuffix(mask, "\n") {
		switch c {
		case '_':
			b.WriteString(r.styles.Hidden.Render("_"))
		case ' ':
			b.WriteByte(' ')
		default:
			b.WriteString(r.styles.Revealed.Render(string(c)))
		}
	}
	return b.String()
}
