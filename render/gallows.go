package render

import "strings"

// GallowsHeight is the number of lines Gallows returns.
const GallowsHeight = 7

// slot returns glyph once errors exceeds threshold, otherwise a blank.
func slot(errors, threshold int, glyph string) string {
	if errors > threshold {
		return glyph
	}
	return " "
}

// Gallows draws the figure for the given error count. Parts appear at these
// thresholds, left to right per line:
//
//	head O       > 0
//	arms / | \   > 1, > 3, > 2
//	legs /   \   > 4, > 5
func Gallows(errors int) []string {
	return []string{
		"  ___",
		" |   |",
		" |   " + slot(errors, 0, "O"),
		" |  " + slot(errors, 1, "/") + slot(errors, 3, "|") + slot(errors, 2, `\`),
		" |  " + slot(errors, 4, "/") + " " + slot(errors, 5, `\`),
		"_|_",
		"",
	}
}

// WordLine masks every character of word that is not in guessed. Each slot
// is followed by a space and the line ends with a newline.
func WordLine(word string, guessed []rune) string {
	seen := make(map[rune]bool, len(guessed))
	for _, g := range guessed {
		seen[g] = true
	}

	var b strings.Builder
	for _, c := range word {
		if seen[c] {
			b.WriteRune(c)
		} else {
			b.WriteByte('_')
		}
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}
