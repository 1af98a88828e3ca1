package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a character grid addressed by (column, row), both 0-based.
// Text may carry ANSI styling; widths are measured on visible cells only.
// A new Canvas is blank, so every frame is drawn from scratch.
type Canvas struct {
	rows []string
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Put writes text starting at (col, row). Embedded newlines continue on the
// following rows at the same column. Anything previously drawn at or right
// of col on an affected row is replaced.
func (c *Canvas) Put(col, row int, text string) {
	for i, line := range strings.Split(text, "\n") {
		c.putLine(col, row+i, line)
	}
}

func (c *Canvas) putLine(col, row int, line string) {
	if col < 0 || row < 0 {
		return
	}
	for len(c.rows) <= row {
		c.rows = append(c.rows, "")
	}

	cur := c.rows[row]
	if w := ansi.StringWidth(cur); w < col {
		cur += strings.Repeat(" ", col-w)
	} else if w > col {
		cur = ansi.Truncate(cur, col, "")
	}
	c.rows[row] = cur + line
}

// Height is the number of rows drawn so far.
func (c *Canvas) Height() int {
	return len(c.rows)
}

// Clip returns the grid limited to width columns and height rows.
// A non-positive limit leaves that dimension unbounded.
func (c *Canvas) Clip(width, height int) string {
	rows := c.rows
	if height > 0 && len(rows) > height {
		rows = rows[:height]
	}

	out := make([]string, len(rows))
	for i, r := range rows {
		if width > 0 && ansi.StringWidth(r) > width {
			r = ansi.Truncate(r, width, "")
		}
		out[i] = strings.TrimRight(r, " ")
	}
	return strings.Join(out, "\n")
}

// String returns the full grid.
func (c *Canvas) String() string {
	return c.Clip(0, 0)
}
