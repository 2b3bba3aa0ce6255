package combine

import "fmt"

// TabWidth is the number of columns a tab advances the cursor by.
const TabWidth = 4

// Cursor is an immutable position within the input: zero-based line and
// column for error reporting, plus the number of runes consumed so far.
type Cursor struct {
	Line   int
	Column int
	Offset int
}

// Advance returns the cursor after consuming r. A newline starts a new
// line, a tab advances the column by TabWidth, anything else advances it by
// one. The offset always advances by exactly one rune.
func (c Cursor) Advance(r rune) Cursor {
	c.Offset++
	switch r {
	case '\n':
		c.Line++
		c.Column = 0
	case '\t':
		c.Column += TabWidth
	default:
		c.Column++
	}
	return c
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}
