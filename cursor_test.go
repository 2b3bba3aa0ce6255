package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorAdvance(t *testing.T) {
	c := Cursor{}
	c = c.Advance('a')
	assert.Equal(t, Cursor{Line: 0, Column: 1, Offset: 1}, c)
	c = c.Advance('\t')
	assert.Equal(t, Cursor{Line: 0, Column: 5, Offset: 2}, c)
	c = c.Advance('\n')
	assert.Equal(t, Cursor{Line: 1, Column: 0, Offset: 3}, c)
	c = c.Advance('界')
	assert.Equal(t, Cursor{Line: 1, Column: 1, Offset: 4}, c)
}

func TestCursorOffsetCountsEveryRune(t *testing.T) {
	c := Cursor{}
	for _, r := range "a\tb\nc" {
		c = c.Advance(r)
	}
	assert.Equal(t, 5, c.Offset)
}

func TestCursorString(t *testing.T) {
	assert.Equal(t, "2:7", Cursor{Line: 2, Column: 7, Offset: 30}.String())
}
