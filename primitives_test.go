package combine

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatisfyConsumesOneRune(t *testing.T) {
	r := Satisfy(unicode.IsDigit).Parse(state("1x"))
	require.False(t, r.Failed())
	assert.Equal(t, '1', r.Value)
	assert.Equal(t, "x", string(r.State.Input))
	assert.Equal(t, 1, r.State.Pos.Offset)
}

func TestSatisfyRejects(t *testing.T) {
	r := Satisfy(unicode.IsDigit).Parse(state("x1"))
	require.True(t, r.Failed())
	assert.Equal(t, Unexpected, r.Fail.Kind)
	assert.Equal(t, "x", r.Fail.Text)
	assert.Equal(t, 0, r.Fail.Pos.Offset)
}

func TestSatisfyEndOfInput(t *testing.T) {
	r := Satisfy(unicode.IsDigit).Parse(state(""))
	require.True(t, r.Failed())
	assert.Equal(t, EndOfInput, r.Fail.Kind)
}

func TestRune(t *testing.T) {
	assert.Equal(t, 'a', Must(Run(Rune('a'), "a")))
	_, err := Run(Rune('a'), "b")
	require.Error(t, err)
}

func TestAnyRune(t *testing.T) {
	assert.Equal(t, '界', Must(Run(AnyRune(), "界")))
}

func TestOneOfNoneOf(t *testing.T) {
	vowel := OneOf("aeiou")
	assert.Equal(t, 'e', Must(Run(vowel, "e")))
	_, err := Run(vowel, "x")
	require.Error(t, err)

	consonant := NoneOf("aeiou")
	assert.Equal(t, 'x', Must(Run(consonant, "x")))
	_, err = Run(consonant, "e")
	require.Error(t, err)
}

func TestLiteral(t *testing.T) {
	r := Literal("let").Parse(state("letx"))
	require.False(t, r.Failed())
	assert.Equal(t, "let", r.Value)
	assert.Equal(t, "x", string(r.State.Input))
}

func TestLiteralPartialMatch(t *testing.T) {
	r := Literal("abc").Parse(state("abX"))
	require.True(t, r.Failed())
	assert.Equal(t, Unexpected, r.Fail.Kind)
	assert.Equal(t, "X", r.Fail.Text)
	assert.Equal(t, 2, r.Fail.Pos.Offset)
}

func TestLiteralEndOfInput(t *testing.T) {
	r := Literal("abc").Parse(state("ab"))
	require.True(t, r.Failed())
	assert.Equal(t, EndOfInput, r.Fail.Kind)
}

func TestEnd(t *testing.T) {
	r := End().Parse(state(""))
	require.False(t, r.Failed())

	r = End().Parse(state("leftover"))
	require.True(t, r.Failed())
	assert.Equal(t, InputRemaining, r.Fail.Kind)
	assert.Equal(t, "leftover", r.Fail.Text)
}
