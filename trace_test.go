package combine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceLogsOutcomes(t *testing.T) {
	var buf bytes.Buffer
	p := Trace(&buf, "greeting", Literal("hi"))

	_, err := Run(p, "hi")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "greeting: enter 0:0 \"hi\"")
	assert.Contains(t, buf.String(), "greeting: match to 0:2")

	buf.Reset()
	p.Parse(state("nope"))
	assert.Contains(t, buf.String(), "greeting: fail 0:0: unexpected token \"n\"")
}

func TestTracePreviewTruncates(t *testing.T) {
	var buf bytes.Buffer
	p := Trace(&buf, "word", Literal("abcdefghijklmnop"))
	p.Parse(state("abcdefghijklmnop"))
	assert.Contains(t, buf.String(), "\"abcdefghij...\"")
}

func TestTraceDoesNotAffectResult(t *testing.T) {
	var buf bytes.Buffer
	plain := Literal("abc").Parse(state("abcd"))
	traced := Trace(&buf, "lit", Literal("abc")).Parse(state("abcd"))
	assert.Equal(t, plain, traced)
}
