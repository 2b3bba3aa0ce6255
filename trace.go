package combine

import (
	"fmt"
	"io"
)

// Trace wraps p so that every application logs the entry position, a
// preview of the remaining input, and the outcome to w. The wrapper adds no
// state of its own, so a traced parser backtracks and composes exactly like
// the original; interleaved output from concurrent parses is the caller's
// problem.
func Trace[T any](w io.Writer, name string, p Parser[T]) Parser[T] {
	return New(func(s State) Result[T] {
		fmt.Fprintf(w, "%s: enter %s %q\n", name, s.Pos, preview(s.Input))
		r := p.Parse(s)
		if r.Failed() {
			fmt.Fprintf(w, "%s: fail %s\n", name, r.Fail)
		} else {
			fmt.Fprintf(w, "%s: match to %s\n", name, r.State.Pos)
		}
		return r
	})
}

func preview(input []rune) string {
	const max = 10
	if len(input) > max {
		return string(input[:max]) + "..."
	}
	return string(input)
}
