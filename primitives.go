package combine

import "strings"

// Satisfy consumes a single rune for which pred returns true. At end of
// input it fails with EndOfInput; a rejected rune fails with Unexpected.
//
// Input is matched rune by rune (Unicode scalar values), so predicates see
// a well-defined fixed-width unit rather than grapheme clusters.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return New(func(s State) Result[rune] {
		if len(s.Input) == 0 {
			return failAt[rune](s, ErrorKind{Kind: EndOfInput})
		}
		r := s.Input[0]
		if !pred(r) {
			return failAt[rune](s, ErrorKind{Kind: Unexpected, Text: string(r)})
		}
		return Result[rune]{Value: r, State: s.advance(1)}
	})
}

// Rune matches exactly r.
func Rune(r rune) Parser[rune] {
	return Satisfy(func(c rune) bool { return c == r })
}

// AnyRune matches any single rune.
func AnyRune() Parser[rune] {
	return Satisfy(func(rune) bool { return true })
}

// OneOf matches any rune present in set.
func OneOf(set string) Parser[rune] {
	return Satisfy(func(c rune) bool { return strings.ContainsRune(set, c) })
}

// NoneOf matches any rune not present in set.
func NoneOf(set string) Parser[rune] {
	return Satisfy(func(c rune) bool { return !strings.ContainsRune(set, c) })
}

// Literal matches text exactly and yields it. The failure cursor points at
// the first mismatching rune, not at the start of the literal.
func Literal(text string) Parser[string] {
	lit := []rune(text)
	return New(func(s State) Result[string] {
		st := s
		for _, want := range lit {
			if len(st.Input) == 0 {
				return failAt[string](st, ErrorKind{Kind: EndOfInput})
			}
			if st.Input[0] != want {
				return failAt[string](st, ErrorKind{Kind: Unexpected, Text: string(st.Input[0])})
			}
			st = st.advance(1)
		}
		return Result[string]{Value: text, State: st}
	})
}

// End succeeds only at end of input. On leftover input it fails with
// InputRemaining carrying the remainder.
func End() Parser[Unit] {
	return New(func(s State) Result[Unit] {
		if len(s.Input) > 0 {
			return failAt[Unit](s, ErrorKind{Kind: InputRemaining, Text: string(s.Input)})
		}
		return Result[Unit]{State: s}
	})
}
