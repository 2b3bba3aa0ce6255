package combine

import "unicode"

// Skip runs p and discards its value.
func Skip[T any](p Parser[T]) Parser[Unit] {
	return Map(p, func(T) Unit { return Unit{} })
}

// Whitespace skips a possibly empty run of Unicode whitespace.
func Whitespace() Parser[Unit] {
	return Skip(Many(Satisfy(unicode.IsSpace)))
}

// Whitespace1 skips at least one rune of Unicode whitespace. Use this form
// inside Space, which needs each skipper to consume when it succeeds.
func Whitespace1() Parser[Unit] {
	return Skip(Some(Satisfy(unicode.IsSpace)))
}

// LineComment skips a comment that starts with prefix and runs to the end
// of the line. The newline itself is not consumed.
func LineComment(prefix string) Parser[Unit] {
	rest := Many(Satisfy(func(r rune) bool { return r != '\n' }))
	return Skip(second(Literal(prefix), rest))
}

// BlockComment skips a comment delimited by open and close. Comments do not
// nest; the first close ends the comment.
func BlockComment(open, close string) Parser[Unit] {
	return Skip(second(Literal(open), ManyTill(AnyRune(), Literal(close))))
}

// NestedComment is BlockComment with proper nesting: every open consumed
// requires its own matching close.
func NestedComment(open, close string) Parser[Unit] {
	return Fix(func(self Parser[Unit]) Parser[Unit] {
		body := ManyTill(self.Or(Skip(AnyRune())), Literal(close))
		return Skip(second(Literal(open), body))
	})
}

// Space builds a whitespace consumer from any number of skippers, typically
// Whitespace1 plus comment forms. It applies the first matching skipper
// repeatedly until none matches. A skipper that succeeds without consuming
// ends the loop, so order nullable skippers out of Space and use
// Whitespace1 rather than Whitespace here.
func Space(skippers ...Parser[Unit]) Parser[Unit] {
	one := Choice(skippers...)
	return New(func(s State) Result[Unit] {
		for {
			r := one.Parse(s)
			if r.Failed() || r.State.Pos.Offset == s.Pos.Offset {
				return Result[Unit]{State: s}
			}
			s = r.State
		}
	})
}

// Lexeme runs p, then consumes trailing space, yielding p's value. Grammars
// built from lexemes only ever skip space after tokens; consume leading
// space once at the top level.
func Lexeme[T any](space Parser[Unit], p Parser[T]) Parser[T] {
	return first(p, space)
}

// Symbol matches the literal s as a lexeme.
func Symbol(space Parser[Unit], s string) Parser[string] {
	return Lexeme(space, Literal(s))
}
