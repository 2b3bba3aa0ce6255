package combine

// Fix constructs a self-referential parser. build receives a placeholder
// that defers to the parser build returns, looked up at parse time rather
// than at construction time, so recursive grammars can be assembled without
// recursing while they are being built.
//
// The placeholder is patched exactly once, before Fix returns; it must not
// be applied before then. Assemble recursive grammars on a single goroutine
// before any parsing begins and the result is as shareable as any other
// Parser.
func Fix[T any](build func(self Parser[T]) Parser[T]) Parser[T] {
	var impl Parser[T]
	placeholder := New(func(s State) Result[T] { return impl.Parse(s) })
	impl = build(placeholder)
	return impl
}
