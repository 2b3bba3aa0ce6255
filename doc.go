// Package combine is a parser-combinator library: parsers are small typed
// values that consume a prefix of the input and produce a result, and
// grammars are assembled by composing them with combinators rather than by
// writing a recogniser by hand.
//
// A parser for unary numbers ("z" is zero, each "s" prefix adds one) looks
// like
//
//	number := combine.Fix(func(number combine.Parser[int]) combine.Parser[int] {
//	    return combine.Choice(
//	        combine.Map(combine.Rune('z'), func(rune) int { return 0 }),
//	        combine.Bind(combine.Rune('s'), func(rune) combine.Parser[int] {
//	            return combine.Map(number, func(n int) int { return n + 1 })
//	        }),
//	    )
//	})
//
//	n, err := combine.Run(number, "sssz") // n == 3
//
// Alternation backtracks without limit: when a branch fails, however much
// input it consumed along the way, the next branch starts over from the
// original position. There is no commit operator, no memoisation and no
// multi-error reporting; the error that reaches the caller is the position
// and cause of the last branch attempted.
//
// Parser values are immutable and may be shared freely, including across
// goroutines, once construction is complete.
package combine
