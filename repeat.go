package combine

// Pair holds the two values produced by Sep.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Many applies p zero or more times, collecting the values. It never
// fails: the first failure of p ends the loop with whatever was gathered,
// and that failed attempt is backtracked.
//
// If p can succeed without consuming input, Many will not terminate.
// Repetition of a nullable parser is a grammar bug, not something Many
// detects.
func Many[T any](p Parser[T]) Parser[[]T] {
	return New(func(s State) Result[[]T] {
		var out []T
		for {
			r := p.Parse(s)
			if r.Failed() {
				return Result[[]T]{Value: out, State: s}
			}
			out = append(out, r.Value)
			s = r.State
		}
	})
}

// Some applies p one or more times. It fails iff the first application of p
// fails.
func Some[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(v T) Parser[[]T] {
		return Map(Many(p), func(rest []T) []T {
			return append([]T{v}, rest...)
		})
	})
}

// Count applies p exactly n times, collecting the values in order. For
// n <= 0 it succeeds immediately with an empty slice, without invoking p.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	return New(func(s State) Result[[]T] {
		if n <= 0 {
			return Result[[]T]{State: s}
		}
		out := make([]T, 0, n)
		for i := 0; i < n; i++ {
			r := p.Parse(s)
			if r.Failed() {
				return fail[[]T](r.Fail)
			}
			out = append(out, r.Value)
			s = r.State
		}
		return Result[[]T]{Value: out, State: s}
	})
}

// Option tries p, yielding def if it fails. Input consumed by the failed
// attempt is backtracked.
func Option[T any](p Parser[T], def T) Parser[T] {
	return p.Or(Succeed(def))
}

// Between runs open, then p, then close, keeping only p's value.
func Between[T, O, C any](open Parser[O], close Parser[C], p Parser[T]) Parser[T] {
	return Bind(open, func(_ O) Parser[T] {
		return Bind(p, func(v T) Parser[T] {
			return Map(close, func(_ C) T { return v })
		})
	})
}

// Surround is Between with the same delimiter on both sides.
func Surround[T, Q any](quote Parser[Q], p Parser[T]) Parser[T] {
	return Between(quote, quote, p)
}

// Sep parses a, then sep (discarded), then b, pairing the two values.
func Sep[A, B, S any](a Parser[A], sep Parser[S], b Parser[B]) Parser[Pair[A, B]] {
	return Bind(a, func(av A) Parser[Pair[A, B]] {
		return Bind(sep, func(_ S) Parser[Pair[A, B]] {
			return Map(b, func(bv B) Pair[A, B] {
				return Pair[A, B]{First: av, Second: bv}
			})
		})
	})
}

// first sequences a then b, keeping a's value.
func first[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Bind(a, func(av A) Parser[A] {
		return Map(b, func(_ B) A { return av })
	})
}

// second sequences a then b, keeping b's value.
func second[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Bind(a, func(_ A) Parser[B] { return b })
}

// SepBy parses zero or more p separated, not terminated, by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Option(SepBy1(p, sep), nil)
}

// SepBy1 parses one or more p separated by sep. A trailing separator is
// left unconsumed.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Bind(p, func(v T) Parser[[]T] {
		return Map(Many(second(sep, p)), func(rest []T) []T {
			return append([]T{v}, rest...)
		})
	})
}

// EndBy parses zero or more p, each terminated by sep. The separator after
// every element, including the last, is required.
func EndBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Many(first(p, sep))
}

// EndBy1 parses one or more p, each terminated by sep.
func EndBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Some(first(p, sep))
}

// SepEndBy parses zero or more p separated by sep, permitting one optional
// trailing separator. A doubled separator fails, since the element between
// the two separators would have to be empty.
func SepEndBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Option(SepEndBy1(p, sep), nil)
}

// SepEndBy1 is SepEndBy requiring at least one element.
func SepEndBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Bind(SepBy1(p, sep), func(out []T) Parser[[]T] {
		return Map(Option(Skip(sep), Unit{}), func(Unit) []T { return out })
	})
}

// ManyTill applies p repeatedly until end succeeds; end's value is
// discarded. end is tried before each element, so zero occurrences of p are
// allowed.
func ManyTill[T, E any](p Parser[T], end Parser[E]) Parser[[]T] {
	return New(func(s State) Result[[]T] {
		var out []T
		for {
			if r := end.Parse(s); !r.Failed() {
				return Result[[]T]{Value: out, State: r.State}
			}
			r := p.Parse(s)
			if r.Failed() {
				return fail[[]T](r.Fail)
			}
			out = append(out, r.Value)
			s = r.State
		}
	})
}

// SomeTill is ManyTill requiring at least one p before end.
func SomeTill[T, E any](p Parser[T], end Parser[E]) Parser[[]T] {
	return Bind(p, func(v T) Parser[[]T] {
		return Map(ManyTill(p, end), func(rest []T) []T {
			return append([]T{v}, rest...)
		})
	})
}

// Chain parses a left-associative operator expression: a first operand via
// p, then any number of (operator, operand) steps folded as they arrive, so
// "9-3-2" is (9-3)-2. A failed operator or trailing operand attempt is
// backtracked and ends the fold. Chain fails only if the first p fails.
func Chain[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return New(func(s State) Result[T] {
		r := p.Parse(s)
		if r.Failed() {
			return r
		}
		acc, st := r.Value, r.State
		for {
			ro := op.Parse(st)
			if ro.Failed() {
				break
			}
			rw := p.Parse(ro.State)
			if rw.Failed() {
				break
			}
			acc = ro.Value(acc, rw.Value)
			st = rw.State
		}
		return Result[T]{Value: acc, State: st}
	})
}

// ChainOr is Chain, yielding def instead of failing when there is no
// initial operand at all.
func ChainOr[T any](p Parser[T], op Parser[func(T, T) T], def T) Parser[T] {
	return Chain(p, op).Or(Succeed(def))
}

// NotFollowedBy parses p, then probes q on the rest: if q matches, the
// whole parser fails, reporting the text q matched as unexpected; if q
// fails, p's value stands and the probe leaves no trace on the input.
func NotFollowedBy[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return New(func(s State) Result[T] {
		r := p.Parse(s)
		if r.Failed() {
			return r
		}
		probe := q.Parse(r.State)
		if !probe.Failed() {
			matched := string(r.State.Input[:len(r.State.Input)-len(probe.State.Input)])
			return failAt[T](r.State, ErrorKind{Kind: Unexpected, Text: matched})
		}
		return r
	})
}
