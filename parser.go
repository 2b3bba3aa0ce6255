package combine

// Unit is the value of parsers run only for their effect on the input.
type Unit = struct{}

// State is the immutable input view threaded through every combinator: the
// cursor so far and the remaining, unconsumed input. Consuming input
// produces a new State; nothing is mutated in place.
type State struct {
	Pos   Cursor
	Input []rune
}

// advance consumes n runes, moving the cursor over each in turn.
func (s State) advance(n int) State {
	for _, r := range s.Input[:n] {
		s.Pos = s.Pos.Advance(r)
	}
	s.Input = s.Input[n:]
	return s
}

// Result is the outcome of applying a parser to a State: either a value
// plus the state after it, or a Failure.
type Result[T any] struct {
	Value T
	State State
	Fail  *Failure
}

// Failed reports whether the parse attempt failed.
func (r Result[T]) Failed() bool { return r.Fail != nil }

func fail[T any](f *Failure) Result[T] { return Result[T]{Fail: f} }

func failAt[T any](s State, kind ErrorKind) Result[T] {
	return Result[T]{Fail: &Failure{Pos: s.Pos, ErrorKind: kind}}
}

// A Parser consumes a prefix of the input and produces a T. Parser values
// are immutable and stateless: the same Parser may be applied any number of
// times, concurrently, on independent States.
//
// Methods cannot introduce type parameters, so operations that change the
// value type (Map, Ap, Bind) are top-level functions; operations that keep
// it (Or) are methods.
type Parser[T any] struct {
	parse func(State) Result[T]
}

// New wraps a raw transition function as a Parser. It is the escape hatch
// for defining token-level primitives; grammars should compose the existing
// combinators instead.
func New[T any](parse func(State) Result[T]) Parser[T] {
	return Parser[T]{parse: parse}
}

// Parse applies p to the given state.
func (p Parser[T]) Parse(s State) Result[T] { return p.parse(s) }

// Succeed yields v without consuming input.
func Succeed[T any](v T) Parser[T] {
	return New(func(s State) Result[T] { return Result[T]{Value: v, State: s} })
}

// FailWith always fails with the given kind at the current cursor.
func FailWith[T any](kind ErrorKind) Parser[T] {
	return New(func(s State) Result[T] { return failAt[T](s, kind) })
}

// Map transforms the value produced by p. Failures pass through untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return New(func(s State) Result[B] {
		r := p.Parse(s)
		if r.Failed() {
			return fail[B](r.Fail)
		}
		return Result[B]{Value: f(r.Value), State: r.State}
	})
}

// Ap sequences a parser of functions with a parser of arguments, applying
// the function to the argument. The first failure of either propagates
// unchanged.
func Ap[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return New(func(s State) Result[B] {
		rf := pf.Parse(s)
		if rf.Failed() {
			return fail[B](rf.Fail)
		}
		ra := pa.Parse(rf.State)
		if ra.Failed() {
			return fail[B](ra.Fail)
		}
		return Result[B]{Value: rf.Value(ra.Value), State: ra.State}
	})
}

// Bind feeds the value produced by p into f and runs the parser f returns,
// so later parsing can depend on earlier data.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return New(func(s State) Result[B] {
		r := p.Parse(s)
		if r.Failed() {
			return fail[B](r.Fail)
		}
		return f(r.Value).Parse(r.State)
	})
}

// Or is ordered choice: try p, and if it fails, run q on the original
// state, no matter how much input the failed attempt consumed. This is the
// only failure-recovery primitive; there is no commit operator to limit how
// far backtracking reaches.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return New(func(s State) Result[T] {
		r := p.Parse(s)
		if r.Failed() {
			return q.Parse(s)
		}
		return r
	})
}

// Choice folds Or over parsers left to right, so the reported failure is
// that of the last alternative. An empty Choice always fails with Empty.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		return FailWith[T](ErrorKind{Kind: Empty})
	}
	out := parsers[0]
	for _, p := range parsers[1:] {
		out = out.Or(p)
	}
	return out
}

// Label replaces any failure of p with Expected(name), positioned where the
// labelled parser began rather than where the underlying failure occurred.
// The underlying cause is discarded, not wrapped.
func Label[T any](p Parser[T], name string) Parser[T] {
	return New(func(s State) Result[T] {
		r := p.Parse(s)
		if r.Failed() {
			return failAt[T](s, ErrorKind{Kind: Expected, Text: name})
		}
		return r
	})
}

// Run applies p to text from a zero cursor. The value is returned only if
// the whole input was consumed; any error is a *Failure.
func Run[T any](p Parser[T], text string) (T, error) {
	r := p.Parse(State{Input: []rune(text)})
	if r.Failed() {
		var zero T
		return zero, r.Fail
	}
	if len(r.State.Input) > 0 {
		var zero T
		return zero, &Failure{
			Pos:       r.State.Pos,
			ErrorKind: ErrorKind{Kind: InputRemaining, Text: string(r.State.Input)},
		}
	}
	return r.Value, nil
}

// Must returns v, panicking if err is non-nil. Useful in tools and tests
// where the input is known good.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
