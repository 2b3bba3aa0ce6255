package combine

import "fmt"

// Kind classifies a parse failure.
type Kind int

const (
	// EndOfInput means a token was required but the input was exhausted.
	EndOfInput Kind = iota
	// InputRemaining means the parse succeeded without consuming all input.
	InputRemaining
	// Unexpected means a token was present but rejected.
	Unexpected
	// Expected is raised by Label, replacing the underlying cause.
	Expected
	// CustomFailure is an explicit failure raised by a grammar action.
	CustomFailure
	// Empty is the base case of an empty Choice.
	Empty
)

// ErrorKind describes what went wrong, independent of where. Text carries
// the offending token, the unconsumed input, the label or the reason,
// depending on Kind.
type ErrorKind struct {
	Kind Kind
	Text string
}

// Message returns the unadorned human-readable description.
func (k ErrorKind) Message() string {
	switch k.Kind {
	case EndOfInput:
		return "unexpected end of input"
	case InputRemaining:
		return fmt.Sprintf("unconsumed input %q", k.Text)
	case Unexpected:
		return fmt.Sprintf("unexpected token %q", k.Text)
	case Expected:
		return fmt.Sprintf("expected %s", k.Text)
	case CustomFailure:
		return k.Text
	case Empty:
		return "no alternatives"
	}
	return fmt.Sprintf("unknown error kind %d", k.Kind)
}

// Failure is a position-tagged parse error. It is the only error type that
// crosses the Run boundary.
type Failure struct {
	Pos Cursor
	ErrorKind
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Pos, f.Message())
}

// Position returns the cursor at which the failure occurred.
func (f *Failure) Position() Cursor { return f.Pos }
