// Package message carries the diagnostics a parser accumulates while it
// runs, independent of whether the parser ultimately succeeds.
package message

import "go-parsec/pkg/position"

// Severity classifies how important a message is to a human reading it.
// It is a bit-flag set, not a closed enum: rescue filters are expressed as
// an OR of the severities they should demote.
type Severity int

const (
	Message Severity = 1 << iota
	Warn
	Error
)

// All is the severity set containing every flag.
const All = Message | Warn | Error

// Has reports whether s includes every flag set in other.
func (s Severity) Has(other Severity) bool {
	return s&other == other
}

// Any reports whether s shares any flag with other.
func (s Severity) Any(other Severity) bool {
	return s&other != 0
}

func (s Severity) String() string {
	switch s {
	case Message:
		return "Message"
	case Warn:
		return "Warn"
	case Error:
		return "Error"
	default:
		return "Mixed"
	}
}

// ErrorMessage is a single immutable diagnostic: a severity, body text, and
// the span of input it refers to.
type ErrorMessage struct {
	Severity Severity
	Text     string
	Span     position.Span
}

// New builds an ErrorMessage spanning a single point.
func New(severity Severity, text string, at position.Position) ErrorMessage {
	return ErrorMessage{Severity: severity, Text: text, Span: position.At(at)}
}

// NewSpan builds an ErrorMessage over an explicit span.
func NewSpan(severity Severity, text string, span position.Span) ErrorMessage {
	return ErrorMessage{Severity: severity, Text: text, Span: span}
}

// List is an ordered, append-only sequence of messages. Concatenation is
// eager: each combinator that merges two Lists produces a new slice in
// accumulation order. A rope/tree accumulator would avoid the copying,
// but none of this module's combinators recurse deep enough for that to
// matter.
type List []ErrorMessage

// Concat returns a List holding a's messages followed by b's. When one
// operand is empty the other is returned as is; otherwise the result is
// a new slice and neither operand is modified.
func Concat(a, b List) List {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(List, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Append returns a new List holding a's messages followed by msgs.
func Append(a List, msgs ...ErrorMessage) List {
	out := make(List, 0, len(a)+len(msgs))
	out = append(out, a...)
	out = append(out, msgs...)
	return out
}
