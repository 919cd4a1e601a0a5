// Package reply defines the tagged result of applying a Parser to a
// Stream: Success, Failure, or Error. Modeled as a discriminated union
// rather than an inheritance hierarchy, so a Reply can never be
// constructed with fields that don't belong to its variant.
package reply

import (
	"go-parsec/pkg/message"
	"go-parsec/pkg/stream"
)

// Variant tags which of the three outcomes a Reply holds.
type Variant int

const (
	// Success means the parser matched; Value and Stream are meaningful.
	Success Variant = iota
	// Failure means the parser did not match; this is recoverable by
	// alternation. Stream is meaningful (see Bind/Choice for what it
	// points at); Value is not.
	Failure
	// Error means the input is malformed and alternation must not try
	// another branch. Fatal is meaningful; Value is not.
	Error
)

func (v Variant) String() string {
	switch v {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Reply is the result of running a Parser[T, R] against a Stream[T].
type Reply[T, R any] struct {
	variant  Variant
	stream   stream.Stream[T]
	value    R
	fatal    message.ErrorMessage
	messages message.List
}

// Of builds a Success reply.
func Of[T, R any](s stream.Stream[T], value R, msgs message.List) Reply[T, R] {
	return Reply[T, R]{variant: Success, stream: s, value: value, messages: msgs}
}

// Failed builds a Failure reply.
func Failed[T, R any](s stream.Stream[T], msgs message.List) Reply[T, R] {
	return Reply[T, R]{variant: Failure, stream: s, messages: msgs}
}

// Failing builds an Error reply.
func Failing[T, R any](s stream.Stream[T], fatal message.ErrorMessage, msgs message.List) Reply[T, R] {
	return Reply[T, R]{variant: Error, stream: s, fatal: fatal, messages: msgs}
}

// Variant reports which of Success, Failure, or Error this reply is.
func (r Reply[T, R]) Variant() Variant { return r.variant }

// IsSuccess, IsFailure, and IsError are convenience predicates.
func (r Reply[T, R]) IsSuccess() bool { return r.variant == Success }
func (r Reply[T, R]) IsFailure() bool { return r.variant == Failure }
func (r Reply[T, R]) IsError() bool   { return r.variant == Error }

// Stream returns the resulting Stream. On Success this is the advanced
// stream; on Failure and Error it is the position alternation should
// resume at — see the commit rule in pkg/parser.Bind and the recovery
// rule in pkg/combinator.Choice for exactly what that means.
func (r Reply[T, R]) Stream() stream.Stream[T] { return r.stream }

// Value returns the success value. Only meaningful when Variant() ==
// Success; on Failure/Error it is the zero value of R.
func (r Reply[T, R]) Value() R { return r.value }

// Fatal returns the principal diagnostic of an Error reply. Only
// meaningful when Variant() == Error.
func (r Reply[T, R]) Fatal() message.ErrorMessage { return r.fatal }

// Messages returns the accumulated, ordered diagnostics for this reply,
// regardless of variant.
func (r Reply[T, R]) Messages() message.List { return r.messages }

// WithMessages returns a copy of r with msgs appended to its message list.
// Used by annotation combinators (pkg/combinator.Annotate and friends) to
// attach diagnostics without disturbing the variant, stream, or value.
func (r Reply[T, R]) WithMessages(msgs message.List) Reply[T, R] {
	r.messages = message.Concat(r.messages, msgs)
	return r
}

// WithStream returns a copy of r with its Stream field replaced, leaving
// variant, value and messages as they are. pkg/parser.Bind and
// pkg/combinator.Choice do not call it; they build their replies directly.
func (r Reply[T, R]) WithStream(s stream.Stream[T]) Reply[T, R] {
	r.stream = s
	return r
}

// Prepend returns a copy of r with msgs placed before r's own messages.
// Used by pkg/parser.Bind to thread a first step's messages ahead of a
// second step's without disturbing the second step's variant/stream/value.
func Prepend[T, R any](r Reply[T, R], msgs message.List) Reply[T, R] {
	r.messages = message.Concat(msgs, r.messages)
	return r
}

// Map transforms a Success reply's value through f, leaving Failure and
// Error replies (and their messages/stream) untouched. It is the building
// block pkg/parser.Map is defined in terms of.
func Map[T, R, U any](r Reply[T, R], f func(R) U) Reply[T, U] {
	switch r.variant {
	case Success:
		return Of[T, U](r.stream, f(r.value), r.messages)
	case Failure:
		return Failed[T, U](r.stream, r.messages)
	default:
		return Failing[T, U](r.stream, r.fatal, r.messages)
	}
}
