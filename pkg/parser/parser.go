// Package parser defines the Parser value — a pure function from a Stream
// position to a Reply — plus the primitive constructors and the monadic
// bind/map operations. Higher-order combinators built from these live in
// pkg/combinator.
package parser

import (
	"go-parsec/pkg/message"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// Parser is a pure function from a Stream[T] to a Reply[T, R]. Parsers
// hold no mutable state and may be shared and reused across goroutines
// and across arbitrarily many runs.
type Parser[T, R any] func(stream.Stream[T]) reply.Reply[T, R]

// Run applies p to s and returns its Reply. It has no side effects beyond
// those of s itself; any panic raised by a caller-supplied predicate or
// projection propagates out of Run unmodified — the core never recovers
// from host-language exceptions.
func Run[T, R any](p Parser[T, R], s stream.Stream[T]) reply.Reply[T, R] {
	return p(s)
}

// Succeed consumes nothing and always yields Success(stream, v, ∅).
func Succeed[T, R any](v R) Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		return reply.Of[T, R](s, v, nil)
	}
}

// Fail consumes nothing and always yields Failure(stream, ∅).
func Fail[T, R any]() Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		return reply.Failed[T, R](s, nil)
	}
}

// ErrorP always yields an Error reply carrying msg at the severity
// message.Error, positioned at the current stream location.
func ErrorP[T, R any](msg string) Parser[T, R] {
	return diagnosticParser[T, R](message.Error, msg)
}

// Warn always yields an Error reply carrying msg at severity message.Warn.
func Warn[T, R any](msg string) Parser[T, R] {
	return diagnosticParser[T, R](message.Warn, msg)
}

// MessageP always yields an Error reply carrying msg at severity
// message.Message. (Named MessageP, not Message, to avoid colliding with
// the message package when both are imported unqualified.)
func MessageP[T, R any](msg string) Parser[T, R] {
	return diagnosticParser[T, R](message.Message, msg)
}

func diagnosticParser[T, R any](sev message.Severity, text string) Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		pos := s.Position()
		return reply.Failing[T, R](s, message.New(sev, text, pos), nil)
	}
}

// Eof succeeds with no value consumed iff the stream has no more tokens.
func Eof[T any]() Parser[T, struct{}] {
	return func(s stream.Stream[T]) reply.Reply[T, struct{}] {
		if s.CanNext() {
			return reply.Failed[T, struct{}](s, nil)
		}
		return reply.Of[T, struct{}](s, struct{}{}, nil)
	}
}

// Any succeeds with the current token and advances, or fails at
// end-of-input.
func Any[T any]() Parser[T, T] {
	return func(s stream.Stream[T]) reply.Reply[T, T] {
		tok, ok := s.Current()
		if !ok {
			return reply.Failed[T, T](s, nil)
		}
		return reply.Of[T, T](s.Next(), tok, nil)
	}
}

// Satisfy succeeds with the current token, advancing the stream, iff a
// token remains and pred holds for it. It never returns Error. On a miss
// the returned stream's position equals the input's — Satisfy never
// consumes on failure.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return func(s stream.Stream[T]) reply.Reply[T, T] {
		tok, ok := s.Current()
		if !ok || !pred(tok) {
			return reply.Failed[T, T](s, nil)
		}
		return reply.Of[T, T](s.Next(), tok, nil)
	}
}

// Token succeeds iff the current token equals t.
func Token[T comparable](t T) Parser[T, T] {
	return Satisfy[T](func(x T) bool { return x == t })
}

// Bind sequences p with a continuation k that chooses the next parser
// from p's result:
//
//  1. Run p. On Success(s', v, m1), run k(v) on s' and return its reply
//     with messages m1 ++ m2. That reply keeps k(v)'s own variant and
//     stream, so a Failure or Error from k(v) is not reset to the input.
//  2. On Failure(s, m1), return Failure with the stream reset to the
//     *original* input stream, not s. This is the commit rule: a Failure
//     of p never consumes input as seen by the caller of Bind.
//  3. On Error(s, e, m1), return Error similarly reset to the original
//     input stream.
func Bind[T, R, U any](p Parser[T, R], k func(R) Parser[T, U]) Parser[T, U] {
	return func(s stream.Stream[T]) reply.Reply[T, U] {
		r1 := p(s)
		switch r1.Variant() {
		case reply.Success:
			r2 := Run(k(r1.Value()), r1.Stream())
			return reply.Prepend(r2, r1.Messages())
		case reply.Failure:
			return reply.Failed[T, U](s, r1.Messages())
		default:
			return reply.Failing[T, U](s, r1.Fatal(), r1.Messages())
		}
	}
}

// Map transforms p's result through f without running a second parser.
// Structurally, map(p, f) = bind(p, x ↦ succeed(f(x))), but it is given
// its own implementation to avoid an extra closure allocation per
// application.
func Map[T, R, U any](p Parser[T, R], f func(R) U) Parser[T, U] {
	return func(s stream.Stream[T]) reply.Reply[T, U] {
		return reply.Map(p(s), f)
	}
}
