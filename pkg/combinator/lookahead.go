package combinator

import (
	"go-parsec/pkg/message"
	"go-parsec/pkg/parser"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// FollowedBy runs p and discards any consumption: Success becomes Success
// with the stream reset to the input, Failure becomes Error (with msg as
// the principal diagnostic), and Error passes through unchanged.
func FollowedBy[T, R any](p parser.Parser[T, R], msg string) parser.Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		r := parser.Run(p, s)
		switch r.Variant() {
		case reply.Success:
			return reply.Of[T, R](s, r.Value(), r.Messages())
		case reply.Failure:
			return reply.Failing[T, R](s, message.New(message.Error, msg, s.Position()), r.Messages())
		default:
			return r
		}
	}
}

// NotFollowedBy runs p: Success becomes Failure (with msg attached as a
// message, not a fatal diagnostic — the lookahead failed, but that is
// recoverable by alternation, just as a plain failed satisfy is), Failure
// becomes Success(unit) with no consumption, and Error stays Error with
// its diagnostic and messages, its stream reset to the input. This is
// the variant mapping that makes double negation an
// involution: flipping twice toggles Success and Failure and leaves
// Error fixed, so notFollowedBy(notFollowedBy(p)) succeeds exactly when p
// does. An unrecoverable failure should still go through FollowedBy or an
// explicit ErrorWhenSuccess wrapper.
func NotFollowedBy[T, R any](p parser.Parser[T, R], msg string) parser.Parser[T, struct{}] {
	return func(s stream.Stream[T]) reply.Reply[T, struct{}] {
		r := parser.Run(p, s)
		switch r.Variant() {
		case reply.Success:
			return reply.Failed[T, struct{}](s, message.Append(r.Messages(), message.New(message.Message, msg, s.Position())))
		case reply.Failure:
			return reply.Of[T, struct{}](s, struct{}{}, r.Messages())
		default:
			return reply.Failing[T, struct{}](s, r.Fatal(), r.Messages())
		}
	}
}

// Not is the boolean complement of p: equivalent to NotFollowedBy.
func Not[T, R any](p parser.Parser[T, R], msg string) parser.Parser[T, struct{}] {
	return NotFollowedBy(p, msg)
}

// Maybe runs p: Success passes through, Failure becomes Success(absent,
// stream unchanged), and Error passes through. Maybe never returns
// Failure.
func Maybe[T, R any](p parser.Parser[T, R]) parser.Parser[T, *R] {
	return func(s stream.Stream[T]) reply.Reply[T, *R] {
		r := parser.Run(p, s)
		switch r.Variant() {
		case reply.Success:
			v := r.Value()
			return reply.Of[T, *R](r.Stream(), &v, r.Messages())
		case reply.Failure:
			return reply.Of[T, *R](s, nil, r.Messages())
		default:
			return reply.Failing[T, *R](r.Stream(), r.Fatal(), r.Messages())
		}
	}
}
