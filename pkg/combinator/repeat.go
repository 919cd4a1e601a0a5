package combinator

import (
	"go-parsec/pkg/message"
	"go-parsec/pkg/parseerr"
	"go-parsec/pkg/parser"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// ManyN applies p repeatedly. It must succeed at least n times; beyond n
// it greedily consumes successes until the first non-Success. An Error at
// any step aborts the whole combinator with Error. If fewer than n
// successes occurred before that non-Success, the combinator fails
// (Failure if the last outcome was Failure, Error if it was Error). A
// Success that leaves the stream where it was ends the repetition after
// its value is recorded, so a parser that consumes nothing cannot make
// the loop run forever. The loop form, rather than recursion, keeps deep
// repetition from growing the Go call stack.
func ManyN[T, R any](p parser.Parser[T, R], n int) parser.Parser[T, []R] {
	if n < 0 {
		panic(parseerr.InvalidArgument("ManyN", "minimum repetition count must be >= 0"))
	}
	return func(s stream.Stream[T]) reply.Reply[T, []R] {
		var out []R
		var msgs message.List
		cur := s
		for {
			r := parser.Run(p, cur)
			msgs = message.Concat(msgs, r.Messages())
			if r.IsError() {
				return reply.Failing[T, []R](r.Stream(), r.Fatal(), msgs)
			}
			if r.IsFailure() {
				break
			}
			out = append(out, r.Value())
			progressed := !r.Stream().Position().Equal(cur.Position())
			cur = r.Stream()
			if !progressed {
				break
			}
		}
		if len(out) < n {
			return reply.Failed[T, []R](s, msgs)
		}
		return reply.Of[T, []R](cur, out, msgs)
	}
}

// Many is ManyN(p, 0): zero or more.
func Many[T, R any](p parser.Parser[T, R]) parser.Parser[T, []R] {
	return ManyN(p, 0)
}

// Greed applies a sequence of (possibly distinct) parsers in order; on the
// first non-Success it stops and returns Success of the accumulated
// prefix, exactly as ManyN does for a single repeated parser. An Error
// aborts the whole combinator.
func Greed[T, R any](ps []parser.Parser[T, R]) parser.Parser[T, []R] {
	return func(s stream.Stream[T]) reply.Reply[T, []R] {
		var out []R
		var msgs message.List
		cur := s
		for _, p := range ps {
			r := parser.Run(p, cur)
			msgs = message.Concat(msgs, r.Messages())
			if r.IsError() {
				return reply.Failing[T, []R](r.Stream(), r.Fatal(), msgs)
			}
			if r.IsFailure() {
				break
			}
			out = append(out, r.Value())
			cur = r.Stream()
		}
		return reply.Of[T, []R](cur, out, msgs)
	}
}

// Sequence applies ps in order; every one must succeed. Any Failure or
// Error is propagated, with the stream reset to s on a Failure of any
// step. (pkg/parser.Bind resets only when its first parser fails.)
func Sequence[T, R any](ps []parser.Parser[T, R]) parser.Parser[T, []R] {
	return func(s stream.Stream[T]) reply.Reply[T, []R] {
		out := make([]R, 0, len(ps))
		var msgs message.List
		cur := s
		for _, p := range ps {
			r := parser.Run(p, cur)
			msgs = message.Concat(msgs, r.Messages())
			if !r.IsSuccess() {
				if r.IsError() {
					return reply.Failing[T, []R](r.Stream(), r.Fatal(), msgs)
				}
				return reply.Failed[T, []R](s, msgs)
			}
			out = append(out, r.Value())
			cur = r.Stream()
		}
		return reply.Of[T, []R](cur, out, msgs)
	}
}
