package combinator

import (
	"go-parsec/pkg/message"
	"go-parsec/pkg/parseerr"
	"go-parsec/pkg/parser"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// LazySeq is a lazy, potentially-infinite repetition of a parser: each
// step yields the Reply for this position plus a continuation for the
// next one. Nothing beyond the requested prefix is ever evaluated (spec
// §4.6, "replicate").
type LazySeq[T, R any] func(stream.Stream[T]) (reply.Reply[T, R], LazySeq[T, R])

// Replicate builds the lazy infinite repetition of p.
func Replicate[T, R any](p parser.Parser[T, R]) LazySeq[T, R] {
	var self LazySeq[T, R]
	self = func(s stream.Stream[T]) (reply.Reply[T, R], LazySeq[T, R]) {
		return parser.Run(p, s), self
	}
	return self
}

// Partitioned is the result of Partition: a fixed, eagerly-evaluated
// prefix plus a lazy tail positioned just past it, ready to keep driving
// (e.g. with Many) without having forced it.
type Partitioned[T, R any] struct {
	Prefix []R
	Tail   LazySeq[T, R]
}

// Partition evaluates the first n elements of seq eagerly. If any of them
// is not a Success the whole combinator fails the same way ManyN does for
// a short repetition: it stops at the first attempt that is not a
// Success and returns Failure if that attempt failed, Error if it
// errored. On success it returns the prefix plus the remaining repetition
// as an unforced lazy tail.
func Partition[T, R any](seq LazySeq[T, R], n int) parser.Parser[T, Partitioned[T, R]] {
	if n < 0 {
		panic(parseerr.InvalidArgument("Partition", "prefix count must be >= 0"))
	}
	return func(s stream.Stream[T]) reply.Reply[T, Partitioned[T, R]] {
		prefix := make([]R, 0, n)
		var msgs message.List
		cur := s
		tail := seq
		for i := 0; i < n; i++ {
			r, next := tail(cur)
			msgs = message.Concat(msgs, r.Messages())
			if !r.IsSuccess() {
				if r.IsError() {
					return reply.Failing[T, Partitioned[T, R]](r.Stream(), r.Fatal(), msgs)
				}
				return reply.Failed[T, Partitioned[T, R]](s, msgs)
			}
			prefix = append(prefix, r.Value())
			cur = r.Stream()
			tail = next
		}
		return reply.Of[T, Partitioned[T, R]](cur, Partitioned[T, R]{Prefix: prefix, Tail: tail}, msgs)
	}
}

// ManyFromTail drains a lazy tail the way Many drains a plain parser,
// useful after Partition has taken its fixed prefix.
func ManyFromTail[T, R any](tail LazySeq[T, R]) parser.Parser[T, []R] {
	return func(s stream.Stream[T]) reply.Reply[T, []R] {
		var out []R
		var msgs message.List
		cur := s
		next := tail
		for {
			r, n2 := next(cur)
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
			next = n2
			if !progressed {
				break
			}
		}
		return reply.Of[T, []R](cur, out, msgs)
	}
}
