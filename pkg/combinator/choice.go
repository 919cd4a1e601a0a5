// Package combinator holds every derived composition pattern built on top
// of pkg/parser's primitives and monadic bind: alternation, lookahead,
// repetition, sequencing helpers, separated lists, chains, and the
// error-annotation/rescue discipline.
package combinator

import (
	"go-parsec/pkg/parser"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// Choice2 is the defining predictive rule of the library:
//
//   - Apply p on stream. On Success, return that Success.
//   - On Failure, apply q on the *original* stream and return its result.
//   - On Error, return p's Error; q is never tried.
//
// Alternatives never recover past an Error; they do recover past a
// Failure.
func Choice2[T, R any](p, q parser.Parser[T, R]) parser.Parser[T, R] {
	return func(s stream.Stream[T]) reply.Reply[T, R] {
		r1 := parser.Run(p, s)
		if !r1.IsFailure() {
			return r1
		}
		r2 := parser.Run(q, s)
		return reply.Prepend(r2, r1.Messages())
	}
}

// Or is Choice2 under its infix-reading name.
func Or[T, R any](p, q parser.Parser[T, R]) parser.Parser[T, R] {
	return Choice2(p, q)
}

// WhenFailure runs fallback only if p returns Failure — the same
// semantics as Choice2, named for use in a left-to-right pipeline:
// WhenFailure(p, fallback) reads as "p, or on failure, fallback".
func WhenFailure[T, R any](p, fallback parser.Parser[T, R]) parser.Parser[T, R] {
	return Choice2(p, fallback)
}

// Choice tries each candidate in order; the first Success or Error wins.
// Choice() with no candidates is Fail().
func Choice[T, R any](ps ...parser.Parser[T, R]) parser.Parser[T, R] {
	if len(ps) == 0 {
		return parser.Fail[T, R]()
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Choice2(acc, p)
	}
	return acc
}
