package combinator

import "go-parsec/pkg/parser"

// Left runs p then q, keeping p's value:
// left(p, q) = bind(p, x ↦ map(q, _ ↦ x)).
func Left[T, R, U any](p parser.Parser[T, R], q parser.Parser[T, U]) parser.Parser[T, R] {
	return parser.Bind(p, func(x R) parser.Parser[T, R] {
		return parser.Map(q, func(U) R { return x })
	})
}

// Right runs p then q, keeping q's value:
// right(p, q) = bind(p, _ ↦ q).
func Right[T, R, U any](p parser.Parser[T, R], q parser.Parser[T, U]) parser.Parser[T, U] {
	return parser.Bind(p, func(R) parser.Parser[T, U] { return q })
}

// Pair holds the two values Both produces.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Both runs p then q and pairs their results.
func Both[T, R, U any](p parser.Parser[T, R], q parser.Parser[T, U]) parser.Parser[T, Pair[R, U]] {
	return parser.Bind(p, func(x R) parser.Parser[T, Pair[R, U]] {
		return parser.Map(q, func(y U) Pair[R, U] { return Pair[R, U]{First: x, Second: y} })
	})
}

// Between parses open, then p, then close, keeping only p's value:
// between(p, open, close) = right(open, left(p, close)).
func Between[T, O, R, C any](p parser.Parser[T, R], open parser.Parser[T, O], close parser.Parser[T, C]) parser.Parser[T, R] {
	return Right(open, Left(p, close))
}

// Pipe3 sequences three parsers and projects their results with f. It is
// the curried equivalent of nested Bind calls; wider arities follow the
// same shape.
func Pipe3[T, A, B, C, R any](pa parser.Parser[T, A], pb parser.Parser[T, B], pc parser.Parser[T, C], f func(A, B, C) R) parser.Parser[T, R] {
	return parser.Bind(pa, func(a A) parser.Parser[T, R] {
		return parser.Bind(pb, func(b B) parser.Parser[T, R] {
			return parser.Map(pc, func(c C) R { return f(a, b, c) })
		})
	})
}

// Pipe4 sequences four parsers and projects their results with f.
func Pipe4[T, A, B, C, D, R any](pa parser.Parser[T, A], pb parser.Parser[T, B], pc parser.Parser[T, C], pd parser.Parser[T, D], f func(A, B, C, D) R) parser.Parser[T, R] {
	return parser.Bind(pa, func(a A) parser.Parser[T, R] {
		return parser.Bind(pb, func(b B) parser.Parser[T, R] {
			return parser.Bind(pc, func(c C) parser.Parser[T, R] {
				return parser.Map(pd, func(d D) R { return f(a, b, c, d) })
			})
		})
	})
}
