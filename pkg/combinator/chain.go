package combinator

import "go-parsec/pkg/parser"

// Chainl parses one p (the head), then zero or more sep-separated ps (the
// tail, sep's own value discarded), and folds left starting from
// f(seed, head) over the tail.
func Chainl[T, R, U, S any](p parser.Parser[T, R], sep parser.Parser[T, U], seed S, f func(S, R) S) parser.Parser[T, S] {
	return parser.Bind(p, func(head R) parser.Parser[T, S] {
		tail := Many(Right(sep, p))
		return parser.Map(tail, func(rest []R) S {
			acc := f(seed, head)
			for _, t := range rest {
				acc = f(acc, t)
			}
			return acc
		})
	})
}

// ChainlWith is Chainl with the seed derived from the head via
// seedSelector instead of supplied up front: the accumulator starts at
// seedSelector(head) and f folds only the tail onto it (the head is not
// passed to f).
func ChainlWith[T, R, U, S any](p parser.Parser[T, R], sep parser.Parser[T, U], seedSelector func(R) S, f func(S, R) S) parser.Parser[T, S] {
	return parser.Bind(p, func(head R) parser.Parser[T, S] {
		tail := Many(Right(sep, p))
		return parser.Map(tail, func(rest []R) S {
			acc := seedSelector(head)
			for _, t := range rest {
				acc = f(acc, t)
			}
			return acc
		})
	})
}

// ChainlSame is Chainl for the common case where f's input and output
// types coincide (R -> R -> R) and the head itself is the starting
// accumulator, e.g. folding a left-associative binary operator over a
// sequence of same-typed operands.
func ChainlSame[T, R, U any](p parser.Parser[T, R], sep parser.Parser[T, U], f func(R, R) R) parser.Parser[T, R] {
	return parser.Bind(p, func(head R) parser.Parser[T, R] {
		tail := Many(Right(sep, p))
		return parser.Map(tail, func(rest []R) R {
			acc := head
			for _, t := range rest {
				acc = f(acc, t)
			}
			return acc
		})
	})
}

// Chainr parses a head and tail the same way Chainl does, but folds right
// so the rightmost element combines with seed first.
func Chainr[T, R, U, S any](p parser.Parser[T, R], sep parser.Parser[T, U], seed S, f func(R, S) S) parser.Parser[T, S] {
	return parser.Bind(p, func(head R) parser.Parser[T, S] {
		tail := Many(Right(sep, p))
		return parser.Map(tail, func(rest []R) S {
			elems := append([]R{head}, rest...)
			acc := seed
			for i := len(elems) - 1; i >= 0; i-- {
				acc = f(elems[i], acc)
			}
			return acc
		})
	})
}

// ChainrWith is Chainr with the seed derived from the rightmost parsed
// element via seedSelector — the natural analogue, for a right fold, of
// Chainl deriving its seed from the leftmost (head) element.
func ChainrWith[T, R, U, S any](p parser.Parser[T, R], sep parser.Parser[T, U], seedSelector func(R) S, f func(R, S) S) parser.Parser[T, S] {
	return parser.Bind(p, func(head R) parser.Parser[T, S] {
		tail := Many(Right(sep, p))
		return parser.Map(tail, func(rest []R) S {
			elems := append([]R{head}, rest...)
			acc := seedSelector(elems[len(elems)-1])
			for i := len(elems) - 2; i >= 0; i-- {
				acc = f(elems[i], acc)
			}
			return acc
		})
	})
}

// ChainrSame is Chainr for f : R -> R -> R with no explicit seed; the
// rightmost parsed element is the starting accumulator.
func ChainrSame[T, R, U any](p parser.Parser[T, R], sep parser.Parser[T, U], f func(R, R) R) parser.Parser[T, R] {
	return parser.Bind(p, func(head R) parser.Parser[T, R] {
		tail := Many(Right(sep, p))
		return parser.Map(tail, func(rest []R) R {
			elems := append([]R{head}, rest...)
			acc := elems[len(elems)-1]
			for i := len(elems) - 2; i >= 0; i-- {
				acc = f(elems[i], acc)
			}
			return acc
		})
	})
}
