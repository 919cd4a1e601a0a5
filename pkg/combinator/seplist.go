package combinator

import "go-parsec/pkg/parser"

// SepBy parses at least n occurrences of p separated by sep: p followed
// by many(right(sep, p), max(n-1, 0)), then flattened — except when n ==
// 0, where an immediately-failing p yields Success([], original stream)
// rather than propagating that Failure.
func SepBy[T, R, S any](p parser.Parser[T, R], n int, sep parser.Parser[T, S]) parser.Parser[T, []R] {
	tailMin := n - 1
	if tailMin < 0 {
		tailMin = 0
	}
	nonEmpty := parser.Bind(p, func(head R) parser.Parser[T, []R] {
		tail := ManyN(Right(sep, p), tailMin)
		return parser.Map(tail, func(rest []R) []R {
			out := make([]R, 0, 1+len(rest))
			out = append(out, head)
			out = append(out, rest...)
			return out
		})
	})
	if n > 0 {
		return nonEmpty
	}
	return Choice2(nonEmpty, parser.Succeed[T, []R](nil))
}

// EndBy parses at least n occurrences of p, each followed by sep:
// many(left(p, sep), n).
func EndBy[T, R, S any](p parser.Parser[T, R], n int, sep parser.Parser[T, S]) parser.Parser[T, []R] {
	return ManyN(Left(p, sep), n)
}

// SepEndBy parses SepBy(p, n, sep) followed by an optional trailing sep.
func SepEndBy[T, R, S any](p parser.Parser[T, R], n int, sep parser.Parser[T, S]) parser.Parser[T, []R] {
	return Left(SepBy(p, n, sep), Maybe(sep))
}
