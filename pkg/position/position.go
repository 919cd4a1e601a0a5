// Package position defines the comparable source locations attached to
// error messages and replies.
package position

import "fmt"

// Position identifies a point in an input token sequence. Offset is the
// absolute index of the token this position refers to (or, at end of
// input, the index one past the last token); Line and Column are optional
// human-facing coordinates a Stream implementation may choose to fill in.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Zero is the position at the start of an input.
var Zero = Position{}

// Less reports whether p comes strictly before q.
func (p Position) Less(q Position) bool {
	return p.Offset < q.Offset
}

// Equal reports whether p and q identify the same point.
func (p Position) Equal(q Position) bool {
	return p.Offset == q.Offset
}

func (p Position) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("#%d", p.Offset)
}

// Span is an ordered pair (Begin, End) with Begin <= End.
type Span struct {
	Begin, End Position
}

// NewSpan builds a Span, swapping the arguments if End comes before Begin.
func NewSpan(begin, end Position) Span {
	if end.Offset < begin.Offset {
		begin, end = end, begin
	}
	return Span{Begin: begin, End: end}
}

// At returns the degenerate zero-width span at p.
func At(p Position) Span {
	return Span{Begin: p, End: p}
}

func (s Span) String() string {
	if s.Begin.Equal(s.End) {
		return s.Begin.String()
	}
	return fmt.Sprintf("%s-%s", s.Begin, s.End)
}
