package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-parsec/pkg/parser"
	"go-parsec/pkg/stream"
)

func TestFollowedBy(t *testing.T) {
	t.Run("Success does not consume", func(t *testing.T) {
		s := stream.NewRuneStream("ab")
		r := parser.Run(FollowedBy(parser.Token[rune]('a'), "want a"), s)
		require.True(t, r.IsSuccess())
		assert.Equal(t, s.Position(), r.Stream().Position())
	})

	t.Run("Failure becomes Error", func(t *testing.T) {
		s := stream.NewRuneStream("b")
		r := parser.Run(FollowedBy(parser.Token[rune]('a'), "want a"), s)
		require.True(t, r.IsError())
		assert.Equal(t, "want a", r.Fatal().Text)
	})
}

func TestNotFollowedByInvolution(t *testing.T) {
	// Property 9: notFollowedBy(notFollowedBy(p)) succeeds iff p would
	// succeed, and never consumes input.
	matches := stream.NewRuneStream("a")
	p := parser.Token[rune]('a')

	inner := NotFollowedBy(p, "unexpected a")
	outer := parser.Run(NotFollowedBy(inner, "unreachable"), matches)

	require.True(t, outer.IsSuccess())
	assert.Equal(t, matches.Position(), outer.Stream().Position())

	mismatch := stream.NewRuneStream("b")
	outerMiss := parser.Run(NotFollowedBy(NotFollowedBy(p, "unexpected a"), "unreachable"), mismatch)
	assert.True(t, outerMiss.IsFailure(), "double negation toggles Success/Failure, fixing p's own outcome")
}

func TestNot(t *testing.T) {
	s := stream.NewRuneStream("a")
	r := parser.Run(Not(parser.Token[rune]('b'), "saw b"), s)
	require.True(t, r.IsSuccess())
	assert.Equal(t, s.Position(), r.Stream().Position())
}

func TestMaybeTotality(t *testing.T) {
	// Property 8: maybe(p) never returns Failure.
	miss := stream.NewRuneStream("b")
	r := parser.Run(Maybe(parser.Token[rune]('a')), miss)
	require.True(t, r.IsSuccess())
	assert.Nil(t, r.Value())
	assert.Equal(t, miss.Position(), r.Stream().Position())

	hit := stream.NewRuneStream("a")
	r2 := parser.Run(Maybe(parser.Token[rune]('a')), hit)
	require.True(t, r2.IsSuccess())
	require.NotNil(t, r2.Value())
	assert.Equal(t, 'a', *r2.Value())

	failing := stream.NewRuneStream("a")
	r3 := parser.Run(Maybe(parser.ErrorP[rune, rune]("boom")), failing)
	assert.True(t, r3.IsError(), "maybe passes Error through unchanged")
}
