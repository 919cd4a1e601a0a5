package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-parsec/pkg/position"
)

func TestSeverityHasAndAny(t *testing.T) {
	t.Run("Has reports exact subset membership", func(t *testing.T) {
		combo := Warn | Error
		assert.True(t, combo.Has(Warn))
		assert.True(t, combo.Has(Error))
		assert.True(t, combo.Has(Warn|Error))
		assert.False(t, combo.Has(Message))
	})

	t.Run("Any reports overlap", func(t *testing.T) {
		combo := Warn | Error
		assert.True(t, combo.Any(Message|Warn))
		assert.False(t, combo.Any(Message))
	})

	t.Run("All contains every flag", func(t *testing.T) {
		assert.True(t, All.Has(Message))
		assert.True(t, All.Has(Warn))
		assert.True(t, All.Has(Error))
	})
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "Message", Message.String())
	assert.Equal(t, "Warn", Warn.String())
	assert.Equal(t, "Error", Error.String())
	assert.Equal(t, "Mixed", (Warn | Error).String())
}

func TestNewAndNewSpan(t *testing.T) {
	p := position.Position{Offset: 3, Line: 1, Column: 4}
	m := New(Error, "unexpected token", p)
	require.Equal(t, Error, m.Severity)
	assert.Equal(t, "unexpected token", m.Text)
	assert.Equal(t, position.At(p), m.Span)

	q := position.Position{Offset: 7}
	sp := position.NewSpan(p, q)
	ms := NewSpan(Warn, "trailing garbage", sp)
	assert.Equal(t, sp, ms.Span)
}

func TestConcat(t *testing.T) {
	t.Run("empty operands short-circuit", func(t *testing.T) {
		a := List{New(Error, "a", position.Zero)}
		assert.Equal(t, a, Concat(a, nil))
		assert.Equal(t, a, Concat(nil, a))
	})

	t.Run("preserves order", func(t *testing.T) {
		a := List{New(Message, "first", position.Zero)}
		b := List{New(Warn, "second", position.Zero)}
		got := Concat(a, b)
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Text)
		assert.Equal(t, "second", got[1].Text)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		a := make(List, 0, 4)
		a = append(a, New(Message, "first", position.Zero))
		b := List{New(Warn, "second", position.Zero)}
		_ = Concat(a, b)
		require.Len(t, a, 1)
	})
}

func TestAppend(t *testing.T) {
	a := List{New(Message, "first", position.Zero)}
	got := Append(a, New(Error, "second", position.Zero), New(Warn, "third", position.Zero))
	require.Len(t, got, 3)
	assert.Equal(t, "second", got[1].Text)
	assert.Equal(t, "third", got[2].Text)
}
