package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBuildsOnce(t *testing.T) {
	r := New()
	calls := 0
	r.Register("answer", func() (interface{}, error) {
		calls++
		return 42, nil
	})

	v1, err := r.Resolve("answer")
	require.NoError(t, err)
	v2, err := r.Resolve("answer")
	require.NoError(t, err)

	assert.Equal(t, 42, v1)
	assert.Equal(t, 42, v2)
	assert.Equal(t, 1, calls, "builder runs at most once")
}

func TestResolveUnregisteredNameErrors(t *testing.T) {
	r := New()
	_, err := r.Resolve("missing")
	assert.Error(t, err)
}

func TestResolveDetectsRegistrationTimeCircularity(t *testing.T) {
	r := New()
	r.Register("a", func() (interface{}, error) {
		return r.Resolve("a")
	})

	_, err := r.Resolve("a")
	assert.Error(t, err)
}

func TestMustResolvePanicsOnError(t *testing.T) {
	r := New()
	assert.Panics(t, func() {
		r.MustResolve("missing")
	})
}

func TestIsRegistered(t *testing.T) {
	r := New()
	assert.False(t, r.IsRegistered("expr"))

	r.Register("expr", func() (interface{}, error) { return nil, nil })
	assert.True(t, r.IsRegistered("expr"))
}

func TestRecursiveRuleReferenceAtRunTimeIsFine(t *testing.T) {
	// A builder that returns a closure referring back to the registry
	// (the shape combinator.Ref exercises) is not circular: the circle
	// only matters if Resolve re-enters itself before the builder
	// returns.
	r := New()
	r.Register("expr", func() (interface{}, error) {
		return func() (interface{}, error) { return r.Resolve("expr") }, nil
	})

	v, err := r.Resolve("expr")
	require.NoError(t, err)
	_, ok := v.(func() (interface{}, error))
	assert.True(t, ok)
}
