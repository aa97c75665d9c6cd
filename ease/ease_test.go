package ease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gease "github.com/tanema/gween/ease"
)

func TestOutQuad(t *testing.T) {
	assert.Equal(t, 0.0, OutQuad(0))
	assert.Equal(t, 0.75, OutQuad(0.5))
	assert.Equal(t, 1.0, OutQuad(1))

	prev := OutQuad(0)
	for i := 1; i <= 100; i++ {
		cur := OutQuad(float64(i) / 100)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestFromTweenMatchesNative(t *testing.T) {
	f := FromTween(gease.OutQuad)
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		assert.InDelta(t, OutQuad(x), f(x), 1e-6, "t=%v", x)
	}
}

func TestLookup(t *testing.T) {
	f, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, 0.75, f(0.5))

	f, err = Lookup("LINEAR")
	require.NoError(t, err)
	assert.Equal(t, 0.3, f(0.3))

	f, err = Lookup("inOutCubic")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f(0.5), 1e-6)

	_, err = Lookup("wobble")
	assert.ErrorContains(t, err, "unknown curve")
}

func TestNamedCurvesHitEndpoints(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err)
		assert.InDelta(t, 0, f(0), 5e-3, name)
		assert.InDelta(t, 1, f(1), 5e-3, name)
	}
}
