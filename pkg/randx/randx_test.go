//go:build !integration

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRangeBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(30, 50)
		assert.GreaterOrEqual(t, v, 30)
		assert.LessOrEqual(t, v, 50)
	}
	assert.Equal(t, 5, r.Range(5, 5))
}

func TestUniformBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(-0.1, 0.1)
		assert.GreaterOrEqual(t, v, -0.1)
		assert.Less(t, v, 0.1)
	}
}

func TestIntNNonPositive(t *testing.T) {
	assert.Equal(t, 0, New(1).IntN(0))
	assert.Equal(t, 0, New(1).IntN(-3))
}

func TestReadFillsBuffer(t *testing.T) {
	buf := make([]byte, 19)
	n, err := New(3).Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 19, n)

	other := make([]byte, 19)
	_, _ = New(3).Read(other)
	assert.Equal(t, buf, other)
}

func TestPickEmpty(t *testing.T) {
	assert.Equal(t, "", Pick[string](New(1), nil))
	assert.Equal(t, "a", Pick(New(1), []string{"a"}))
}
