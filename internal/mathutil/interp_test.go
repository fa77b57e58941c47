package mathutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp32(t *testing.T) {
	require.InDelta(t, 5, Lerp32(0, 10, 0.5), 0.0001)
	require.InDelta(t, 0, Lerp32(0, 10, 0), 0.0001)
	require.InDelta(t, 10, Lerp32(0, 10, 1), 0.0001)
}

func TestClamp32(t *testing.T) {
	require.Equal(t, float32(0), Clamp32(-5, 0, 10))
	require.Equal(t, float32(10), Clamp32(15, 0, 10))
	require.Equal(t, float32(5), Clamp32(5, 0, 10))
}

func TestClamp64(t *testing.T) {
	require.Equal(t, -1.0, Clamp64(-5, -1, 1))
	require.Equal(t, 1.0, Clamp64(5, -1, 1))
}
