package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixedClockReturnsFixedTime(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := Fixed{At: at}
	require.Equal(t, at, c.Now())
	require.Equal(t, at, c.Now())
}

func TestRealClockAdvances(t *testing.T) {
	c := Real{}
	first := c.Now()
	time.Sleep(time.Millisecond)
	second := c.Now()
	require.True(t, second.After(first) || second.Equal(first))
}
