package gameerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMatchesKind(t *testing.T) {
	err := LocationNotFound(42)
	require.True(t, Is(err, KindLocationNotFound))
	require.False(t, Is(err, KindSpeciesNotFound))
}

func TestErrorsIsCompatibility(t *testing.T) {
	err := UserNotFound(7)
	var target *GameError
	require.True(t, errors.As(err, &target))
	require.True(t, errors.Is(err, &GameError{Kind: KindUserNotFound}))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unexpected(cause)
	require.ErrorIs(t, err, cause)
}

func TestPredicateMethods(t *testing.T) {
	err := ItemMaxCountExceeded(5, 100)
	require.True(t, err.IsItemMaxCountExceeded())
	require.False(t, err.IsItemUnstackable())
}

func TestFieldsArePopulated(t *testing.T) {
	err := LocationAlreadyUnlocked(100, 5)
	require.NotNil(t, err.ExternalID)
	require.Equal(t, int64(100), *err.ExternalID)
	require.NotNil(t, err.LocationID)
	require.Equal(t, int32(5), *err.LocationID)
}
