package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
)

func TestRegisterCatchCreatesEntryWhenNoneExists(t *testing.T) {
	caughtAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	entry := RegisterCatch(nil, 1, 2, 0.4, caughtAt)

	require.Equal(t, int64(1), entry.UserID)
	require.Equal(t, content.SpeciesID(2), entry.SpeciesID)
	require.Equal(t, uint32(1), entry.CaughtCount)
	require.Equal(t, float32(0.4), entry.SmallestCatchSizeRatio)
	require.Equal(t, float32(0.4), entry.LargestCatchSizeRatio)
	require.Equal(t, caughtAt, entry.LastCatch)
}

func TestRegisterCatchWidensSmallestAndLargestBounds(t *testing.T) {
	first := RegisterCatch(nil, 1, 2, 0.5, time.Now())

	smaller := RegisterCatch(&first, 1, 2, 0.2, time.Now())
	require.Equal(t, float32(0.2), smaller.SmallestCatchSizeRatio)
	require.Equal(t, float32(0.5), smaller.LargestCatchSizeRatio)

	larger := RegisterCatch(&smaller, 1, 2, 0.9, time.Now())
	require.Equal(t, float32(0.2), larger.SmallestCatchSizeRatio)
	require.Equal(t, float32(0.9), larger.LargestCatchSizeRatio)
	require.Equal(t, uint32(3), larger.CaughtCount)
}

// An exact tie against the existing smallest bound updates neither the
// smallest nor the largest bound: the if/else-if chain only ever
// widens, it never special-cases equality.
func TestRegisterCatchExactTieUpdatesNeitherBound(t *testing.T) {
	first := RegisterCatch(nil, 1, 2, 0.5, time.Now())
	tied := RegisterCatch(&first, 1, 2, 0.5, time.Now())

	require.Equal(t, float32(0.5), tied.SmallestCatchSizeRatio)
	require.Equal(t, float32(0.5), tied.LargestCatchSizeRatio)
	require.Equal(t, uint32(2), tied.CaughtCount)
}

func TestRegisterSellFailsWhenNeverCaught(t *testing.T) {
	_, err := RegisterSell(nil, 1, 2, time.Now())
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindFishingHistoryNotFound))
}

func TestRegisterSellTracksFirstAndLastSellTimes(t *testing.T) {
	entry := RegisterCatch(nil, 1, 2, 0.5, time.Now())

	firstSellTime := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	afterFirst, err := RegisterSell(&entry, 1, 2, firstSellTime)
	require.NoError(t, err)
	require.Equal(t, uint32(1), afterFirst.SoldCount)
	require.NotNil(t, afterFirst.FirstSell)
	require.Equal(t, firstSellTime, *afterFirst.FirstSell)

	secondSellTime := firstSellTime.Add(24 * time.Hour)
	afterSecond, err := RegisterSell(&afterFirst, 1, 2, secondSellTime)
	require.NoError(t, err)
	require.Equal(t, uint32(2), afterSecond.SoldCount)
	require.Equal(t, firstSellTime, *afterSecond.FirstSell)
	require.Equal(t, secondSellTime, *afterSecond.LastSell)
}

func TestSmallestAndLargestCatchMMUseSpeciesTotalRange(t *testing.T) {
	species := &content.Species{MinSizeBabyMM: 100, MaxSizeAdultMM: 1100}
	entry := Entry{SmallestCatchSizeRatio: 0, LargestCatchSizeRatio: 1}

	require.InDelta(t, 100, entry.SmallestCatchMM(species), 0.01)
	require.InDelta(t, 1100, entry.LargestCatchMM(species), 0.01)
}
