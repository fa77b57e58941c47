package specimen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talgya/fishgame-core/content"
)

func testSpecies() *content.Species {
	return &content.Species{
		ID:              1,
		Name:            "Common Carp",
		MinSizeBabyMM:   50,
		MaxSizeBabyMM:   100,
		MinSizeAdultMM:  300,
		MaxSizeAdultMM:  900,
		MinWeightBabyG:  20,
		MaxWeightBabyG:  80,
		MinWeightAdultG: 2000,
		MaxWeightAdultG: 9000,
		MinLifespanDays: 365,
		MaxLifespanDays: 3650,
	}
}

func TestGenerateRatiosAreWithinUnitRange(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := Generate(1, 1, at)

	require.GreaterOrEqual(t, s.SizeBabyRatio, float32(0))
	require.LessOrEqual(t, s.SizeBabyRatio, float32(1))
	require.GreaterOrEqual(t, s.SizeAdultRatio, float32(0))
	require.LessOrEqual(t, s.SizeAdultRatio, float32(1))
	require.GreaterOrEqual(t, s.LifespanDaysRatio, float32(0))
	require.LessOrEqual(t, s.LifespanDaysRatio, float32(1))
	require.GreaterOrEqual(t, s.CatchAge, float32(0))
	require.LessOrEqual(t, s.CatchAge, float32(1))
}

func TestAgeNeverDecreasesAndSaturatesAtOne(t *testing.T) {
	species := testSpecies()
	caughtAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Specimen{CatchAge: 0.1, LifespanDaysRatio: 0, CreatedAt: caughtAt, UpdatedAt: caughtAt}

	ageAtCatch := s.Age(caughtAt, species, 1.0)
	require.InDelta(t, 0.1, ageAtCatch, 0.0001)

	farFuture := caughtAt.AddDate(100, 0, 0)
	ageMuchLater := s.Age(farFuture, species, 1.0)
	require.Equal(t, float32(1.0), ageMuchLater)
}

func TestAgeIsAlwaysOneWhenCaughtAsAdult(t *testing.T) {
	species := testSpecies()
	caughtAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Specimen{CatchAge: 1.0, CreatedAt: caughtAt, UpdatedAt: caughtAt}

	require.Equal(t, float32(1.0), s.Age(caughtAt, species, 1.0))
	require.Equal(t, float32(1.0), s.Age(caughtAt.AddDate(1, 0, 0), species, 1.0))
}

func TestSizeMMInterpolatesBetweenBabyAndAdult(t *testing.T) {
	species := testSpecies()
	caughtAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Specimen{CatchAge: 0, SizeBabyRatio: 0, SizeAdultRatio: 0, CreatedAt: caughtAt, UpdatedAt: caughtAt}

	atCatch := s.SizeMM(caughtAt, species, 1.0)
	require.InDelta(t, float64(species.MinSizeBabyMM), atCatch, 0.01)

	s.CatchAge = 1.0
	whenAdult := s.SizeMM(caughtAt, species, 1.0)
	require.InDelta(t, float64(species.MinSizeAdultMM), whenAdult, 0.01)
}

func TestWeightGReusesSizeRatiosNotIndependentOnes(t *testing.T) {
	species := testSpecies()
	caughtAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Specimen{CatchAge: 1.0, SizeBabyRatio: 1.0, SizeAdultRatio: 1.0, CreatedAt: caughtAt, UpdatedAt: caughtAt}

	weight := s.WeightG(caughtAt, species, 1.0)
	require.InDelta(t, float64(species.MaxWeightAdultG), weight, 0.01)
}

func TestTotalSizeRatioIsClampedToUnitRange(t *testing.T) {
	species := testSpecies()
	caughtAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	smallest := Specimen{CatchAge: 0, SizeBabyRatio: 0, CreatedAt: caughtAt, UpdatedAt: caughtAt}
	require.InDelta(t, 0, smallest.TotalSizeRatio(caughtAt, species, 1.0), 0.01)

	largest := Specimen{CatchAge: 1.0, SizeAdultRatio: 1.0, CreatedAt: caughtAt, UpdatedAt: caughtAt}
	require.InDelta(t, 1.0, largest.TotalSizeRatio(caughtAt, species, 1.0), 0.01)
}
