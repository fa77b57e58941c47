// Package specimen generates and ages individual caught fish.
package specimen

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/internal/mathutil"
)

// Specimen is one caught fish: its three generation ratios, the age it was
// caught at, and when it entered the world. Age, size and weight at any
// later instant are pure functions of these fields plus species content.
type Specimen struct {
	ID        int64
	UserID    int64
	SpeciesID content.SpeciesID

	SizeBabyRatio      float32
	SizeAdultRatio      float32
	LifespanDaysRatio  float32
	CatchAge           float32

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Generate samples a new specimen's ratios for speciesID, caught at
// catchTime, drawing from math/rand/v2's package-level source.
func Generate(userID int64, speciesID content.SpeciesID, catchTime time.Time) Specimen {
	return Specimen{
		UserID:            userID,
		SpeciesID:         speciesID,
		SizeBabyRatio:     truncatedNormal01(),
		SizeAdultRatio:    truncatedNormal01(),
		LifespanDaysRatio: truncatedNormal01(),
		CatchAge:          uniform01(),
		CreatedAt:         catchTime,
		UpdatedAt:         catchTime,
	}
}

// truncatedNormal01 samples mean=0.5, stddev=1/6 via Box-Muller and clamps
// to [0,1].
func truncatedNormal01() float32 {
	const mean = 0.5
	const stddev = 1.0 / 6.0

	u1 := rand.Float64()
	u2 := rand.Float64()
	if u1 <= 0 {
		u1 = 1e-12
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	return mathutil.Clamp32(float32(mean+stddev*z), 0, 1)
}

func uniform01() float32 {
	return float32(rand.Float64())
}

// Age returns this specimen's age (0..1) at now, given the species it
// belongs to and the catalog's time speed multiplier.
func (s *Specimen) Age(now time.Time, species *content.Species, timeSpeedMultiplier float32) float32 {
	if s.CatchAge >= 1.0 {
		return 1.0
	}

	lifespanDays := species.LifespanDays(s.LifespanDaysRatio)

	secondsSinceCatch := now.Sub(s.CreatedAt).Seconds()
	daysSinceCatch := float32(secondsSinceCatch) / 86400.0

	remainingLifespanDays := lifespanDays * (1.0 - s.CatchAge)
	if remainingLifespanDays <= 0 {
		return 1.0
	}
	ageProgress := (daysSinceCatch * timeSpeedMultiplier) / remainingLifespanDays

	return mathutil.Clamp32(s.CatchAge+ageProgress, 0, 1)
}

// SizeMM returns the current length of the fish at now.
func (s *Specimen) SizeMM(now time.Time, species *content.Species, timeSpeedMultiplier float32) float32 {
	babyMM := species.SizeBabyMM(s.SizeBabyRatio)
	adultMM := species.SizeAdultMM(s.SizeAdultRatio)
	age := s.Age(now, species, timeSpeedMultiplier)
	return mathutil.Lerp32(babyMM, adultMM, age)
}

// WeightG returns the current weight of the fish at now. It shares the
// size ratios with SizeMM, not independent weight ratios.
func (s *Specimen) WeightG(now time.Time, species *content.Species, timeSpeedMultiplier float32) float32 {
	babyG := species.WeightBabyG(s.SizeBabyRatio)
	adultG := species.WeightAdultG(s.SizeAdultRatio)
	age := s.Age(now, species, timeSpeedMultiplier)
	return mathutil.Lerp32(babyG, adultG, age)
}

// TotalSizeRatio is the "trophy" scalar: how large this specimen is
// relative to the species' theoretical smallest-baby..largest-adult range.
func (s *Specimen) TotalSizeRatio(now time.Time, species *content.Species, timeSpeedMultiplier float32) float32 {
	minPossible := float32(species.MinSizeBabyMM)
	maxPossible := float32(species.MaxSizeAdultMM)
	current := s.SizeMM(now, species, timeSpeedMultiplier)

	if maxPossible == minPossible {
		return 0
	}
	ratio := (current - minPossible) / (maxPossible - minPossible)
	return mathutil.Clamp32(ratio, 0, 1)
}
