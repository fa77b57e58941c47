// Package history tracks each user's lifetime catch/sell record per
// species.
package history

import (
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/specimen"
)

// Entry is the single lifetime record for one (user, species) pair.
type Entry struct {
	ID        int64
	UserID    int64
	SpeciesID content.SpeciesID

	CaughtCount uint32
	SoldCount   uint32

	SmallestCatchSizeRatio float32
	LargestCatchSizeRatio  float32

	LastCatch time.Time
	FirstSell *time.Time
	LastSell  *time.Time
}

// saturatingAddU32 adds delta to v without wrapping past math.MaxUint32.
func saturatingAddU32(v uint32, delta uint32) uint32 {
	sum := uint64(v) + uint64(delta)
	if sum > 0xFFFFFFFF {
		return 0xFFFFFFFF
	}
	return uint32(sum)
}

// RegisterCatch folds a newly-caught specimen into entry (nil if none
// exists yet), returning the updated record. The smallest/largest bounds
// update with a plain if/else-if: an exact tie with an existing bound
// widens neither.
func RegisterCatch(existing *Entry, userID int64, speciesID content.SpeciesID, totalSizeRatio float32, caughtAt time.Time) Entry {
	if existing == nil {
		return Entry{
			UserID:                 userID,
			SpeciesID:              speciesID,
			CaughtCount:            1,
			SoldCount:              0,
			SmallestCatchSizeRatio: totalSizeRatio,
			LargestCatchSizeRatio:  totalSizeRatio,
			LastCatch:              caughtAt,
		}
	}

	entry := *existing
	if totalSizeRatio < entry.SmallestCatchSizeRatio {
		entry.SmallestCatchSizeRatio = totalSizeRatio
	} else if totalSizeRatio > entry.LargestCatchSizeRatio {
		entry.LargestCatchSizeRatio = totalSizeRatio
	}
	entry.CaughtCount = saturatingAddU32(entry.CaughtCount, 1)
	entry.LastCatch = caughtAt
	return entry
}

// RegisterSell folds a sale into entry. Fails with FishingHistoryNotFound
// if the species has never been caught by this user.
func RegisterSell(existing *Entry, userID int64, speciesID content.SpeciesID, sellTime time.Time) (Entry, error) {
	if existing == nil {
		return Entry{}, gameerr.FishingHistoryNotFound(userID, int32(speciesID))
	}

	entry := *existing
	wasFirstSale := entry.SoldCount == 0
	entry.SoldCount = saturatingAddU32(entry.SoldCount, 1)
	entry.LastSell = &sellTime
	if wasFirstSale {
		entry.FirstSell = &sellTime
	}
	return entry, nil
}

// SmallestCatchMM interpolates the stored smallest-catch ratio against the
// species' overall min-baby..max-adult size range.
func (e *Entry) SmallestCatchMM(species *content.Species) float32 {
	return totalRangeMM(species, e.SmallestCatchSizeRatio)
}

// LargestCatchMM interpolates the stored largest-catch ratio against the
// species' overall min-baby..max-adult size range.
func (e *Entry) LargestCatchMM(species *content.Species) float32 {
	return totalRangeMM(species, e.LargestCatchSizeRatio)
}

func totalRangeMM(species *content.Species, ratio float32) float32 {
	minPossible := float32(species.MinSizeBabyMM)
	maxPossible := float32(species.MaxSizeAdultMM)
	return minPossible + (maxPossible-minPossible)*ratio
}

// SpecimenTotalSizeRatio computes the trophy ratio RegisterCatch expects,
// so callers don't need specimen's internals in scope.
func SpecimenTotalSizeRatio(s *specimen.Specimen, sp *content.Species, now time.Time, timeSpeedMultiplier float32) float32 {
	return s.TotalSizeRatio(now, sp, timeSpeedMultiplier)
}
