// Package unlock gates access to locations behind prior-unlock and
// catch-history prerequisites.
package unlock

import (
	"context"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
)

// MissingRequirements is the diff between a location's prerequisites and
// what a user has actually satisfied so far.
type MissingRequirements struct {
	LocationsUnlocked []content.LocationID
	SpeciesCaught     []content.SpeciesID
}

// Empty reports whether every requirement is satisfied.
func (m MissingRequirements) Empty() bool {
	return len(m.LocationsUnlocked) == 0 && len(m.SpeciesCaught) == 0
}

// Record is a single unlocked-location row.
type Record struct {
	UserID     int64
	LocationID content.LocationID
}

// Repository is the persistence seam UnlockKernel operations need.
type Repository interface {
	UnlockedLocations(ctx context.Context, userID int64) ([]content.LocationID, error)
	CaughtSpecies(ctx context.Context, userID int64) ([]content.SpeciesID, error)
	InsertUnlock(ctx context.Context, r Record) error
}

// GetUnmetUnlockRequirements diffs loc's prerequisites against what
// userID has already unlocked and caught.
func GetUnmetUnlockRequirements(ctx context.Context, repo Repository, userID int64, loc *content.Location) (MissingRequirements, error) {
	unlocked, err := repo.UnlockedLocations(ctx, userID)
	if err != nil {
		return MissingRequirements{}, err
	}
	caught, err := repo.CaughtSpecies(ctx, userID)
	if err != nil {
		return MissingRequirements{}, err
	}

	unlockedSet := make(map[content.LocationID]struct{}, len(unlocked))
	for _, l := range unlocked {
		unlockedSet[l] = struct{}{}
	}
	caughtSet := make(map[content.SpeciesID]struct{}, len(caught))
	for _, s := range caught {
		caughtSet[s] = struct{}{}
	}

	var missing MissingRequirements
	for _, req := range loc.RequiredLocationsUnlocked {
		if _, ok := unlockedSet[req]; !ok {
			missing.LocationsUnlocked = append(missing.LocationsUnlocked, req)
		}
	}
	for _, req := range loc.RequiredSpeciesCaught {
		if _, ok := caughtSet[req]; !ok {
			missing.SpeciesCaught = append(missing.SpeciesCaught, req)
		}
	}
	return missing, nil
}

// UnlockLocation unlocks loc for userID (with userExternalID for error
// context), refusing with UnmetLocationUnlockRequirements if prerequisites
// aren't satisfied, or LocationAlreadyUnlocked if a unique violation
// surfaces at the store.
func UnlockLocation(ctx context.Context, repo Repository, userID, userExternalID int64, loc *content.Location) (Record, error) {
	missing, err := GetUnmetUnlockRequirements(ctx, repo, userID, loc)
	if err != nil {
		return Record{}, err
	}
	if !missing.Empty() {
		return Record{}, gameerr.UnmetLocationUnlockRequirements(int32(loc.ID))
	}

	record := Record{UserID: userID, LocationID: loc.ID}
	if err := repo.InsertUnlock(ctx, record); err != nil {
		if gameerr.Is(err, gameerr.KindDatabaseUniqueViolation) {
			return Record{}, gameerr.LocationAlreadyUnlocked(userExternalID, int32(loc.ID))
		}
		return Record{}, err
	}
	return record, nil
}
