package unlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
)

type fakeRepo struct {
	unlocked []content.LocationID
	caught   []content.SpeciesID
	inserted []Record
	reject   bool
}

func (r *fakeRepo) UnlockedLocations(_ context.Context, _ int64) ([]content.LocationID, error) {
	return r.unlocked, nil
}

func (r *fakeRepo) CaughtSpecies(_ context.Context, _ int64) ([]content.SpeciesID, error) {
	return r.caught, nil
}

func (r *fakeRepo) InsertUnlock(_ context.Context, rec Record) error {
	if r.reject {
		return gameerr.DatabaseUniqueViolation("user_locations unique violation")
	}
	r.inserted = append(r.inserted, rec)
	return nil
}

func TestGetUnmetUnlockRequirementsReportsMissingPieces(t *testing.T) {
	repo := &fakeRepo{unlocked: []content.LocationID{1}, caught: []content.SpeciesID{5}}
	loc := &content.Location{
		ID:                        2,
		RequiredLocationsUnlocked: []content.LocationID{1, 3},
		RequiredSpeciesCaught:     []content.SpeciesID{5, 9},
	}

	missing, err := GetUnmetUnlockRequirements(context.Background(), repo, 1, loc)
	require.NoError(t, err)
	require.False(t, missing.Empty())
	require.Equal(t, []content.LocationID{3}, missing.LocationsUnlocked)
	require.Equal(t, []content.SpeciesID{9}, missing.SpeciesCaught)
}

func TestGetUnmetUnlockRequirementsEmptyWhenSatisfied(t *testing.T) {
	repo := &fakeRepo{unlocked: []content.LocationID{1}, caught: []content.SpeciesID{5}}
	loc := &content.Location{
		ID:                        2,
		RequiredLocationsUnlocked: []content.LocationID{1},
		RequiredSpeciesCaught:     []content.SpeciesID{5},
	}

	missing, err := GetUnmetUnlockRequirements(context.Background(), repo, 1, loc)
	require.NoError(t, err)
	require.True(t, missing.Empty())
}

func TestUnlockLocationFailsWhenRequirementsUnmet(t *testing.T) {
	repo := &fakeRepo{}
	loc := &content.Location{ID: 2, RequiredLocationsUnlocked: []content.LocationID{1}}

	_, err := UnlockLocation(context.Background(), repo, 1, 100, loc)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindUnmetLocationUnlockRequirements))
}

func TestUnlockLocationSucceedsWhenRequirementsMet(t *testing.T) {
	repo := &fakeRepo{}
	loc := &content.Location{ID: 2}

	record, err := UnlockLocation(context.Background(), repo, 1, 100, loc)
	require.NoError(t, err)
	require.Equal(t, content.LocationID(2), record.LocationID)
	require.Len(t, repo.inserted, 1)
}

func TestUnlockLocationTranslatesUniqueViolation(t *testing.T) {
	repo := &fakeRepo{reject: true}
	loc := &content.Location{ID: 2}

	_, err := UnlockLocation(context.Background(), repo, 1, 100, loc)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindLocationAlreadyUnlocked))
}
