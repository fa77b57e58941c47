package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/history"
	"github.com/talgya/fishgame-core/item"
	"github.com/talgya/fishgame-core/specimen"
	"github.com/talgya/fishgame-core/store"
	"github.com/talgya/fishgame-core/unlock"
)

func TestUserCreateAndFindByExternalID(t *testing.T) {
	s := New()
	ctx := context.Background()

	u, err := s.Users().Create(ctx, 1001)
	require.NoError(t, err)
	require.Equal(t, int64(1001), u.ExternalID)
	require.Equal(t, int64(0), u.Credits)
	require.Equal(t, "UTC", u.Timezone)

	found, err := s.Users().FindByExternalID(ctx, 1001)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, u.ID, found.ID)
}

func TestUserCreateRejectsDuplicateExternalID(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Users().Create(ctx, 1001)
	require.NoError(t, err)

	_, err = s.Users().Create(ctx, 1001)
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindDatabaseUniqueViolation))
}

func TestSpecimenCreateRejectsUnknownUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Specimens().Create(ctx, specimen.Specimen{UserID: 999, SpeciesID: 1})
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindDatabaseForeignKeyViolation))
}

func TestSpecimenFindByUserReturnsOwnedSpecimens(t *testing.T) {
	s := New()
	ctx := context.Background()
	u, _ := s.Users().Create(ctx, 1)

	created, err := s.Specimens().Create(ctx, specimen.Specimen{UserID: u.ID, SpeciesID: 5})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := s.Specimens().FindByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestFishingHistoryCreateThenSaveRoundTrips(t *testing.T) {
	s := New()
	ctx := context.Background()

	entry := history.Entry{UserID: 1, SpeciesID: 2, CaughtCount: 1, LastCatch: time.Now()}
	created, err := s.FishingHistory().Create(ctx, entry)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.CaughtCount = 2
	saved, err := s.FishingHistory().Save(ctx, created)
	require.NoError(t, err)
	require.Equal(t, uint32(2), saved.CaughtCount)

	found, err := s.FishingHistory().FindByUserAndSpecies(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, uint32(2), found.CaughtCount)
}

func TestFishingHistorySaveFailsWhenMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.FishingHistory().Save(ctx, history.Entry{UserID: 1, SpeciesID: 2})
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindDatabaseNotFound))
}

func TestItemCreateSaveAndDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Items().Create(ctx, item.Item{UserID: 1, TypeID: 10})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byUser, err := s.Items().FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	saved, err := s.Items().Save(ctx, created)
	require.NoError(t, err)
	require.Equal(t, created.ID, saved.ID)

	require.NoError(t, s.Items().Delete(ctx, created))
	byUser, err = s.Items().FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, byUser)
}

func TestUnlockInsertAndQuery(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Unlocks().InsertUnlock(ctx, unlock.Record{UserID: 1, LocationID: 3}))

	locs, err := s.Unlocks().UnlockedLocations(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []content.LocationID{3}, locs)

	err = s.Unlocks().InsertUnlock(ctx, unlock.Record{UserID: 1, LocationID: 3})
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindDatabaseUniqueViolation))
}

func TestUnlockCaughtSpeciesOnlyCountsPositiveCatches(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.FishingHistory().Create(ctx, history.Entry{UserID: 1, SpeciesID: 7, CaughtCount: 1})
	require.NoError(t, err)
	_, err = s.FishingHistory().Create(ctx, history.Entry{UserID: 1, SpeciesID: 8, CaughtCount: 0})
	require.NoError(t, err)

	caught, err := s.Unlocks().CaughtSpecies(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []content.SpeciesID{7}, caught)
}

func TestPondCreateRejectsUnknownUser(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Ponds().Create(ctx, store.Pond{UserID: 999, Capacity: 10})
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindDatabaseForeignKeyViolation))
}

func TestPondCreateFindAndSave(t *testing.T) {
	s := New()
	ctx := context.Background()
	u, err := s.Users().Create(ctx, 1)
	require.NoError(t, err)

	created, err := s.Ponds().Create(ctx, store.Pond{UserID: u.ID, Capacity: 5})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := s.Ponds().FindByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, int32(5), found[0].Capacity)

	created.Capacity = 10
	saved, err := s.Ponds().Save(ctx, created)
	require.NoError(t, err)
	require.Equal(t, int32(10), saved.Capacity)
}

func TestPondSaveFailsWhenMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Ponds().Save(ctx, store.Pond{ID: 999, Capacity: 1})
	require.Error(t, err)
	require.True(t, gameerr.Is(err, gameerr.KindDatabaseNotFound))
}
