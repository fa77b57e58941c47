// Package memstore is an in-process, map-backed store.Store, used for
// kernel tests and embedding callers that don't need durability.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/history"
	"github.com/talgya/fishgame-core/item"
	"github.com/talgya/fishgame-core/specimen"
	"github.com/talgya/fishgame-core/store"
	"github.com/talgya/fishgame-core/unlock"
)

// Store is a single in-memory database shared by all of its sub-stores.
type Store struct {
	mu sync.Mutex

	users       map[int64]store.User
	usersByExt  map[int64]int64
	nextUserID  int64

	specimens     map[int64]specimen.Specimen
	nextSpecimen  int64

	history       map[historyKey]history.Entry
	nextHistoryID int64

	items    map[int64]item.Item
	nextItem int64

	unlocks map[unlockKey]struct{}

	ponds    map[int64]store.Pond
	nextPond int64
}

type historyKey struct {
	userID    int64
	speciesID content.SpeciesID
}

type unlockKey struct {
	userID     int64
	locationID content.LocationID
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		users:      make(map[int64]store.User),
		usersByExt: make(map[int64]int64),
		specimens:  make(map[int64]specimen.Specimen),
		history:    make(map[historyKey]history.Entry),
		items:      make(map[int64]item.Item),
		unlocks:    make(map[unlockKey]struct{}),
		ponds:      make(map[int64]store.Pond),
	}
}

func (s *Store) Users() store.UserStore                    { return (*userStore)(s) }
func (s *Store) Specimens() store.SpecimenStore             { return (*specimenStore)(s) }
func (s *Store) FishingHistory() store.FishingHistoryStore  { return (*historyStore)(s) }
func (s *Store) Items() store.ItemStore                     { return (*itemStore)(s) }
func (s *Store) Unlocks() store.UnlockStore                 { return (*unlockStore)(s) }
func (s *Store) Ponds() store.PondStore                     { return (*pondStore)(s) }

type userStore Store

func (s *userStore) FindByExternalID(_ context.Context, externalID int64) (*store.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.usersByExt[externalID]
	if !ok {
		return nil, nil
	}
	u := s.users[id]
	return &u, nil
}

func (s *userStore) Create(_ context.Context, externalID int64) (store.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByExt[externalID]; ok {
		return store.User{}, gameerr.DatabaseUniqueViolation("user already registered")
	}
	s.nextUserID++
	now := time.Now().UTC()
	u := store.User{ID: s.nextUserID, ExternalID: externalID, Timezone: "UTC", CreatedAt: now, UpdatedAt: now}
	s.users[u.ID] = u
	s.usersByExt[externalID] = u.ID
	return u, nil
}

func (s *userStore) Save(_ context.Context, u store.User) (store.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return store.User{}, gameerr.DatabaseNotFound("user not found")
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = u
	return u, nil
}

type specimenStore Store

func (s *specimenStore) Create(_ context.Context, sp specimen.Specimen) (specimen.Specimen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[sp.UserID]; !ok {
		return specimen.Specimen{}, gameerr.DatabaseForeignKeyViolation("specimen references unknown user")
	}
	s.nextSpecimen++
	sp.ID = s.nextSpecimen
	s.specimens[sp.ID] = sp
	return sp, nil
}

func (s *specimenStore) FindByUser(_ context.Context, userID int64) ([]specimen.Specimen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []specimen.Specimen
	for _, sp := range s.specimens {
		if sp.UserID == userID {
			out = append(out, sp)
		}
	}
	return out, nil
}

type historyStore Store

func (s *historyStore) FindByUserAndSpecies(_ context.Context, userID int64, speciesID content.SpeciesID) (*history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.history[historyKey{userID, speciesID}]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *historyStore) Create(_ context.Context, e history.Entry) (history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := historyKey{e.UserID, e.SpeciesID}
	if _, ok := s.history[key]; ok {
		return history.Entry{}, gameerr.DatabaseUniqueViolation("fishing history entry already exists")
	}
	s.nextHistoryID++
	e.ID = s.nextHistoryID
	s.history[key] = e
	return e, nil
}

func (s *historyStore) Save(_ context.Context, e history.Entry) (history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := historyKey{e.UserID, e.SpeciesID}
	if _, ok := s.history[key]; !ok {
		return history.Entry{}, gameerr.DatabaseNotFound("fishing history entry not found")
	}
	s.history[key] = e
	return e, nil
}

type itemStore Store

func (s *itemStore) FindByTypeAndUser(_ context.Context, typeID content.ItemTypeID, userID int64) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []item.Item
	for _, it := range s.items {
		if it.TypeID == typeID && it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *itemStore) FindByUser(_ context.Context, userID int64) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []item.Item
	for _, it := range s.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *itemStore) Create(_ context.Context, it item.Item) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextItem++
	it.ID = s.nextItem
	now := time.Now().UTC()
	it.CreatedAt, it.UpdatedAt = now, now
	s.items[it.ID] = it
	return it, nil
}

func (s *itemStore) Save(_ context.Context, it item.Item) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[it.ID]; !ok {
		return item.Item{}, gameerr.DatabaseNotFound("item not found")
	}
	it.UpdatedAt = time.Now().UTC()
	s.items[it.ID] = it
	return it, nil
}

func (s *itemStore) Delete(_ context.Context, it item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, it.ID)
	return nil
}

type unlockStore Store

func (s *unlockStore) UnlockedLocations(_ context.Context, userID int64) ([]content.LocationID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []content.LocationID
	for k := range s.unlocks {
		if k.userID == userID {
			out = append(out, k.locationID)
		}
	}
	return out, nil
}

func (s *unlockStore) CaughtSpecies(_ context.Context, userID int64) ([]content.SpeciesID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[content.SpeciesID]struct{})
	var out []content.SpeciesID
	for k, e := range s.history {
		if k.userID == userID && e.CaughtCount > 0 {
			if _, ok := seen[k.speciesID]; !ok {
				seen[k.speciesID] = struct{}{}
				out = append(out, k.speciesID)
			}
		}
	}
	return out, nil
}

func (s *unlockStore) InsertUnlock(_ context.Context, r unlock.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := unlockKey{r.UserID, r.LocationID}
	if _, ok := s.unlocks[key]; ok {
		return gameerr.DatabaseUniqueViolation("location already unlocked")
	}
	s.unlocks[key] = struct{}{}
	return nil
}

type pondStore Store

func (s *pondStore) Create(_ context.Context, p store.Pond) (store.Pond, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[p.UserID]; !ok {
		return store.Pond{}, gameerr.DatabaseForeignKeyViolation("pond references unknown user")
	}
	s.nextPond++
	p.ID = s.nextPond
	s.ponds[p.ID] = p
	return p, nil
}

func (s *pondStore) FindByUser(_ context.Context, userID int64) ([]store.Pond, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.Pond
	for _, p := range s.ponds {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *pondStore) Save(_ context.Context, p store.Pond) (store.Pond, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ponds[p.ID]; !ok {
		return store.Pond{}, gameerr.DatabaseNotFound("pond not found")
	}
	s.ponds[p.ID] = p
	return p, nil
}
