// Package store declares the EntityStore abstraction (C1's persistence
// counterpart): the read/write surface every kernel needs, independent of
// the backing engine. memstore and sqlstore are the two implementations.
package store

import (
	"context"
	"time"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/history"
	"github.com/talgya/fishgame-core/item"
	"github.com/talgya/fishgame-core/specimen"
	"github.com/talgya/fishgame-core/unlock"
)

// User is a registered player, keyed internally by ID but addressed
// externally by ExternalID (the identity of whatever system owns
// accounts).
type User struct {
	ID         int64
	ExternalID int64
	Credits    int64
	Timezone   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UserStore is the persistence seam for user registration and lookup.
type UserStore interface {
	FindByExternalID(ctx context.Context, externalID int64) (*User, error)
	Create(ctx context.Context, externalID int64) (User, error)
	Save(ctx context.Context, u User) (User, error)
}

// Pond is a user-owned holding pen for caught fish, per spec.md §3. No
// kernel currently gates on capacity; it is a persisted pass-through
// entity a future stocking kernel would read.
type Pond struct {
	ID       int64
	UserID   int64
	Capacity int32
}

// PondStore is the persistence seam for pond management.
type PondStore interface {
	Create(ctx context.Context, p Pond) (Pond, error)
	FindByUser(ctx context.Context, userID int64) ([]Pond, error)
	Save(ctx context.Context, p Pond) (Pond, error)
}

// SpecimenStore is the persistence seam for caught fish.
type SpecimenStore interface {
	Create(ctx context.Context, s specimen.Specimen) (specimen.Specimen, error)
	FindByUser(ctx context.Context, userID int64) ([]specimen.Specimen, error)
}

// FishingHistoryStore is the persistence seam for per-species catch/sell
// records.
type FishingHistoryStore interface {
	FindByUserAndSpecies(ctx context.Context, userID int64, speciesID content.SpeciesID) (*history.Entry, error)
	Create(ctx context.Context, e history.Entry) (history.Entry, error)
	Save(ctx context.Context, e history.Entry) (history.Entry, error)
}

// ItemStore is the persistence seam ItemKernel operations need.
type ItemStore = item.Repository

// UnlockStore is the persistence seam UnlockKernel operations need.
type UnlockStore = unlock.Repository

// Store bundles every entity store a Game facade needs.
type Store interface {
	Users() UserStore
	Specimens() SpecimenStore
	FishingHistory() FishingHistoryStore
	Items() ItemStore
	Unlocks() UnlockStore
	Ponds() PondStore
}
