// Package game is the facade (C8): a single handle composing the content
// catalog, persistence, and every kernel, translating their errors into
// the gameerr taxonomy.
package game

import (
	"context"
	"log/slog"

	"github.com/talgya/fishgame-core/clock"
	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/encounter"
	"github.com/talgya/fishgame-core/gameerr"
	"github.com/talgya/fishgame-core/history"
	"github.com/talgya/fishgame-core/item"
	"github.com/talgya/fishgame-core/specimen"
	"github.com/talgya/fishgame-core/store"
	"github.com/talgya/fishgame-core/unlock"
	"github.com/talgya/fishgame-core/weather"
)

// Game is the entry point embedding callers use: it owns the content
// catalog, the entity store, and every kernel, and is safe for concurrent
// use once constructed.
type Game struct {
	content *content.Store
	store   store.Store
	clock   clock.Clock

	encounters *encounter.Engine
	weathers   map[content.LocationID]*weather.Engine
	weatherOpt []weather.Option

	log *slog.Logger
}

// Option configures a Game at construction time.
type Option func(*Game)

// WithClock overrides the default clock.Real.
func WithClock(c clock.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger overrides the default slog.Default() logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithNoiseBackend selects a non-default noise backend for every
// location's WeatherEngine.
func WithNoiseBackend(backend weather.Backend) Option {
	return func(g *Game) { g.weatherOpt = append(g.weatherOpt, weather.WithBackend(backend)) }
}

// WithCloudBlockFactor overrides the default cloud light-blocking
// coefficient for every location's WeatherEngine.
func WithCloudBlockFactor(k float32) Option {
	return func(g *Game) { g.weatherOpt = append(g.weatherOpt, weather.WithCloudBlockFactor(k)) }
}

// New builds a Game over contentStore and entityStore.
func New(contentStore *content.Store, entityStore store.Store, opts ...Option) *Game {
	g := &Game{
		content: contentStore,
		store:   entityStore,
		clock:   clock.Real{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.encounters = encounter.NewEngine(contentStore)

	g.weathers = make(map[content.LocationID]*weather.Engine, len(contentStore.AllLocations()))
	for _, loc := range contentStore.AllLocations() {
		g.weathers[loc.ID] = weather.NewEngine(loc, contentStore.Settings(), g.weatherOpt...)
	}

	g.log.Info("game initialized", "locations", len(contentStore.AllLocations()), "species", len(contentStore.AllSpecies()))
	return g
}

// LocationFind looks up static location content by id.
func (g *Game) LocationFind(id content.LocationID) (*content.Location, error) {
	loc, ok := g.content.Location(id)
	if !ok {
		return nil, gameerr.LocationNotFound(int32(id))
	}
	return loc, nil
}

// SpeciesFind looks up static species content by id.
func (g *Game) SpeciesFind(id content.SpeciesID) (*content.Species, error) {
	sp, ok := g.content.Species(id)
	if !ok {
		return nil, gameerr.SpeciesNotFound(int32(id))
	}
	return sp, nil
}

// LocationWeatherCurrent computes loc's weather at the current wall
// clock.
func (g *Game) LocationWeatherCurrent(id content.LocationID) (weather.Weather, error) {
	if _, err := g.LocationFind(id); err != nil {
		return weather.Weather{}, err
	}
	engine := g.weathers[id]
	return engine.Get(g.clock.Now()), nil
}

// UserRegister creates a new user for externalID.
func (g *Game) UserRegister(ctx context.Context, externalID int64) (store.User, error) {
	u, err := g.store.Users().Create(ctx, externalID)
	if err != nil {
		if gameerr.Is(err, gameerr.KindDatabaseUniqueViolation) {
			return store.User{}, gameerr.UserAlreadyExists(externalID)
		}
		return store.User{}, err
	}
	g.log.Info("user registered", "external_id", externalID)
	return u, nil
}

// UserFind looks up a user by externalID.
func (g *Game) UserFind(ctx context.Context, externalID int64) (store.User, error) {
	u, err := g.store.Users().FindByExternalID(ctx, externalID)
	if err != nil {
		return store.User{}, err
	}
	if u == nil {
		return store.User{}, gameerr.UserNotFound(externalID)
	}
	return *u, nil
}

// UserSave persists an updated user row.
func (g *Game) UserSave(ctx context.Context, u store.User) (store.User, error) {
	saved, err := g.store.Users().Save(ctx, u)
	if err != nil {
		if gameerr.Is(err, gameerr.KindDatabaseNotFound) {
			return store.User{}, gameerr.UserNotFound(u.ExternalID)
		}
		return store.User{}, err
	}
	return saved, nil
}

// UserCatchSpecificSpecimen generates a new specimen of speciesID for u,
// persists it, and folds it into u's fishing history.
func (g *Game) UserCatchSpecificSpecimen(ctx context.Context, u store.User, speciesID content.SpeciesID) (specimen.Specimen, history.Entry, error) {
	sp, err := g.SpeciesFind(speciesID)
	if err != nil {
		return specimen.Specimen{}, history.Entry{}, err
	}

	now := g.clock.Now()
	newFish := specimen.Generate(u.ID, speciesID, now)

	saved, err := g.store.Specimens().Create(ctx, newFish)
	if err != nil {
		return specimen.Specimen{}, history.Entry{}, err
	}

	settings := g.content.Settings()
	totalSizeRatio := saved.TotalSizeRatio(now, sp, settings.TimeSpeedMultiplier)

	existing, err := g.store.FishingHistory().FindByUserAndSpecies(ctx, u.ID, speciesID)
	if err != nil {
		return saved, history.Entry{}, err
	}

	updated := history.RegisterCatch(existing, u.ID, speciesID, totalSizeRatio, now)
	var entry history.Entry
	if existing == nil {
		entry, err = g.store.FishingHistory().Create(ctx, updated)
	} else {
		entry, err = g.store.FishingHistory().Save(ctx, updated)
	}
	if err != nil {
		return saved, history.Entry{}, err
	}

	g.log.Info("specimen caught", "user_id", u.ID, "species_id", speciesID, "total_size_ratio", totalSizeRatio)
	return saved, entry, nil
}

// UserGetFishingHistory fetches u's record for speciesID, failing
// NoFishingHistory if the pair has never been caught.
func (g *Game) UserGetFishingHistory(ctx context.Context, u store.User, speciesID content.SpeciesID) (history.Entry, error) {
	entry, err := g.store.FishingHistory().FindByUserAndSpecies(ctx, u.ID, speciesID)
	if err != nil {
		return history.Entry{}, err
	}
	if entry == nil {
		return history.Entry{}, gameerr.NoFishingHistory(u.ExternalID, int32(speciesID))
	}
	return *entry, nil
}

// UserGetUnlockedLocations lists every location id u has unlocked.
func (g *Game) UserGetUnlockedLocations(ctx context.Context, u store.User) ([]content.LocationID, error) {
	return g.store.Unlocks().UnlockedLocations(ctx, u.ID)
}

// UserUnlockLocation unlocks locationID for u, refusing with
// UnmetLocationUnlockRequirements or LocationAlreadyUnlocked as
// appropriate.
func (g *Game) UserUnlockLocation(ctx context.Context, u store.User, locationID content.LocationID) (unlock.Record, error) {
	loc, err := g.LocationFind(locationID)
	if err != nil {
		return unlock.Record{}, err
	}
	record, err := unlock.UnlockLocation(ctx, g.store.Unlocks(), u.ID, u.ExternalID, loc)
	if err != nil {
		return unlock.Record{}, err
	}
	g.log.Info("location unlocked", "user_id", u.ID, "location_id", locationID)
	return record, nil
}

// LocationRollEncounterNow rolls an encounter for locationID at the
// current wall clock and weather.
func (g *Game) LocationRollEncounterNow(locationID content.LocationID) (content.SpeciesID, error) {
	loc, err := g.LocationFind(locationID)
	if err != nil {
		return 0, err
	}
	now := g.clock.Now()
	engine := g.weathers[locationID]
	w := engine.Get(now)
	weatherClass := encounter.WeatherAny
	if w.IsRaining {
		weatherClass = encounter.WeatherRain
	}
	return g.encounters.RollEncounter(engine.LocalHour(now), weatherClass, loc.ID)
}

// UserUseRod runs an owned rod instance through UseAsRod, persisting or
// deleting it per the item kernel's event dispatch.
func (g *Game) UserUseRod(ctx context.Context, it item.Item) (bool, error) {
	itemContent, ok := g.content.Item(it.TypeID)
	if !ok {
		return false, gameerr.InvalidItemType(int32(it.TypeID))
	}

	success, err := item.Manipulate(ctx, g.store.Items(), it, func(mut *item.Item) (item.EventSuccess, error) {
		consumed, err := item.UseAsRod(mut, itemContent)
		if err != nil {
			return item.EventSuccess{}, err
		}
		return item.EventSuccess{Consume: consumed}, nil
	})
	if err != nil {
		return false, err
	}
	return success.Consume, nil
}

// UserInventory loads u's full set of owned item instances.
func (g *Game) UserInventory(ctx context.Context, u store.User) (item.Inventory, error) {
	return item.GetInventory(ctx, g.store.Items(), u.ID)
}

// UserCreatePond registers a new pond of the given capacity for u.
func (g *Game) UserCreatePond(ctx context.Context, u store.User, capacity int32) (store.Pond, error) {
	return g.store.Ponds().Create(ctx, store.Pond{UserID: u.ID, Capacity: capacity})
}

// UserGetPonds lists every pond u owns.
func (g *Game) UserGetPonds(ctx context.Context, u store.User) ([]store.Pond, error) {
	return g.store.Ponds().FindByUser(ctx, u.ID)
}
