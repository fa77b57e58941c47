package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// Builder accumulates in-memory content (or JSON file paths) and produces a
// validated Store on Build. Unknown JSON fields are ignored where the
// target has a default (seasons rain thresholds, species lifespan ratio),
// matching spec.md §6.
type Builder struct {
	species   map[SpeciesID]*Species
	locations map[LocationID]*Location
	items     map[ItemTypeID]*Item
	settings  Settings

	err error
}

// NewBuilder starts an empty catalog with default Settings.
func NewBuilder() *Builder {
	return &Builder{
		species:   make(map[SpeciesID]*Species),
		locations: make(map[LocationID]*Location),
		items:     make(map[ItemTypeID]*Item),
		settings:  DefaultSettings(),
	}
}

// WithSpecies registers species by value, overwriting any prior entry with
// the same ID.
func (b *Builder) WithSpecies(species ...Species) *Builder {
	for i := range species {
		s := species[i]
		if s.LifespanAdultRatio == 0 {
			s.LifespanAdultRatio = DefaultLifespanAdultRatio
		}
		b.species[s.ID] = &s
	}
	return b
}

// WithLocations registers locations by value, applying season threshold
// defaults where the caller left them zero.
func (b *Builder) WithLocations(locations ...Location) *Builder {
	for i := range locations {
		l := locations[i]
		l.Spring = applySeasonDefaults(l.Spring)
		l.Summer = applySeasonDefaults(l.Summer)
		l.Autumn = applySeasonDefaults(l.Autumn)
		l.Winter = applySeasonDefaults(l.Winter)
		b.locations[l.ID] = &l
	}
	return b
}

func applySeasonDefaults(s Season) Season {
	if s.RainIntensityRainingThreshold == 0 {
		s.RainIntensityRainingThreshold = DefaultRainIntensityThreshold
	}
	if s.MoistureRainingThreshold == 0 {
		s.MoistureRainingThreshold = DefaultMoistureThreshold
	}
	if s.CloudinessRainingThreshold == 0 {
		s.CloudinessRainingThreshold = DefaultCloudinessThreshold
	}
	return s
}

// WithItems registers item content by value, defaulting MaxCount and a
// declared StackableProperty's Count to 1.
func (b *Builder) WithItems(items ...Item) *Builder {
	for i := range items {
		it := items[i]
		if it.MaxCount == 0 {
			it.MaxCount = 1
		}
		if sp, ok := it.DefaultProperties[ItemPropStackable].(StackableProperty); ok && sp.Count == 0 {
			sp.Count = 1
			it.DefaultProperties[ItemPropStackable] = sp
		}
		b.items[it.ID] = &it
	}
	return b
}

// WithSettings overrides the catalog-wide Settings.
func (b *Builder) WithSettings(s Settings) *Builder {
	if s.TimeSpeedMultiplier == 0 {
		s.TimeSpeedMultiplier = 1.0
	}
	if s.RarityExponent == 0 {
		s.RarityExponent = 2.5
	}
	b.settings = s
	return b
}

// speciesFile, locationsFile and itemsFile are the on-disk shapes accepted
// by WithSpeciesFile/WithLocationsFile/WithItemsFile.
type speciesFile struct {
	Species []Species `json:"species"`
}
type locationsFile struct {
	Locations []Location `json:"locations"`
}
type itemsFile struct {
	Items []Item `json:"items"`
}

// WithSpeciesFile loads species content from a JSON file shaped
// {"species": [...]}.
func (b *Builder) WithSpeciesFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	var f speciesFile
	if err := readJSONFile(path, &f); err != nil {
		b.err = err
		return b
	}
	return b.WithSpecies(f.Species...)
}

// WithLocationsFile loads location content from a JSON file shaped
// {"locations": [...]}.
func (b *Builder) WithLocationsFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	var f locationsFile
	if err := readJSONFile(path, &f); err != nil {
		b.err = err
		return b
	}
	return b.WithLocations(f.Locations...)
}

// WithItemsFile loads item content from a JSON file shaped {"items": [...]}.
func (b *Builder) WithItemsFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	var f itemsFile
	if err := readJSONFile(path, &f); err != nil {
		b.err = err
		return b
	}
	return b.WithItems(f.Items...)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content file %q: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse content file %q: %w", path, err)
	}
	return nil
}

// Build validates the accumulated content and, on success, constructs the
// immutable Store with all cross-indexes precomputed. On failure it
// returns a ValidationReport listing every problem found (not just the
// first).
func (b *Builder) Build() (*Store, *ValidationReport, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	report := &ValidationReport{}

	for speciesID, s := range b.species {
		for _, enc := range s.Encounters {
			if _, ok := b.locations[enc.LocationID]; !ok {
				report.add(ValidationError{
					Kind:             ErrSpeciesEncounterLocation,
					SourceSpeciesID:  speciesID,
					TargetLocationID: enc.LocationID,
				})
			}
		}
	}

	for locationID, l := range b.locations {
		for _, req := range l.RequiredLocationsUnlocked {
			if _, ok := b.locations[req]; !ok {
				report.add(ValidationError{
					Kind:             ErrLocationRequiredLocation,
					SourceLocationID: locationID,
					TargetLocationID: req,
				})
			}
		}
		for _, req := range l.RequiredSpeciesCaught {
			if _, ok := b.species[req]; !ok {
				report.add(ValidationError{
					Kind:             ErrLocationRequiredSpecies,
					SourceLocationID: locationID,
					TargetSpeciesID:  req,
				})
			}
		}
	}

	for itemID, it := range b.items {
		if it.MaxCount < 1 {
			report.add(ValidationError{Kind: ErrItemInvalidMaxCount, SourceItemID: itemID})
		}
		if it.IsStackable() && it.MaxCount != 1 {
			report.add(ValidationError{Kind: ErrItemNonUniqueNotStackable, SourceItemID: itemID})
		}
	}

	if report.HasErrors() {
		return nil, report, nil
	}

	store := newStore(b.species, b.locations, b.items, b.settings)
	return store, nil, nil
}
