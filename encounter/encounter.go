// Package encounter indexes species-location-hour-weather-rarity encounter
// data and rolls a random species for a fishing attempt.
package encounter

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/gameerr"
)

// Weather classifies the two buckets an encounter can be rolled against.
// Any encounters never merge into the Rain bucket: a species that needs
// rain is only reachable while it is actually raining.
type Weather int

const (
	WeatherAny Weather = iota
	WeatherRain
)

func weatherOf(needsRain bool) Weather {
	if needsRain {
		return WeatherRain
	}
	return WeatherAny
}

type rarityEncounters map[content.RarityLevel][]content.SpeciesID
type locationEncounters map[content.LocationID]rarityEncounters
type weatherEncounters map[Weather]locationEncounters
type hourlyEncounters map[uint8]weatherEncounters

// Engine answers roll_encounter queries for a whole ContentStore. It is
// built once from the catalog and is safe for concurrent read use; rolls
// draw from math/rand/v2's package-level source.
type Engine struct {
	encounters    hourlyEncounters
	cachedWeights map[content.RarityLevel]uint64
}

// NewEngine indexes every species' encounters by hour, weather class,
// location and rarity level, and precomputes rarity weights for the
// catalog's configured exponent.
func NewEngine(store *content.Store) *Engine {
	encounters := make(hourlyEncounters)

	for _, species := range store.AllSpecies() {
		for _, enc := range species.Encounters {
			weather := weatherOf(enc.NeedsRain)
			for _, hour := range enc.Hours() {
				byWeather, ok := encounters[hour]
				if !ok {
					byWeather = make(weatherEncounters)
					encounters[hour] = byWeather
				}
				byLocation, ok := byWeather[weather]
				if !ok {
					byLocation = make(locationEncounters)
					byWeather[weather] = byLocation
				}
				byRarity, ok := byLocation[enc.LocationID]
				if !ok {
					byRarity = make(rarityEncounters)
					byLocation[enc.LocationID] = byRarity
				}
				byRarity[enc.Rarity] = append(byRarity[enc.Rarity], species.ID)
			}
		}
	}

	exponent := store.Settings().RarityExponent
	weights := make(map[content.RarityLevel]uint64, 256)
	for level := 0; level <= 255; level++ {
		weights[content.RarityLevel(level)] = rarityLevelWeight(content.RarityLevel(level), exponent)
	}

	return &Engine{encounters: encounters, cachedWeights: weights}
}

func rarityLevelWeight(level content.RarityLevel, rarityExponent float64) uint64 {
	return uint64(math.Pow(float64(255-level), rarityExponent)) + 1
}

// RollEncounter rolls a species for location at the given hour and weather
// class. Returns gameerr.NoAvailableEncounters when nothing is configured
// for that combination.
func (e *Engine) RollEncounter(hour uint8, weather Weather, locationID content.LocationID) (content.SpeciesID, error) {
	byRarity, ok := e.possibleRarityEncounters(hour, weather, locationID)
	if !ok {
		return 0, gameerr.NoAvailableEncounters()
	}

	levels := make([]content.RarityLevel, 0, len(byRarity))
	for level := range byRarity {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	rarity, ok := e.rollRarityLevel(levels)
	if !ok {
		return 0, gameerr.NoAvailableEncounters()
	}

	species := byRarity[rarity]
	if len(species) == 0 {
		return 0, gameerr.NoAvailableEncounters()
	}
	idx := rand.N(uint64(len(species)))
	return species[idx], nil
}

func (e *Engine) possibleRarityEncounters(hour uint8, weather Weather, locationID content.LocationID) (rarityEncounters, bool) {
	byWeather, ok := e.encounters[hour]
	if !ok {
		return nil, false
	}
	byLocation, ok := byWeather[weather]
	if !ok {
		return nil, false
	}
	byRarity, ok := byLocation[locationID]
	if !ok {
		return nil, false
	}
	return byRarity, true
}

func (e *Engine) rollRarityLevel(available []content.RarityLevel) (content.RarityLevel, bool) {
	if len(available) == 0 {
		return 0, false
	}

	cumulative := make([]uint64, len(available))
	var sum uint64
	for i, level := range available {
		sum += e.cachedWeights[level]
		cumulative[i] = sum
	}
	if sum == 0 {
		return 0, false
	}

	roll := rand.N(sum)
	index := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > roll })
	if index >= len(available) {
		index = len(available) - 1
	}
	return available[index], true
}
