package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talgya/fishgame-core/content"
)

func testLocation() *content.Location {
	return &content.Location{
		ID:          1,
		Name:        "Clearwater Lake",
		WeatherSeed: 777,
		Spring: content.Season{
			MinTempC: 5, MaxTempC: 18,
			RainIntensityRainingThreshold: content.DefaultRainIntensityThreshold,
			MoistureRainingThreshold:      content.DefaultMoistureThreshold,
			CloudinessRainingThreshold:    content.DefaultCloudinessThreshold,
		},
		Summer: content.Season{
			MinTempC: 18, MaxTempC: 32,
			RainIntensityRainingThreshold: content.DefaultRainIntensityThreshold,
			MoistureRainingThreshold:      content.DefaultMoistureThreshold,
			CloudinessRainingThreshold:    content.DefaultCloudinessThreshold,
		},
		Autumn: content.Season{
			MinTempC: 4, MaxTempC: 16,
			RainIntensityRainingThreshold: content.DefaultRainIntensityThreshold,
			MoistureRainingThreshold:      content.DefaultMoistureThreshold,
			CloudinessRainingThreshold:    content.DefaultCloudinessThreshold,
		},
		Winter: content.Season{
			MinTempC: -8, MaxTempC: 3,
			RainIntensityRainingThreshold: content.DefaultRainIntensityThreshold,
			MoistureRainingThreshold:      content.DefaultMoistureThreshold,
			CloudinessRainingThreshold:    content.DefaultCloudinessThreshold,
		},
	}
}

func TestEngineDeterministicGivenSameSeedAndTime(t *testing.T) {
	loc := testLocation()
	settings := content.DefaultSettings()
	at := time.Date(2024, 7, 4, 14, 30, 0, 0, time.UTC)

	e1 := NewEngine(loc, settings)
	e2 := NewEngine(loc, settings)

	w1 := e1.Get(at)
	w2 := e2.Get(at)
	require.Equal(t, w1, w2)
}

func TestEngineTemperatureWithinSeasonRange(t *testing.T) {
	loc := testLocation()
	settings := content.DefaultSettings()
	e := NewEngine(loc, settings)

	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	w := e.Get(at)
	require.GreaterOrEqual(t, w.TemperatureC, w.MinPossibleTempC)
	require.LessOrEqual(t, w.TemperatureC, w.MaxPossibleTempC)
}

func TestRawLightPeaksAtNoon(t *testing.T) {
	noon := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.Greater(t, rawLightAt(noon), rawLightAt(midnight))
	require.InDelta(t, 0.1, rawLightAt(midnight), 0.0001)
}

func TestSimplexBackendProducesDifferentFieldThanPerlin(t *testing.T) {
	loc := testLocation()
	settings := content.DefaultSettings()
	at := time.Date(2024, 7, 4, 14, 30, 0, 0, time.UTC)

	perlinEngine := NewEngine(loc, settings, WithBackend(BackendPerlin))
	simplexEngine := NewEngine(loc, settings, WithBackend(BackendSimplex))

	require.NotEqual(t, perlinEngine.Get(at), simplexEngine.Get(at))
}

func TestLocalHourConvertsToLocationTimezone(t *testing.T) {
	loc := testLocation()
	loc.Timezone = "America/Chicago"
	settings := content.DefaultSettings()
	e := NewEngine(loc, settings)

	// 2024-07-04 14:30 UTC is 09:30 in America/Chicago (UTC-5 with DST).
	at := time.Date(2024, 7, 4, 14, 30, 0, 0, time.UTC)
	require.Equal(t, uint8(9), e.LocalHour(at))
}

func TestLocalHourFallsBackToUTCForUnknownTimezone(t *testing.T) {
	loc := testLocation()
	loc.Timezone = "Not/A_Real_Zone"
	settings := content.DefaultSettings()
	e := NewEngine(loc, settings)

	at := time.Date(2024, 7, 4, 14, 30, 0, 0, time.UTC)
	require.Equal(t, uint8(14), e.LocalHour(at))
}

func TestWithCloudBlockFactorOverridesTheDefault(t *testing.T) {
	loc := testLocation()
	settings := content.DefaultSettings()

	defaultEngine := NewEngine(loc, settings)
	require.Equal(t, float32(defaultCloudLightBlockK), defaultEngine.cloudBlockFactor)

	tunedEngine := NewEngine(loc, settings, WithCloudBlockFactor(0.1))
	require.Equal(t, float32(0.1), tunedEngine.cloudBlockFactor)
}

func TestSeasonIndexCyclesAcrossYear(t *testing.T) {
	// One simulated year is secondsPerYear, not a calendar year: 2024 is a
	// leap year and 2024-01-01 falls just before the simulated year wraps.
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	oneYearLater := at.Add(time.Duration(secondsPerYear * float64(time.Second)))

	seasonAtStart, progressAtStart := seasonAt(at, 1.0)
	seasonOneYearLater, progressOneYearLater := seasonAt(oneYearLater, 1.0)

	require.Equal(t, seasonAtStart, seasonOneYearLater)
	require.InDelta(t, progressAtStart, progressOneYearLater, 0.01)
}
