package weather

import (
	"math"
	"time"
	_ "time/tzdata"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/internal/mathutil"
	"github.com/talgya/fishgame-core/internal/noise"
)

// defaultCloudLightBlockK tunes how strongly a bright cloud layer still lets
// light through, per spec.md §4.2. Overridable via WithCloudBlockFactor.
const defaultCloudLightBlockK = 0.7

// fields, in seed-multiplier order.
const (
	seedCloudiness = iota + 1
	seedCloudBrightness
	seedMoisture
	seedWindPresence
	seedWindStrength
	seedTemperature
	seedRainIntensity
)

// Engine produces deterministic Weather for one location from seven
// decorrelated noise fields, all derived from the location's weather seed.
type Engine struct {
	location         *content.Location
	settings         content.Settings
	tz               *time.Location
	cloudBlockFactor float32

	cloudiness      noise.Source
	cloudBrightness noise.Source
	moisture        noise.Source
	windPresence    noise.Source
	windStrength    noise.Source
	temperature     noise.Source
	rainIntensity   noise.Source
}

// NewEngine builds the seven noise fields for loc from its WeatherSeed.
// loc.Timezone is resolved via time.LoadLocation (embedded tzdata backs
// this in binaries with no host zoneinfo); an empty or unknown name falls
// back to UTC. Options may swap the noise backend or other tunables; see
// Option.
func NewEngine(loc *content.Location, settings content.Settings, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	tz, err := time.LoadLocation(loc.Timezone)
	if err != nil || loc.Timezone == "" {
		tz = time.UTC
	}

	seed := int64(loc.WeatherSeed)
	return &Engine{
		location:         loc,
		settings:         settings,
		tz:               tz,
		cloudBlockFactor: cfg.cloudBlockFactor,
		cloudiness:       cfg.newSource(seed * seedCloudiness),
		cloudBrightness:  cfg.newSource(seed * seedCloudBrightness),
		moisture:         cfg.newSource(seed * seedMoisture),
		windPresence:     cfg.newSource(seed * seedWindPresence),
		windStrength:     cfg.newSource(seed * seedWindStrength),
		temperature:      cfg.newSource(seed * seedTemperature),
		rainIntensity:    cfg.newSource(seed * seedRainIntensity),
	}
}

// LocalHour returns t converted to the location's timezone, as an
// hour-of-day in 0..23.
func (e *Engine) LocalHour(t time.Time) uint8 {
	return uint8(t.In(e.tz).Hour())
}

func normalize(n float64) float32 {
	return float32((n + 1) / 2)
}

// Attributes samples all seven raw fields at t and reduces them into the
// derived scalars (light, corrected cloud brightness, temperature factor)
// described in spec.md §4.2.
func (e *Engine) Attributes(t time.Time) Attributes {
	sampleTime := float64(t.Unix()) / 1_000_000

	cloudiness := normalize(e.cloudiness.At(sampleTime*5.5, 0))
	cloudBrightnessRaw := normalize(e.cloudBrightness.At(sampleTime*2.5, 1))
	moisture := normalize(e.moisture.At(sampleTime*3.25, 1_000_000))
	windPresence := normalize(e.windPresence.At(sampleTime*40, sampleTime*50))
	windStrength := normalize(e.windStrength.At(sampleTime*4.5, 5_000_000))
	temperatureNoise := normalize(e.temperature.At(sampleTime, 2_000_000))
	rainIntensity := normalize(e.rainIntensity.At(sampleTime, 0))

	rawLight := rawLightAt(t.In(e.tz))
	cloudBrightnessCorrected := mathutil.Clamp32(
		cloudBrightnessRaw*(1-cloudiness)+1*(1-cloudiness), 0, 1)
	cloudLightBlocking := cloudiness * (1 - cloudBrightnessCorrected*e.cloudBlockFactor)
	light := rawLight * (1 - cloudLightBlocking)
	temperatureFactor := temperatureNoise * rawLight

	return Attributes{
		Cloudiness:      cloudiness,
		CloudBrightness: cloudBrightnessCorrected,
		Moisture:        moisture,
		WindPresence:    windPresence,
		WindStrength:    windStrength,
		Temperature:     temperatureFactor,
		Light:           light,
		RainIntensity:   rainIntensity,
	}
}

// rawLightAt returns the daylight curve for t: clamp(sin((hour-6)*pi/12)*0.45+0.55, 0.1, 1.0),
// peaking at local noon and floored at 0.1 at midnight. Callers must pass t
// already converted to the location's local timezone.
func rawLightAt(t time.Time) float32 {
	hourOfDay := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	raw := math.Sin((hourOfDay-6)*math.Pi/12)*0.45 + 0.55
	return mathutil.Clamp32(float32(raw), 0.1, 1.0)
}

// Get assembles the full Weather record for the engine's location at t.
func (e *Engine) Get(t time.Time) Weather {
	attrs := e.Attributes(t)
	season, seasonProgress := seasonAt(t, e.settings.TimeSpeedMultiplier)
	seasonData := currentSeasonData(e.location, t, e.settings.TimeSpeedMultiplier)

	temperatureC := mathutil.Lerp32(seasonData.MinTempC, seasonData.MaxTempC, attrs.Temperature)

	isRaining := attrs.RainIntensity > seasonData.RainIntensityRainingThreshold &&
		attrs.Moisture > seasonData.MoistureRainingThreshold &&
		attrs.Cloudiness > seasonData.CloudinessRainingThreshold

	var rainStrength float32
	if isRaining {
		denom := 1 - seasonData.RainIntensityRainingThreshold
		if denom > 0 {
			rainStrength = (attrs.RainIntensity - seasonData.RainIntensityRainingThreshold) / denom
		}
	}

	return Weather{
		LocationID: e.location.ID,

		Season:         season,
		SeasonProgress: seasonProgress,

		TemperatureC:     temperatureC,
		MinPossibleTempC: seasonData.MinTempC,
		MaxPossibleTempC: seasonData.MaxTempC,

		Humidity:        attrs.Moisture,
		LightLevel:      attrs.Light,
		Cloudiness:      attrs.Cloudiness,
		CloudBrightness: attrs.CloudBrightness,

		IsRaining:    isRaining,
		RainStrength: rainStrength,
	}
}
