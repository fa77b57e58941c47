package weather

import "github.com/talgya/fishgame-core/content"

// Weather is the user-facing record returned by Engine.Get: location,
// season, temperature, humidity, light and rain state at a point in time.
type Weather struct {
	LocationID content.LocationID

	Season         Season
	SeasonProgress float64

	TemperatureC      float32
	MinPossibleTempC  float32
	MaxPossibleTempC  float32

	Humidity        float32
	LightLevel      float32
	Cloudiness      float32
	CloudBrightness float32

	IsRaining   bool
	RainStrength float32
}
