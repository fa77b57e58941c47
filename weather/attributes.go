package weather

// Attributes holds the scalars derived from the location's seven noise
// fields at a given instant, before being reduced into a user-facing
// Weather record: cloudiness, moisture, wind presence, wind strength and
// rain intensity as sampled, plus the corrected cloud brightness, the
// daylight-weighted temperature factor and the light level.
type Attributes struct {
	Cloudiness      float32
	CloudBrightness float32
	Moisture        float32
	WindPresence    float32
	WindStrength    float32
	Temperature     float32
	Light           float32
	RainIntensity   float32
}
