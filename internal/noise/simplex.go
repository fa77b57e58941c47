package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Simplex adapts github.com/ojrac/opensimplex-go to the Source interface.
// Not used by the default WeatherEngine (spec.md §4.2 calls for Perlin-
// style gradient noise specifically), but wired in as an alternate
// backend selectable via weather.WithBackend(weather.BackendSimplex) so the dependency the
// teacher's world generator relies on (internal/world/generation.go) has
// a live home in this module rather than sitting unused in go.mod.
type Simplex struct {
	gen opensimplex.Noise
}

// NewSimplex builds a simplex noise source from seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{gen: opensimplex.New(seed)}
}

func (s *Simplex) At(x, y float64) float64 {
	return s.gen.Eval2(x, y)
}
