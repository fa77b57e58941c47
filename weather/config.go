package weather

import "github.com/talgya/fishgame-core/internal/noise"

// Backend selects the coherent-noise implementation an Engine's seven
// fields are built from.
type Backend int

const (
	// BackendPerlin is the classic gradient noise spec.md §4.2 requires,
	// and is the default.
	BackendPerlin Backend = iota
	// BackendSimplex swaps in OpenSimplex noise for callers that want a
	// different statistical texture while keeping determinism per seed.
	BackendSimplex
)

type config struct {
	backend          Backend
	cloudBlockFactor float32
}

func defaultConfig() config {
	return config{backend: BackendPerlin, cloudBlockFactor: defaultCloudLightBlockK}
}

func (c config) newSource(seed int64) noise.Source {
	switch c.backend {
	case BackendSimplex:
		return noise.NewSimplex(seed)
	default:
		return noise.NewPerlin(seed)
	}
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithBackend selects the noise backend. Defaults to BackendPerlin.
func WithBackend(b Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithCloudBlockFactor tunes how strongly a bright cloud layer still lets
// light through (spec.md §4.2). Defaults to 0.7.
func WithCloudBlockFactor(k float32) Option {
	return func(c *config) { c.cloudBlockFactor = k }
}
