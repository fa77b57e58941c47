// Package noise provides the coherent-noise primitive behind the weather
// engine. WeatherEngine needs a classic Perlin-style 2D gradient noise
// field — opensimplex-go (the noise library the teacher reaches for in
// internal/world/generation.go, absorbed into this pack's go.mod) produces
// simplex noise on a different lattice and cannot be reseeded in the exact
// per-field, small-integer-multiple way the weather engine's determinism
// invariant requires, so the classic lattice-gradient generator lives here,
// hand-derived from Ken Perlin's reference algorithm (permutation table,
// fade curve, gradient dot products). See DESIGN.md for why this one piece
// is stdlib-only in an otherwise dependency-heavy module.
package noise

import "math"

// Source produces 2D coherent noise in [-1, 1] for a given point.
type Source interface {
	At(x, y float64) float64
}

// Perlin is classic 2D gradient noise seeded from a single int64 seed.
// Two Perlin values constructed from different seeds are decorrelated;
// the same seed always reproduces the same permutation table and
// therefore the same field, satisfying the weather engine's byte-stability
// invariant.
type Perlin struct {
	perm [512]uint8
}

// NewPerlin builds a permutation table deterministically from seed using a
// splitmix64-style scrambler, then doubles it (a standard trick that avoids
// index-wrapping in At).
func NewPerlin(seed int64) *Perlin {
	var table [256]uint8
	for i := range table {
		table[i] = uint8(i)
	}

	s := uint64(seed)
	// Fisher-Yates shuffle driven by a splitmix64 PRNG seeded from `seed`,
	// so the same seed always yields the same permutation table.
	next := func() uint64 {
		s += 0x9E3779B97F4A7C15
		z := s
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for i := 255; i > 0; i-- {
		j := int(next() % uint64(i+1))
		table[i], table[j] = table[j], table[i]
	}

	p := &Perlin{}
	for i := 0; i < 256; i++ {
		p.perm[i] = table[i]
		p.perm[i+256] = table[i]
	}
	return p
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func grad(hash uint8, x, y float64) float64 {
	// 8 gradient directions, matching the classic 2D Perlin gradient set.
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return x - y
	case 2:
		return -x + y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

// At returns classic 2D Perlin noise at (x, y), in [-1, 1].
func (p *Perlin) At(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := p.perm[p.perm[xi]+uint8(yi)]
	ab := p.perm[p.perm[xi]+uint8(yi)+1]
	ba := p.perm[p.perm[xi+1]+uint8(yi)]
	bb := p.perm[p.perm[xi+1]+uint8(yi)+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)

	result := lerp(x1, x2, v)
	// Classic Perlin output is roughly in [-1, 1] already (2D gradient
	// magnitude caps it near sqrt(2)/2); clamp defensively so downstream
	// normalize-to-[0,1] math never sees an out-of-range edge case.
	if result > 1 {
		result = 1
	}
	if result < -1 {
		result = -1
	}
	return result
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Octave samples n layered octaves of src at (x, y), each halving in
// amplitude and doubling in frequency, normalized back to roughly [-1, 1].
// Mirrors the multi-octave composition the teacher's world generator uses
// (octaveNoise in internal/world/generation.go) for natural-looking
// terrain, reused here for any caller that wants a less uniform field than
// a single noise layer (currently unused by WeatherEngine itself, which
// samples single-octave fields per spec.md §4.2, but kept available for
// the simplex backend and for tests).
func Octave(src Source, x, y float64, octaves int, frequency, persistence float64) float64 {
	var total, amplitude, maxAmplitude float64
	amplitude = 1
	freq := frequency
	for i := 0; i < octaves; i++ {
		total += src.At(x*freq, y*freq) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		freq *= 2
	}
	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}
