package weather

import (
	"math"
	"time"

	"github.com/talgya/fishgame-core/content"
)

// Season names the four quarters of the simulated year.
type Season uint8

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	case SeasonWinter:
		return "Winter"
	default:
		return "Unknown"
	}
}

// secondsPerYear is the tropical year length used for season-cycle math,
// matching spec.md §4.2 exactly.
const secondsPerYear = 31_556_925.1908

// seasonIndexAndProgress computes which season `t` falls in (0..3) and how
// far through that season we are (0..1), scaled by timeSpeedMultiplier.
func seasonIndexAndProgress(t time.Time, timeSpeedMultiplier float32) (int, float64) {
	seconds := float64(t.Unix())
	yearProgress := math.Mod(seconds*float64(timeSpeedMultiplier), secondsPerYear) / secondsPerYear
	if yearProgress < 0 {
		yearProgress += 1
	}
	current := yearProgress * 4.0
	index := int(math.Floor(current))
	progress := current - math.Floor(current)
	return index, progress
}

// seasonAt returns the named Season and progress-through-season for t.
func seasonAt(t time.Time, timeSpeedMultiplier float32) (Season, float64) {
	index, progress := seasonIndexAndProgress(t, timeSpeedMultiplier)
	return Season(index), progress
}

// currentSeasonData interpolates the location's season data for t,
// blending via the midpoint-of-neighbors scheme from spec.md §4.2: the
// first half of a season interpolates from midpoint(prev, current) to
// current; the second half from current to midpoint(current, next). Each
// season's exact center is therefore always its own data, unskewed by its
// neighbors.
func currentSeasonData(loc *content.Location, t time.Time, timeSpeedMultiplier float32) content.Season {
	index, progress := seasonIndexAndProgress(t, timeSpeedMultiplier)

	prev, cur, next := neighborSeasons(loc, index)

	if progress < 0.5 {
		adjusted := float32(progress * 2.0)
		start := prev.Interpolate(cur, 0.5)
		return start.Interpolate(cur, adjusted)
	}
	adjusted := float32((progress - 0.5) * 2.0)
	start := cur.Interpolate(next, 0.5)
	return cur.Interpolate(start, adjusted)
}

func neighborSeasons(loc *content.Location, index int) (prev, cur, next content.Season) {
	switch index {
	case 0:
		return loc.Winter, loc.Spring, loc.Summer
	case 1:
		return loc.Spring, loc.Summer, loc.Autumn
	case 2:
		return loc.Summer, loc.Autumn, loc.Winter
	default:
		return loc.Autumn, loc.Winter, loc.Spring
	}
}
