// Command fishdemo exercises the fishgame-core library end to end:
// builds a small catalog, registers a user, and walks a single catch.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/fishgame-core/content"
	"github.com/talgya/fishgame-core/game"
	"github.com/talgya/fishgame-core/store/memstore"
	"github.com/talgya/fishgame-core/weather"
)

func main() {
	noiseFlag := flag.String("noise", "perlin", "noise backend for weather generation: perlin or simplex")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	backend := weather.BackendPerlin
	if *noiseFlag == "simplex" {
		backend = weather.BackendSimplex
	}
	slog.Info("fishdemo starting", "noise_backend", *noiseFlag)

	catalog, report, err := content.NewBuilder().
		WithSpecies(demoSpecies()...).
		WithLocations(demoLocations()...).
		Build()
	if err != nil {
		slog.Error("failed to load content", "error", err)
		os.Exit(1)
	}
	if report != nil && report.HasErrors() {
		slog.Error("content validation failed", "error", report.Error())
		os.Exit(1)
	}

	g := game.New(catalog, memstore.New(), game.WithNoiseBackend(backend))

	ctx := context.Background()
	externalID := int64(uuid.New().ID())

	u, err := g.UserRegister(ctx, externalID)
	if err != nil {
		slog.Error("register failed", "error", err)
		os.Exit(1)
	}
	slog.Info("user registered", "external_id", externalID)

	lakeID := content.LocationID(1)
	w, err := g.LocationWeatherCurrent(lakeID)
	if err != nil {
		slog.Error("weather lookup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("current weather", "location_id", lakeID, "temp_c", w.TemperatureC, "raining", w.IsRaining, "season", w.Season)

	speciesID, err := g.LocationRollEncounterNow(lakeID)
	if err != nil {
		slog.Info("no encounter available right now", "error", err)
		return
	}

	fish, entry, err := g.UserCatchSpecificSpecimen(ctx, u, speciesID)
	if err != nil {
		slog.Error("catch failed", "error", err)
		os.Exit(1)
	}

	sp, _ := g.SpeciesFind(speciesID)
	sizeMM := fish.SizeMM(time.Now(), sp, 1.0)
	slog.Info("caught a fish!",
		"species", sp.Name,
		"size_mm", humanize.FormatFloat("#,###.##", float64(sizeMM)),
		"lifetime_catches", entry.CaughtCount,
	)
}
