package main

import "github.com/talgya/fishgame-core/content"

func demoLocations() []content.Location {
	return []content.Location{
		{
			ID:          1,
			Name:        "Clearwater Lake",
			Timezone:    "America/Chicago",
			WeatherSeed: 1337,
			Spring:      content.Season{MinTempC: 8, MaxTempC: 18},
			Summer:      content.Season{MinTempC: 18, MaxTempC: 30},
			Autumn:      content.Season{MinTempC: 5, MaxTempC: 16},
			Winter:      content.Season{MinTempC: -5, MaxTempC: 5},
		},
	}
}

func demoSpecies() []content.Species {
	return []content.Species{
		{
			ID:              1,
			Name:            "Largemouth Bass",
			MinSizeBabyMM:   50,
			MaxSizeBabyMM:   120,
			MinSizeAdultMM:  300,
			MaxSizeAdultMM:  600,
			MinWeightBabyG:  20,
			MaxWeightBabyG:  150,
			MinWeightAdultG: 900,
			MaxWeightAdultG: 4500,
			MinLifespanDays: 1800,
			MaxLifespanDays: 5400,
			Encounters: []content.Encounter{
				{LocationID: 1, MinHour: 0, MaxHour: 23, Rarity: 10},
				{LocationID: 1, MinHour: 6, MaxHour: 10, Rarity: 80, NeedsRain: true},
			},
		},
	}
}
