package grass

import "math"

// Breeze is the plain oscillation of the first site revision.
var Breeze = Variant{
	Name: "breeze",
	Behavior: Oscillation{
		SpeedMultiplier:      1,
		MinStretchMultiplier: 0,
		MaxStretchMultiplier: 1,
	},
}

// Gust keeps lines partly raised and lets single blades shoot up.
var Gust = Variant{
	Name: "gust",
	Behavior: Oscillation{
		SpeedMultiplier:        1.2,
		MinStretchMultiplier:   0.15,
		MaxStretchMultiplier:   0.8,
		SurgeProbability:       0.004,
		SurgeStretchMultiplier: 1.3,
		SurgeSpeedMultiplier:   2.5,
	},
}

// Meadow is a slow, dense field with a visible stubble floor.
var Meadow = Variant{
	Name: "meadow",
	Behavior: Oscillation{
		SpeedMultiplier:        0.7,
		MinStretchMultiplier:   0.25,
		MaxStretchMultiplier:   0.9,
		SurgeProbability:       0.001,
		SurgeStretchMultiplier: 1.1,
		SurgeSpeedMultiplier:   1.8,
		MinLineAmplitude:       0.55,
		MinHeight:              6,
		AccentOffset:           4,
	},
}

// Tide sweeps three waves across the field with the white lane lagging.
var Tide = Variant{
	Name: "tide",
	Behavior: TravelingWave{
		WaveCount:                  3,
		WaveSpeed:                  1.6,
		SecondaryRatio:             0.92,
		ColorPhaseOffset:           math.Pi / 4,
		Amplitude:                  0.85,
		MinStretchMultiplier:       0.1,
		MaxStretchMultiplier:       1,
		NarrowBreakpoint:           640,
		NarrowMaxStretchMultiplier: 0.7,
		MinHeight:                  4,
		AccentOffset:               3,
	},
}

func init() {
	Register(Breeze)
	Register(Gust)
	Register(Meadow)
	Register(Tide)
}
