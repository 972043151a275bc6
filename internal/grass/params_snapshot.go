package grass

import (
	"strconv"

	"relva/internal/core"
)

// Parameter keys accepted by SetIntParameter.
const (
	ParamVariant    = "variant"
	ParamBackground = "background"
)

// Parameters reports the active configuration for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	v := e.Variant()
	sw := e.Swatch()
	variant := []core.Parameter{
		intParam(ParamVariant, "Variant", e.variant),
		stringParam("variant_name", "Name", v.Name),
		stringParam("variant_mode", "Mode", v.Behavior.Mode()),
	}
	switch b := v.Behavior.(type) {
	case Oscillation:
		variant = append(variant,
			floatParam("speed_multiplier", "Speed", b.SpeedMultiplier),
			floatParam("min_stretch", "Min stretch", b.MinStretchMultiplier),
			floatParam("max_stretch", "Max stretch", b.MaxStretchMultiplier),
			floatParam("surge_probability", "Surge chance", b.SurgeProbability),
		)
	case TravelingWave:
		variant = append(variant,
			floatParam("wave_count", "Waves", b.WaveCount),
			floatParam("wave_speed", "Wave speed", b.WaveSpeed),
			floatParam("secondary_ratio", "Lane ratio", b.SecondaryRatio),
			floatParam("max_stretch", "Max stretch", b.maxMultiplier(e.size.W)),
		)
	}
	groups := []core.ParameterGroup{
		{Name: "Variant", Params: variant},
		{
			Name: "Palette",
			Params: []core.Parameter{
				intParam(ParamBackground, "Background", e.background),
				stringParam("swatch", "Swatch", sw.Name),
				stringParam("accent", "Accent", sw.Accent.Hex()),
			},
		},
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("lines", "Lines", len(e.lines)),
				intParam("generation", "Generation", int(e.generation)),
				intParam("frames", "Frames", int(e.stats.Frames)),
				intParam("surges", "Surges", int(e.stats.Surges)),
				floatParam("wave_clock", "Wave clock", e.waveClock),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes the variant and background selectors.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamVariant, Label: "Variant", Count: len(e.cfg.Variants)},
		{Key: ParamBackground, Label: "Background", Count: len(e.cfg.Palette)},
	}
}

// SetIntParameter updates a selector by key.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamVariant:
		e.SetVariant(value)
	case ParamBackground:
		e.SetBackground(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
