package grass

// Behavior is the animation family of a variant. The set of behaviours is
// closed: Oscillation and TravelingWave.
type Behavior interface {
	// Mode names the animation family.
	Mode() string
	step(e *Engine)
}

// Variant is a named, immutable animation preset.
type Variant struct {
	Name     string
	Behavior Behavior
}

// Oscillation animates every line on its own phase, with occasional surges
// that restart a line from the trough faster and taller.
type Oscillation struct {
	SpeedMultiplier      float64
	MinStretchMultiplier float64
	MaxStretchMultiplier float64

	// SurgeProbability is the per-line, per-frame chance at ReferenceFPS.
	SurgeProbability       float64
	SurgeStretchMultiplier float64
	SurgeSpeedMultiplier   float64

	MinLineAmplitude float64
	MinHeight        float64
	AccentOffset     float64
}

// Mode implements Behavior.
func (Oscillation) Mode() string { return "oscillate" }

// TravelingWave animates the field as waves sweeping across the line index
// driven by the engine's shared wave clock.
type TravelingWave struct {
	WaveCount        float64
	WaveSpeed        float64
	SecondaryRatio   float64
	ColorPhaseOffset float64

	Amplitude            float64
	MinStretchMultiplier float64
	MaxStretchMultiplier float64

	// Below NarrowBreakpoint viewport width NarrowMaxStretchMultiplier
	// replaces MaxStretchMultiplier.
	NarrowBreakpoint           float64
	NarrowMaxStretchMultiplier float64

	MinHeight    float64
	AccentOffset float64
}

// Mode implements Behavior.
func (TravelingWave) Mode() string { return "wave" }

var registry []Variant

// Register appends a variant to the preset list. Variants with an empty name
// or no behaviour are ignored; registering an existing name replaces it.
func Register(v Variant) {
	if v.Name == "" || v.Behavior == nil {
		return
	}
	for i := range registry {
		if registry[i].Name == v.Name {
			registry[i] = v
			return
		}
	}
	registry = append(registry, v)
}

// Variants returns a copy of the registered presets in registration order.
func Variants() []Variant {
	return append([]Variant(nil), registry...)
}

// IndexOf returns the position of the named variant, or -1.
func IndexOf(variants []Variant, name string) int {
	for i, v := range variants {
		if v.Name == name {
			return i
		}
	}
	return -1
}
