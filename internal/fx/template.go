package fx

import "image/color"

type Effect uint8

const (
	// EffectConsumption bursts where food was eaten.
	EffectConsumption Effect = iota
	// EffectGrowth bursts at the freshly added tail cell.
	EffectGrowth
	// EffectImpact bursts at the head on a fatal collision.
	EffectImpact

	effectCount
)

func (e Effect) String() string {
	switch e {
	case EffectConsumption:
		return "consumption"
	case EffectGrowth:
		return "growth"
	case EffectImpact:
		return "impact"
	}
	return "unknown"
}

// Template describes one kind of burst. Speeds are in cells per second,
// lifetimes in seconds and sizes in pixels.
type Template struct {
	Count    int
	Color    color.RGBA
	SpeedMin float64
	SpeedMax float64
	LifeMin  float64
	LifeMax  float64
	SizeMin  float64
	SizeMax  float64
}

type Templates map[Effect]Template

func DefaultTemplates() Templates {
	return Templates{
		EffectConsumption: {
			Count:    10,
			Color:    color.RGBA{241, 84, 84, 255},
			SpeedMin: 2, SpeedMax: 4,
			LifeMin: 0.3, LifeMax: 0.6,
			SizeMin: 8, SizeMax: 14,
		},
		EffectGrowth: {
			Count:    6,
			Color:    color.RGBA{153, 174, 199, 255},
			SpeedMin: 1, SpeedMax: 2,
			LifeMin: 0.2, LifeMax: 0.4,
			SizeMin: 8, SizeMax: 14,
		},
		EffectImpact: {
			Count:    12,
			Color:    color.RGBA{255, 0, 0, 255},
			SpeedMin: 2, SpeedMax: 4,
			LifeMin: 0.3, LifeMax: 0.6,
			SizeMin: 8, SizeMax: 14,
		},
	}
}

// MaxCount is the largest burst any template emits.
func (t Templates) MaxCount() int {
	n := 0
	for _, tmpl := range t {
		n = max(n, tmpl.Count)
	}
	return n
}

func (t Templates) Copy() Templates {
	out := make(Templates, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
