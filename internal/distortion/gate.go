package distortion

import (
	"math/rand"

	"image-distorter/internal/processing/filters"
)

// DefaultProbability is the chance each stage fires for an image.
const DefaultProbability = 0.5

// CoinFlip enables each stage independently with the given probability,
// spending exactly one draw per stage.
type CoinFlip struct {
	Probability float64
}

func (c CoinFlip) Enabled(_ string, rng *rand.Rand) bool {
	return rng.Float64() < c.Probability
}

// Decisions is the per-image set of stage switches.
type Decisions struct {
	Rotate     bool
	Blur       bool
	Noise      bool
	Brightness bool
	Contrast   bool
}

// AllStages enables every stage.
func AllStages() Decisions {
	return Decisions{Rotate: true, Blur: true, Noise: true, Brightness: true, Contrast: true}
}

// Fixed replays a predetermined Decisions set and consumes no randomness.
type Fixed Decisions

func (f Fixed) Enabled(stage string, _ *rand.Rand) bool {
	switch stage {
	case filters.StageRotate:
		return f.Rotate
	case filters.StageBlur:
		return f.Blur
	case filters.StageNoise:
		return f.Noise
	case filters.StageBrightness:
		return f.Brightness
	case filters.StageContrast:
		return f.Contrast
	default:
		return false
	}
}
