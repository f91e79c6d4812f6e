package filters

import (
	"context"
	"math"
	"math/rand"

	"image-distorter/internal/opencv/safe"
)

const DefaultNoiseSigma = 30.0

type NoiseFilter struct {
	sigma float64
}

func NewNoiseFilter(sigma float64) *NoiseFilter {
	return &NoiseFilter{sigma: sigma}
}

func (n *NoiseFilter) Name() string {
	return StageNoise
}

func (n *NoiseFilter) Apply(ctx context.Context, input *safe.Mat, rng *rand.Rand) (*safe.Mat, map[string]interface{}, error) {
	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}

	out, err := AddGaussianNoise(input, n.sigma, rng)
	if err != nil {
		return nil, nil, err
	}
	return out, map[string]interface{}{"sigma": n.sigma}, nil
}

// AddGaussianNoise adds zero-mean noise with the given standard deviation to
// every channel of every pixel independently. Samples are rounded to whole
// intensities and the sum saturates at [0,255].
func AddGaussianNoise(src *safe.Mat, sigma float64, rng *rand.Rand) (*safe.Mat, error) {
	if err := safe.ValidateColorImage(src, "AddGaussianNoise"); err != nil {
		return nil, err
	}

	dst, err := src.Clone()
	if err != nil {
		return nil, err
	}

	err = dst.MutatePixels(func(pix []uint8) error {
		for i, p := range pix {
			pix[i] = clampUint8(float64(p) + math.RoundToEven(rng.NormFloat64()*sigma))
		}
		return nil
	})
	if err != nil {
		dst.Close()
		return nil, err
	}

	return dst, nil
}
