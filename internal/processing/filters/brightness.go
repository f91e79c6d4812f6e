package filters

import (
	"context"
	"math/rand"

	"image-distorter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const maxBrightnessDelta = 50

type BrightnessFilter struct{}

func NewBrightnessFilter() *BrightnessFilter {
	return &BrightnessFilter{}
}

func (b *BrightnessFilter) Name() string {
	return StageBrightness
}

func (b *BrightnessFilter) Apply(ctx context.Context, input *safe.Mat, rng *rand.Rand) (*safe.Mat, map[string]interface{}, error) {
	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}

	delta := rng.Intn(2*maxBrightnessDelta+1) - maxBrightnessDelta
	out, err := ShiftBrightness(input, delta)
	if err != nil {
		return nil, nil, err
	}
	return out, map[string]interface{}{"delta": delta}, nil
}

// ShiftBrightness adds delta to all three channels, saturating at the 8-bit
// bounds.
func ShiftBrightness(src *safe.Mat, delta int) (*safe.Mat, error) {
	dst, err := newLike(src, "ShiftBrightness")
	if err != nil {
		return nil, err
	}

	srcMat := src.GetMat()
	dstMat := dst.GetMat()
	srcMat.ConvertToWithParams(&dstMat, gocv.MatTypeCV8UC3, 1, float32(delta))

	return dst, nil
}
