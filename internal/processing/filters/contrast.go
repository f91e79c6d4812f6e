package filters

import (
	"context"
	"fmt"
	"math/rand"

	"image-distorter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const (
	minContrast  = 0.5
	contrastSpan = 1.0
)

type ContrastFilter struct{}

func NewContrastFilter() *ContrastFilter {
	return &ContrastFilter{}
}

func (c *ContrastFilter) Name() string {
	return StageContrast
}

func (c *ContrastFilter) Apply(ctx context.Context, input *safe.Mat, rng *rand.Rand) (*safe.Mat, map[string]interface{}, error) {
	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}

	alpha := minContrast + rng.Float64()*contrastSpan
	out, err := ScaleContrast(input, alpha)
	if err != nil {
		return nil, nil, err
	}
	return out, map[string]interface{}{"alpha": alpha}, nil
}

// ScaleContrast multiplies every channel by alpha with no offset, rounding to
// the nearest intensity and saturating at the 8-bit bounds.
func ScaleContrast(src *safe.Mat, alpha float64) (*safe.Mat, error) {
	if alpha < 0 {
		return nil, fmt.Errorf("contrast multiplier must be non-negative, got %g", alpha)
	}

	dst, err := newLike(src, "ScaleContrast")
	if err != nil {
		return nil, err
	}

	srcMat := src.GetMat()
	dstMat := dst.GetMat()
	srcMat.ConvertToWithParams(&dstMat, gocv.MatTypeCV8UC3, float32(alpha), 0)

	return dst, nil
}
