// Package filters holds the five distortion stages. Each stage exposes a
// pure transform taking explicit parameters and a Step wrapper that draws
// those parameters from the image's random generator.
package filters

import (
	"context"
	"fmt"

	"image-distorter/internal/opencv/safe"
)

// Stage names, in pipeline order.
const (
	StageRotate     = "rotate"
	StageBlur       = "blur"
	StageNoise      = "noise"
	StageBrightness = "brightness"
	StageContrast   = "contrast"
)

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// newLike allocates an empty destination with src's size and type.
func newLike(src *safe.Mat, operation string) (*safe.Mat, error) {
	if err := safe.ValidateColorImage(src, operation); err != nil {
		return nil, err
	}
	dst, err := safe.NewMat(src.Rows(), src.Cols(), src.Type())
	if err != nil {
		return nil, fmt.Errorf("failed to create destination Mat: %w", err)
	}
	return dst, nil
}

func clampUint8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
