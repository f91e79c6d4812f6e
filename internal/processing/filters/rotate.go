package filters

import (
	"context"
	"image"
	"math/rand"

	"image-distorter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const maxAngle = 359

type RotationFilter struct{}

func NewRotationFilter() *RotationFilter {
	return &RotationFilter{}
}

func (r *RotationFilter) Name() string {
	return StageRotate
}

func (r *RotationFilter) Apply(ctx context.Context, input *safe.Mat, rng *rand.Rand) (*safe.Mat, map[string]interface{}, error) {
	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}

	angle := rng.Intn(maxAngle + 1)
	out, err := Rotate(input, float64(angle))
	if err != nil {
		return nil, nil, err
	}
	return out, map[string]interface{}{"angle": angle}, nil
}

// Rotate turns src by angle degrees about its center at unit scale. The
// canvas keeps its size, so corners are clipped and uncovered areas are
// filled with black.
func Rotate(src *safe.Mat, angle float64) (*safe.Mat, error) {
	dst, err := newLike(src, "Rotate")
	if err != nil {
		return nil, err
	}

	rows, cols := src.Rows(), src.Cols()
	center := image.Pt(cols/2, rows/2)

	rot := gocv.GetRotationMatrix2D(center, angle, 1.0)
	defer rot.Close()

	dstMat := dst.GetMat()
	gocv.WarpAffine(src.GetMat(), &dstMat, rot, image.Pt(cols, rows))

	return dst, nil
}
