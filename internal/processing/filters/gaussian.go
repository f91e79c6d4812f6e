package filters

import (
	"context"
	"fmt"
	"image"
	"math/rand"

	"image-distorter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

const (
	minBlurRadius = 1
	maxBlurRadius = 3
)

type GaussianFilter struct{}

func NewGaussianFilter() *GaussianFilter {
	return &GaussianFilter{}
}

func (g *GaussianFilter) Name() string {
	return StageBlur
}

func (g *GaussianFilter) Apply(ctx context.Context, input *safe.Mat, rng *rand.Rand) (*safe.Mat, map[string]interface{}, error) {
	if err := checkContext(ctx); err != nil {
		return nil, nil, err
	}

	ksize := KernelSize(minBlurRadius + rng.Intn(maxBlurRadius-minBlurRadius+1))
	out, err := GaussianBlur(input, ksize)
	if err != nil {
		return nil, nil, err
	}
	return out, map[string]interface{}{"kernel": ksize}, nil
}

// KernelSize maps a blur radius to its kernel edge, 2k+1.
func KernelSize(radius int) int {
	return 2*radius + 1
}

// GaussianBlur smooths src with a ksize×ksize kernel; sigma is derived from
// the kernel size by OpenCV.
func GaussianBlur(src *safe.Mat, ksize int) (*safe.Mat, error) {
	if ksize <= 0 || ksize%2 == 0 {
		return nil, fmt.Errorf("gaussian kernel size must be odd and positive, got %d", ksize)
	}

	dst, err := newLike(src, "GaussianBlur")
	if err != nil {
		return nil, err
	}

	dstMat := dst.GetMat()
	gocv.GaussianBlur(src.GetMat(), &dstMat, image.Pt(ksize, ksize), 0, 0, gocv.BorderDefault)

	return dst, nil
}
