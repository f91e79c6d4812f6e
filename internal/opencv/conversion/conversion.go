package conversion

import (
	"fmt"
	"image"

	"image-distorter/internal/opencv/safe"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
)

// ImageToMat converts any Go image to an 8-bit BGR Mat. Alpha is dropped
// without compositing, which is what imread does for color reads.
func ImageToMat(img image.Image) (*safe.Mat, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	src := imaging.Clone(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	if err := safe.ValidateDimensions(width, height, "image to Mat conversion"); err != nil {
		return nil, err
	}

	data := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+width*4]
		for x := 0; x < len(row); x += 4 {
			data = append(data, row[x+2], row[x+1], row[x])
		}
	}

	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, data)
	if err != nil {
		return nil, fmt.Errorf("Mat creation failed: %w", err)
	}

	return safe.Adopt(mat, "converted")
}

// MatToNRGBA converts an 8-bit BGR Mat to an opaque NRGBA image.
func MatToNRGBA(src *safe.Mat) (*image.NRGBA, error) {
	if err := safe.ValidateColorImage(src, "Mat to image conversion"); err != nil {
		return nil, err
	}

	pix, err := src.Bytes()
	if err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, src.Cols(), src.Rows()))
	for i, j := 0, 0; i+2 < len(pix); i, j = i+3, j+4 {
		out.Pix[j] = pix[i+2]
		out.Pix[j+1] = pix[i+1]
		out.Pix[j+2] = pix[i]
		out.Pix[j+3] = 0xff
	}

	return out, nil
}
