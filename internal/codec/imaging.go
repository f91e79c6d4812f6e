package codec

import (
	"bytes"
	"fmt"

	"image-distorter/internal/opencv/conversion"
	"image-distorter/internal/opencv/safe"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Imaging is a pure-Go codec built on disintegration/imaging. It reads
// webp as well but cannot write it. EXIF orientation is applied on decode,
// as OpenCV does for IMReadColor.
type Imaging struct {
	jpegQuality int
}

func NewImaging() *Imaging {
	return &Imaging{jpegQuality: 95}
}

func (c *Imaging) Name() string {
	return NameImaging
}

func (c *Imaging) Supports(format Format) bool {
	_, err := imaging.FormatFromExtension(string(format))
	return err == nil
}

func (c *Imaging) Decode(data []byte) DecodeResult {
	if len(data) == 0 {
		return Skipped(SkipEmpty, nil)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Skipped(SkipUndecodable, err)
	}

	b := img.Bounds()
	if reason, err := checkSize(b.Dx(), b.Dy()); err != nil {
		return Skipped(reason, err)
	}

	mat, err := conversion.ImageToMat(img)
	if err != nil {
		return Skipped(SkipUndecodable, err)
	}

	return DecodeResult{Image: mat}
}

func (c *Imaging) Encode(format Format, img *safe.Mat) ([]byte, error) {
	f, err := imaging.FormatFromExtension(string(format))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	nrgba, err := conversion.MatToNRGBA(img)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, nrgba, f, imaging.JPEGQuality(c.jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
