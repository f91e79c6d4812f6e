package codec

import (
	"bytes"
	"fmt"

	"image-distorter/internal/opencv/safe"

	"gocv.io/x/gocv"
)

var openCVFormats = map[Format]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".jpe": true,
	".bmp": true, ".dib": true,
	".tif": true, ".tiff": true,
	".webp": true,
	".pbm":  true, ".pgm": true, ".ppm": true, ".pnm": true,
	".jp2": true, ".sr": true, ".ras": true,
	".hdr": true, ".pic": true, ".exr": true,
}

// OpenCV decodes and encodes through imdecode/imencode.
type OpenCV struct{}

func NewOpenCV() *OpenCV {
	return &OpenCV{}
}

func (c *OpenCV) Name() string {
	return NameOpenCV
}

func (c *OpenCV) Supports(format Format) bool {
	return openCVFormats[format]
}

func (c *OpenCV) Decode(data []byte) DecodeResult {
	if len(data) == 0 {
		return Skipped(SkipEmpty, nil)
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		mat.Close()
		return Skipped(SkipUndecodable, fmt.Errorf("imdecode: %w", err))
	}

	img, err := safe.Adopt(mat, "decoded")
	if err != nil {
		return Skipped(SkipUndecodable, err)
	}

	if reason, err := checkSize(img.Cols(), img.Rows()); err != nil {
		img.Close()
		return Skipped(reason, err)
	}

	return DecodeResult{Image: img}
}

func (c *OpenCV) Encode(format Format, img *safe.Mat) ([]byte, error) {
	if !c.Supports(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := safe.ValidateMatForOperation(img, "IMEncode"); err != nil {
		return nil, err
	}

	buf, err := gocv.IMEncode(gocv.FileExt(format), img.GetMat())
	if err != nil {
		return nil, fmt.Errorf("imencode %s: %w", format, err)
	}
	defer buf.Close()

	return bytes.Clone(buf.GetBytes()), nil
}
