// Package codec is the raster decode/encode boundary. Decoding never fails
// loudly: an input that cannot become an image yields a DecodeResult carrying
// the reason it was skipped.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"image-distorter/internal/opencv/safe"
)

var (
	ErrUnknownCodec      = errors.New("unknown codec")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Format is a lower-cased file extension including the dot, e.g. ".png".
type Format string

// FormatFromPath derives the encode format from a destination file name.
func FormatFromPath(path string) Format {
	return Format(strings.ToLower(filepath.Ext(path)))
}

type SkipReason string

const (
	SkipEmpty             SkipReason = "empty"
	SkipUndecodable       SkipReason = "undecodable"
	SkipUnsupportedFormat SkipReason = "unsupported-format"
	SkipUnreadable        SkipReason = "unreadable"
	SkipTooLarge          SkipReason = "too-large"
)

// DecodeResult is either a decoded 8-bit BGR image or a skip reason.
type DecodeResult struct {
	Image  *safe.Mat
	Reason SkipReason
	Err    error
}

func (r DecodeResult) OK() bool {
	return r.Image != nil
}

func Skipped(reason SkipReason, err error) DecodeResult {
	return DecodeResult{Reason: reason, Err: err}
}

// checkSize rejects images the distortion stages cannot handle, before any
// stage allocates for them.
func checkSize(width, height int) (SkipReason, error) {
	if err := safe.ValidateDimensions(width, height, "Decode"); err != nil {
		if errors.Is(err, safe.ErrTooLarge) {
			return SkipTooLarge, err
		}
		return SkipUndecodable, err
	}
	return "", nil
}

type Codec interface {
	Name() string
	// Decode turns raw file bytes into an 8-bit 3-channel image.
	Decode(data []byte) DecodeResult
	// Encode serializes img in the given format.
	Encode(format Format, img *safe.Mat) ([]byte, error)
	// Supports reports whether Encode can produce format.
	Supports(format Format) bool
}

const (
	NameOpenCV  = "opencv"
	NameImaging = "imaging"
)

// Names lists the selectable codecs.
func Names() []string {
	return []string{NameOpenCV, NameImaging}
}

func New(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case NameOpenCV, "":
		return NewOpenCV(), nil
	case NameImaging:
		return NewImaging(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownCodec, name, strings.Join(Names(), ", "))
	}
}
