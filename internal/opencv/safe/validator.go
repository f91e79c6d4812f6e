package safe

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

var ErrInvalidMat = errors.New("invalid Mat")

func ValidateMatForOperation(mat *Mat, operation string) error {
	if mat == nil {
		return fmt.Errorf("%w: Mat is nil for operation: %s", ErrInvalidMat, operation)
	}

	if !mat.IsValid() {
		return fmt.Errorf("%w: Mat is closed for operation: %s", ErrInvalidMat, operation)
	}

	if mat.Empty() {
		return fmt.Errorf("%w: Mat is empty for operation: %s", ErrInvalidMat, operation)
	}

	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("%w: Mat has invalid dimensions %dx%d for operation: %s",
			ErrInvalidMat, mat.Cols(), mat.Rows(), operation)
	}

	return nil
}

// ValidateColorImage accepts only 3-channel 8-bit Mats, the shape every
// distortion stage reads and produces.
func ValidateColorImage(mat *Mat, operation string) error {
	if err := ValidateMatForOperation(mat, operation); err != nil {
		return err
	}

	if mat.Type() != gocv.MatTypeCV8UC3 {
		return fmt.Errorf("%w: %s requires an 8-bit 3-channel Mat, got type %d with %d channels",
			ErrInvalidMat, operation, int(mat.Type()), mat.Channels())
	}

	return nil
}

// MaxDimension is the largest width or height every stage can handle.
// OpenCV's remap, which backs WarpAffine, asserts both sides stay below
// SHRT_MAX.
const MaxDimension = 32766

var ErrTooLarge = errors.New("image too large")

func ValidateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d for operation: %s", ErrInvalidMat, width, height, operation)
	}

	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d for operation: %s",
			ErrTooLarge, width, height, MaxDimension, operation)
	}

	return nil
}

// SameShape reports whether a and b have equal rows, cols and type.
func SameShape(a, b *Mat) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols() && a.Type() == b.Type()
}
