package improc

import "errors"

// Precondition errors. Operations that detect a violated precondition panic
// with an error wrapping one of these, so a caller that recovers can
// classify the failure with errors.Is.
var (
	// ErrChannels is raised when the channel count does not fit the operation.
	ErrChannels = errors.New("improc: unexpected channel count")

	// ErrColorSpace is raised when the color space tag does not fit the operation.
	ErrColorSpace = errors.New("improc: unsupported color space conversion")

	// ErrKernelSize is raised when a kernel does not match its declared window.
	ErrKernelSize = errors.New("improc: kernel size does not match window")

	// ErrOutOfBounds is raised on pixel access outside the image.
	ErrOutOfBounds = errors.New("improc: coordinates out of bounds")

	// ErrDimensions is raised when dimensions are non-positive or disagree.
	ErrDimensions = errors.New("improc: invalid dimensions")

	// ErrDescriptorMismatch is raised when comparing descriptors of different kinds.
	ErrDescriptorMismatch = errors.New("improc: incompatible descriptors")
)

// I/O errors, returned rather than raised.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("improc: empty data")

	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("improc: unsupported format")
)
