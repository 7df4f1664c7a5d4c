// Package improc provides image buffers, color-space conversion and the
// utilities shared by the filter and features packages.
//
// # Overview
//
// An Image[S] is a height×width×channels buffer of samples S. Three
// sample encodings are built in:
//   - U8: 8-bit integers in [0,255]
//   - F32: normalized floats in [0,1]
//   - Bool: binary masks
//
// Every encoding converts to and from the others through the Sample
// interface, so algorithms are written once and instantiated per encoding.
//
// # Quick Start
//
//	import "github.com/gogpu/improc"
//
//	img, err := improc.Load("photo.jpg")
//	if err != nil {
//		return err
//	}
//
//	// Work in floats to avoid rounding between steps
//	f := improc.ToF32(img)
//	f.HSL()
//	f.RGB()
//
//	err = improc.Save("out.png", improc.ToU8(f))
//
// # Color Spaces
//
// Images carry a ColorSpace tag (RGB, Gray or HSL). Conversions run in
// place and return the image for chaining. Converting Gray back to RGB is
// not possible; use ToThreeChannels or FakeColor.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - x is the column, y the row
//   - Angles in radians, measured from +x toward +y
//
// # Errors
//
// Violated preconditions (wrong channel count, color space or kernel
// size) panic with an error wrapping one of the Err* sentinels. I/O
// functions return errors.
//
// # Packages
//
//   - filter: convolution, blur, median and Sobel filters
//   - features: Harris, FAST and ORB detectors, BRIEF descriptors,
//     suppression and matching
package improc

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
