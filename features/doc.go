// Package features detects and describes image keypoints.
//
// Detectors:
//
//   - Harris: structure-tensor corner response on Sobel gradients
//   - FAST: segment test on a 16-pixel Bresenham circle
//   - ORB: FAST over a 4-level pyramid with intensity-centroid orientation
//     and 512-bit rotated BRIEF descriptors
//
// Each detector converts its input to single-channel grayscale first and
// optionally thins its output with Suppress, a radius-based non-maximum
// suppression over a k-d tree. Descriptors are compared by Hamming
// distance; Match pairs two keypoint sets with a vantage-point tree and
// Lowe's ratio test.
//
// Basic usage:
//
//	a := features.ORB(imgA, features.DefaultORBConfig())
//	b := features.ORB(imgB, features.DefaultORBConfig())
//	matches, err := features.Match(a, b, 0.8)
package features
