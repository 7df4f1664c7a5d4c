// Command improc runs the improc detectors, filters and color conversions
// on image files and writes annotated PNGs.
//
// Usage:
//
//	improc harris photo.jpg --out results
//	improc orb photo.jpg --bench 10 --verbose
//	improc match left.png right.png --ratio 0.7
//	improc filter median noisy.png --size 2
//	improc convert hsl photo.jpg --config improc.yaml
package main

import (
	"os"
)

func main() {
	o := newOptions(newLogger(os.Stderr))
	if err := newRootCmd(o).Execute(); err != nil {
		o.logger.Error().Err(err).Msg("improc failed")
		os.Exit(1)
	}
}
