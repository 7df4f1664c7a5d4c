package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/improc"
	"github.com/gogpu/improc/features"
)

type detector func(img *improc.Image[improc.U8]) []features.KeyPoint

func newHarrisCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harris IMAGE",
		Short: "Detect Harris corners",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.detect(args[0], "Harris corners", func(img *improc.Image[improc.U8]) []features.KeyPoint {
				return features.Harris(img, o.cfg.Harris)
			})
		},
	}

	f := cmd.Flags()
	f.Float64Var(&o.cfg.Harris.Threshold, "threshold", o.cfg.Harris.Threshold, "normalized response threshold")
	f.Float64Var(&o.cfg.Harris.K, "k", o.cfg.Harris.K, "trace weight")
	f.Float64Var(&o.cfg.Harris.SuppressionRadius, "radius", o.cfg.Harris.SuppressionRadius, "suppression radius (0 disables)")
	return cmd
}

func newFASTCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fast IMAGE",
		Short: "Detect FAST corners",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.detect(args[0], "FAST corners", func(img *improc.Image[improc.U8]) []features.KeyPoint {
				return features.FAST(img, o.cfg.FAST)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.cfg.FAST.Threshold, "threshold", o.cfg.FAST.Threshold, "intensity threshold (0..255)")
	f.IntVar(&o.cfg.FAST.Margin, "margin", o.cfg.FAST.Margin, "border margin")
	f.Float64Var(&o.cfg.FAST.SuppressionRadius, "radius", o.cfg.FAST.SuppressionRadius, "suppression radius (0 disables)")
	return cmd
}

func newORBCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orb IMAGE",
		Short: "Detect ORB keypoints with rotated BRIEF descriptors",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.detect(args[0], "ORB keypoints", func(img *improc.Image[improc.U8]) []features.KeyPoint {
				return features.ORB(img, o.cfg.ORB)
			})
		},
	}
	addORBFlags(cmd, &o.cfg.ORB)
	return cmd
}

func addORBFlags(cmd *cobra.Command, cfg *features.ORBConfig) {
	f := cmd.Flags()
	f.IntVar(&cfg.Levels, "levels", cfg.Levels, "pyramid levels")
	f.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "FAST intensity threshold (0..255)")
	f.Float64Var(&cfg.SuppressionRadius, "radius", cfg.SuppressionRadius, "suppression radius (0 disables)")
}

// detect runs d on the image at path and writes the keypoints drawn over it.
func (o *options) detect(path, title string, d detector) error {
	img, err := improc.Load(path)
	if err != nil {
		return err
	}

	kps := d(img)
	o.logger.Info().Str("image", path).Int("keypoints", len(kps)).Msg(title)
	o.benchmark(title, func() { d(img) })

	return o.show(title, features.DrawKeyPoints(img, kps))
}

func newMatchCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match IMAGE IMAGE",
		Short: "Match ORB keypoints between two images of equal height",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.match(args[0], args[1])
		},
	}
	addORBFlags(cmd, &o.cfg.ORB)
	cmd.Flags().Float64Var(&o.cfg.Match.Ratio, "ratio", o.cfg.Match.Ratio, "ratio-test threshold")
	return cmd
}

func (o *options) match(pathA, pathB string) error {
	a, err := improc.Load(pathA)
	if err != nil {
		return err
	}
	b, err := improc.Load(pathB)
	if err != nil {
		return err
	}
	if a.Height() != b.Height() {
		return fmt.Errorf("images must have the same height, got %d and %d", a.Height(), b.Height())
	}

	kpsA := features.ORB(a, o.cfg.ORB)
	kpsB := features.ORB(b, o.cfg.ORB)
	pairs, err := features.Match(kpsA, kpsB, o.cfg.Match.Ratio)
	if err != nil {
		return err
	}
	o.logger.Info().
		Int("keypoints_a", len(kpsA)).
		Int("keypoints_b", len(kpsB)).
		Int("matches", len(pairs)).
		Msg("ORB matches")
	o.benchmark("match", func() { _, _ = features.Match(kpsA, kpsB, o.cfg.Match.Ratio) })

	return o.show("ORB matches", features.DrawMatches(a, b, pairs))
}
