package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/improc"
	"github.com/gogpu/improc/filter"
)

func newFilterCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Apply a windowed filter",
	}

	f := cmd.PersistentFlags()
	f.IntVar(&o.cfg.Filter.Size, "size", o.cfg.Filter.Size, "window half-size")
	f.StringVar(&o.cfg.Filter.Padding, "padding", o.cfg.Filter.Padding, "border padding: zeros or repeat")
	f.IntVar(&o.cfg.Filter.Noise, "noise", o.cfg.Filter.Noise, "salt-and-pepper `percentage` added before filtering")

	gauss := o.filterCmd("gauss", "Gaussian blur", func(img *improc.Image[improc.U8], pad filter.Padding) *improc.Image[improc.U8] {
		return filter.GaussianBlur(img, o.cfg.Filter.Size, o.cfg.Filter.Sigma, pad)
	})
	gauss.Flags().Float64Var(&o.cfg.Filter.Sigma, "sigma", o.cfg.Filter.Sigma, "standard deviation")

	cmd.AddCommand(
		o.filterCmd("median", "Median filter", func(img *improc.Image[improc.U8], pad filter.Padding) *improc.Image[improc.U8] {
			return filter.Median(img, o.cfg.Filter.Size, pad)
		}),
		o.filterCmd("blur", "Box blur", func(img *improc.Image[improc.U8], pad filter.Padding) *improc.Image[improc.U8] {
			return filter.Blur(img, o.cfg.Filter.Size, pad)
		}),
		gauss,
		o.filterCmd("sobel", "Sobel edges", func(img *improc.Image[improc.U8], _ filter.Padding) *improc.Image[improc.U8] {
			return improc.ToU8(filter.Sobel(img))
		}),
	)
	return cmd
}

type filterFunc func(img *improc.Image[improc.U8], pad filter.Padding) *improc.Image[improc.U8]

func (o *options) filterCmd(name, title string, fn filterFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " IMAGE",
		Short: "Apply a " + title,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.filter(args[0], title, fn)
		},
	}
}

// filter optionally degrades the image with noise, applies fn, and reports
// the error against the clean input.
func (o *options) filter(path, title string, fn filterFunc) error {
	pad, err := parsePadding(o.cfg.Filter.Padding)
	if err != nil {
		return err
	}
	clean, err := improc.Load(path)
	if err != nil {
		return err
	}

	img := clean.Clone()
	if o.cfg.Filter.Noise > 0 {
		img.SaltAndPepper(o.cfg.Filter.Noise, nil)
		o.logger.Info().Int("percent", o.cfg.Filter.Noise).Float64("mse", improc.MSE(clean, img)).Msg("noise added")
	}

	o.benchmark(title, func() { fn(img.Clone(), pad) })
	res := fn(img, pad)
	if improc.SameShape(clean, res) {
		o.logger.Info().Float64("mse", improc.MSE(clean, res)).Msg(title)
	}
	return o.show(title, res)
}
