package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/improc"
)

func newConvertCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between color spaces",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "gray IMAGE",
			Short: "Convert to grayscale",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return o.convert(args[0], "Grayscale", func(m *improc.Image[improc.F32]) {
					m.Grayscale()
				})
			},
		},
		&cobra.Command{
			Use:   "hsl IMAGE",
			Short: "Convert to HSL and write the H, S and L channels as R, G and B",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return o.convert(args[0], "HSL channels", func(m *improc.Image[improc.F32]) {
					m.HSL().SetColor(improc.RGB)
				})
			},
		},
		&cobra.Command{
			Use:   "rgb IMAGE",
			Short: "Round-trip through HSL back to RGB",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return o.convert(args[0], "RGB round trip", func(m *improc.Image[improc.F32]) {
					m.HSL().RGB()
				})
			},
		},
	)
	return cmd
}

// convert applies fn to a float copy of the image, so conversions do not
// lose precision between steps.
func (o *options) convert(path, title string, fn func(m *improc.Image[improc.F32])) error {
	src, err := improc.Load(path)
	if err != nil {
		return err
	}

	m := improc.ToF32(src)
	o.benchmark(title, func() { fn(m.Clone()) })
	fn(m)

	res := improc.ToU8(m)
	if res.Color() == improc.RGB && improc.SameShape(src, res) {
		o.logger.Info().Float64("mse", improc.MSE(src, res)).Msg(title)
	}
	return o.show(title, res)
}
