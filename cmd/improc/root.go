package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/improc"
)

// options is the state shared by all subcommands.
type options struct {
	out     string
	config  string
	bench   int
	verbose bool

	cfg    Config
	logger zerolog.Logger
}

func newOptions(logger zerolog.Logger) *options {
	return &options{cfg: DefaultConfig(), logger: logger}
}

func newRootCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "improc",
		Short:         "Detect features, filter and convert images",
		Version:       improc.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&o.out, "out", "o", ".", "directory for result images")
	f.StringVar(&o.config, "config", "", "YAML file overriding the defaults")
	f.IntVar(&o.bench, "bench", 0, "time `N` extra runs of the operation")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log library diagnostics")

	cmd.AddCommand(
		newHarrisCmd(o),
		newFASTCmd(o),
		newORBCmd(o),
		newMatchCmd(o),
		newFilterCmd(o),
		newConvertCmd(o),
	)
	return cmd
}

// setup applies --verbose and --config. Flags given explicitly are
// re-applied after the file so they take precedence.
func (o *options) setup(cmd *cobra.Command) error {
	if o.verbose {
		o.enableDebug(cmd.ErrOrStderr())
	}
	if o.config == "" {
		return o.cfg.Validate()
	}

	changed := make(map[string]string)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	if err := o.cfg.Load(o.config); err != nil {
		return err
	}
	for name, v := range changed {
		if err := cmd.Flags().Set(name, v); err != nil {
			return err
		}
	}
	o.logger.Debug().Str("path", o.config).Msg("config loaded")
	return o.cfg.Validate()
}

// benchmark times o.bench extra runs of f when --bench is set.
func (o *options) benchmark(name string, f func()) {
	if o.bench <= 0 {
		return
	}
	mean := improc.TimeMany(f, o.bench)
	o.logger.Info().Str("op", name).Int("runs", o.bench).Dur("mean", mean).Msg("benchmark")
}

// show writes img to the output directory.
func (o *options) show(title string, img *improc.Image[improc.U8]) error {
	sink := improc.FileSink{Dir: o.out}
	if err := improc.Show(sink, title, img); err != nil {
		return err
	}
	o.logger.Info().Str("file", sink.Path(title)).Msg("wrote " + title)
	return nil
}
