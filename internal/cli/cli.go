// Package cli implements the image-distorter command line.
//
// The root command opens the desktop window; "run" distorts a directory
// headlessly and prints a summary. Settings come from --config (TOML), then
// LOG_LEVEL/DEBUG, then flags.
package cli

import (
	"fmt"
	"io"

	"image-distorter/internal/batch"
	"image-distorter/internal/codec"
	"image-distorter/internal/config"
	"image-distorter/internal/distortion"
	"image-distorter/internal/logger"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion is called from main with values injected via ldflags.
func SetVersion(v, c string) {
	version = v
	commit = c
}

type CLI struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger logger.Logger
}

func New(out, errOut io.Writer) *CLI {
	return &CLI{
		out:    out,
		errOut: errOut,
		cfg:    config.Default(),
		logger: logger.Nop(),
	}
}

func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "image-distorter",
		Short:         "Apply random distortions to a folder of images",
		Long:          "image-distorter rotates, blurs, adds noise to and shifts brightness and contrast of every image in a folder, each stage with a coin flip, writing same-named results into a second folder.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGUI(cmd.Context())
		},
	}

	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.SetVersionTemplate(fmt.Sprintf("image-distorter %s\ncommit: %s\n", version, commit))

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&c.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(c.newRunCmd())
	root.AddCommand(c.newGUICmd())
	root.AddCommand(c.newVersionCmd())

	return root
}

func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = c.logFormat
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.Log.Format)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger.New(c.errOut, level, format)
	return nil
}

// newRunner wires codec, distorter and batch runner from the resolved
// config.
func newRunner(cfg config.Config, log logger.Logger) (*batch.Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cd, err := codec.New(cfg.Codec)
	if err != nil {
		return nil, err
	}

	d := distortion.New(
		distortion.WithGate(distortion.CoinFlip{Probability: cfg.Probability}),
		distortion.WithLogger(log),
	)

	return batch.NewRunner(cd, d, batch.WithSeed(cfg.Seed), batch.WithLogger(log)), nil
}
