package cli

import (
	"context"

	"image-distorter/internal/gui"

	"github.com/spf13/cobra"
)

func (c *CLI) newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGUI(cmd.Context())
		},
	}
}

func (c *CLI) runGUI(ctx context.Context) error {
	runner, err := newRunner(c.cfg, c.logger)
	if err != nil {
		return err
	}
	return gui.Run(ctx, runner.Run, c.logger)
}
