package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		input, output string
		seed          int64
		codecName     string
		probability   float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Distort every image of --input into --output",
		Long: `Run processes each regular file of the input directory in name order.
Files that are not decodable images are skipped; the output directory must
already exist and receives a same-named file for every processed input.`,
		Example: `  image-distorter run -i ./photos -o ./distorted
  image-distorter run -i ./photos -o ./distorted --seed 42 --codec imaging`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("codec") {
				cfg.Codec = codecName
			}
			if cmd.Flags().Changed("probability") {
				cfg.Probability = probability
			}

			runner, err := newRunner(cfg, c.logger)
			if err != nil {
				return err
			}

			summary, err := runner.Run(cmd.Context(), input, output)
			if err != nil {
				return err
			}

			printSummary(c.out, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "directory of images to distort")
	cmd.Flags().StringVarP(&output, "output", "o", "", "existing directory to write results into")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible run (0 draws fresh entropy per image)")
	cmd.Flags().StringVar(&codecName, "codec", "", "codec backend: opencv or imaging")
	cmd.Flags().Float64Var(&probability, "probability", 0, "chance that each distortion stage fires")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
