package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrollhead/internal/scenario"
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a scroll scenario and print the header transitions",
		Long: `Replay feeds a scripted sequence of scroll offsets or visible rows to the
header controller on a simulated clock and prints every header transition.

Settings not given by the scenario come from the config file and flags.

Example scenario:
  strategy: offset
  steps:
    - {at: 0s, offset: 0}
    - {at: 1s, offset: 50}
    - {at: 2s, offset: 10}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			res, err := scenario.Replay(s, cfg.HeaderOptions())
			if err != nil {
				return fmt.Errorf("replay %s: %w", args[0], err)
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			out := cmd.OutOrStdout()
			for _, t := range res.Transitions {
				fmt.Fprintln(out, t)
			}
			if !quiet {
				fmt.Fprintf(out, "strategy %s: %d transitions, %d dropped, %d suppressed, final %s\n",
					res.Strategy, len(res.Transitions), res.Dropped, res.Suppressed, res.Final)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("quiet", "q", false, "Print transitions only")

	return cmd
}
