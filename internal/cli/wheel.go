package cli

import (
	"github.com/spf13/cobra"
)

func newSpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spin",
		Short: "Spin the reward wheel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}

			var result SpinResult
			if err := client.Post(playerPath("/wheel/spin"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
