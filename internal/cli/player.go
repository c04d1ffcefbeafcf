package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the player's economy state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}

			var result Player
			if err := client.Get(playerPath(""), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in, collecting regenerated energy and passive income",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}

			var result Player
			if err := client.Post(playerPath("/login"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newTapCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "tap",
		Short: "Tap to earn LP, spending energy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be >= 1")
			}

			var result Player
			for i := 0; i < count; i++ {
				if err := client.Post(playerPath("/tap"), nil, &result); err != nil {
					return err
				}
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of taps")
	return cmd
}
