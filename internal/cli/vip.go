package cli

import (
	"github.com/spf13/cobra"
)

func newVipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vip",
		Short: "Manage the player's VIP entitlement",
	}

	cmd.AddCommand(newVipStatusCmd())
	cmd.AddCommand(newVipBuyCmd())
	return cmd
}

func newVipStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the player's VIP status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}

			var result VipStatus
			if err := client.Get(playerPath("/vip"), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newVipBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <plan-id>",
		Short: "Purchase a VIP plan, replacing any prior entitlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}

			body := map[string]string{"plan_id": args[0]}
			var result Player
			if err := client.Post(playerPath("/vip"), body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
