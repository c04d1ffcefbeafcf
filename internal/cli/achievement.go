package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newAchievementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievement",
		Aliases: []string{"ach"},
		Short:   "Track and claim achievements",
	}

	cmd.AddCommand(newAchievementProgressCmd())
	cmd.AddCommand(newAchievementClaimCmd())
	return cmd
}

func achievementPath(id, action string) string {
	return playerPath("/achievements/" + url.PathEscape(id) + action)
}

func newAchievementProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <achievement-id> <delta>",
		Short: "Advance progress toward an achievement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}

			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			body := map[string]int{"delta": delta}
			var result Player
			if err := client.Post(achievementPath(args[0], "/progress"), body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newAchievementClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <achievement-id>",
		Short: "Claim a completed achievement's reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePlayer(); err != nil {
				return err
			}

			var result Player
			if err := client.Post(achievementPath(args[0], "/claim"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
