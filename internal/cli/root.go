package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "clust",
		Short: "CLI tool for the ClassikLust economy API",
		Long: `clust is a CLI tool for interacting with the ClassikLust player
economy JSON API: tapping, logging in, buying VIP plans, spinning the
reward wheel and managing achievements.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CLUST_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.PlayerID, "player", "p", cfg.PlayerID, "Player id (env: CLUST_PLAYER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newTapCmd())
	rootCmd.AddCommand(newVipCmd())
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newAchievementCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// requirePlayer validates that a player id was supplied
func requirePlayer() error {
	if cfg.PlayerID == "" {
		return fmt.Errorf("player id is required (use --player or CLUST_PLAYER)")
	}
	return nil
}

// playerPath builds an API path under the player resource
func playerPath(suffix string) string {
	path := "/api/v1/players/" + url.PathEscape(cfg.PlayerID)
	if suffix != "" {
		path += suffix
	}
	return path
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
