package main

import (
	"github.com/spf13/cobra"

	"signal-dashboard/config"
	"signal-dashboard/logging"
)

var (
	configPath string
	verbose    bool
	quiet      bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "signal-dashboard",
	Short: "Serve the news signal analytics dashboard",
	Long: `signal-dashboard serves scored news signals over a small JSON API
and renders them as a dashboard: headline stats, topic clusters, a signal
table and a sentiment/impact scatter plot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logging.Setup(verbose, quiet)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "path to a YAML or TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}
