package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "capitolquiz",
	Short: "Senate trivia in your terminal",
	Long: `CapitolQuiz asks procedurally generated questions about the U.S. Senate
and grades typed answers, forgiving last names and small typos on Easy.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/capitolquiz/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAPITOLQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(versionCmd)
}
