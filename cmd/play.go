package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away",
	Long: `Start a quiz at the configured difficulty, skipping the menu.

Flags override the config file and CAPITOLQUIZ_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

func init() {
	addQuizFlags(playCmd)
}

// addQuizFlags registers the flags shared by play and preview.
func addQuizFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("difficulty", "d", "", "Difficulty: easy or hard")
	cmd.Flags().IntP("questions", "n", 0, "Number of questions")
	cmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
	cmd.Flags().String("roster", "", "Roster JSON file to use instead of the stored one")
}
