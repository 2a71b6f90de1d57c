package cmd

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/capitolquiz/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the senator roster",
}

var rosterImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Validate a roster JSON file and store it for future quizzes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		r, err := roster.LoadFile(path, rt.log)
		if err != nil {
			return err
		}

		st, err := rt.openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		imp, err := st.RosterRepo().Import(cmd.Context(), path, r.All())
		if err != nil {
			return fmt.Errorf("import roster: %w", err)
		}
		rt.log.Info("roster imported", zap.String("source", path), zap.Int("senators", imp.Entities))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d senators across %d states from %s\n",
			imp.Entities, len(r.States()), path)
		return nil
	},
}

var rosterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the roster quizzes will use",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		r, source, err := rt.loadRoster(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := roster.Marshal(r.All())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		fmt.Fprintf(out, "Source: %s (%d senators, %d with portraits)\n\n",
			source, r.Len(), len(r.WithPortrait()))
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSTATE\tPARTY\tSENIORITY\tPORTRAIT")
		for _, e := range r.All() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.State, e.Party, e.Seniority, e.PortraitRef)
		}
		return tw.Flush()
	},
}

func init() {
	rosterShowCmd.Flags().Bool("json", false, "Print the roster as JSON")
	rosterShowCmd.Flags().String("roster", "", "Roster JSON file to show instead of the stored one")

	rosterCmd.AddCommand(rosterImportCmd)
	rosterCmd.AddCommand(rosterShowCmd)
}
