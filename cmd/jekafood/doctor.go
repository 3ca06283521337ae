package jekafood

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report := service.RunDoctor(st, doctorFix)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Goal: %d\n", report.Goal)
			fmt.Fprintf(out, "Invalid entries: %d\n", report.InvalidEntries)
			fmt.Fprintf(out, "Invalid presets: %d\n", report.InvalidPresets)
			for _, p := range report.Problems {
				fmt.Fprintf(out, "- %s\n", p)
			}
			if report.Fixed {
				fmt.Fprintln(out, "Applied fixes")
				// Re-check after fixes so exit status reflects final state.
				report = service.RunDoctor(st, false)
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Drop invalid records and reset a non-positive goal")
}
