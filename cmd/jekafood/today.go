package jekafood

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's intake against the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := time.Now()
		if todayDate != "" {
			parsed, err := service.ParseDay(todayDate, location())
			if err != nil {
				return err
			}
			target = parsed
		}
		return withStore(func(st *store.Store) error {
			status := service.DaySummary(st.Snapshot(), target, location())
			if todayJSON {
				return writeJSON(cmd, status)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Intake: %d / %d kcal (%d%%)\n", status.Calories, status.Goal, status.Percentage)
			fmt.Fprintf(out, "%s\n", gaugeBar(status))
			switch {
			case status.OverGoal:
				fmt.Fprintf(out, "Over goal by %d kcal\n", status.Calories-status.Goal)
			case status.AtGoal:
				fmt.Fprintln(out, "Goal reached")
			default:
				fmt.Fprintf(out, "Remaining: %d kcal\n", status.Remaining)
			}
			fmt.Fprintf(out, "Entries: %d\n", status.Entries)
			return nil
		})
	},
}

const gaugeWidth = 20

// gaugeBar draws the main ring as a bar and the overflow ring after it.
func gaugeBar(s service.TodayStatus) string {
	filled := gaugeWidth
	if !s.OverGoal {
		filled = s.Percentage * gaugeWidth / 100
	}
	bar := "[" + strings.Repeat("#", filled) + strings.Repeat(".", gaugeWidth-filled) + "]"
	if s.OverGoal {
		over := int(s.Overflow * gaugeWidth)
		bar += "[" + strings.Repeat("!", over) + strings.Repeat(".", gaugeWidth-over) + "]"
	}
	return bar
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output JSON")
}
