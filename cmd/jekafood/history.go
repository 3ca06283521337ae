package jekafood

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past days",
}

var historyJSON bool

var historyDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "Show the entries and total for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := service.NormalizeDay(args[0], location())
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			loc := location()
			food := st.Food()
			entries := service.EntriesForDay(food, day, loc)
			total := service.TotalCaloriesForDay(food, day, loc)
			if historyJSON {
				return writeJSON(cmd, map[string]any{"day": day, "total": total, "entries": entries})
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No entries on %s\n", day)
				return nil
			}
			printDayEntries(cmd, entries)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal\n", total)
			return nil
		})
	},
}

var historyCalendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show which days of a month have entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := time.Now().In(location()).Format("2006-01")
		if len(args) == 1 {
			month = args[0]
		}
		return withStore(func(st *store.Store) error {
			marks, err := service.MonthMarks(st.Food(), month, location())
			if err != nil {
				return err
			}
			if historyJSON {
				return writeJSON(cmd, marks)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tENTRIES\tKCAL")
			for _, m := range marks {
				has := "-"
				if m.HasEntries {
					has = "yes"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", m.Day, has, m.Calories)
			}
			return nil
		})
	},
}

var (
	rangeFrom string
	rangeTo   string
)

var historyRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Summarize intake over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if rangeFrom == "" || rangeTo == "" {
			return fmt.Errorf("--from and --to are required")
		}
		return withStore(func(st *store.Store) error {
			report, err := service.AnalyticsRange(st.Snapshot(), rangeFrom, rangeTo, location())
			if err != nil {
				return err
			}
			if historyJSON {
				return writeJSON(cmd, report)
			}
			printAnalytics(cmd, report)
			return nil
		})
	},
}

func printAnalytics(cmd *cobra.Command, r *service.AnalyticsReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Range: %s to %s (goal %d kcal)\n", r.FromDate, r.ToDate, r.Goal)
	if r.DaysWithEntries == 0 {
		fmt.Fprintln(out, "No entries in range")
		return
	}
	fmt.Fprintf(out, "Total: %d kcal over %d days\n", r.TotalCalories, r.DaysWithEntries)
	fmt.Fprintf(out, "Average: %.0f kcal/day\n", r.AverageCaloriesPerDay)
	fmt.Fprintf(out, "Highest: %s (%d kcal)\n", r.HighestDay.Date, r.HighestDay.Calories)
	fmt.Fprintf(out, "Lowest: %s (%d kcal)\n", r.LowestDay.Date, r.LowestDay.Calories)
	fmt.Fprintf(out, "Within goal: %d/%d days (%.1f%%)\n", r.Adherence.WithinGoalDays, r.Adherence.EvaluatedDays, r.Adherence.PercentWithin)
	fmt.Fprintln(out, "TYPE\tENTRIES\tKCAL")
	for _, tb := range r.ByType {
		fmt.Fprintf(out, "%s\t%d\t%d\n", tb.Type, tb.Entries, tb.Calories)
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyDayCmd, historyCalendarCmd, historyRangeCmd)
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "Output JSON")
	historyRangeCmd.Flags().StringVar(&rangeFrom, "from", "", "Start date YYYY-MM-DD")
	historyRangeCmd.Flags().StringVar(&rangeTo, "to", "", "End date YYYY-MM-DD (inclusive)")
}
