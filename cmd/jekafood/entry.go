package jekafood

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage logged food",
}

var (
	entryType     string
	entryCalories int
	entryDate     string
	entryTime     string
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log food by hand",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDateTimeOrNow(entryDate, entryTime)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			e, err := service.AddEntry(st, service.AddEntryInput{Type: entryType, Calories: entryCalories, Date: at})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %d kcal (entry %d)\n", e.Type, e.Calories, len(st.Food()))
			return nil
		})
	},
}

var (
	listDate  string
	listType  string
	listLimit int
)

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged food",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := ""
		if listDate != "" {
			var err error
			if day, err = service.NormalizeDay(listDate, location()); err != nil {
				return err
			}
		}
		return withStore(func(st *store.Store) error {
			loc := location()
			entries := service.ListEntries(st.Food(), service.ListEntriesFilter{Day: day, Type: listType, Limit: listLimit}, loc)
			printDayEntries(cmd, entries)
			return nil
		})
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <n>",
	Short: "Delete an entry by its number in entry list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parsePositionArg(args[0])
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			e, err := service.DeleteEntry(st, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d (%s, %d kcal)\n", index+1, e.Type, e.Calories)
			return nil
		})
	},
}

var clearYes bool

var entryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every logged entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return fmt.Errorf("refusing to clear the food log without --yes")
		}
		return withStore(func(st *store.Store) error {
			n := service.ClearFood(st)
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d entries\n", n)
			return nil
		})
	},
}

var entryTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the built-in food types",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "TYPE\tICON")
		for _, ft := range service.FoodTypes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ft.Label, ft.Icon)
		}
		return nil
	},
}

func printDayEntries(cmd *cobra.Command, entries []service.DayEntry) {
	loc := location()
	fmt.Fprintln(cmd.OutOrStdout(), "#\tDATE\tTYPE\tICON\tKCAL")
	for _, de := range entries {
		e := de.Entry
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d\n", de.Index+1, e.Date.In(loc).Format("2006-01-02 15:04"), e.Type, service.IconForType(e.Type), e.Calories)
	}
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryAddCmd, entryListCmd, entryDeleteCmd, entryClearCmd, entryTypesCmd)

	entryAddCmd.Flags().StringVar(&entryType, "type", "", "Food type, e.g. Завтрак (see entry types)")
	entryAddCmd.Flags().IntVar(&entryCalories, "calories", 0, "Calories")
	entryAddCmd.Flags().StringVar(&entryDate, "date", "", "Date YYYY-MM-DD (default now)")
	entryAddCmd.Flags().StringVar(&entryTime, "time", "", "Time HH:MM")
	_ = entryAddCmd.MarkFlagRequired("type")
	_ = entryAddCmd.MarkFlagRequired("calories")

	entryListCmd.Flags().StringVar(&listDate, "date", "", "Only entries on YYYY-MM-DD")
	entryListCmd.Flags().StringVar(&listType, "type", "", "Only entries of this type")
	entryListCmd.Flags().IntVar(&listLimit, "limit", 0, "Show only the most recent N entries")

	entryClearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm clearing the food log")
}
