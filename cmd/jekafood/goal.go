package jekafood

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the daily calorie goal",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <kcal>",
	Short: "Set the daily calorie goal (invalid input falls back to 2000)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			goal := service.SetGoal(st, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Set daily goal to %d kcal\n", goal)
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the daily calorie goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %d kcal\n", st.Goal())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)
}
