package jekafood

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage reusable food presets",
}

var (
	presetLabel    string
	presetIcon     string
	presetCalories float64
	presetPer      string
)

var presetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a preset priced per 100g or per item",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			p, err := service.CreatePreset(st, service.CreatePresetInput{
				Label:     presetLabel,
				Icon:      presetIcon,
				Calories:  presetCalories,
				ValueType: presetPer,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created preset %s (%s)\n", p.Label, p.ID)
			return nil
		})
	},
}

var (
	presetQuery string
	presetLimit int
)

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			items := service.ListPresets(st.Presets(), service.ListPresetsFilter{Query: presetQuery, Limit: presetLimit})
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tLABEL\tICON\tKCAL\tPER")
			for _, p := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Label, service.DisplayIcon(p.Icon), strconv.FormatFloat(p.Calories, 'f', -1, 64), p.ValueType)
			}
			return nil
		})
	},
}

var presetRemoveCmd = &cobra.Command{
	Use:   "remove <id|label>",
	Short: "Remove a preset (logged food stays)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			p, err := service.DeletePreset(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %s\n", p.Label)
			return nil
		})
	},
}

var (
	logQuantity float64
	logUnit     string
	logDate     string
	logTime     string
)

var presetLogCmd = &cobra.Command{
	Use:   "log <id|label>",
	Short: "Log a quantity of a preset (grams for 100g presets, pieces otherwise)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			e, err := service.LogPreset(st, service.LogPresetInput{Identifier: args[0], Quantity: logQuantity, Unit: logUnit, Date: at})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s: %d kcal\n", e.Type, e.Calories)
			return nil
		})
	},
}

var presetCalcCmd = &cobra.Command{
	Use:   "calc <id|label>",
	Short: "Preview calories for a quantity without logging",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			p, err := service.ResolvePreset(st.Presets(), args[0])
			if err != nil {
				return err
			}
			qty, err := service.NormalizeQuantity(p, logQuantity, logUnit)
			if err != nil {
				return err
			}
			unit := logUnit
			if unit == "" {
				unit = p.ValueType.UnitLabel()
			}
			kcal := service.QuantityToCalories(p, qty)
			fmt.Fprintf(cmd.OutOrStdout(), "%s x %s %s = %d kcal\n", p.Label, strconv.FormatFloat(logQuantity, 'f', -1, 64), unit, kcal)
			return nil
		})
	},
}

var presetIconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List icons a preset may use",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, icon := range service.PresetIcons {
			fmt.Fprintln(cmd.OutOrStdout(), icon)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetAddCmd, presetListCmd, presetRemoveCmd, presetLogCmd, presetCalcCmd, presetIconsCmd)

	presetAddCmd.Flags().StringVar(&presetLabel, "label", "", "Preset label")
	presetAddCmd.Flags().StringVar(&presetIcon, "icon", "", "Icon (default "+service.DefaultPresetIcon+")")
	presetAddCmd.Flags().Float64Var(&presetCalories, "calories", 0, "Calories per unit")
	presetAddCmd.Flags().StringVar(&presetPer, "per", "item", "Unit the calories refer to: 100g or item")
	_ = presetAddCmd.MarkFlagRequired("label")
	_ = presetAddCmd.MarkFlagRequired("calories")

	presetListCmd.Flags().StringVar(&presetQuery, "query", "", "Filter by label")
	presetListCmd.Flags().IntVar(&presetLimit, "limit", 0, "Max rows")

	presetLogCmd.Flags().Float64Var(&logQuantity, "qty", 0, "Quantity in grams or pieces")
	presetLogCmd.Flags().StringVar(&logUnit, "unit", "", "Unit of --qty: g, kg, oz, lb, pcs (default the preset's own)")
	presetLogCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default now)")
	presetLogCmd.Flags().StringVar(&logTime, "time", "", "Time HH:MM")
	_ = presetLogCmd.MarkFlagRequired("qty")

	presetCalcCmd.Flags().Float64Var(&logQuantity, "qty", 0, "Quantity in grams or pieces")
	presetCalcCmd.Flags().StringVar(&logUnit, "unit", "", "Unit of --qty: g, kg, oz, lb, pcs (default the preset's own)")
	_ = presetCalcCmd.MarkFlagRequired("qty")
}
