package jekafood

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/config"
	applog "github.com/HullPerse/jekafood/internal/log"
)

var (
	dbPath     string
	configPath string

	cfg    config.Config
	logger = applog.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "jekafood",
	Short: "jekafood tracks daily calories against a goal",
	Long:  "jekafood is a local-first calorie tracker: log food by hand or from presets, watch the daily gauge, and browse past days.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadRuntime(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the data file of the active backend")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml")
}

func loadRuntime(cmd *cobra.Command) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		if loaded.Backend == config.BackendJSON {
			loaded.JSONPath = dbPath
		} else {
			loaded.DBPath = dbPath
		}
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	level, err := applog.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentCLI,
		Output:    cmd.ErrOrStderr(),
	})
	logger.Debug("configuration loaded",
		applog.FieldBackend, cfg.Backend,
		applog.FieldPath, cfg.DataPath())
	return nil
}
