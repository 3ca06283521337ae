package jekafood

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var (
	exportFormat string
	exportOut    string
	importIn     string
	importMode   string
	importDryRun bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export local data (json or csv)",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(exportFormat))
		if format != "json" && format != "csv" {
			return fmt.Errorf("unsupported --format %q (use json or csv)", exportFormat)
		}
		return withStore(func(st *store.Store) error {
			var w io.Writer = cmd.OutOrStdout()
			if exportOut != "" {
				f, err := os.Create(exportOut)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}
			var err error
			if format == "json" {
				err = service.WriteExportJSON(w, service.ExportSnapshot(st.Snapshot(), time.Now()))
			} else {
				err = service.WriteEntriesCSV(w, st.Food(), location())
			}
			if err != nil {
				return err
			}
			if exportOut != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported data to %s\n", exportOut)
			}
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a json export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		f, err := os.Open(importIn)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		data, err := service.ReadExportJSON(f)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			report, err := service.ImportSnapshot(st, data, service.ImportOptions{
				Mode:   service.ImportMode(importMode),
				DryRun: importDryRun,
			})
			if err != nil {
				return err
			}
			prefix := "Import report"
			if report.DryRun {
				prefix = "Dry run"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): inserted=%d skipped=%d conflicts=%d invalid=%d\n", prefix, report.Mode, report.Inserted, report.Skipped, report.Conflicts, report.Invalid)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")

	importCmd.Flags().StringVar(&importIn, "in", "", "JSON export to import")
	importCmd.Flags().StringVar(&importMode, "mode", string(service.ImportModeMerge), "Import mode: merge, replace, or fail")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would change without writing")
}
