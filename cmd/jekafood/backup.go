package jekafood

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/app"
	applog "github.com/HullPerse/jekafood/internal/log"
	"github.com/HullPerse/jekafood/internal/service"
	"github.com/HullPerse/jekafood/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage snapshot backups",
}

var (
	backupOut    string
	backupDir    string
	restoreFile  string
	restoreForce bool
)

func resolveBackupDir() string {
	if backupDir != "" {
		return backupDir
	}
	return app.BackupDir(cfg.DataPath())
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write the current goal, food log and presets to a backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			now := time.Now()
			out := backupOut
			if out == "" {
				out = filepath.Join(resolveBackupDir(), service.BackupFileName(now))
			}
			info, err := service.CreateBackup(st.Snapshot(), out, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s (%d entries, %d presets)\n", info.Path, info.Entries, info.Presets)
			fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := service.ListBackups(resolveBackupDir())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tCREATED\tGOAL\tENTRIES\tPRESETS\tSTATUS")
		for _, it := range items {
			status := "ok"
			if it.Problem != "" {
				status = it.Problem
			}
			created := "-"
			if !it.CreatedAt.IsZero() {
				created = it.CreatedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\t%d\t%s\n", it.Path, created, it.Goal, it.Entries, it.Presets, status)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace the store contents with a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		return withStore(func(st *store.Store) error {
			report, info, err := service.RestoreBackup(st, restoreFile, restoreForce)
			if err != nil {
				return err
			}
			logger.Info("backup restored",
				applog.FieldPath, info.Path,
				applog.FieldGoal, report.Goal,
				applog.FieldFoodCount, info.Entries,
				applog.FieldPresetCount, info.Presets)
			fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s: goal=%d entries=%d presets=%d\n", info.Path, report.Goal, info.Entries, info.Presets)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup output file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (used when --out is empty)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default: alongside the data file under backups/)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup file path")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite a store that already has data")
}
