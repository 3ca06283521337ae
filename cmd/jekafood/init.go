package jekafood

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HullPerse/jekafood/internal/model"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local jekafood store",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPersister(cfg)
		if err != nil {
			return err
		}
		defer p.Close()

		ctx := context.Background()
		snap, err := p.Load(ctx)
		if err != nil {
			return err
		}
		if snap == nil {
			if err := p.Save(ctx, model.EmptySnapshot()); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s store at %s\n", cfg.Backend, cfg.DataPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
