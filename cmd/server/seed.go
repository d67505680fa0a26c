package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"betterbrand/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the bundled brand catalog",
	Long: `Upserts every brand in the bundled seed catalog by slug. Trust scores
are clamped to 0..100 and each brand's evidence set is stored alongside it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		brands, err := seed.Default()
		if err != nil {
			return err
		}

		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := seed.Apply(ctx, db, brands, logger)
		if err != nil {
			return err
		}
		logger.Info("seed complete", zap.Int("brands", n))
		return nil
	},
}
