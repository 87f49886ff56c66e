package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/availarr/availarr/config"
	"github.com/availarr/availarr/pkg/availability"
	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/storage/sqlite"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// syncCmd runs a single reconciliation pass and prints the outcome
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "run one availability reconciliation pass",
	Long:  `run one availability reconciliation pass against the configured sources and exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		ctx := logger.WithCtx(cmd.Context(), log)

		if err := store.Init(ctx); err != nil {
			log.Fatal("failed to init database", zap.Error(err))
		}

		engine := availability.New(store, newAggregator(cfg),
			availability.WithPageSize(cfg.Availability.PageSize))

		summary, err := engine.Run(ctx)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
