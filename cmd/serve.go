package cmd

import (
	"context"

	"github.com/availarr/availarr/config"
	"github.com/availarr/availarr/pkg/availability"
	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/storage/sqlite"
	"github.com/availarr/availarr/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the availability server",
	Long:  `start the availability server and the reconciliation schedule`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ctx = logger.WithCtx(ctx, log)

		err = store.Init(ctx)
		if err != nil {
			log.Fatal("failed to init database", zap.Error(err))
		}

		engine := availability.New(store, newAggregator(cfg),
			availability.WithPageSize(cfg.Availability.PageSize))

		executors := map[availability.JobType]availability.JobExecutor{
			availability.AvailabilitySync: func(ctx context.Context, jobID int64) error {
				_, err := engine.Run(ctx)
				return err
			},
		}

		scheduler := availability.NewScheduler(store, cfg.Availability, executors)
		go func() {
			if err := scheduler.Run(ctx); err != nil {
				log.Error("scheduler stopped", zap.Error(err))
			}
		}()

		srv := server.New(log, store, engine)
		log.Error(srv.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
