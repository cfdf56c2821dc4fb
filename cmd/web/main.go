package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	handlers "github.com/de-tools/market-atlas/pkg/handlers/report"
	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/runtime/logging"
	"github.com/de-tools/market-atlas/pkg/server"
	"github.com/de-tools/market-atlas/pkg/services/config"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/de-tools/market-atlas/pkg/services/statistics"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:          "web",
		Short:        "Start the web server for Market Atlas",
		SilenceUsage: true,
		RunE:         runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file (defaults and MARKET_ATLAS_* variables are used otherwise)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(config.NewViper(), cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	logger, logCloser, err := logging.New(logging.Options{
		Level:       settings.Log.Level,
		Console:     os.Stdout,
		JSON:        true,
		SessionFile: settings.Log.SessionFile,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logCloser.Close()
	ctx := logger.WithContext(cmd.Context())

	loader, sourceCloser, err := statistics.NewLoaderFromSettings(ctx, settings.Source)
	if err != nil {
		return fmt.Errorf("failed to create statistics loader: %w", err)
	}
	defer sourceCloser.Close()

	store, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}

	logger.Info().Msgf("Statistics source `%s` successfully loaded.", settings.Source.Kind)
	logger.Info().Msgf("Found the following regions: %v", store.Regions())

	api := server.NewWebAPI(server.Config{
		Addr: settings.ServerAddr(),
		Dependencies: server.Dependencies{
			Store:    store,
			Weighers: report.DefaultWeigherRegistry(),
			Defaults: handlers.Defaults{
				Weighting: settings.Report.Weighting,
				Averaging: domain.AveragingMode(settings.Report.Averaging),
			},
			Logger: logger,
		},
	})

	return api.Start()
}
