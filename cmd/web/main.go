package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Dogecat0/Aperilex-sub002/pkg/server"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/config"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/registry"
	"github.com/Dogecat0/Aperilex-sub002/pkg/services/workflow"
	"github.com/Dogecat0/Aperilex-sub002/pkg/store/client"
	"github.com/Dogecat0/Aperilex-sub002/pkg/store/duckdb"
	duckdbanalysis "github.com/Dogecat0/Aperilex-sub002/pkg/store/duckdb/analysis"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the filing analysis dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config.yaml",
		"Path to the application config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sources, err := registry.NewSourceRegistry(cfg.Sources.RegistryPath)
	if err != nil {
		return fmt.Errorf("failed to load source registry: %w", err)
	}

	profiles, _ := sources.GetProfiles()
	logger.Info().Msgf("Source registry `%s` loaded.", cfg.Sources.RegistryPath)
	for _, profile := range profiles {
		logger.Info().Msgf("Profile: `%s`", profile)
	}

	sourceCfg, err := sources.GetConfig(cfg.Sources.Profile)
	if err != nil {
		return fmt.Errorf("failed to resolve source profile: %w", err)
	}
	analysisClient, err := client.NewAnalysisClient(*sourceCfg)
	if err != nil {
		return fmt.Errorf("failed to create analysis client: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.CachePath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	analysisStore, err := duckdbanalysis.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create analysis store: %w", err)
	}

	controller := workflow.NewController(analysisClient, analysisStore)

	if len(cfg.Watchlist) > 0 {
		runner := workflow.NewRunner(controller, cfg.Watchlist)
		go runner.Run(ctx)
		logger.Info().Int("watchlist", len(cfg.Watchlist)).Msg("background sync started")
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Store:      analysisStore,
			Controller: controller,
		},
	})

	return api.Start()
}
