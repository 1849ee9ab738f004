package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/de-tools/asset-atlas/pkg/server"
	"github.com/de-tools/asset-atlas/pkg/services/config"
	"github.com/de-tools/asset-atlas/pkg/services/loader"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/de-tools/asset-atlas/pkg/services/source/fixture"
	"github.com/de-tools/asset-atlas/pkg/services/source/opencost"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the assets view",
		RunE:  runServer,
	}

	defaultPath, err := config.DefaultProfilesPath()
	if err != nil {
		defaultPath = config.ProfilesFile
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a config file (yaml, json or toml)")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", defaultPath,
		"Path to the .opencostcfg file (default is $HOME/.opencostcfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	if cfg.Source.Profile != "" {
		registry, err := config.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to create profile registry: %w", err)
		}
		profile, err := registry.GetProfile(ctx, cfg.Source.Profile)
		if err != nil {
			return err
		}
		cfg.ApplyProfile(profile)
		logger.Info().Msgf("Profile `%s` loaded from `%s`.", profile.Name, profilesPath)
	}

	sources := source.NewRegistry(map[string]source.Factory{
		source.KindOpenCost: opencost.SourceFactory,
		source.KindFixture:  fixture.SourceFactory,
	})
	src, err := source.Build(sources, cfg.Source.Kind, source.Settings{
		BaseURL: cfg.Source.BaseURL,
		Timeout: cfg.Source.Timeout,
	}, cfg.Source.Fallback)
	if err != nil {
		return err
	}

	assetLoader := loader.New(src, cfg.Window())
	if _, err := assetLoader.Load(ctx, cfg.Window()); err != nil {
		// The view starts empty with a notification; requests may still
		// switch windows or refresh.
		logger.Warn().Err(err).Msg("initial assets load failed")
	}

	logger.Info().
		Str("source", cfg.Source.Kind).
		Str("base_url", cfg.Source.BaseURL).
		Bool("fallback", cfg.Source.Fallback).
		Msg("assets source configured")

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Refresh: server.RefreshLimit{
			Rate:  cfg.Refresh.Rate,
			Burst: cfg.Refresh.Burst,
		},
		Dependencies: server.Dependencies{
			Loader:   assetLoader,
			Totals:   src,
			Currency: cfg.View.Currency,
			Logger:   logger,
		},
	})

	if err := api.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
