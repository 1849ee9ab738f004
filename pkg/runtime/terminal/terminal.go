package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/asset-atlas/pkg/services/config"
	"github.com/de-tools/asset-atlas/pkg/services/loader"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry source.Registry
	output   io.Writer
	logs     io.Writer
	rootCmd  *cobra.Command

	configPath   string
	profilesPath string
	profile      string
	window       string
	sourceKind   string
	format       string
}

// Options contain configuration for the CLI
type Options struct {
	Registry source.Registry
	Output   io.Writer
	// Logs receives structured logs. Defaults to stderr.
	Logs io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}

	cli := &CLI{
		registry: opts.Registry,
		output:   opts.Output,
		logs:     opts.Logs,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "assets",
		Short:         "Infrastructure asset cost views",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	defaultProfiles, err := config.DefaultProfilesPath()
	if err != nil {
		defaultProfiles = config.ProfilesFile
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.configPath, "config", "c", "", "Path to a config file (yaml, json or toml)")
	flags.StringVar(&cli.profilesPath, "profiles", defaultProfiles, "Path to the endpoint profiles file")
	flags.StringVarP(&cli.profile, "profile", "p", "", "Endpoint profile to use")
	flags.StringVarP(&cli.window, "window", "w", "", "Time window (today, yesterday, 24h, 48h, week, lastweek, 7d, 14d, 30d, month, lastmonth)")
	flags.StringVarP(&cli.sourceKind, "source", "s", "", "Asset source (opencost or fixture)")
	flags.StringVarP(&cli.format, "format", "f", string(export.FormatText), "Output format (text, json or csv)")

	cmd.AddCommand(commands.NewSummaryCmd(cli))
	cmd.AddCommand(commands.NewTableCmd(cli))
	cmd.AddCommand(commands.NewCategoriesCmd(cli))
	cmd.AddCommand(commands.NewTrendCmd(cli))
	cmd.AddCommand(commands.NewTreemapCmd(cli))
	cmd.AddCommand(commands.NewProfilesCmd(cli))

	return cmd
}

func (cli *CLI) Reporter() (*export.Reporter, error) {
	format, err := export.ParseFormat(cli.format)
	if err != nil {
		return nil, err
	}
	return export.NewReporter(cli.output, format), nil
}

func (cli *CLI) Profiles(ctx context.Context) ([]config.Profile, error) {
	registry, err := config.NewRegistry(cli.profilesPath)
	if err != nil {
		return nil, err
	}
	names, err := registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]config.Profile, 0, len(names))
	for _, name := range names {
		p, err := registry.GetProfile(ctx, name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// View loads the assets of the requested window and the total the source
// reports for it. Data-unavailable answers are rendered with their
// notification; transport failures are returned.
func (cli *CLI) View(ctx context.Context) (commands.View, error) {
	cfg, err := cli.loadConfig(ctx)
	if err != nil {
		return commands.View{}, err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(cli.logs).Level(level).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	window := cfg.Window()
	if cli.window != "" {
		window, err = domain.ParseWindow(cli.window)
		if err != nil {
			return commands.View{}, err
		}
	}

	src, err := source.Build(cli.registry, cfg.Source.Kind, source.Settings{
		BaseURL: cfg.Source.BaseURL,
		Timeout: cfg.Source.Timeout,
	}, cfg.Source.Fallback)
	if err != nil {
		return commands.View{}, err
	}

	snap, err := loader.New(src, window).Load(ctx, window)
	if err != nil && !errors.Is(err, source.ErrDataUnavailable) {
		return commands.View{}, err
	}

	viewCfg := domain.DefaultViewConfig()
	viewCfg.Window = window
	viewCfg.Currency = cfg.View.Currency
	v := commands.View{Config: viewCfg, Snapshot: snap}

	if err == nil {
		total, err := src.FetchTotals(ctx, window, "")
		if err != nil {
			logger.Warn().Err(err).Str("window", string(window)).Msg("reported total unavailable")
		} else {
			v.ReportedTotal = &total
		}
	}
	return v, nil
}

func (cli *CLI) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return nil, err
	}

	profile := cli.profile
	if profile == "" {
		profile = cfg.Source.Profile
	}
	if profile != "" {
		registry, err := config.NewRegistry(cli.profilesPath)
		if err != nil {
			return nil, err
		}
		p, err := registry.GetProfile(ctx, profile)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		cfg.ApplyProfile(p)
	}

	if cli.sourceKind != "" {
		cfg.Source.Kind = cli.sourceKind
	}
	return cfg, nil
}
