package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/de-tools/market-atlas/pkg/runtime/logging"
	"github.com/de-tools/market-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/market-atlas/pkg/services/config"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/de-tools/market-atlas/pkg/services/statistics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	viper   *viper.Viper
	output  io.Writer
	logs    io.Writer
	closers []io.Closer
	rootCmd *cobra.Command

	configPath string
}

// Options contain configuration for the CLI
type Options struct {
	Weighers report.WeigherRegistry
	// Loader replaces the loader built from the source settings
	Loader statistics.Loader
	Output io.Writer
	// Logs receives the console log output; nil means stderr
	Logs io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Weighers == nil {
		opts.Weighers = report.DefaultWeigherRegistry()
	}

	cli := &CLI{
		env: &commands.Env{
			Weighers: opts.Weighers,
			Loader:   opts.Loader,
		},
		viper:  config.NewViper(),
		output: opts.Output,
		logs:   opts.Logs,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	defer cli.close()
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "market-atlas",
		Short:             "Regional market statistics reports",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.output)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.configPath, "config", "c", "", "Path to the settings file (yaml, json or toml)")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.String("session-log", "", "Append session events to this file")
	flags.String("source", "", "Statistics source kind (csv, duckdb, postgres)")
	flags.String("data-dir", "", "Directory of statistics csv files")
	flags.String("dsn", "", "Database connection string for SQL sources")
	flags.String("presets", "", "Path to the report presets file")

	for key, flag := range map[string]string{
		"log.level":        "log-level",
		"log.session_file": "session-log",
		"source.kind":      "source",
		"source.dir":       "data-dir",
		"source.dsn":       "dsn",
		"presets":          "presets",
	} {
		_ = cli.viper.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(commands.NewReportCmd(cli.env))

	return cmd
}

// setup loads the settings and builds the logger, the loader and the presets
// before any subcommand runs.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.viper, cli.configPath)
	if err != nil {
		return err
	}
	cli.env.Settings = settings

	logger, closer, err := logging.New(logging.Options{
		Level:       settings.Log.Level,
		Console:     cli.logs,
		SessionFile: settings.Log.SessionFile,
	})
	if err != nil {
		return err
	}
	cli.closers = append(cli.closers, closer)

	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)
	logger.Info().Str("command", cmd.CommandPath()).Msg("application started")

	if cli.env.Loader == nil {
		loader, closer, err := statistics.NewLoaderFromSettings(ctx, settings.Source)
		if err != nil {
			return err
		}
		cli.env.Loader = loader
		cli.closers = append(cli.closers, closer)
	}

	if settings.Presets != "" {
		presets, err := config.NewPresetRegistry(settings.Presets)
		if err != nil {
			return err
		}
		cli.env.Presets = presets
	}

	return nil
}

func (cli *CLI) close() {
	var errs []error
	for i := len(cli.closers) - 1; i >= 0; i-- {
		errs = append(errs, cli.closers[i].Close())
	}
	cli.closers = nil
	if err := errors.Join(errs...); err != nil {
		_, _ = io.WriteString(os.Stderr, "failed to release resources: "+err.Error()+"\n")
	}
}
