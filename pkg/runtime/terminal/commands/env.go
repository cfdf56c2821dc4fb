package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/market-atlas/pkg/adapters"
	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/market-atlas/pkg/services/config"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/de-tools/market-atlas/pkg/services/statistics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Env holds the dependencies shared by the report commands. The root command
// fills it before any subcommand runs.
type Env struct {
	Settings *config.Settings
	Loader   statistics.Loader
	Weighers report.WeigherRegistry
	// Presets is nil when no presets file is configured
	Presets config.PresetRegistry
}

func (e *Env) presets() (config.PresetRegistry, error) {
	if e.Presets == nil {
		return nil, fmt.Errorf("%w: no presets file configured", report.ErrConfiguration)
	}
	return e.Presets, nil
}

func (e *Env) averaging() domain.AveragingMode {
	if e.Settings == nil {
		return domain.AveragingSpan
	}
	return domain.AveragingMode(e.Settings.Report.Averaging)
}

func (e *Env) weighting() string {
	if e.Settings == nil || e.Settings.Report.Weighting == "" {
		return report.WeightingIdentity
	}
	return e.Settings.Report.Weighting
}

func (e *Env) load(ctx context.Context) (domain.Store, error) {
	st, err := e.Loader.Load(ctx)
	if err != nil {
		return domain.Store{}, fmt.Errorf("failed to load statistics: %w", err)
	}
	return st, nil
}

// runReport runs the pipeline once for cfg and renders the result to w.
func runReport(
	ctx context.Context,
	env *Env,
	st domain.Store,
	cfg domain.ReportConfig,
	weighting string,
	format string,
	w io.Writer,
) error {
	handler, err := export.NewHandler(format, w)
	if err != nil {
		return err
	}

	weigher, err := env.Weighers.Create(weighting)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().
		Stringer("years", cfg.Years).
		Strs("regions", cfg.Regions).
		Str("weighting", weighting).
		Msg("report started")

	summary, err := report.NewPipeline(weigher).Run(ctx, cfg, st)
	if err != nil {
		logger.Error().Err(err).Msg("report failed")
		return fmt.Errorf("failed to run report: %w", err)
	}

	rep := adapters.MapRegionSummaryToReport(cfg, weighting, summary, time.Now())
	rep.RunID = runID
	if err := handler.Handle(rep); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	logger.Info().Int("regions", len(summary)).Msg("report completed")
	return nil
}
