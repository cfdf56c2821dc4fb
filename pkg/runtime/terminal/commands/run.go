package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/market-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type RunCmd struct {
	env       *Env
	weights   map[string]string
	years     string
	regions   string
	preset    string
	weighting string
	averaging string
	format    string
}

func NewRunCmd(env *Env) *cobra.Command {
	rc := &RunCmd{env: env}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a report from flags or a preset",
		Example: `  market-atlas report run --weights Income=40,Population=30,Urban=30 --years 2015-2020 --regions EU,AS
  market-atlas report run --preset emerging --format json`,
		RunE: rc.run,
	}

	cmd.Flags().StringToStringVar(&rc.weights, "weights", nil, "Percent per statistic, e.g. Income=40,Population=60")
	cmd.Flags().StringVar(&rc.years, "years", "", "Inclusive year range, e.g. 2015-2020 (default: all loaded years)")
	cmd.Flags().StringVar(&rc.regions, "regions", "", "Comma separated region codes")
	cmd.Flags().StringVar(&rc.preset, "preset", "", "Name of a preset from the presets file")
	cmd.Flags().StringVar(&rc.weighting, "weighting", "", "Weighting strategy (identity, scaled)")
	cmd.Flags().StringVar(&rc.averaging, "averaging", "", "Averaging mode (span, observed)")
	cmd.Flags().StringVarP(&rc.format, "format", "f", export.FormatTable, "Output format (table, text, json)")

	return cmd
}

func (rc *RunCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	st, err := rc.env.load(ctx)
	if err != nil {
		return err
	}

	cfg, weighting, err := rc.config(ctx, st)
	if err != nil {
		return err
	}

	return runReport(ctx, rc.env, st, cfg, weighting, rc.format, cmd.OutOrStdout())
}

// config merges the preset, if any, with the flags. Flags win over the preset.
func (rc *RunCmd) config(ctx context.Context, st domain.Store) (domain.ReportConfig, string, error) {
	bounds, ok := st.YearBounds()
	if !ok {
		return domain.ReportConfig{}, "", fmt.Errorf("%w: no statistics loaded", report.ErrConfiguration)
	}

	cfg := domain.ReportConfig{Years: bounds, Averaging: rc.env.averaging()}
	weighting := rc.env.weighting()

	if rc.preset != "" {
		presets, err := rc.env.presets()
		if err != nil {
			return domain.ReportConfig{}, "", err
		}
		preset, err := presets.GetPreset(ctx, rc.preset)
		if err != nil {
			return domain.ReportConfig{}, "", err
		}
		cfg = preset.Config
		weighting = preset.Weighting
	}

	if rc.preset == "" || len(rc.weights) > 0 {
		weights, err := report.ParseWeights(rc.weights)
		if err != nil {
			return domain.ReportConfig{}, "", err
		}
		cfg.Weights = weights
	}

	start, end := strconv.Itoa(cfg.Years.Start), strconv.Itoa(cfg.Years.End)
	if rc.years != "" {
		var found bool
		if start, end, found = strings.Cut(rc.years, "-"); !found {
			end = start
		}
	}
	years, err := report.ParseYearRange(start, end, bounds)
	if err != nil {
		return domain.ReportConfig{}, "", err
	}
	cfg.Years = years

	regions := rc.regions
	if regions == "" {
		regions = strings.Join(cfg.Regions, ",")
	}
	if cfg.Regions, err = report.ParseRegions(regions, st.Regions()); err != nil {
		return domain.ReportConfig{}, "", err
	}

	if rc.weighting != "" {
		weighting = rc.weighting
	}
	if rc.averaging != "" {
		cfg.Averaging = domain.AveragingMode(rc.averaging)
	}
	return cfg, weighting, nil
}
