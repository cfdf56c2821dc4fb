package commands

import (
	"fmt"

	"github.com/de-tools/market-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/market-atlas/pkg/runtime/terminal/prompt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type InteractiveCmd struct {
	env       *Env
	weighting string
	format    string
}

func NewInteractiveCmd(env *Env) *cobra.Command {
	ic := &InteractiveCmd{env: env}
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Configure a report step by step and run it",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.weighting, "weighting", "", "Weighting strategy (identity, scaled)")
	cmd.Flags().StringVarP(&ic.format, "format", "f", export.FormatTable, "Output format (table, text, json)")

	return cmd
}

func (ic *InteractiveCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	out := cmd.OutOrStdout()

	st, err := ic.env.load(ctx)
	if err != nil {
		return err
	}

	weighting := ic.env.weighting()
	if ic.weighting != "" {
		weighting = ic.weighting
	}

	fmt.Fprintln(out, "Welcome to the Market Atlas research tool")
	p := prompt.New(cmd.InOrStdin(), out)
	cfg, err := p.Configure(st, ic.env.averaging())
	if err != nil {
		return err
	}

	for {
		action, err := p.Confirm(cfg)
		if err != nil {
			return err
		}

		switch action {
		case prompt.ActionRun:
			return runReport(ctx, ic.env, st, cfg, weighting, ic.format, out)
		case prompt.ActionCancel:
			logger.Info().Msg("report cancelled after configuration")
			fmt.Fprintln(out, "Research Report Cancelled")
			return nil
		default:
			if cfg, err = p.Revise(cfg, action, st); err != nil {
				return err
			}
		}
	}
}
