package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type PresetsCmd struct {
	env *Env
}

func NewPresetsCmd(env *Env) *cobra.Command {
	pc := &PresetsCmd{env: env}
	return &cobra.Command{
		Use:   "presets",
		Short: "List the report presets",
		RunE:  pc.run,
	}
}

func (pc *PresetsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	presets, err := pc.env.presets()
	if err != nil {
		return err
	}

	names, err := presets.GetPresets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}
	if len(names) == 0 {
		fmt.Fprintln(out, "No presets found")
		return nil
	}

	for _, name := range names {
		preset, err := presets.GetPreset(ctx, name)
		if err != nil {
			fmt.Fprintf(out, "%s: invalid (%v)\n", name, err)
			continue
		}
		fmt.Fprintf(out, "%s regions=%s weighting=%s\n",
			preset, strings.Join(preset.Config.Regions, ","), preset.Weighting)
	}
	return nil
}
