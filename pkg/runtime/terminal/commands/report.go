package commands

import "github.com/spf13/cobra"

// NewReportCmd groups the report subcommands
func NewReportCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute regional statistics reports",
	}

	cmd.AddCommand(NewRunCmd(env))
	cmd.AddCommand(NewInteractiveCmd(env))
	cmd.AddCommand(NewRegionsCmd(env))
	cmd.AddCommand(NewPresetsCmd(env))

	return cmd
}
