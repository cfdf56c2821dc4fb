package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/de-tools/market-atlas/pkg/adapters"
	"github.com/spf13/cobra"
)

type RegionsCmd struct {
	env     *Env
	jsonOut bool
}

func NewRegionsCmd(env *Env) *cobra.Command {
	rc := &RegionsCmd{env: env}
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the regions, years and statistics loaded from the source",
		RunE:  rc.run,
	}

	cmd.Flags().BoolVar(&rc.jsonOut, "json", false, "Print the catalog as JSON")

	return cmd
}

func (rc *RegionsCmd) run(cmd *cobra.Command, _ []string) error {
	st, err := rc.env.load(cmd.Context())
	if err != nil {
		return err
	}

	catalog := adapters.MapStoreDomainToCatalogApi(st)
	out := cmd.OutOrStdout()

	if rc.jsonOut {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(catalog)
	}

	if catalog.Years == nil {
		fmt.Fprintln(out, "No statistics loaded")
		return nil
	}

	fmt.Fprintf(out, "Regions loaded: %s\n", strings.Join(catalog.Regions, ","))
	fmt.Fprintf(out, "Years available: %d to %d\n", catalog.Years.Start, catalog.Years.End)
	fmt.Fprintf(out, "Statistics: %s\n", strings.Join(catalog.StatCodes, ", "))
	return nil
}
