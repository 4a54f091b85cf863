package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ignis/internal/cli/render"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List networks from ignis.toml",
		Long: `List all networks configured in the [networks] section of ignis.toml,
with the deployer address derived from each network's first account.

With --probe, each network's RPC endpoint is asked for its chain ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Probe: probe})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Query each RPC endpoint for its chain ID")

	return cmd
}
