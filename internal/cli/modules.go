package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ignis/internal/cli/render"
)

// NewModulesCmd creates the modules command
func NewModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "modules",
		Aliases: []string{"ls"},
		Short:   "List registered deployment modules",
		Long: `List the built-in modules and every module file found in the
project's modules directory (ignition/modules by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListModules.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewModulesRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderList(result)
		},
	}
}
