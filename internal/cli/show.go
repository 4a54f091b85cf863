package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ignis/internal/cli/render"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <module>",
		Short: "Show a module's parameters and contracts",
		Long: `Show the parameters a module declares and the order its contracts
deploy in when every parameter takes its default.

Examples:
  ignis show InsuranceModule
  ignis show InsuranceModule --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowModule.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewModulesRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderModule(result)
		},
	}
}
