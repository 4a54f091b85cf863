package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ignis/internal/adapters/parameters"
	"github.com/trebuchet-org/ignis/internal/cli/render"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	var (
		params      []string
		deployer    string
		nonce       uint64
		predict     bool
		outputPath  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "plan [module]",
		Short: "Build the ordered deployment plan of a module",
		Long: `Resolve a module's parameters and order its contract deployments.

Parameter values are taken, highest precedence first, from:
  --param name=value flags
  answers given with --interactive
  the parameters file (--parameters, JSON or YAML keyed by module name)
  IGNIS_<MODULE>_<PARAM> environment variables
  the parameter's default

With --predict, --deployer or --nonce, each contract gets the address a
CREATE from the deployer at consecutive nonces would produce, and
references between contracts are replaced by those addresses.

Without a module name, an interactive selector is shown.

Examples:
  ignis plan InsuranceModule
  ignis plan InsuranceModule --param currency=0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B
  ignis plan InsuranceModule --parameters ignition/parameters.json --network polkadotHubTestnet --predict
  ignis plan InsuranceModule --deployer 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 --nonce 0 --out plan.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			overrides, err := parameters.ParseAssignments(params)
			if err != nil {
				return err
			}

			runParams := usecase.PlanDeploymentParams{
				Parameters:     overrides,
				ParametersFile: app.Config.ParametersFile,
				Interactive:    interactive,
				Predict:        predict,
				Deployer:       deployer,
				OutputPath:     outputPath,
			}
			if len(args) > 0 {
				runParams.Module = args[0]
			}
			if cmd.Flags().Changed("nonce") {
				runParams.Nonce = &nonce
			}

			result, err := app.PlanDeployment.Run(cmd.Context(), runParams)
			if err != nil {
				return err
			}

			renderer := render.NewPlanRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Parameter override as name=value (repeatable)")
	cmd.Flags().String("parameters", "", "Parameters file (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&deployer, "deployer", "", "Deployer address for address prediction (default: first account of the network)")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "Starting nonce for address prediction (default: fetched from the network)")
	cmd.Flags().BoolVar(&predict, "predict", false, "Predict contract addresses")
	cmd.Flags().StringVarP(&outputPath, "out", "o", "", "Write the plan to a file (.json, .yaml or .yml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose parameters to override interactively")

	return cmd
}
