package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/ignis/internal/cli/render"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show project config and manage local defaults",
		Long: `Show the compiler and network settings loaded from ignis.toml, and the
local defaults stored in .ignis/config.local.json.

Available subcommands:
  config           Show current config
  config set       Set a local default
  config remove    Remove a local default`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(NewConfigSetCmd())
	cmd.AddCommand(NewConfigRemoveCmd())

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a local default",
		Long: `Set a local default in .ignis/config.local.json.
Available keys: network, parameters

Examples:
  ignis config set network polkadotHubTestnet
  ignis config set parameters ignition/parameters.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{
				Key:   args[0],
				Value: args[1],
			})
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a local default",
		Long: `Remove a local default from .ignis/config.local.json.

Examples:
  ignis config remove network`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RemoveConfig.Run(cmd.Context(), usecase.RemoveConfigParams{
				Key: args[0],
			})
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderRemove(result)
		},
	}
}

func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context())
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.RenderJSON(cmd.OutOrStdout(), map[string]interface{}{
			"configFile": result.ConfigPath,
			"project":    result.Config.Project,
			"network":    result.Config.Network.Name,
			"modulesDir": result.Config.ModulesDir,
			"local":      result.Local,
		})
	}

	return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
}
