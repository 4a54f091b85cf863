package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/ignis/internal/domain/config"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	project := result.Config.Project

	if result.ConfigPath == "" {
		fmt.Fprintln(r.out, FormatWarning("No ignis.toml found, using defaults"))
		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("📋 Compiler:"))
	fmt.Fprintf(r.out, "Solidity:   %s\n", project.Solidity.Version)
	fmt.Fprintf(r.out, "Resolc:     %s (%s)\n", project.Resolc.Version, project.Resolc.CompilerSource)
	opt := project.Resolc.Optimizer
	if opt.Enabled {
		fallback := ""
		if opt.FallbackOz {
			fallback = ", fallback -Oz"
		}
		fmt.Fprintf(r.out, "Optimizer:  -O%s, %d runs%s\n", opt.Parameters, opt.Runs, fallback)
	} else {
		fmt.Fprintf(r.out, "Optimizer:  %s\n", faintStyle.Sprint("disabled"))
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, headerStyle.Sprint("📋 Project:"))
	fmt.Fprintf(r.out, "Network:    %s\n", result.Config.Network.Name)
	fmt.Fprintf(r.out, "Networks:   %d configured\n", len(project.Networks))
	fmt.Fprintf(r.out, "Modules:    %s\n", relativePath(result.Config.ModulesDir))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, headerStyle.Sprint("📋 Local config:"))
	for _, key := range config.ValidConfigKeys() {
		value := result.Local.Get(key)
		if value == "" {
			value = faintStyle.Sprint("(not set)")
		}
		fmt.Fprintf(r.out, "%-11s %s\n", string(key)+":", value)
	}
	fmt.Fprintln(r.out)

	if result.ConfigPath != "" {
		fmt.Fprintf(r.out, "📁 config file: %s\n", relativePath(result.ConfigPath))
	}
	fmt.Fprintf(r.out, "📁 local config: %s\n", relativePath(result.LocalPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, result.Value)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed network from config (defaults to %s)", config.DefaultNetwork)))
	default:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s from config", result.Key)))
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}
