package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// ModulesRenderer renders module listings and module details
type ModulesRenderer struct {
	out  io.Writer
	json bool
}

// NewModulesRenderer creates a new modules renderer
func NewModulesRenderer(out io.Writer, json bool) *ModulesRenderer {
	return &ModulesRenderer{out: out, json: json}
}

type moduleSummaryJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
	Parameters  int    `json:"parameters"`
	Contracts   int    `json:"contracts"`
	Error       string `json:"error,omitempty"`
}

// RenderList renders the registered modules
func (r *ModulesRenderer) RenderList(result *usecase.ListModulesResult) error {
	if r.json {
		out := make([]moduleSummaryJSON, 0, len(result.Modules))
		for _, m := range result.Modules {
			entry := moduleSummaryJSON{
				Name:        m.Name,
				Description: m.Description,
				Source:      m.Source,
				Parameters:  m.Parameters,
				Contracts:   m.Contracts,
			}
			if m.Error != nil {
				entry.Error = m.Error.Error()
			}
			out = append(out, entry)
		}
		return RenderJSON(r.out, out)
	}

	if len(result.Modules) == 0 {
		fmt.Fprintln(r.out, "No modules registered")
		return nil
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("📦 Modules:"))
	fmt.Fprintln(r.out)

	t := newTable(r.out, table.Row{"NAME", "PARAMS", "CONTRACTS", "SOURCE", "DESCRIPTION"})
	for _, m := range result.Modules {
		contracts := fmt.Sprint(m.Contracts)
		if m.Error != nil {
			contracts = errorStyle.Sprint("invalid")
		}
		t.AppendRow(table.Row{
			nameStyle.Sprint(m.Name),
			m.Parameters,
			contracts,
			faintStyle.Sprint(relativeSource(m.Source)),
			m.Description,
		})
	}
	t.Render()

	return nil
}

// RenderModule renders one module's parameters and deployment order
func (r *ModulesRenderer) RenderModule(result *usecase.ShowModuleResult) error {
	def := result.Module

	if r.json {
		out := map[string]interface{}{
			"name":         def.Name,
			"description":  def.Description,
			"source":       def.Source,
			"parameters":   def.Parameters,
			"declarations": declarationsJSON(result.Declarations),
		}
		if result.Build != nil {
			out["nodes"] = result.Build.Nodes
		}
		if result.BuildError != nil {
			out["buildError"] = result.BuildError.Error()
		}
		return RenderJSON(r.out, out)
	}

	fmt.Fprintf(r.out, "%s %s\n", headerStyle.Sprint("📦"), nameStyle.Sprint(def.Name))
	if def.Description != "" {
		fmt.Fprintf(r.out, "   %s\n", def.Description)
	}
	fmt.Fprintf(r.out, "   %s\n\n", faintStyle.Sprintf("source: %s", relativeSource(def.Source)))

	fmt.Fprintln(r.out, headerStyle.Sprint("Parameters"))
	if len(def.Parameters) == 0 {
		fmt.Fprintln(r.out, faintStyle.Sprint("  (none)"))
	} else {
		t := newTable(r.out, table.Row{"NAME", "TYPE", "DEFAULT", "REQUIRED", "DESCRIPTION"})
		for _, p := range def.Parameters {
			defaultValue := p.Default
			if defaultValue == "" {
				defaultValue = faintStyle.Sprint("-")
			}
			required := ""
			if p.Required {
				required = "yes"
			}
			t.AppendRow(table.Row{
				nameStyle.Sprint(p.Name),
				typeStyle.Sprint(p.Type),
				defaultValue,
				required,
				p.Description,
			})
		}
		t.Render()
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, headerStyle.Sprint("Contracts"))
	if result.Build != nil {
		for i, node := range result.Build.Nodes {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, formatNode(node.FutureID, node.ContractName, node.ConstructorArgs))
			if len(node.Dependencies) > 0 {
				fmt.Fprintf(r.out, "     %s\n", faintStyle.Sprintf("after: %s", strings.Join(node.Dependencies, ", ")))
			}
		}
		return nil
	}

	// Declarations in source order when the module cannot build without overrides
	for _, decl := range result.Declarations {
		args := make([]string, len(decl.Args))
		for i, a := range decl.Args {
			args[i] = a.String()
		}
		fmt.Fprintf(r.out, "  - %s %s(%s)\n",
			domain.FutureID(def.Name, decl.ID), decl.ContractName, strings.Join(args, ", "))
	}
	if result.BuildError != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Cannot build with defaults: %v", result.BuildError)))
	}

	return nil
}

func declarationsJSON(decls []domain.ContractDecl) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(decls))
	for _, d := range decls {
		args := make([]string, len(d.Args))
		for i, a := range d.Args {
			args[i] = a.String()
		}
		entry := map[string]interface{}{
			"id":       d.ID,
			"contract": d.ContractName,
			"args":     args,
		}
		if len(d.After) > 0 {
			entry["after"] = d.After
		}
		out = append(out, entry)
	}
	return out
}

// formatNode renders "Module#ID  Contract(arg, ...)"
func formatNode(futureID, contractName string, args []domain.Value) string {
	parts := make([]string, len(args))
	for i, v := range args {
		parts[i] = formatValue(v)
	}
	return fmt.Sprintf("%s  %s(%s)",
		nameStyle.Sprint(futureID),
		contractName,
		strings.Join(parts, ", "))
}

func formatValue(v domain.Value) string {
	if v.IsFuture() {
		return futureStyle.Sprintf("${%s.address}", v.Future)
	}
	switch v.Type {
	case domain.ParamTypeAddress:
		return addressStyle.Sprint(v.Raw)
	case domain.ParamTypeString:
		return fmt.Sprintf("%q", v.Raw)
	case domain.ParamTypeBytes:
		return shortHex(v.Raw, 8)
	default:
		return v.Raw
	}
}

func relativeSource(source string) string {
	if strings.ContainsRune(source, '/') {
		return relativePath(source)
	}
	return source
}
