package modulefile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/trebuchet-org/ignis/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	paramRefPattern  = regexp.MustCompile(`^\$\{param\.([A-Za-z_$][A-Za-z0-9_$]*)\}$`)
	futureRefPattern = regexp.MustCompile(`^\$\{([^}]+)\.address\}$`)
)

// moduleFile is the on-disk shape of a declarative module
type moduleFile struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Parameters  []parameterFile `yaml:"parameters"`
	Contracts   []contractFile  `yaml:"contracts"`
}

type parameterFile struct {
	Name        string    `yaml:"name"`
	Type        string    `yaml:"type"`
	Default     yaml.Node `yaml:"default"`
	Required    bool      `yaml:"required"`
	Description string    `yaml:"description"`
}

type contractFile struct {
	ID       string      `yaml:"id"`
	Contract string      `yaml:"contract"`
	Args     []yaml.Node `yaml:"args"`
	After    []string    `yaml:"after"`
}

// Parse reads one YAML module document. source is recorded on the definition.
func Parse(data []byte, source string) (*domain.ModuleDefinition, error) {
	var file moduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &domain.InvalidModuleError{Module: source, Reason: fmt.Sprintf("invalid YAML: %v", err)}
	}

	if strings.TrimSpace(file.Name) == "" {
		return nil, &domain.InvalidModuleError{Module: source, Reason: "module name is required"}
	}

	params := make([]domain.ParameterSpec, 0, len(file.Parameters))
	for _, p := range file.Parameters {
		spec := domain.ParameterSpec{
			Name:        p.Name,
			Type:        domain.ParameterType(strings.ToLower(p.Type)),
			Required:    p.Required,
			Description: p.Description,
		}
		if p.Default.Kind != 0 && p.Default.ShortTag() != "!!null" {
			if p.Default.Kind != yaml.ScalarNode {
				return nil, &domain.InvalidModuleError{
					Module: file.Name,
					Reason: fmt.Sprintf("default of parameter %s must be a scalar", p.Name),
				}
			}
			spec.Default = p.Default.Value
		}
		params = append(params, spec)
	}

	decls := make([]domain.ContractDecl, 0, len(file.Contracts))
	for i, c := range file.Contracts {
		decl := domain.ContractDecl{
			ID:           c.ID,
			ContractName: c.Contract,
			After:        c.After,
		}
		if decl.ID == "" {
			decl.ID = decl.ContractName
		}
		if decl.ContractName == "" {
			return nil, &domain.InvalidModuleError{
				Module: file.Name,
				Reason: fmt.Sprintf("contracts[%d] has no contract name", i),
			}
		}
		for j := range c.Args {
			arg, err := parseArg(&c.Args[j])
			if err != nil {
				return nil, &domain.InvalidModuleError{
					Module: file.Name,
					Reason: fmt.Sprintf("%s argument %d: %v", decl.ID, j, err),
				}
			}
			decl.Args = append(decl.Args, arg)
		}
		decls = append(decls, decl)
	}

	return &domain.ModuleDefinition{
		Name:        file.Name,
		Description: file.Description,
		Parameters:  params,
		Source:      source,
		Build: func(m *domain.ModuleBuilder) {
			for _, decl := range decls {
				m.Declare(decl)
			}
		},
	}, nil
}

// parseArg accepts "${param.name}", "${ID.address}", a plain scalar whose type
// is inferred, or a {type, value} mapping for an explicitly typed literal.
func parseArg(node *yaml.Node) (domain.Arg, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		raw := node.Value
		if m := paramRefPattern.FindStringSubmatch(raw); m != nil {
			return domain.ParamArg(m[1]), nil
		}
		if m := futureRefPattern.FindStringSubmatch(raw); m != nil {
			return domain.FutureArg(m[1]), nil
		}
		if strings.HasPrefix(raw, "${") {
			return domain.Arg{}, fmt.Errorf("unrecognized reference %q", raw)
		}
		return domain.LiteralArg(domain.InferValue(raw)), nil

	case yaml.MappingNode:
		var typed struct {
			Type  string `yaml:"type"`
			Value string `yaml:"value"`
		}
		if err := node.Decode(&typed); err != nil {
			return domain.Arg{}, err
		}
		v, err := domain.ParseValue(domain.ParameterType(strings.ToLower(typed.Type)), typed.Value)
		if err != nil {
			return domain.Arg{}, err
		}
		return domain.LiteralArg(v), nil

	default:
		return domain.Arg{}, fmt.Errorf("argument must be a scalar or a {type, value} mapping")
	}
}
