package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/domain/config"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectModule selects a module from a list
func (s *SelectorAdapter) SelectModule(ctx context.Context, modules []*domain.ModuleDefinition) (*domain.ModuleDefinition, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(modules) == 0 {
		return nil, fmt.Errorf("no modules provided for selection")
	}

	if len(modules) == 1 {
		return modules[0], nil
	}

	options := formatModuleOptions(modules)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             "Select a module to plan",
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return modules[index], nil
}

// SelectParameters lets the user pick which parameters to override
func (s *SelectorAdapter) SelectParameters(ctx context.Context, specs []domain.ParameterSpec) ([]domain.ParameterSpec, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(specs) == 0 {
		return nil, nil
	}

	labels := make([]string, len(specs))
	for i, spec := range specs {
		labels[i] = formatParameterOption(spec)
	}

	indices, err := MultiSelect(labels, "Select parameters to override")
	if err != nil {
		return nil, err
	}

	selected := make([]domain.ParameterSpec, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, specs[i])
	}
	return selected, nil
}

// PromptValue asks for a parameter value, validating it against the parameter's type
func (s *SelectorAdapter) PromptValue(ctx context.Context, spec domain.ParameterSpec) (string, error) {
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive input not available in non-interactive mode")
	}

	prompt := promptui.Prompt{
		Label:   fmt.Sprintf("%s (%s)", spec.Name, spec.Type),
		Default: spec.Default,
		Validate: func(input string) error {
			_, err := domain.ParseValue(spec.Type, input)
			return err
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return value, nil
}

// formatModuleOptions creates display strings for module selection
func formatModuleOptions(modules []*domain.ModuleDefinition) []string {
	options := make([]string, len(modules))
	for i, def := range modules {
		name := color.New(color.FgWhite, color.Bold).Sprint(def.Name)
		source := color.New(color.FgBlue).Sprint(def.Source)
		if def.Description != "" {
			options[i] = fmt.Sprintf("%s %s (%s)", name, color.New(color.Faint).Sprint(def.Description), source)
		} else {
			options[i] = fmt.Sprintf("%s (%s)", name, source)
		}
	}
	return options
}

func formatParameterOption(spec domain.ParameterSpec) string {
	current := spec.Default
	if current == "" {
		current = "<zero>"
	}
	return fmt.Sprintf("%s %s = %s",
		color.New(color.FgWhite, color.Bold).Sprint(spec.Name),
		color.New(color.FgYellow).Sprintf("(%s)", spec.Type),
		current)
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		matches := fuzzy.Find(input, []string{item})
		return len(matches) > 0
	}
}

var _ usecase.InteractiveSelector = (*SelectorAdapter)(nil)
