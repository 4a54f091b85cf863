package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/ignis/internal/usecase"
	"gopkg.in/yaml.v3"
)

// PlanWriterAdapter writes deployment plans as JSON, or YAML for .yaml/.yml paths
type PlanWriterAdapter struct{}

// NewPlanWriterAdapter creates a new plan writer
func NewPlanWriterAdapter() *PlanWriterAdapter {
	return &PlanWriterAdapter{}
}

// WritePlan writes plan to path, creating parent directories
func (w *PlanWriterAdapter) WritePlan(plan *usecase.DeploymentPlan, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(plan)
	default:
		data, err = json.MarshalIndent(plan, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}

	return nil
}

var _ usecase.PlanWriter = (*PlanWriterAdapter)(nil)
