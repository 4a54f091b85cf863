package modulefile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trebuchet-org/ignis/internal/domain"
)

// Registrar is the part of the module registry the loader needs
type Registrar interface {
	Register(name string, def *domain.ModuleDefinition) error
}

// Loader reads every module file in a directory
type Loader struct {
	dir string
	log *slog.Logger
}

// NewLoader creates a loader for dir
func NewLoader(dir string, log *slog.Logger) *Loader {
	return &Loader{dir: dir, log: log}
}

// LoadDir parses all *.yaml and *.yml files in dir, sorted by file name.
// A missing directory yields no modules.
func LoadDir(dir string) ([]*domain.ModuleDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read modules directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	defs := make([]*domain.ModuleDefinition, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read module file %s: %w", path, err)
		}
		def, err := Parse(data, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// LoadInto registers every module found in the loader's directory
func (l *Loader) LoadInto(reg Registrar) error {
	defs, err := LoadDir(l.dir)
	if err != nil {
		return err
	}

	for _, def := range defs {
		if err := reg.Register(def.Name, def); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(def.Source), err)
		}
		l.log.Debug("registered module file", "module", def.Name, "file", def.Source)
	}

	return nil
}
