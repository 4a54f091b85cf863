package parameters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trebuchet-org/ignis/internal/usecase"
	"gopkg.in/yaml.v3"
)

// FileLoader reads parameters files laid out as { "<Module>": { "<param>": <value> } }
type FileLoader struct{}

// NewFileLoader creates a new parameters file loader
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads a .json, .yaml or .yml parameters file
func (l *FileLoader) Load(path string) (map[string]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported parameters file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseJSON parses a JSON parameters document. Numbers keep their exact text
// so uint256 values beyond float64 precision survive.
func ParseJSON(data []byte) (map[string]map[string]string, error) {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse parameters JSON: %w", err)
	}

	result := make(map[string]map[string]string, len(raw))
	for module, params := range raw {
		values := make(map[string]string, len(params))
		for name, msg := range params {
			dec := json.NewDecoder(bytes.NewReader(msg))
			dec.UseNumber()

			var v interface{}
			if err := dec.Decode(&v); err != nil {
				return nil, fmt.Errorf("parameter %s.%s: %w", module, name, err)
			}

			switch val := v.(type) {
			case string:
				values[name] = val
			case json.Number:
				values[name] = val.String()
			case bool:
				values[name] = strconv.FormatBool(val)
			default:
				return nil, fmt.Errorf("parameter %s.%s: value must be a string, number or boolean", module, name)
			}
		}
		result[module] = values
	}

	return result, nil
}

// ParseYAML parses a YAML parameters document
func ParseYAML(data []byte) (map[string]map[string]string, error) {
	var raw map[string]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse parameters YAML: %w", err)
	}

	result := make(map[string]map[string]string, len(raw))
	for module, params := range raw {
		values := make(map[string]string, len(params))
		for name, node := range params {
			if node.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("parameter %s.%s: value must be a scalar", module, name)
			}
			// null leaves the parameter to its default
			if node.ShortTag() == "!!null" {
				continue
			}
			values[name] = node.Value
		}
		result[module] = values
	}

	return result, nil
}

var _ usecase.ParametersFileLoader = (*FileLoader)(nil)
