package parameters

import (
	"fmt"
	"strings"
)

// ParseAssignments turns repeated name=value flags into an override map.
// The value may itself contain '='; a name given twice is an error.
func ParseAssignments(assignments []string) (map[string]string, error) {
	values := make(map[string]string, len(assignments))
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", a)
		}
		if _, dup := values[name]; dup {
			return nil, fmt.Errorf("parameter %s given more than once", name)
		}
		values[name] = value
	}
	return values, nil
}
