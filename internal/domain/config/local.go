package config

// LocalConfig holds per-checkout defaults persisted in .ignis/config.local.json
type LocalConfig struct {
	Network    string `json:"network,omitempty"`
	Parameters string `json:"parameters,omitempty"` // default parameters file for plan
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork    ConfigKey = "network"
	ConfigKeyParameters ConfigKey = "parameters"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyParameters,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key {
			return true
		}
	}
	return false
}

// Get returns the value stored under key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyNetwork:
		return c.Network
	case ConfigKeyParameters:
		return c.Parameters
	}
	return ""
}

// Set stores value under key
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyNetwork:
		c.Network = value
	case ConfigKeyParameters:
		c.Parameters = value
	}
}
