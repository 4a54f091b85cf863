package config

// Build metadata, set with -ldflags "-X github.com/trebuchet-org/ignis/internal/config.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
