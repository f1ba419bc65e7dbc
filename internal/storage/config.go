package storage

import (
	"os"
	"strconv"
)

// DefaultRemoteConfig returns the remote API settings used when no
// environment overrides are set.
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		BaseURL:   "https://api.weekboard.app",
		TimeoutMs: 10000,
	}
}

// LoadRemoteConfig reads remote API configuration from environment variables,
// falling back to defaults for any unset values.
func LoadRemoteConfig() RemoteConfig {
	cfg := DefaultRemoteConfig()

	if v := os.Getenv("WEEKBOARD_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("WEEKBOARD_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
