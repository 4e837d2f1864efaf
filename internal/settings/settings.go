// Package settings handles persistent wpconf tool settings.
//
// Settings cover tool behavior only — which file name to search for, how
// long the connectivity check may take — never WordPress configuration
// values; those live in wp-config.php itself. Settings are flat key-value
// pairs: dotted keys like "check.timeout" are literal strings, not nested
// paths.
package settings

import "os"

// Store provides key-value access to wpconf settings.
type Store interface {
	// Get returns the value for key and whether it was found.
	Get(key string) (string, bool)

	// Set writes key=value to the store and persists to disk.
	Set(key, value string) error

	// SetInMemory writes key=value without persisting. Used for runtime
	// overrides (defaults, env vars) that must not land in the file.
	SetInMemory(key, value string)

	// Unset removes key from the store and persists to disk.
	Unset(key string) error

	// All returns a copy of all key-value pairs.
	All() map[string]string
}

// Known setting keys.
const (
	KeyConfigName   = "config.name"   // file name searched for on disk
	KeyCheckTimeout = "check.timeout" // connectivity check timeout, in seconds
)

// Environment variable names for wpconf.
const (
	EnvConfigPath = "WPCONF_PATH" // path to wp-config.php or its directory
	EnvJSON       = "WPCONF_JSON" // enable JSON output ("1" or "true")
)

// DefaultValues returns the default settings map for the known keys.
func DefaultValues() map[string]string {
	return map[string]string{
		KeyConfigName:   "wp-config.php",
		KeyCheckTimeout: "10",
	}
}

// ApplyDefaults fills any missing known keys in s with their defaults,
// in memory only, so a plain run never creates the settings file.
func ApplyDefaults(s Store) {
	all := s.All()
	for k, v := range DefaultValues() {
		if _, exists := all[k]; !exists {
			s.SetInMemory(k, v)
		}
	}
}

// JSONFromEnv reports whether WPCONF_JSON asks for JSON output.
func JSONFromEnv() bool {
	v := os.Getenv(EnvJSON)
	return v == "1" || v == "true"
}
