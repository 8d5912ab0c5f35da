// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// globalConfig caches the loaded configuration for the process lifetime.
	globalConfig *Config

	// configPath records where the cached configuration was loaded from
	// ("" when defaults were used).
	configPath string

	// lastLoadErr stores the most recent Load() failure so Get() callers
	// can surface it later instead of silently running on defaults.
	lastLoadErr error

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride forces loading from a specific config file.
	// Set from the --config flag before any Load() call.
	configFilePathOverride string
)

// Load returns the cached configuration, loading it on first use.
// Loading failures are returned to the caller and nothing is cached,
// so a later call can retry after the user fixes the file.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, resolvedPath, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	configPath = resolvedPath
	return cfg, nil
}

// Get returns the configuration, falling back to defaults when loading fails.
// The load error, if any, is stored and retrievable via LastLoadError() so the
// CLI can warn the user that defaults are in effect.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		lastLoadErr = err
		return DefaultConfig()
	}
	lastLoadErr = nil
	return cfg
}

// LastLoadError returns the error from the most recent failed load via Get(),
// or nil when the last load succeeded.
func LastLoadError() error {
	return lastLoadErr
}

// ConfigFilePath returns the path the cached configuration was loaded from.
// Returns "" when no config file was found (defaults in effect) or when
// nothing has been loaded yet.
func ConfigFilePath() string {
	return configPath
}

// ResetCache clears the cached configuration but preserves test overrides.
// The next Load() call re-reads from disk.
func ResetCache() {
	globalConfig = nil
	configPath = ""
	lastLoadErr = nil
}

// Reset clears the cache and all overrides. Call from test cleanup to
// restore defaults.
func Reset() {
	ResetCache()
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride forces the next Load() to read the given file.
// Wired to the --config flag; the file must exist or loading fails.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
