// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/slndigest/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/slndigest/config.cue on macOS, %APPDATA%\slndigest\config.cue
// on Windows). The package provides type-safe configuration access and covers the
// classification rule tables, walk exclusions, UI settings, and output behavior.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
