// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for validating CUE configuration files.
//
// The config package parses its CUE file manually (it needs to decode into a map
// for Viper merging rather than into a struct), so this package only carries the
// pieces that parsing flow shares with other CUE consumers: error formatting with
// JSON-path prefixes and the file size guard.
package cueutil
