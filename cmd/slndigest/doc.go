// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for slndigest.
//
// This package implements the Cobra command hierarchy for the slndigest CLI,
// including the root command, the generate pipeline command, and the
// configuration subcommands.
package cmd
