// SPDX-License-Identifier: MPL-2.0

// Package tui renders generated digests for terminal display.
//
// The single entry point is Preview, which runs the Markdown document
// through glamour with the configured color scheme and word wrap width.
package tui
