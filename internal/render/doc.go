// SPDX-License-Identifier: MPL-2.0

// Package render assembles the discovery record set into the final Markdown
// document: header, table of contents, and one fenced section per record.
package render
