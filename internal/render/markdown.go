// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"slndigest/internal/discovery"
)

// slugReplacer strips the characters that never survive into a heading
// anchor: spaces, dots, slashes, backslashes, backticks and hash marks.
var slugReplacer = strings.NewReplacer(
	" ", "", ".", "", "/", "", `\`, "", "`", "", "#", "",
)

// Document is everything the renderer needs for one output file. Records
// come straight from a discovery run, in insertion order.
type Document struct {
	// SolutionName is the solution manifest's base name without extension.
	SolutionName string
	// GeneratedAt stamps the document header.
	GeneratedAt time.Time
	// Records is the ordered record sequence to present.
	Records []*discovery.Record
	// TOC controls whether a table of contents section is emitted.
	TOC bool
}

// Render assembles the full Markdown document.
func Render(doc Document) string {
	var sb strings.Builder

	writeHeader(&sb, doc)
	if doc.TOC {
		writeTOC(&sb, doc.Records)
	}
	writeBody(&sb, doc.Records)

	return sb.String()
}

// Write stores a rendered document at path.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing digest to %s: %w", path, err)
	}
	return nil
}

func writeHeader(sb *strings.Builder, doc Document) {
	text, binary := 0, 0
	for _, r := range doc.Records {
		switch r.Kind {
		case discovery.KindContent:
			text++
		case discovery.KindBinaryMetadata:
			binary++
		}
	}

	fmt.Fprintf(sb, "# Solution Digest: %s\n\n", doc.SolutionName)
	fmt.Fprintf(sb, "> Generated by slndigest on %s\n", doc.GeneratedAt.Format(time.DateTime))
	fmt.Fprintf(sb, "> Files: %d (%d text, %d binary)\n\n", text+binary, text, binary)
}

// writeTOC emits the contents listing. Section markers become their own
// entries; file records nest under the preceding marker. Records before the
// first marker (the solution manifest itself) list at top level.
func writeTOC(sb *strings.Builder, records []*discovery.Record) {
	sb.WriteString("## Table of Contents\n\n")

	indent := ""
	for _, r := range records {
		switch r.Kind {
		case discovery.KindSectionMarker:
			fmt.Fprintf(sb, "- [%s](#%s)\n", r.Payload, slug(r.Payload))
			indent = "  "
		default:
			fmt.Fprintf(sb, "%s- [%s](#%s)\n", indent, r.DisplayPath, slug(r.DisplayPath))
		}
	}
	sb.WriteString("\n")
}

func writeBody(sb *strings.Builder, records []*discovery.Record) {
	for _, r := range records {
		switch r.Kind {
		case discovery.KindSectionMarker:
			fmt.Fprintf(sb, "# %s\n\n", r.Payload)
		case discovery.KindContent:
			fmt.Fprintf(sb, "## %s\n\n", r.DisplayPath)
			writeFenced(sb, languageTag(r.DisplayPath), r.Payload)
		case discovery.KindBinaryMetadata:
			fmt.Fprintf(sb, "## %s\n\n", r.DisplayPath)
			writeFenced(sb, "", r.Payload)
		}
	}
}

// writeFenced wraps payload in a fenced block. The delimiter grows past three
// backticks whenever the payload itself contains a backtick run that would
// terminate the fence early.
func writeFenced(sb *strings.Builder, tag, payload string) {
	fence := fenceFor(payload)
	sb.WriteString(fence)
	sb.WriteString(tag)
	sb.WriteString("\n")
	sb.WriteString(payload)
	if !strings.HasSuffix(payload, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(fence)
	sb.WriteString("\n\n")
}

// fenceFor picks a delimiter one backtick longer than the longest backtick
// run in the payload, never shorter than the standard three.
func fenceFor(payload string) string {
	longest, run := 0, 0
	for _, r := range payload {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	width := 3
	if longest >= 3 {
		width = longest + 1
	}
	return strings.Repeat("`", width)
}

// slug derives the anchor for a heading: lower-cased with spaces, dots,
// slashes, backslashes, backticks and hash marks removed.
func slug(s string) string {
	return slugReplacer.Replace(strings.ToLower(s))
}
