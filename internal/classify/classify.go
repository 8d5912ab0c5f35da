// SPDX-License-Identifier: MPL-2.0

// Package classify decides how a filesystem path participates in the digest:
// read as text, summarized as binary metadata, or skipped entirely. The
// decision is a pure function over per-run rule tables; no filesystem access
// happens here.
package classify

import (
	"strings"

	"slndigest/pkg/fspath"
)

const (
	// ClassText marks a file whose content is read and embedded.
	ClassText Class = "text"
	// ClassBinary marks a file summarized by metadata only, never read.
	ClassBinary Class = "binary"
	// ClassSkip marks a file the digest ignores completely.
	ClassSkip Class = "skip"
)

type (
	// Class is the classification outcome for one path.
	Class string

	// RuleSet carries the per-run classification tables. All matching is
	// case-insensitive. Constructed once from configuration and read-only
	// afterwards.
	RuleSet struct {
		// TextExtensions lists extensions (leading dot) read as text.
		TextExtensions []string
		// BinaryExtensions lists extensions summarized as binary.
		BinaryExtensions []string
		// ExcludedDirs lists directory base names pruned during the walk.
		ExcludedDirs []string
		// SkipPatterns lists substrings that force a Skip when found in the
		// normalized absolute path, in order, before any extension lookup.
		SkipPatterns []string
	}

	// Classifier evaluates paths against one RuleSet.
	Classifier struct {
		textExts     map[string]bool
		binaryExts   map[string]bool
		excludedDirs map[string]bool
		skipPatterns []string
	}
)

// New builds a Classifier from rules. Lookup tables are lower-cased once
// here so per-path evaluation stays allocation-light.
func New(rules RuleSet) *Classifier {
	return &Classifier{
		textExts:     lowerSet(rules.TextExtensions),
		binaryExts:   lowerSet(rules.BinaryExtensions),
		excludedDirs: lowerSet(rules.ExcludedDirs),
		skipPatterns: lowerAll(rules.SkipPatterns),
	}
}

// Classify decides the class of the file at absPath. Skip patterns are
// tested against the normalized path first and win over both extension
// sets; an extension in neither set also yields Skip.
func (c *Classifier) Classify(absPath string) Class {
	normalized := fspath.NormalizeKey(absPath)
	for _, pattern := range c.skipPatterns {
		if strings.Contains(normalized, pattern) {
			return ClassSkip
		}
	}

	switch ext := fspath.ExtLower(absPath); {
	case c.textExts[ext]:
		return ClassText
	case c.binaryExts[ext]:
		return ClassBinary
	default:
		return ClassSkip
	}
}

// IsExcludedDir reports whether a directory base name is pruned from the
// walk. The match is exact, not substring: "bin" excludes bin/ but not
// binaries/.
func (c *Classifier) IsExcludedDir(name string) bool {
	return c.excludedDirs[strings.ToLower(name)]
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
