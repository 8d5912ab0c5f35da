// SPDX-License-Identifier: MPL-2.0

// Package fspath centralizes the path conventions the digest pipeline relies
// on: one canonical identity per file on disk, one display form per record,
// and one resolution rule for references read out of manifests. Keeping the
// conversions here means the discovery and rendering layers never disagree
// about what "the same file" means.
package fspath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NormalizeKey converts an absolute path to its canonical identity form:
// cleaned, forward-slash separated, lower-cased. Two spellings of the same
// on-disk file (case variants, redundant separators, dot segments) normalize
// to the same key. The input must already be absolute; NormalizeKey does not
// consult the filesystem.
func NormalizeKey(abs string) string {
	return strings.ToLower(filepath.ToSlash(filepath.Clean(abs)))
}

// Abs resolves p against the current working directory and cleans it.
func Abs(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return abs, nil
}

// Resolve interprets ref relative to base unless ref is already absolute.
// The result is cleaned but not normalized; callers derive the identity key
// separately via NormalizeKey.
func Resolve(base, ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Join(base, ref)
}

// FromManifest converts a path as written inside a solution or project
// manifest (conventionally backslash-separated, but forward slashes occur in
// the wild) to the native separator of the current platform.
func FromManifest(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}

// DisplayRel derives the human-facing form of abs: relative to root with
// forward slashes. Paths that cannot be expressed under root (separate
// volume, or escaping upward) fall back to the absolute path so the caller
// always gets something printable.
func DisplayRel(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(abs)
	}
	return strings.TrimPrefix(filepath.ToSlash(rel), "./")
}

// ExtLower returns the extension of p, lower-cased, including the leading
// dot. Paths without an extension yield "".
func ExtLower(p string) string {
	return strings.ToLower(filepath.Ext(p))
}
