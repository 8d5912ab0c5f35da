// SPDX-License-Identifier: MPL-2.0

// Package sln parses solution manifests: the line-oriented workspace
// descriptors whose Project(...) records enumerate sub-project manifests.
//
// The parser is deliberately forgiving. Solution manifests accumulate
// records this tool has no use for (solution folders, project types outside
// the recognized set) and occasionally malformed lines; all of those are
// dropped without a diagnostic. Only failure to read the manifest itself is
// an error, because without it there is no workspace to describe.
package sln

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"slndigest/pkg/fspath"
)

// declToken opens every project-declaration record.
const declToken = "Project("

// ProjectReference is one sub-project declaration from a solution manifest.
type ProjectReference struct {
	// Label is the manifest path exactly as written in the declaration,
	// quotes stripped. Section headings and marker identities use this form.
	Label string

	// Path is Label converted to native separators, ready to resolve
	// against the workspace root.
	Path string
}

// Parse reads the solution manifest at path and returns its project
// declarations in file order. Duplicate declarations are preserved;
// dedup happens later at the record level.
func Parse(path string, manifestExts []string) ([]ProjectReference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading solution manifest at %s: %w", path, err)
	}
	return ParseBytes(data, manifestExts), nil
}

// ParseBytes parses solution manifest content from bytes. manifestExts is
// the set of extensions (with leading dot, any case) that identify a
// declaration as a sub-project manifest worth processing.
func ParseBytes(data []byte, manifestExts []string) []ProjectReference {
	exts := make(map[string]bool, len(manifestExts))
	for _, e := range manifestExts {
		exts[strings.ToLower(e)] = true
	}

	var refs []ProjectReference
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, declToken) {
			continue
		}
		label, ok := declarationPath(line)
		if !ok {
			continue
		}
		if !exts[fspath.ExtLower(label)] {
			continue
		}
		refs = append(refs, ProjectReference{
			Label: label,
			Path:  fspath.FromManifest(label),
		})
	}
	return refs
}

// declarationPath extracts the manifest-path field from a declaration line.
// The line splits on commas into fields; the second non-empty field holds
// the path. Lines that do not produce at least two fields are malformed and
// rejected.
func declarationPath(line string) (string, bool) {
	var fields []string
	for _, f := range strings.Split(line, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) < 2 {
		return "", false
	}
	return unquote(fields[1]), true
}

// unquote strips one enclosing pair of double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
