// SPDX-License-Identifier: MPL-2.0

// Package msbuild parses project manifests of the csproj family: XML
// documents whose ItemGroup elements declare the files a project includes.
//
// Only the include lists are extracted. Build semantics (conditions,
// targets, property evaluation) are out of scope; the declarations are
// treated as plain path references whose existence the caller checks.
package msbuild

import (
	"encoding/xml"
	"fmt"
	"os"

	"slndigest/pkg/fspath"
)

// groupElement is one top-level grouping element of a project manifest.
type groupElement struct {
	Items []itemElement `xml:",any"`
}

// itemElement is any child of a grouping element. Items declare files
// through their Include attribute; children without one (or with an empty
// one) declare nothing.
type itemElement struct {
	Include string `xml:"Include,attr"`
}

// projectDocument maps the manifest root. The root element's own name is
// not checked; any document whose top level carries ItemGroup children
// parses.
type projectDocument struct {
	Groups []groupElement `xml:"ItemGroup"`
}

// Parse reads the project manifest at path and returns the file paths its
// grouping elements declare, in document order, converted to native
// separators. A read or markup failure returns a nil slice and the error;
// callers degrade to directory-walk discovery in that case.
func Parse(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project manifest at %s: %w", path, err)
	}
	paths, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing project manifest at %s: %w", path, err)
	}
	return paths, nil
}

// ParseBytes parses project manifest content from bytes.
func ParseBytes(data []byte) ([]string, error) {
	var doc projectDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var paths []string
	for _, g := range doc.Groups {
		for _, item := range g.Items {
			if item.Include == "" {
				continue
			}
			paths = append(paths, fspath.FromManifest(item.Include))
		}
	}
	return paths, nil
}
