// SPDX-License-Identifier: MPL-2.0

package render

import "slndigest/pkg/fspath"

// languageTags maps file extensions to fenced-block language tags. Extensions
// outside the table get an untagged fence.
var languageTags = map[string]string{
	".cs":      "csharp",
	".vb":      "vb",
	".fs":      "fsharp",
	".csproj":  "xml",
	".vbproj":  "xml",
	".fsproj":  "xml",
	".props":   "xml",
	".targets": "xml",
	".config":  "xml",
	".xml":     "xml",
	".xsd":     "xml",
	".xaml":    "xml",
	".resx":    "xml",
	".json":    "json",
	".js":      "javascript",
	".ts":      "typescript",
	".html":    "html",
	".htm":     "html",
	".cshtml":  "html",
	".aspx":    "html",
	".ascx":    "html",
	".asax":    "html",
	".razor":   "razor",
	".md":      "markdown",
	".sql":     "sql",
	".yml":     "yaml",
	".yaml":    "yaml",
	".css":     "css",
	".ps1":     "powershell",
	".sh":      "bash",
}

// languageTag returns the fence tag for a path, or "" when the extension has
// no mapping.
func languageTag(path string) string {
	return languageTags[fspath.ExtLower(path)]
}
