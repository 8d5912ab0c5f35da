// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slndigest/internal/config"
)

// newTestEngine creates an Engine over the default configuration. Tests that
// need custom rules mutate a DefaultConfig copy and call New directly.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(config.DefaultConfig())
}

// writeTestFile writes content to path, creating parent directories.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// writeTestSolution writes a solution manifest declaring the given project
// references (backslash-separated, as conventionally written) and returns its
// path.
func writeTestSolution(t *testing.T, dir string, refs ...string) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("Microsoft Visual Studio Solution File, Format Version 12.00\n")
	sb.WriteString("# Visual Studio Version 17\n")
	for i, ref := range refs {
		name := strings.TrimSuffix(ref, filepath.Ext(ref))
		if idx := strings.LastIndexAny(name, `\/`); idx >= 0 {
			name = name[idx+1:]
		}
		fmt.Fprintf(&sb, "Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"%s\", \"%s\", \"{00000000-0000-0000-0000-%012d}\"\n", name, ref, i)
		sb.WriteString("EndProject\n")
	}
	sb.WriteString("Global\nEndGlobal\n")

	path := filepath.Join(dir, "Sample.sln")
	writeTestFile(t, path, sb.String())
	return path
}

// writeTestProject writes a project manifest at path declaring the given
// include paths (backslash-separated, relative to the project directory).
func writeTestProject(t *testing.T, path string, includes ...string) {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("<Project Sdk=\"Microsoft.NET.Sdk\">\n")
	sb.WriteString("  <PropertyGroup>\n    <TargetFramework>net8.0</TargetFramework>\n  </PropertyGroup>\n")
	sb.WriteString("  <ItemGroup>\n")
	for _, inc := range includes {
		fmt.Fprintf(&sb, "    <Compile Include=\"%s\" />\n", inc)
	}
	sb.WriteString("  </ItemGroup>\n")
	sb.WriteString("</Project>\n")
	writeTestFile(t, path, sb.String())
}

// diagnosticsWithCode filters diagnostics down to one code.
func diagnosticsWithCode(diags []Diagnostic, code DiagnosticCode) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}
