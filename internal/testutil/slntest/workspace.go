// SPDX-License-Identifier: MPL-2.0

package slntest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slndigest/internal/testutil"
)

type (
	// ProjectOption configures a test project fixture.
	// Apply options to customize beyond the minimal defaults.
	ProjectOption func(*projectSpec)

	projectSpec struct {
		includes []string
		files    map[string]string
		binaries map[string][]byte
		manifest string
	}
)

// Workspace is a solution workspace fixture rooted in a temporary directory.
// Projects added with AddProject are recorded in order; Solution then writes
// a manifest declaring each one.
type Workspace struct {
	// Root is the directory that will hold the solution manifest.
	Root string

	t    testing.TB
	refs []string
}

// NewWorkspace creates an empty workspace fixture under t.TempDir().
func NewWorkspace(t testing.TB) *Workspace {
	t.Helper()
	return &Workspace{Root: t.TempDir(), t: t}
}

// AddProject writes a project directory with its manifest and records the
// reference for the solution manifest. ref is backslash-separated, relative
// to the workspace root. By default the manifest declares no includes.
//
// Usage:
//
//	ws.AddProject(`App\App.csproj`)
//	ws.AddProject(`App\App.csproj`,
//	    slntest.WithFile("Program.cs", "class Program {}"),
//	    slntest.WithIncludes("Program.cs"),
//	)
func (w *Workspace) AddProject(ref string, opts ...ProjectOption) string {
	w.t.Helper()
	spec := &projectSpec{
		files:    make(map[string]string),
		binaries: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(spec)
	}

	manifestPath := filepath.Join(w.Root, nativePath(ref))
	projectDir := filepath.Dir(manifestPath)
	testutil.MustMkdirAll(w.t, projectDir, 0o755)

	manifest := spec.manifest
	if manifest == "" {
		manifest = projectXML(spec.includes)
	}
	w.write(manifestPath, []byte(manifest))
	for rel, content := range spec.files {
		w.write(filepath.Join(projectDir, nativePath(rel)), []byte(content))
	}
	for rel, data := range spec.binaries {
		w.write(filepath.Join(projectDir, nativePath(rel)), data)
	}

	w.refs = append(w.refs, ref)
	return projectDir
}

// AddMissingProject records a solution reference without writing the project,
// for exercising skipped-project handling.
func (w *Workspace) AddMissingProject(ref string) {
	w.refs = append(w.refs, ref)
}

// AddRootFile writes a file relative to the workspace root and returns its path.
func (w *Workspace) AddRootFile(rel, content string) string {
	w.t.Helper()
	path := filepath.Join(w.Root, nativePath(rel))
	w.write(path, []byte(content))
	return path
}

// Solution writes the solution manifest declaring every recorded project and
// returns its path.
func (w *Workspace) Solution(name string) string {
	w.t.Helper()
	var sb strings.Builder
	sb.WriteString("Microsoft Visual Studio Solution File, Format Version 12.00\n")
	sb.WriteString("# Visual Studio Version 17\n")
	for i, ref := range w.refs {
		fmt.Fprintf(&sb, "Project(\"{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}\") = \"%s\", \"%s\", \"{00000000-0000-0000-0000-%012d}\"\n", projectName(ref), ref, i)
		sb.WriteString("EndProject\n")
	}
	sb.WriteString("Global\nEndGlobal\n")

	path := filepath.Join(w.Root, name)
	w.write(path, []byte(sb.String()))
	return path
}

// --- Project Options ---

// WithIncludes declares include paths in the project manifest
// (backslash-separated, relative to the project directory).
func WithIncludes(includes ...string) ProjectOption {
	return func(s *projectSpec) {
		s.includes = append(s.includes, includes...)
	}
}

// WithFile adds a text file relative to the project directory.
func WithFile(rel, content string) ProjectOption {
	return func(s *projectSpec) {
		s.files[rel] = content
	}
}

// WithBinaryFile adds a binary file relative to the project directory.
func WithBinaryFile(rel string, data []byte) ProjectOption {
	return func(s *projectSpec) {
		s.binaries[rel] = data
	}
}

// WithManifest replaces the generated project manifest with raw content,
// for exercising malformed-manifest handling.
func WithManifest(content string) ProjectOption {
	return func(s *projectSpec) {
		s.manifest = content
	}
}

func (w *Workspace) write(path string, data []byte) {
	w.t.Helper()
	testutil.MustMkdirAll(w.t, filepath.Dir(path), 0o755)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		w.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// nativePath converts a backslash-separated reference to the host separator.
func nativePath(ref string) string {
	return filepath.FromSlash(strings.ReplaceAll(ref, `\`, "/"))
}

func projectName(ref string) string {
	name := strings.TrimSuffix(ref, filepath.Ext(ref))
	if idx := strings.LastIndexAny(name, `\/`); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

func projectXML(includes []string) string {
	var sb strings.Builder
	sb.WriteString("<Project Sdk=\"Microsoft.NET.Sdk\">\n")
	sb.WriteString("  <PropertyGroup>\n    <TargetFramework>net8.0</TargetFramework>\n  </PropertyGroup>\n")
	sb.WriteString("  <ItemGroup>\n")
	for _, inc := range includes {
		fmt.Fprintf(&sb, "    <Compile Include=\"%s\" />\n", inc)
	}
	sb.WriteString("  </ItemGroup>\n")
	sb.WriteString("</Project>\n")
	return sb.String()
}
