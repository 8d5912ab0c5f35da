// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"slndigest/internal/config"
	"slndigest/pkg/fspath"
)

func TestRun_SolutionManifestIsFirstRecord(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"))
	writeTestFile(t, filepath.Join(ws, "App", "Program.cs"), "class Program {}")
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	set, diags, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("Run() returned diagnostics: %v", diags)
	}

	records := set.Records()
	if len(records) == 0 {
		t.Fatal("Run() returned no records")
	}
	first := records[0]
	if first.Kind != KindContent {
		t.Errorf("first record kind = %q, want %q", first.Kind, KindContent)
	}
	if first.DisplayPath != "Sample.sln" {
		t.Errorf("first record display path = %q, want %q", first.DisplayPath, "Sample.sln")
	}
	if !strings.Contains(first.Payload, "Project(") {
		t.Error("first record payload should carry the solution manifest text")
	}
}

func TestRun_MissingSolutionManifestIsFatal(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "Gone.sln")
	set, diags, err := newTestEngine(t).Run(context.Background(), missing)
	if err == nil {
		t.Fatal("Run() on missing solution should return error")
	}
	if set != nil || diags != nil {
		t.Errorf("Run() on missing solution returned set=%v diags=%v, want nil", set, diags)
	}
	if !strings.Contains(err.Error(), "solution manifest not found") {
		t.Errorf("error = %v, want mention of missing solution manifest", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	slnPath := writeTestSolution(t, ws)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestEngine(t).Run(ctx, slnPath)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() with canceled context returned %v, want context.Canceled", err)
	}
}

func TestRun_EmptySolution(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	slnPath := writeTestSolution(t, ws)

	set, diags, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("Run() returned diagnostics: %v", diags)
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (just the solution manifest)", set.Len())
	}
}

func TestRun_DedupAcrossDeclarationAndWalk(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	content := "class Program { static void Main() {} }\n"
	writeTestFile(t, filepath.Join(ws, "App", "Program.cs"), content)
	// Program.cs is reachable twice: declared in the manifest AND found by
	// the walk over App/.
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"), `Program.cs`)
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	set, _, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	var matches []*Record
	for _, r := range set.Records() {
		if strings.HasSuffix(r.DisplayPath, "Program.cs") {
			matches = append(matches, r)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("found %d records for Program.cs, want exactly 1", len(matches))
	}
	if matches[0].Payload != content {
		t.Errorf("record payload does not equal a direct read:\ngot  %q\nwant %q", matches[0].Payload, content)
	}
}

func TestRun_MarkersInSolutionOrderWithMissingProject(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestProject(t, filepath.Join(ws, "First", "First.csproj"))
	writeTestFile(t, filepath.Join(ws, "First", "A.cs"), "class A {}")
	// Second is declared in the solution but never written to disk.
	writeTestProject(t, filepath.Join(ws, "Third", "Third.csproj"))
	writeTestFile(t, filepath.Join(ws, "Third", "C.cs"), "class C {}")
	slnPath := writeTestSolution(t, ws,
		`First\First.csproj`, `Second\Second.csproj`, `Third\Third.csproj`)

	set, diags, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	var markers []string
	for _, r := range set.Records() {
		if r.Kind == KindSectionMarker {
			markers = append(markers, r.Payload)
		}
	}
	want := []string{`First\First.csproj`, `Second\Second.csproj`, `Third\Third.csproj`}
	if len(markers) != len(want) {
		t.Fatalf("got %d markers %v, want %d", len(markers), markers, len(want))
	}
	for i := range want {
		if markers[i] != want[i] {
			t.Errorf("markers[%d] = %q, want %q", i, markers[i], want[i])
		}
	}

	// The missing project costs exactly one warning; both present projects
	// still contribute their records.
	missing := diagnosticsWithCode(diags, CodeProjectManifestMissing)
	if len(missing) != 1 {
		t.Fatalf("got %d missing-project diagnostics, want 1: %v", len(missing), diags)
	}
	if missing[0].Severity != SeverityWarning {
		t.Errorf("severity = %q, want %q", missing[0].Severity, SeverityWarning)
	}
	for _, suffix := range []string{"A.cs", "C.cs"} {
		found := false
		for _, r := range set.Records() {
			if strings.HasSuffix(r.DisplayPath, suffix) {
				found = true
			}
		}
		if !found {
			t.Errorf("no record for %s; valid projects should survive a missing sibling", suffix)
		}
	}
}

func TestRun_SkipPatternBeatsTextExtension(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestProject(t, filepath.Join(ws, "Web", "Web.csproj"))
	writeTestFile(t, filepath.Join(ws, "Web", "site.js"), "alert(1)")
	writeTestFile(t, filepath.Join(ws, "Web", "site.min.js"), "alert(1)")
	slnPath := writeTestSolution(t, ws, `Web\Web.csproj`)

	set, _, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	for _, r := range set.Records() {
		if strings.HasSuffix(r.DisplayPath, "site.min.js") {
			t.Errorf("skip pattern should drop site.min.js, got record %+v", r)
		}
	}
	found := false
	for _, r := range set.Records() {
		if strings.HasSuffix(r.DisplayPath, "site.js") && r.Kind == KindContent {
			found = true
		}
	}
	if !found {
		t.Error("site.js should register as content")
	}
}

func TestRun_ExcludedDirsNeverRegistered(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"))
	writeTestFile(t, filepath.Join(ws, "App", "Program.cs"), "class Program {}")
	writeTestFile(t, filepath.Join(ws, "App", "bin", "Debug", "notes.txt"), "build output")
	writeTestFile(t, filepath.Join(ws, "App", "obj", "gen.cs"), "generated")
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	set, _, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	for _, r := range set.Records() {
		if r.Kind == KindSectionMarker {
			continue
		}
		for _, segment := range strings.Split(r.DisplayPath, "/") {
			if segment == "bin" || segment == "obj" {
				t.Errorf("record path %q contains excluded dir segment", r.DisplayPath)
			}
		}
	}
}

func TestRun_DeclaredMissingFileIsSilent(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"), `Ghost.cs`, `Program.cs`)
	writeTestFile(t, filepath.Join(ws, "App", "Program.cs"), "class Program {}")
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	set, diags, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("declared-but-absent file should not produce diagnostics, got: %v", diags)
	}
	for _, r := range set.Records() {
		if strings.HasSuffix(r.DisplayPath, "Ghost.cs") {
			t.Errorf("absent declared file produced a record: %+v", r)
		}
	}
}

func TestRun_MalformedProjectManifest(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestFile(t, filepath.Join(ws, "App", "App.csproj"), "<Project><ItemGroup>")
	writeTestFile(t, filepath.Join(ws, "App", "Program.cs"), "class Program {}")
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	set, diags, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	parseFailures := diagnosticsWithCode(diags, CodeProjectManifestParseFailed)
	if len(parseFailures) != 1 {
		t.Fatalf("got %d parse diagnostics, want 1: %v", len(parseFailures), diags)
	}

	// The manifest file itself still registers as content, and the walk
	// still collects the project's files.
	manifestSeen, walkSeen := false, false
	for _, r := range set.Records() {
		if strings.HasSuffix(r.DisplayPath, "App.csproj") && r.Kind == KindContent {
			manifestSeen = true
		}
		if strings.HasSuffix(r.DisplayPath, "Program.cs") && r.Kind == KindContent {
			walkSeen = true
		}
	}
	if !manifestSeen {
		t.Error("malformed manifest should still register as a content record")
	}
	if !walkSeen {
		t.Error("walk records should survive a manifest parse failure")
	}
}

func TestRun_BinaryFilesGetMetadataRecords(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"))
	writeTestFile(t, filepath.Join(ws, "App", "logo.png"), strings.Repeat("x", 1536))
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	set, _, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	var binary *Record
	for _, r := range set.Records() {
		if r.Kind == KindBinaryMetadata {
			binary = r
		}
	}
	if binary == nil {
		t.Fatal("no binary metadata record produced")
	}
	if !strings.HasSuffix(binary.DisplayPath, "logo.png") {
		t.Errorf("binary record display path = %q, want logo.png", binary.DisplayPath)
	}
	for _, want := range []string{"Name: logo.png", "Size: 1.5 KB", "Type: PNG file"} {
		if !strings.Contains(binary.Payload, want) {
			t.Errorf("binary payload missing %q:\n%s", want, binary.Payload)
		}
	}
}

func TestRun_DuplicateProjectReferences(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"))
	writeTestFile(t, filepath.Join(ws, "App", "Program.cs"), "class Program {}")
	slnPath := writeTestSolution(t, ws, `App\App.csproj`, `App\App.csproj`)

	set, diags, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("duplicate references should not produce diagnostics, got: %v", diags)
	}

	markerCount, programCount := 0, 0
	for _, r := range set.Records() {
		if r.Kind == KindSectionMarker {
			markerCount++
		}
		if strings.HasSuffix(r.DisplayPath, "Program.cs") {
			programCount++
		}
	}
	if markerCount != 1 {
		t.Errorf("got %d markers for a twice-declared project, want 1", markerCount)
	}
	if programCount != 1 {
		t.Errorf("got %d records for Program.cs, want 1", programCount)
	}
}

func TestRun_RespectGitignore(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	writeTestFile(t, filepath.Join(ws, ".gitignore"), "*.generated.cs\n")
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"))
	writeTestFile(t, filepath.Join(ws, "App", "Program.cs"), "class Program {}")
	writeTestFile(t, filepath.Join(ws, "App", "Model.generated.cs"), "generated")
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	hasGenerated := func(set *RecordSet) bool {
		for _, r := range set.Records() {
			if strings.HasSuffix(r.DisplayPath, "Model.generated.cs") {
				return true
			}
		}
		return false
	}

	// Default: gitignore is not consulted.
	set, _, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !hasGenerated(set) {
		t.Error("with gitignore disabled the generated file should register")
	}

	cfg := config.DefaultConfig()
	cfg.Rules.RespectGitignore = true
	set, _, err = New(cfg).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if hasGenerated(set) {
		t.Error("with gitignore enabled the generated file should be skipped")
	}
}

func TestRun_DeclaredFilesResolveAgainstProjectDir(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	// Shared.cs lives outside the project directory; the declaration reaches
	// it with a parent-relative path.
	writeTestFile(t, filepath.Join(ws, "Shared", "Shared.cs"), "class Shared {}")
	writeTestProject(t, filepath.Join(ws, "App", "App.csproj"), `..\Shared\Shared.cs`)
	slnPath := writeTestSolution(t, ws, `App\App.csproj`)

	set, _, err := newTestEngine(t).Run(context.Background(), slnPath)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	key := fspath.NormalizeKey(filepath.Join(ws, "Shared", "Shared.cs"))
	if !set.Has(key) {
		t.Error("declaration relative to the project dir should resolve and register")
	}
}
