// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"slndigest/internal/classify"
	"slndigest/internal/config"
	"slndigest/pkg/fspath"
	"slndigest/pkg/msbuild"
	"slndigest/pkg/sln"
)

type (
	// Engine orchestrates a discovery run: it parses the solution manifest,
	// then per project inserts a section marker, registers the manifest and
	// its declared files, and walks the project directory. Every insertion
	// goes through the same classify-and-dedup registration, so a file
	// reachable through several paths yields exactly one record.
	Engine struct {
		cfg        *config.Config
		classifier *classify.Classifier
		// projectExts identifies which solution references are sub-project
		// manifests worth processing.
		projectExts []string
		logger      *log.Logger
	}

	// Option configures an Engine.
	Option func(*Engine)
)

// WithLogger sets the logger used for per-project progress. The engine logs
// at debug level only; the default logger stays silent unless the caller
// lowers its level.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine over the given configuration.
func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:         cfg,
		classifier:  classify.New(ruleSetFromConfig(cfg)),
		projectExts: extStrings(cfg.Rules.ProjectExtensions),
		logger:      log.NewWithOptions(os.Stderr, log.Options{Prefix: "discovery"}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes one discovery pass over the solution manifest at solutionPath.
// The returned record set is insertion-ordered and starts with the solution
// manifest itself. Diagnostics carry every recoverable problem (missing
// projects, unparseable manifests, unreadable files or directories); the only
// fatal condition is a missing or unreadable solution manifest.
func (e *Engine) Run(ctx context.Context, solutionPath string) (*RecordSet, []Diagnostic, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	absSolution, err := fspath.Abs(solutionPath)
	if err != nil {
		return nil, nil, err
	}
	if _, err := os.Stat(absSolution); err != nil {
		return nil, nil, fmt.Errorf("solution manifest not found at %s: %w", absSolution, err)
	}

	root := filepath.Dir(absSolution)
	set := NewRecordSet()
	diagnostics := make([]Diagnostic, 0)

	w, walkerDiags := newWalker(e.classifier, root, e.cfg.Rules.RespectGitignore)
	diagnostics = append(diagnostics, walkerDiags...)

	// The solution manifest is always the first record of a successful run.
	diagnostics = e.registerPath(set, root, absSolution, diagnostics)

	refs, err := sln.Parse(absSolution, e.projectExts)
	if err != nil {
		return nil, nil, err
	}
	e.logger.Debug("parsed solution manifest", "path", absSolution, "projects", len(refs))

	for _, ref := range refs {
		// The marker is inserted before any existence check so the output
		// keeps a section for every declared project, present or not.
		set.Add(&Record{
			Key:         MarkerKey(ref.Label),
			DisplayPath: ref.Label,
			Kind:        KindSectionMarker,
			Payload:     ref.Label,
		})

		absManifest := fspath.Resolve(root, ref.Path)
		if _, statErr := os.Stat(absManifest); statErr != nil {
			diagnostics = append(diagnostics, NewDiagnosticWithCause(
				SeverityWarning,
				CodeProjectManifestMissing,
				fmt.Sprintf("project manifest %s not found on disk, skipping project", ref.Label),
				absManifest,
				statErr,
			))
			continue
		}

		diagnostics = e.processProject(set, w, root, absManifest, diagnostics)
	}

	e.logger.Debug("discovery complete",
		"records", set.Len(),
		"files", set.FileCount(),
		"diagnostics", len(diagnostics))
	return set, diagnostics, nil
}

// processProject registers one project: the manifest itself, the files it
// declares, then everything the directory walk finds. A manifest that fails
// to parse contributes an empty declared list; the walk still runs.
func (e *Engine) processProject(set *RecordSet, w *walker, root, absManifest string, diagnostics []Diagnostic) []Diagnostic {
	e.logger.Debug("processing project", "manifest", absManifest)
	diagnostics = e.registerPath(set, root, absManifest, diagnostics)

	declared, err := msbuild.Parse(absManifest)
	if err != nil {
		diagnostics = append(diagnostics, NewDiagnosticWithCause(
			SeverityWarning,
			CodeProjectManifestParseFailed,
			fmt.Sprintf("failed to parse project manifest %s, no declared files collected: %v", absManifest, err),
			absManifest,
			err,
		))
	}

	projectDir := filepath.Dir(absManifest)
	for _, rel := range declared {
		// Declared paths resolve against the project's own directory, not
		// the workspace root.
		abs := fspath.Resolve(projectDir, rel)
		if _, statErr := os.Stat(abs); statErr != nil {
			// Declared-but-absent files are routine (wildcards, generated
			// outputs) and stay silent.
			continue
		}
		diagnostics = e.registerPath(set, root, abs, diagnostics)
	}

	walkDiags := w.walk(projectDir, func(absPath string) {
		diagnostics = e.registerPath(set, root, absPath, diagnostics)
	})
	return append(diagnostics, walkDiags...)
}

// registerPath classifies absPath and inserts the resulting record unless the
// key is already present. Text files are read whole (invalid UTF-8 bytes are
// replaced); binary files are stat'd only. A read or stat failure drops the
// record with a warning diagnostic.
func (e *Engine) registerPath(set *RecordSet, root, absPath string, diagnostics []Diagnostic) []Diagnostic {
	key := fspath.NormalizeKey(absPath)
	if set.Has(key) {
		return diagnostics
	}

	switch e.classifier.Classify(absPath) {
	case classify.ClassText:
		data, err := os.ReadFile(absPath)
		if err != nil {
			return append(diagnostics, NewDiagnosticWithCause(
				SeverityWarning,
				CodeFileReadFailed,
				fmt.Sprintf("failed to read %s, dropping record: %v", absPath, err),
				absPath,
				err,
			))
		}
		set.Add(&Record{
			Key:         key,
			DisplayPath: fspath.DisplayRel(root, absPath),
			Kind:        KindContent,
			Payload:     strings.ToValidUTF8(string(data), "�"),
		})
	case classify.ClassBinary:
		info, err := os.Stat(absPath)
		if err != nil {
			return append(diagnostics, NewDiagnosticWithCause(
				SeverityWarning,
				CodeFileReadFailed,
				fmt.Sprintf("failed to stat %s, dropping record: %v", absPath, err),
				absPath,
				err,
			))
		}
		set.Add(&Record{
			Key:         key,
			DisplayPath: fspath.DisplayRel(root, absPath),
			Kind:        KindBinaryMetadata,
			Payload:     binarySummary(filepath.Base(absPath), info),
		})
	case classify.ClassSkip:
		// Dropped without a record or diagnostic.
	}
	return diagnostics
}

// ruleSetFromConfig converts the typed configuration tables into the
// classifier's plain rule set. Defined locally to avoid coupling classify to
// internal/config.
func ruleSetFromConfig(cfg *config.Config) classify.RuleSet {
	return classify.RuleSet{
		TextExtensions:   extStrings(cfg.Rules.TextExtensions),
		BinaryExtensions: extStrings(cfg.Rules.BinaryExtensions),
		ExcludedDirs:     dirStrings(cfg.Rules.ExcludedDirs),
		SkipPatterns:     patternStrings(cfg.Rules.SkipPatterns),
	}
}

func extStrings(values []config.FileExtension) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func dirStrings(values []config.DirName) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func patternStrings(values []config.SkipPattern) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
