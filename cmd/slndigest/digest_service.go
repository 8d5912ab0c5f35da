// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"slndigest/internal/discovery"
	"slndigest/internal/issue"
	"slndigest/internal/render"
	"slndigest/internal/testutil"
)

// digestService implements DigestService over the discovery engine and the
// Markdown renderer. It loads configuration through the injected provider on
// every request, so a config edit between runs takes effect without restart.
type digestService struct {
	config ConfigProvider
	clock  testutil.Clock
}

func newDigestService(provider ConfigProvider, clock testutil.Clock) *digestService {
	return &digestService{config: provider, clock: clock}
}

// Generate runs discovery over the solution manifest, renders the digest, and
// writes it to the requested output path.
func (s *digestService) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, []discovery.Diagnostic, error) {
	start := s.clock.Now()

	cfg, diagnostics := loadConfigWithFallback(ctx, s.config, req.ConfigPath)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "discovery"})
	if req.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	engine := discovery.New(cfg, discovery.WithLogger(logger))
	set, runDiags, err := engine.Run(ctx, req.SolutionPath)
	diagnostics = append(diagnostics, runDiags...)
	if err != nil {
		return GenerateResult{}, diagnostics, wrapRunError(err)
	}

	doc := render.Document{
		SolutionName: solutionName(req.SolutionPath),
		GeneratedAt:  s.clock.Now(),
		Records:      set.Records(),
		TOC:          req.TOC,
	}
	content := render.Render(doc)

	if err := render.Write(req.OutputPath, content); err != nil {
		return GenerateResult{}, diagnostics, newServiceError(err, issue.OutputWriteFailedId, "")
	}

	return GenerateResult{
		OutputPath:      req.OutputPath,
		Document:        content,
		FileCount:       set.FileCount(),
		ContentCount:    set.ContentCount(),
		BinaryCount:     set.BinaryCount(),
		SkippedProjects: countByCode(diagnostics, discovery.CodeProjectManifestMissing),
		Duration:        s.clock.Since(start),
	}, diagnostics, nil
}

// wrapRunError attaches the matching issue catalog entry to a fatal discovery
// error. Cancellation passes through untouched.
func wrapRunError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, fs.ErrNotExist) {
		return newServiceError(err, issue.SolutionNotFoundId, "")
	}
	return newServiceError(err, issue.SolutionParseErrorId, "")
}

// solutionName derives the digest title from the manifest file name.
func solutionName(solutionPath string) string {
	base := filepath.Base(solutionPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// countByCode counts diagnostics carrying the given code.
func countByCode(diags []discovery.Diagnostic, code discovery.DiagnosticCode) int {
	n := 0
	for _, d := range diags {
		if d.Code == code {
			n++
		}
	}
	return n
}
