// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"slndigest/internal/config"
	"slndigest/internal/discovery"
	"slndigest/internal/testutil"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: Cobra command handlers receive an App reference and
	// delegate business logic through its service interfaces (Config, Digest).
	App struct {
		Config      ConfigProvider
		Digest      DigestService
		Diagnostics DiagnosticRenderer
		stdout      io.Writer
		stderr      io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests can supply mock implementations
	// to isolate specific service behavior.
	Dependencies struct {
		Config      ConfigProvider
		Digest      DigestService
		Diagnostics DiagnosticRenderer
		Clock       testutil.Clock
		Stdout      io.Writer
		Stderr      io.Writer
	}

	// GenerateRequest captures all digest generation inputs as an immutable value.
	// It is the request-scoped data contract between the CLI layer (Cobra handlers)
	// and the DigestService implementation.
	GenerateRequest struct {
		// SolutionPath is the solution manifest path as given on the command line.
		SolutionPath string
		// OutputPath is the resolved digest destination.
		OutputPath string
		// TOC controls whether the digest includes a table of contents.
		TOC bool
		// Verbose enables per-step progress logging.
		Verbose bool
		// ConfigPath is the explicit --config flag value.
		ConfigPath string
	}

	// GenerateResult contains digest generation outcomes.
	GenerateResult struct {
		// OutputPath is where the digest was written.
		OutputPath string
		// Document is the generated Markdown, kept for the terminal preview.
		Document string
		// FileCount is the number of file records in the digest (text plus binary).
		FileCount int
		// ContentCount is the number of text file records.
		ContentCount int
		// BinaryCount is the number of binary metadata records.
		BinaryCount int
		// SkippedProjects is the number of declared projects whose manifest was missing.
		SkippedProjects int
		// Duration is the wall time of the run.
		Duration time.Duration
	}

	// DigestService runs the digest pipeline and returns user-renderable
	// diagnostics. Implementations must not write diagnostics directly to
	// stdout/stderr; diagnostics are returned as structured data for the CLI
	// layer to render.
	DigestService interface {
		Generate(ctx context.Context, req GenerateRequest) (GenerateResult, []discovery.Diagnostic, error)
	}

	// DiagnosticRenderer renders structured diagnostics.
	DiagnosticRenderer interface {
		Render(ctx context.Context, diags []discovery.Diagnostic, stderr io.Writer)
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	defaultDiagnosticRenderer struct{}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Clock == nil {
		deps.Clock = testutil.RealClock{}
	}
	if deps.Diagnostics == nil {
		deps.Diagnostics = &defaultDiagnosticRenderer{}
	}
	if deps.Digest == nil {
		deps.Digest = newDigestService(deps.Config, deps.Clock)
	}

	return &App{
		Config:      deps.Config,
		Digest:      deps.Digest,
		Diagnostics: deps.Diagnostics,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
	}, nil
}

// loadConfigWithFallback loads configuration via the provider. On failure it
// returns defaults with a diagnostic so callers stay operational.
//
// Diagnostic severity depends on the failure mode:
//   - Explicit --config path: always SeverityError (user-specified file must work).
//   - Default path with existing but malformed file: SeverityError (syntax errors
//     in a file the user created should not be silently downgraded to a warning).
//   - Default path with missing config dir or similar infrastructure error:
//     SeverityWarning (common on fresh installs, defaults are appropriate).
func loadConfigWithFallback(ctx context.Context, provider ConfigProvider, configPath string) (*config.Config, []discovery.Diagnostic) {
	cfg, err := provider.Load(ctx, config.LoadOptions{ConfigFilePath: configPath})
	if err == nil {
		return cfg, nil
	}

	// When the user explicitly specified a config path, do not silently fall back
	// to defaults; surface the error as a diagnostic so downstream callers can
	// decide whether to abort.
	if configPath != "" {
		return config.DefaultConfig(), []discovery.Diagnostic{{
			Severity: discovery.SeverityError,
			Code:     discovery.CodeConfigLoadFailed,
			Message:  fmt.Sprintf("failed to load config from %s: %v", configPath, err),
			Path:     configPath,
			Cause:    err,
		}}
	}

	// Default config path: differentiate "file exists but is broken" (syntax error,
	// schema violation) from "cannot determine config dir" (missing HOME, etc.).
	// The config loader only returns errors for existing files; missing files silently
	// return defaults. So if we got an error here, a config file likely exists but
	// is malformed, so use SeverityError to surface it clearly.
	severity := discovery.SeverityError
	if errors.Is(err, os.ErrNotExist) {
		severity = discovery.SeverityWarning
	}

	return config.DefaultConfig(), []discovery.Diagnostic{{
		Severity: severity,
		Code:     discovery.CodeConfigLoadFailed,
		Message:  fmt.Sprintf("failed to load config, using defaults: %v", err),
		Cause:    err,
	}}
}

// Render writes structured diagnostics to stderr with lipgloss styling.
func (r *defaultDiagnosticRenderer) Render(_ context.Context, diags []discovery.Diagnostic, stderr io.Writer) {
	for _, diag := range diags {
		prefix := WarningStyle.Render("warning")
		if diag.Severity == discovery.SeverityError {
			prefix = ErrorStyle.Render("error")
		}

		if diag.Path != "" {
			_, _ = fmt.Fprintf(stderr, "%s: %s (%s)\n", prefix, diag.Message, diag.Path)
			continue
		}

		_, _ = fmt.Fprintf(stderr, "%s: %s\n", prefix, diag.Message)
	}
}
