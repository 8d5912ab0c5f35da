// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
)

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"
)

const (
	// CodeConfigLoadFailed indicates the configuration could not be loaded
	// and defaults were used instead.
	CodeConfigLoadFailed DiagnosticCode = "config_load_failed"
	// CodeProjectManifestMissing indicates a project declared in the solution
	// does not exist on disk; the whole project is skipped.
	CodeProjectManifestMissing DiagnosticCode = "project_manifest_missing"
	// CodeProjectManifestParseFailed indicates a project manifest exists but
	// could not be parsed; its declared file list is treated as empty.
	CodeProjectManifestParseFailed DiagnosticCode = "project_manifest_parse_failed"
	// CodeFileReadFailed indicates a classified candidate could not be read
	// or stat'd; the record is dropped.
	CodeFileReadFailed DiagnosticCode = "file_read_failed"
	// CodeDirListFailed indicates a directory could not be listed during the
	// walk; its subtree is skipped.
	CodeDirListFailed DiagnosticCode = "dir_list_failed"
	// CodeGitignoreLoadFailed indicates gitignore matching was requested but
	// the workspace .gitignore could not be compiled; the walk proceeds
	// without it.
	CodeGitignoreLoadFailed DiagnosticCode = "gitignore_load_failed"
)

var (
	// ErrInvalidSeverity indicates a severity outside the known set.
	ErrInvalidSeverity = errors.New("invalid diagnostic severity")
	// ErrInvalidDiagnosticCode indicates a diagnostic code outside the known set.
	ErrInvalidDiagnosticCode = errors.New("invalid diagnostic code")
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// DiagnosticCode is a machine-readable identifier for a diagnostic class.
	DiagnosticCode string

	// Diagnostic represents a structured discovery diagnostic that is returned
	// to callers (rather than written to stderr) for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code identifies the diagnostic class (e.g., "project_manifest_missing").
		Code DiagnosticCode
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)

// String returns the severity as a plain string.
func (s Severity) String() string {
	return string(s)
}

// IsValid checks whether the severity is one of the known levels.
func (s Severity) IsValid() (bool, []error) {
	switch s {
	case SeverityWarning, SeverityError:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q (must be %q or %q)",
			ErrInvalidSeverity, string(s), SeverityWarning, SeverityError)}
	}
}

// String returns the diagnostic code as a plain string.
func (c DiagnosticCode) String() string {
	return string(c)
}

// IsValid checks whether the code is one of the known diagnostic classes.
func (c DiagnosticCode) IsValid() (bool, []error) {
	switch c {
	case CodeConfigLoadFailed, CodeProjectManifestMissing,
		CodeProjectManifestParseFailed, CodeFileReadFailed,
		CodeDirListFailed, CodeGitignoreLoadFailed:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidDiagnosticCode, string(c))}
	}
}

// NewDiagnostic creates a diagnostic with no associated path or cause.
func NewDiagnostic(severity Severity, code DiagnosticCode, message string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message}
}

// NewDiagnosticWithPath creates a diagnostic associated with a file path.
func NewDiagnosticWithPath(severity Severity, code DiagnosticCode, message, path string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message, Path: path}
}

// NewDiagnosticWithCause creates a diagnostic carrying the underlying error
// for programmatic inspection.
func NewDiagnosticWithCause(severity Severity, code DiagnosticCode, message, path string, cause error) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message, Path: path, Cause: cause}
}
