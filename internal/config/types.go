// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"slndigest/pkg/platform"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidFileExtension is the sentinel error wrapped by InvalidFileExtensionError.
	ErrInvalidFileExtension = errors.New("invalid file extension")
	// ErrInvalidDirName is the sentinel error wrapped by InvalidDirNameError.
	ErrInvalidDirName = errors.New("invalid directory name")
	// ErrInvalidSkipPattern is the sentinel error wrapped by InvalidSkipPatternError.
	ErrInvalidSkipPattern = errors.New("invalid skip pattern")
	// ErrInvalidOutputFileName is the sentinel error wrapped by InvalidOutputFileNameError.
	ErrInvalidOutputFileName = errors.New("invalid output file name")
	// ErrInvalidPreviewWidth is the sentinel error wrapped by InvalidPreviewWidthError.
	ErrInvalidPreviewWidth = errors.New("invalid preview width")
	// ErrInvalidRulesConfig is the sentinel error wrapped by InvalidRulesConfigError.
	ErrInvalidRulesConfig = errors.New("invalid rules config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidOutputConfig is the sentinel error wrapped by InvalidOutputConfigError.
	ErrInvalidOutputConfig = errors.New("invalid output config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// FileExtension represents a file extension used by the classification rules.
	// A valid extension starts with a dot, has at least one character after it,
	// and contains no path separators (e.g. ".cs", ".csproj").
	FileExtension string

	// InvalidFileExtensionError is returned when a FileExtension value does not
	// start with a dot or contains path separators. It wraps ErrInvalidFileExtension
	// for errors.Is() compatibility.
	InvalidFileExtensionError struct {
		Value FileExtension
	}

	// DirName represents a bare directory name matched during the walk.
	// A valid name is non-empty, not whitespace-only, and contains no
	// path separators (names are compared per path component).
	DirName string

	// InvalidDirNameError is returned when a DirName value is empty,
	// whitespace-only, or contains path separators. It wraps ErrInvalidDirName
	// for errors.Is() compatibility.
	InvalidDirNameError struct {
		Value DirName
	}

	// SkipPattern represents a case-insensitive substring matched against
	// normalized file paths. A valid pattern is non-empty and not
	// whitespace-only; slashes are allowed since patterns match whole paths.
	SkipPattern string

	// InvalidSkipPatternError is returned when a SkipPattern value is empty or
	// whitespace-only. It wraps ErrInvalidSkipPattern for errors.Is() compatibility.
	InvalidSkipPatternError struct {
		Value SkipPattern
	}

	// OutputFileName represents the default digest file name.
	// A valid name is non-empty, not whitespace-only, and contains no path
	// separators (the -o flag accepts full paths; the config only names the file).
	OutputFileName string

	// InvalidOutputFileNameError is returned when an OutputFileName value is
	// empty, whitespace-only, or contains path separators. It wraps
	// ErrInvalidOutputFileName for errors.Is() compatibility.
	InvalidOutputFileNameError struct {
		Value OutputFileName
	}

	// InvalidPreviewWidthError is returned when a preview width is negative.
	// It wraps ErrInvalidPreviewWidth for errors.Is() compatibility.
	InvalidPreviewWidthError struct {
		Value int
	}

	// InvalidRulesConfigError is returned when a RulesConfig has invalid fields.
	// It wraps ErrInvalidRulesConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidRulesConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidOutputConfigError is returned when an OutputConfig has invalid fields.
	// It wraps ErrInvalidOutputConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidOutputConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Rules configures file classification and walk exclusions.
		Rules RulesConfig `json:"rules" mapstructure:"rules"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Output configures digest output behavior.
		Output OutputConfig `json:"output" mapstructure:"output"`
	}

	// RulesConfig configures file classification and walk exclusions.
	RulesConfig struct {
		// ProjectExtensions lists manifest extensions recognized as project references.
		ProjectExtensions []FileExtension `json:"project_extensions" mapstructure:"project_extensions"`
		// TextExtensions lists extensions whose files are embedded verbatim.
		TextExtensions []FileExtension `json:"text_extensions" mapstructure:"text_extensions"`
		// BinaryExtensions lists extensions recorded as size-only metadata.
		BinaryExtensions []FileExtension `json:"binary_extensions" mapstructure:"binary_extensions"`
		// ExcludedDirs lists directory names pruned from the walk.
		ExcludedDirs []DirName `json:"excluded_dirs" mapstructure:"excluded_dirs"`
		// SkipPatterns lists path substrings that force a file to be skipped.
		SkipPatterns []SkipPattern `json:"skip_patterns" mapstructure:"skip_patterns"`
		// RespectGitignore additionally filters walked files through .gitignore rules.
		RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// OutputConfig configures digest output behavior.
	OutputConfig struct {
		// DefaultName is the digest file name used when -o is not given.
		DefaultName OutputFileName `json:"default_name" mapstructure:"default_name"`
		// TOC controls whether the digest includes a table of contents.
		TOC bool `json:"toc" mapstructure:"toc"`
		// PreviewWidth is the word wrap width for the terminal preview (0 disables wrapping).
		PreviewWidth int `json:"preview_width" mapstructure:"preview_width"`
	}
)

// DefaultConfig returns the built-in configuration used when no config file exists.
// The rule tables target .NET solutions: project manifests, the usual source and
// asset extensions, and the directories build tooling generates.
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			ProjectExtensions: []FileExtension{".csproj", ".vbproj", ".fsproj"},
			TextExtensions: []FileExtension{
				".sln", ".csproj", ".vbproj", ".fsproj", ".props", ".targets",
				".cs", ".vb", ".fs", ".cshtml", ".razor", ".xaml",
				".aspx", ".ascx", ".asax", ".config", ".json", ".xml", ".xsd",
				".md", ".txt", ".sql", ".js", ".ts", ".html", ".htm",
				".yml", ".yaml",
			},
			BinaryExtensions: []FileExtension{
				".png", ".jpg", ".jpeg", ".gif", ".ico", ".bmp",
				".dll", ".exe", ".pdb", ".zip", ".nupkg", ".snk", ".pfx",
				".ttf", ".woff", ".woff2", ".eot",
				".pdf", ".xls", ".xlsx", ".doc", ".docx",
			},
			ExcludedDirs: []DirName{
				"bin", "obj", "packages", "node_modules",
				".git", ".vs", ".svn", ".hg", ".idea", "testresults",
			},
			SkipPatterns: []SkipPattern{
				".designer.", ".resx", ".min.js", ".min.css",
				"bundle", "jquery", ".css", "license", ".log",
			},
			RespectGitignore: false,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Output: OutputConfig{
			DefaultName:  "solution-digest.md",
			TOC:          true,
			PreviewWidth: 100,
		},
	}
}

// String returns the string representation of the ColorScheme.
func (s ColorScheme) String() string { return string(s) }

// IsValid returns whether the ColorScheme is a recognized value.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q: must be one of 'auto', 'dark', 'light'", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the FileExtension.
func (x FileExtension) String() string { return string(x) }

// IsValid returns whether the FileExtension is valid.
// A valid extension starts with a dot, has at least one character after it,
// and contains no path separators.
func (x FileExtension) IsValid() (bool, []error) {
	s := string(x)
	if len(s) < 2 || !strings.HasPrefix(s, ".") || strings.ContainsAny(s, `/\`) {
		return false, []error{&InvalidFileExtensionError{Value: x}}
	}
	return true, nil
}

// Error implements the error interface for InvalidFileExtensionError.
func (e *InvalidFileExtensionError) Error() string {
	return fmt.Sprintf("invalid file extension %q: must start with a dot and contain no separators", e.Value)
}

// Unwrap returns ErrInvalidFileExtension for errors.Is() compatibility.
func (e *InvalidFileExtensionError) Unwrap() error { return ErrInvalidFileExtension }

// String returns the string representation of the DirName.
func (d DirName) String() string { return string(d) }

// IsValid returns whether the DirName is valid.
// A valid name is non-empty, not whitespace-only, and contains no path separators.
func (d DirName) IsValid() (bool, []error) {
	s := string(d)
	if strings.TrimSpace(s) == "" || strings.ContainsAny(s, `/\`) {
		return false, []error{&InvalidDirNameError{Value: d}}
	}
	return true, nil
}

// Error implements the error interface for InvalidDirNameError.
func (e *InvalidDirNameError) Error() string {
	return fmt.Sprintf("invalid directory name %q: must be a non-empty bare name without separators", e.Value)
}

// Unwrap returns ErrInvalidDirName for errors.Is() compatibility.
func (e *InvalidDirNameError) Unwrap() error { return ErrInvalidDirName }

// String returns the string representation of the SkipPattern.
func (p SkipPattern) String() string { return string(p) }

// IsValid returns whether the SkipPattern is valid.
// A valid pattern is non-empty and not whitespace-only.
func (p SkipPattern) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidSkipPatternError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSkipPatternError.
func (e *InvalidSkipPatternError) Error() string {
	return fmt.Sprintf("invalid skip pattern %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidSkipPattern for errors.Is() compatibility.
func (e *InvalidSkipPatternError) Unwrap() error { return ErrInvalidSkipPattern }

// String returns the string representation of the OutputFileName.
func (n OutputFileName) String() string { return string(n) }

// IsValid returns whether the OutputFileName is valid.
// A valid name is non-empty, not whitespace-only, contains no path separators,
// and is not a Windows reserved device name (CON, PRN, NUL, ...).
func (n OutputFileName) IsValid() (bool, []error) {
	s := string(n)
	if strings.TrimSpace(s) == "" || strings.ContainsAny(s, `/\`) || platform.IsWindowsReservedName(s) {
		return false, []error{&InvalidOutputFileNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputFileNameError.
func (e *InvalidOutputFileNameError) Error() string {
	return fmt.Sprintf("invalid output file name %q: must be a non-empty bare name without separators or reserved device names", e.Value)
}

// Unwrap returns ErrInvalidOutputFileName for errors.Is() compatibility.
func (e *InvalidOutputFileNameError) Unwrap() error { return ErrInvalidOutputFileName }

// Error implements the error interface for InvalidPreviewWidthError.
func (e *InvalidPreviewWidthError) Error() string {
	return fmt.Sprintf("invalid preview width %d: must be zero or positive", e.Value)
}

// Unwrap returns ErrInvalidPreviewWidth for errors.Is() compatibility.
func (e *InvalidPreviewWidthError) Unwrap() error { return ErrInvalidPreviewWidth }

// IsValid returns whether the RulesConfig has valid fields.
// It validates every extension, directory name, and pattern entry;
// RespectGitignore is a bool and needs no validation.
func (c RulesConfig) IsValid() (bool, []error) {
	var errs []error
	for _, ext := range c.ProjectExtensions {
		if valid, fieldErrs := ext.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	for _, ext := range c.TextExtensions {
		if valid, fieldErrs := ext.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	for _, ext := range c.BinaryExtensions {
		if valid, fieldErrs := ext.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	for _, dir := range c.ExcludedDirs {
		if valid, fieldErrs := dir.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	for _, pat := range c.SkipPatterns {
		if valid, fieldErrs := pat.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidRulesConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidRulesConfigError.
func (e *InvalidRulesConfigError) Error() string {
	return fmt.Sprintf("invalid rules config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidRulesConfig for errors.Is() compatibility.
func (e *InvalidRulesConfigError) Unwrap() error { return ErrInvalidRulesConfig }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the OutputConfig has valid fields.
// It delegates to DefaultName.IsValid() and checks that PreviewWidth
// is not negative; TOC is a bool and needs no validation.
func (c OutputConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.DefaultName.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.PreviewWidth < 0 {
		errs = append(errs, &InvalidPreviewWidthError{Value: c.PreviewWidth})
	}
	if len(errs) > 0 {
		return false, []error{&InvalidOutputConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputConfigError.
func (e *InvalidOutputConfigError) Error() string {
	return fmt.Sprintf("invalid output config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidOutputConfig for errors.Is() compatibility.
func (e *InvalidOutputConfigError) Unwrap() error { return ErrInvalidOutputConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Rules.IsValid(), UI.IsValid(), and Output.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Rules.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
