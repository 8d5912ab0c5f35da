// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"github.com/charmbracelet/glamour"

	"slndigest/internal/config"
)

// PreviewOptions configures the digest preview.
type PreviewOptions struct {
	// Content is the Markdown document to render.
	Content string
	// Scheme selects the glamour style; auto probes the terminal background.
	Scheme config.ColorScheme
	// Width is the word wrap width (0 for no wrap).
	Width int
}

// Preview renders a Markdown document for terminal display.
func Preview(opts PreviewOptions) (string, error) {
	rendererOpts := []glamour.TermRendererOption{styleOption(opts.Scheme)}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return "", err
	}

	return renderer.Render(opts.Content)
}

// styleOption maps a color scheme to a glamour renderer option.
func styleOption(scheme config.ColorScheme) glamour.TermRendererOption {
	switch scheme {
	case config.ColorSchemeDark:
		return glamour.WithStandardStyle("dark")
	case config.ColorSchemeLight:
		return glamour.WithStandardStyle("light")
	default:
		return glamour.WithAutoStyle()
	}
}
