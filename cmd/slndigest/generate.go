// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"slndigest/internal/config"
	"slndigest/internal/discovery"
	"slndigest/internal/issue"
	"slndigest/internal/tui"
)

// newGenerateCommand creates the `slndigest generate` command, the digest
// pipeline entry point.
func newGenerateCommand(app *App) *cobra.Command {
	var (
		outputFlag  string
		previewFlag bool
		tocFlag     bool
	)

	genCmd := &cobra.Command{
		Use:   "generate <solution> [output]",
		Short: "Generate a consolidated Markdown digest from a solution manifest",
		Long: `Generate a consolidated Markdown digest from a solution manifest.

The solution manifest is parsed for project references; each referenced
project contributes its manifest, its declared files, and everything a
walk of its directory finds. Text files are embedded verbatim in fenced
code blocks, binary files are summarized as metadata, and the result is
written as a single Markdown document.

The output path defaults to the configured name (solution-digest.md) in
the current directory; pass a second argument or --output to override.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()

			outputPath := string(cfg.Output.DefaultName)
			if len(args) > 1 {
				outputPath = args[1]
			}
			if cmd.Flags().Changed("output") {
				outputPath = outputFlag
			}

			toc := cfg.Output.TOC
			if cmd.Flags().Changed("toc") {
				toc = tocFlag
			}

			req := GenerateRequest{
				SolutionPath: args[0],
				OutputPath:   outputPath,
				TOC:          toc,
				Verbose:      verbose,
				ConfigPath:   cfgFile,
			}

			result, diags, err := app.Digest.Generate(cmd.Context(), req)
			app.Diagnostics.Render(cmd.Context(), diags, app.stderr)
			if err != nil {
				var svcErr *ServiceError
				if errors.As(err, &svcErr) {
					renderServiceError(app.stderr, svcErr)
				}
				return &ExitError{Code: 1, Err: err}
			}

			fmt.Fprintf(app.stdout, "%s Digest written to %s\n", SuccessStyle.Render("✓"), result.OutputPath)
			summary := fmt.Sprintf("%d files (%d text, %d binary), %d projects skipped, %d warnings, in %s",
				result.FileCount, result.ContentCount, result.BinaryCount,
				result.SkippedProjects, countWarnings(diags), result.Duration)
			fmt.Fprintln(app.stdout, SubtitleStyle.Render(summary))

			if previewFlag {
				rendered, previewErr := tui.Preview(tui.PreviewOptions{
					Content: result.Document,
					Scheme:  cfg.UI.ColorScheme,
					Width:   cfg.Output.PreviewWidth,
				})
				if previewErr != nil {
					// The digest is on disk; a preview failure does not fail the run.
					renderServiceError(app.stderr, newServiceError(previewErr, issue.PreviewRenderFailedId, ""))
					return nil
				}
				fmt.Fprint(app.stdout, rendered)
			}

			return nil
		},
	}

	genCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "digest output path (default from config)")
	genCmd.Flags().BoolVar(&previewFlag, "preview", false, "render the digest to the terminal after writing")
	genCmd.Flags().BoolVar(&tocFlag, "toc", true, "include a table of contents")

	return genCmd
}

// countWarnings counts warning-severity diagnostics for the run summary.
func countWarnings(diags []discovery.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity == discovery.SeverityWarning {
			n++
		}
	}
	return n
}
