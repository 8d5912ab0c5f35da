// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"slndigest/internal/config"
	"slndigest/internal/issue"
)

// newConfigCommand creates the `slndigest config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage slndigest configuration",
		Long: `Manage slndigest configuration.

Configuration is stored in:
  - Linux: ~/.config/slndigest/config.cue
  - macOS: ~/Library/Application Support/slndigest/config.cue
  - Windows: %APPDATA%\slndigest\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), app, args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(app.stderr, rendered)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := KeyStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, headerStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	// Derive the config file path from the standard config directory since the
	// provider does not cache resolved paths.
	cfgDir, dirErr := config.ConfigDir()
	if dirErr == nil && fileExistsCheck(configFilePathIn(cfgDir)) {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), configFilePathIn(cfgDir))
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("rules"))
	fmt.Fprintf(app.stdout, "  project_extensions: %s\n", valueStyle.Render(joinSorted(cfg.Rules.ProjectExtensions)))
	fmt.Fprintf(app.stdout, "  text_extensions: %s\n", valueStyle.Render(joinSorted(cfg.Rules.TextExtensions)))
	fmt.Fprintf(app.stdout, "  binary_extensions: %s\n", valueStyle.Render(joinSorted(cfg.Rules.BinaryExtensions)))
	fmt.Fprintf(app.stdout, "  excluded_dirs: %s\n", valueStyle.Render(joinSorted(cfg.Rules.ExcludedDirs)))
	fmt.Fprintf(app.stdout, "  skip_patterns: %s\n", valueStyle.Render(joinSorted(cfg.Rules.SkipPatterns)))
	fmt.Fprintf(app.stdout, "  respect_gitignore: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Rules.RespectGitignore)))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(app.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(app.stdout, "  default_name: %s\n", valueStyle.Render(cfg.Output.DefaultName.String()))
	fmt.Fprintf(app.stdout, "  toc: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Output.TOC)))
	fmt.Fprintf(app.stdout, "  preview_width: %s\n", valueStyle.Render(strconv.Itoa(cfg.Output.PreviewWidth)))

	return nil
}

func initConfig(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), configFilePathIn(cfgDir))
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", configFilePathIn(cfgDir))

	return nil
}

func setConfigValue(ctx context.Context, app *App, key, value string) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	switch key {
	case "rules.respect_gitignore":
		cfg.Rules.RespectGitignore = value == "true" || value == "1"

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	case "ui.color_scheme":
		scheme := config.ColorScheme(value)
		if valid, errs := scheme.IsValid(); !valid {
			return errs[0]
		}
		cfg.UI.ColorScheme = scheme

	case "output.default_name":
		name := config.OutputFileName(value)
		if valid, errs := name.IsValid(); !valid {
			return errs[0]
		}
		cfg.Output.DefaultName = name

	case "output.toc":
		cfg.Output.TOC = value == "true" || value == "1"

	case "output.preview_width":
		width, convErr := strconv.Atoi(value)
		if convErr != nil {
			return fmt.Errorf("invalid output.preview_width: %q is not a number", value)
		}
		if width < 0 {
			return &config.InvalidPreviewWidthError{Value: width}
		}
		cfg.Output.PreviewWidth = width

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: rules.respect_gitignore, ui.verbose, ui.color_scheme, output.default_name, output.toc, output.preview_width", key)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

// configFilePathIn joins the config file name onto a config directory.
func configFilePathIn(cfgDir string) string {
	return filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
}

// joinSorted renders a string-valued list as a sorted space-separated set.
func joinSorted[T ~string](values []T) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	slices.Sort(out)
	return strings.Join(out, " ")
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
