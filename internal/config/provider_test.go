// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	if p == nil {
		t.Fatal("NewProvider() returned nil")
	}
}

func TestProvider_Load_Defaults(t *testing.T) {
	p := NewProvider()

	tmpDir := t.TempDir()
	cfg, err := p.Load(context.Background(), LoadOptions{
		ConfigDirPath: filepath.Join(tmpDir, AppName),
	})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Output.DefaultName != defaults.Output.DefaultName {
		t.Errorf("DefaultName = %s, want %s", cfg.Output.DefaultName, defaults.Output.DefaultName)
	}
}

func TestProvider_Load_ExplicitFile(t *testing.T) {
	p := NewProvider()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "custom.cue")
	if err := os.WriteFile(cfgPath, []byte(`ui: {verbose: true}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := p.Load(context.Background(), LoadOptions{ConfigFilePath: cfgPath})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !cfg.UI.Verbose {
		t.Error("expected verbose to be true from config file")
	}
}

func TestProvider_Load_MissingExplicitFile(t *testing.T) {
	p := NewProvider()

	tmpDir := t.TempDir()
	_, err := p.Load(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(tmpDir, "missing.cue"),
	})
	if err == nil {
		t.Fatal("expected Load() to fail for missing explicit file")
	}

	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("error should mention missing file, got: %v", err)
	}
}

func TestProvider_Load_CanceledContext(t *testing.T) {
	p := NewProvider()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Load(ctx, LoadOptions{})
	if err == nil {
		t.Fatal("expected Load() to fail with canceled context")
	}
}
