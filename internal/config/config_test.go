// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsWithoutConfigFile(t *testing.T) {
	// Isolate from any real config on the machine running the tests.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	SetConfigFilePathOverride("")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.EnvDir != "venv" {
		t.Errorf("EnvDir = %q, want %q", cfg.EnvDir, "venv")
	}
	if cfg.ForceRecreate {
		t.Error("ForceRecreate default = true, want false")
	}
	if cfg.Python != "" {
		t.Errorf("Python default = %q, want empty", cfg.Python)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `env_dir = "assistant-env"
force_recreate = true
python = "/opt/python/bin/python3"

[ui]
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	SetConfigFilePathOverride(path)
	t.Cleanup(func() { SetConfigFilePathOverride("") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.EnvDir != "assistant-env" {
		t.Errorf("EnvDir = %q, want %q", cfg.EnvDir, "assistant-env")
	}
	if !cfg.ForceRecreate {
		t.Error("ForceRecreate = false, want true")
	}
	if cfg.Python != "/opt/python/bin/python3" {
		t.Errorf("Python = %q", cfg.Python)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true")
	}
	if cfg.UI.Plain {
		t.Error("UI.Plain = true, want false")
	}
}

func TestLoadMissingOverrideFileFails(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))
	t.Cleanup(func() { SetConfigFilePathOverride("") })

	if _, err := Load(); err == nil {
		t.Fatal("Load() with a missing --config file should fail")
	}
}

func TestLoadInvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("env_dir = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	SetConfigFilePathOverride(path)
	t.Cleanup(func() { SetConfigFilePathOverride("") })

	if _, err := Load(); err == nil {
		t.Fatal("Load() with invalid TOML should fail")
	}
}
