// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clearsetup/internal/execx"
	"clearsetup/internal/pyruntime"
	"clearsetup/internal/testutil"
	"clearsetup/pkg/platform"
)

var testHandle = &pyruntime.Handle{
	Name:    "python3",
	Path:    "/usr/bin/python3",
	Version: "Python 3.12.1",
	Primary: true,
}

// writeFakeEnv lays out just enough structure for IsValid to accept dir.
func writeFakeEnv(t *testing.T, dir string, class platform.Class) {
	t.Helper()
	scripts := filepath.Join(dir, ScriptsDirName(class))
	if err := os.MkdirAll(scripts, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), []byte("home = /usr/bin\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	name := "activate"
	if class == platform.WindowsNative {
		name = "activate.bat"
	}
	if err := os.WriteFile(filepath.Join(scripts, name), []byte("# activate\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProvisionCreatesFreshEnvironment(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	runner := testutil.NewFakeRunner()
	p := NewProvisionerWith(runner, platform.Posix)

	env, reused, err := p.Provision(context.Background(), testHandle, dir, false)
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if reused {
		t.Error("reused = true, want false for a fresh directory")
	}
	if env.Dir != dir {
		t.Errorf("env.Dir = %q, want %q", env.Dir, dir)
	}

	lines := runner.CommandLines()
	if len(lines) != 1 || !strings.Contains(lines[0], "-m venv "+dir) {
		t.Errorf("recorded calls = %v, want a single python -m venv invocation", lines)
	}
}

func TestProvisionReusesValidEnvironment(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	writeFakeEnv(t, dir, platform.Posix)

	runner := testutil.NewFakeRunner()
	p := NewProvisionerWith(runner, platform.Posix)

	_, reused, err := p.Provision(context.Background(), testHandle, dir, false)
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if !reused {
		t.Error("reused = false, want true for a valid existing environment")
	}
	if len(runner.Calls) != 0 {
		t.Errorf("runner recorded %d calls, want 0 when reusing", len(runner.Calls))
	}
}

func TestProvisionForceRecreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	writeFakeEnv(t, dir, platform.Posix)
	marker := filepath.Join(dir, "bin", "activate")

	runner := testutil.NewFakeRunner()
	p := NewProvisionerWith(runner, platform.Posix)

	_, reused, err := p.Provision(context.Background(), testHandle, dir, true)
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if reused {
		t.Error("reused = true, want false under --force")
	}
	if _, statErr := os.Stat(marker); !os.IsNotExist(statErr) {
		t.Error("force should remove the old environment before re-creating")
	}
	if len(runner.Calls) != 1 {
		t.Errorf("runner recorded %d calls, want 1 re-creation call", len(runner.Calls))
	}
}

func TestProvisionRefusesForeignDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := testutil.NewFakeRunner()
	p := NewProvisionerWith(runner, platform.Posix)

	_, _, err := p.Provision(context.Background(), testHandle, dir, false)
	if !errors.Is(err, ErrNotAnEnvironment) {
		t.Fatalf("Provision() error = %v, want ErrNotAnEnvironment", err)
	}

	// The foreign directory must be left alone.
	if _, statErr := os.Stat(filepath.Join(dir, "notes.txt")); statErr != nil {
		t.Error("foreign directory contents must not be touched")
	}
	if len(runner.Calls) != 0 {
		t.Errorf("runner recorded %d calls, want 0", len(runner.Calls))
	}
}

func TestProvisionFailureIsFatal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	runner := testutil.NewFakeRunner().
		Respond("-m venv", &execx.Result{ExitCode: 1, ErrOutput: "Error: no venv module\n"})
	p := NewProvisionerWith(runner, platform.Posix)

	_, _, err := p.Provision(context.Background(), testHandle, dir, false)
	if err == nil {
		t.Fatal("Provision() should fail when the venv call exits non-zero")
	}
	if !strings.Contains(err.Error(), "create virtual environment") {
		t.Errorf("error = %v, want the failing stage named", err)
	}
	if !strings.Contains(err.Error(), "no venv module") {
		t.Errorf("error = %v, want stderr detail included", err)
	}
}

func TestIsValid(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	if IsValid(dir, platform.Posix) {
		t.Error("IsValid() on a missing directory = true")
	}

	writeFakeEnv(t, dir, platform.Posix)
	if !IsValid(dir, platform.Posix) {
		t.Error("IsValid() on a laid-out environment = false")
	}
}
