// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clearsetup/pkg/platform"
)

func TestActivationScript(t *testing.T) {
	tests := []struct {
		name  string
		class platform.Class
		want  string
	}{
		{"posix", platform.Posix, filepath.Join("venv", "bin", "activate")},
		{"windows shell emulation", platform.WindowsShell, filepath.Join("venv", "Scripts", "activate")},
		{"native windows", platform.WindowsNative, filepath.Join("venv", "Scripts", "activate.bat")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActivationScript("venv", tt.class); got != tt.want {
				t.Errorf("ActivationScript() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActivateCommand(t *testing.T) {
	tests := []struct {
		name  string
		class platform.Class
		want  string
	}{
		{"posix", platform.Posix, "source venv/bin/activate"},
		{"windows shell emulation", platform.WindowsShell, "source venv/Scripts/activate"},
		{"native windows", platform.WindowsNative, `venv\Scripts\activate`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActivateCommand("venv", tt.class); got != tt.want {
				t.Errorf("ActivateCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInterpreter(t *testing.T) {
	if got := Interpreter("venv", platform.Posix); got != filepath.Join("venv", "bin", "python") {
		t.Errorf("Interpreter(posix) = %q", got)
	}
	if got := Interpreter("venv", platform.WindowsNative); got != filepath.Join("venv", "Scripts", "python.exe") {
		t.Errorf("Interpreter(windows) = %q", got)
	}
}

func TestNewExecContext(t *testing.T) {
	env := &Environment{Dir: "venv", Class: platform.Posix}
	base := []string{
		"HOME=/home/op",
		"PATH=/usr/bin:/bin",
		"PYTHONHOME=/opt/python",
		"VIRTUAL_ENV=/somewhere/else",
	}

	ec, err := NewExecContext(env, base)
	if err != nil {
		t.Fatalf("NewExecContext() error = %v", err)
	}

	root, _ := filepath.Abs("venv")
	scripts := filepath.Join(root, "bin")

	var gotPath, gotVenv string
	for _, kv := range ec.Env {
		key, val, _ := strings.Cut(kv, "=")
		switch key {
		case "PATH":
			gotPath = val
		case "VIRTUAL_ENV":
			gotVenv = val
		case "PYTHONHOME":
			t.Error("PYTHONHOME must be cleared from the exec context")
		}
	}

	wantPrefix := scripts + string(os.PathListSeparator)
	if !strings.HasPrefix(gotPath, wantPrefix) {
		t.Errorf("PATH = %q, want prefix %q", gotPath, wantPrefix)
	}
	if !strings.HasSuffix(gotPath, "/usr/bin:/bin") {
		t.Errorf("PATH = %q, want original entries preserved", gotPath)
	}
	if gotVenv != root {
		t.Errorf("VIRTUAL_ENV = %q, want %q", gotVenv, root)
	}
	if ec.Python != filepath.Join("venv", "bin", "python") {
		t.Errorf("Python = %q", ec.Python)
	}
}

func TestNewExecContextWithoutBasePath(t *testing.T) {
	env := &Environment{Dir: "venv", Class: platform.Posix}

	ec, err := NewExecContext(env, []string{"HOME=/home/op"})
	if err != nil {
		t.Fatalf("NewExecContext() error = %v", err)
	}

	root, _ := filepath.Abs("venv")
	found := false
	for _, kv := range ec.Env {
		if kv == "PATH="+filepath.Join(root, "bin") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing synthesized PATH entry in %v", ec.Env)
	}
}
