// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clearsetup/pkg/platform"
)

// ScriptsDirName returns the name of the directory holding the environment's
// executables and activation scripts: bin on POSIX, Scripts on Windows.
func ScriptsDirName(class platform.Class) string {
	if class.IsWindows() {
		return "Scripts"
	}
	return "bin"
}

// ActivationScript returns the host filesystem path of the environment's
// activation entry point. Native Windows shells use the batch variant.
func ActivationScript(dir string, class platform.Class) string {
	name := "activate"
	if class == platform.WindowsNative {
		name = "activate.bat"
	}
	return filepath.Join(dir, ScriptsDirName(class), name)
}

// Interpreter returns the host filesystem path of the environment's own
// interpreter binary.
func Interpreter(dir string, class platform.Class) string {
	if class.IsWindows() {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

// ActivateCommand returns the command text an operator types to activate the
// environment in their own shell. This is display text, so the separators
// follow the operator's shell rather than the host filesystem.
func ActivateCommand(dir string, class platform.Class) string {
	switch class {
	case platform.WindowsNative:
		return dir + `\Scripts\activate`
	case platform.WindowsShell:
		return "source " + dir + "/Scripts/activate"
	default:
		return "source " + dir + "/bin/activate"
	}
}

type (
	// Environment is a provisioned isolated environment on disk.
	Environment struct {
		// Dir is the environment root, as given at provisioning time.
		Dir string
		// Class is the platform class the environment was laid out for.
		Class platform.Class
	}

	// ExecContext carries the environment overrides that make the
	// provisioned environment's packages resolvable for subsequent
	// external calls. It replaces ambient process-environment mutation.
	ExecContext struct {
		// Python is the environment's interpreter binary.
		Python string
		// Env is the full process environment for subsequent calls:
		// VIRTUAL_ENV set, the scripts dir prepended to PATH, and
		// PYTHONHOME cleared.
		Env []string
	}
)

// ActivationScript returns the environment's activation entry point path.
func (e *Environment) ActivationScript() string {
	return ActivationScript(e.Dir, e.Class)
}

// Interpreter returns the environment's interpreter binary path.
func (e *Environment) Interpreter() string {
	return Interpreter(e.Dir, e.Class)
}

// NewExecContext builds the execution context for an environment from a base
// process environment (typically os.Environ()).
func NewExecContext(env *Environment, base []string) (*ExecContext, error) {
	root, err := filepath.Abs(env.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve environment path: %w", err)
	}
	scripts := filepath.Join(root, ScriptsDirName(env.Class))

	out := make([]string, 0, len(base)+2)
	pathSeen := false

	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if !ok {
			out = append(out, kv)
			continue
		}
		switch {
		case strings.EqualFold(key, "PYTHONHOME"):
			// A set PYTHONHOME defeats the isolation; drop it.
		case strings.EqualFold(key, "VIRTUAL_ENV"):
			// Replaced below.
		case strings.EqualFold(key, "PATH"):
			pathSeen = true
			out = append(out, key+"="+scripts+string(os.PathListSeparator)+kv[len(key)+1:])
		default:
			out = append(out, kv)
		}
	}

	if !pathSeen {
		out = append(out, "PATH="+scripts)
	}
	out = append(out, "VIRTUAL_ENV="+root)

	return &ExecContext{
		Python: Interpreter(env.Dir, env.Class),
		Env:    out,
	}, nil
}
