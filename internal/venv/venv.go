// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clearsetup/internal/execx"
	"clearsetup/internal/issue"
	"clearsetup/internal/pyruntime"
	"clearsetup/pkg/platform"
)

// DefaultDir is the fixed environment directory name, relative to the
// invocation directory.
const DefaultDir = "venv"

// ErrNotAnEnvironment indicates the target directory exists but does not
// look like a virtual environment, so it will not be reused or overwritten.
var ErrNotAnEnvironment = errors.New("directory exists but is not a virtual environment")

// Provisioner creates (or reuses) the isolated environment.
type Provisioner struct {
	runner execx.Runner
	class  platform.Class
}

// NewProvisioner creates a Provisioner for the current host.
func NewProvisioner() *Provisioner {
	return NewProvisionerWith(execx.NewRunner(), platform.Detect())
}

// NewProvisionerWith creates a Provisioner with an injected runner and
// platform class. Intended for tests.
func NewProvisionerWith(runner execx.Runner, class platform.Class) *Provisioner {
	return &Provisioner{runner: runner, class: class}
}

// IsValid reports whether dir holds a structurally valid environment for the
// given class: a pyvenv.cfg marker plus the activation entry point.
func IsValid(dir string, class platform.Class) bool {
	if !fileExists(dir, "pyvenv.cfg") {
		return false
	}
	_, err := os.Stat(ActivationScript(dir, class))
	return err == nil
}

// Provision ensures an isolated environment exists at dir, created with the
// resolved interpreter. An existing valid environment is reused (reused=true)
// unless force is set, in which case it is removed and re-created. An
// existing directory that is not a valid environment is never touched.
func (p *Provisioner) Provision(ctx context.Context, py *pyruntime.Handle, dir string, force bool) (env *Environment, reused bool, err error) {
	if _, statErr := os.Stat(dir); statErr == nil {
		switch {
		case IsValid(dir, p.class) && !force:
			return &Environment{Dir: dir, Class: p.class}, true, nil
		case IsValid(dir, p.class):
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				return nil, false, issue.NewErrorContext().
					WithOperation("remove existing environment").
					WithResource(dir).
					Wrap(rmErr).
					BuildError()
			}
		default:
			return nil, false, issue.NewErrorContext().
				WithOperation("create virtual environment").
				WithResource(dir).
				WithSuggestion("Move or delete the directory and re-run").
				Wrap(ErrNotAnEnvironment).
				BuildError()
		}
	}

	result := p.runner.RunCapture(ctx, execx.Spec{
		Path: py.Path,
		Args: []string{"-m", "venv", dir},
	})
	if !result.Ok() {
		cause := result.ErrOrExit()
		if detail := firstLine(result.ErrOutput); detail != "" {
			cause = fmt.Errorf("%w: %s", cause, detail)
		}
		return nil, false, issue.NewErrorContext().
			WithOperation("create virtual environment").
			WithResource(dir).
			WithSuggestion("Check that the venv module is available (python3 -m venv)").
			WithSuggestion("On Debian/Ubuntu: apt install python3-venv").
			Wrap(cause).
			BuildError()
	}

	return &Environment{Dir: dir, Class: p.class}, false, nil
}

func fileExists(elem ...string) bool {
	info, err := os.Stat(filepath.Join(elem...))
	return err == nil && !info.IsDir()
}

// firstLine returns the first non-empty line of s, trimmed.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
