// SPDX-License-Identifier: MPL-2.0

package pyruntime

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"clearsetup/internal/execx"
	"clearsetup/internal/issue"
)

const (
	// PrimaryName is the versioned interpreter binary, probed first.
	PrimaryName = "python3"
	// FallbackName is the generic interpreter binary.
	FallbackName = "python"

	// DownloadURL is the canonical source named in the remediation message.
	DownloadURL = "https://www.python.org/downloads/"
)

// ErrRuntimeMissing indicates that no interpreter candidate resolved on PATH.
var ErrRuntimeMissing = errors.New("no python interpreter found on PATH")

type (
	// Handle identifies the interpreter resolved for this run. Immutable
	// once resolved.
	Handle struct {
		// Name is the binary name that resolved (python3 or python).
		Name string
		// Path is the absolute executable path.
		Path string
		// Version is the interpreter's self-reported version string,
		// or "unknown" if it could not be read.
		Version string
		// Primary is true when the versioned name resolved.
		Primary bool
	}

	// Locator probes PATH for an interpreter.
	Locator struct {
		lookPath func(string) (string, error)
		runner   execx.Runner
	}
)

// NewLocator creates a Locator backed by the real PATH and runner.
func NewLocator() *Locator {
	return &Locator{
		lookPath: exec.LookPath,
		runner:   execx.NewRunner(),
	}
}

// NewLocatorWith creates a Locator with injected probing functions.
// Intended for tests.
func NewLocatorWith(lookPath func(string) (string, error), runner execx.Runner) *Locator {
	return &Locator{lookPath: lookPath, runner: runner}
}

// Locate probes for the interpreter, preferring the versioned binary name.
// Returns an error wrapping ErrRuntimeMissing if neither candidate resolves.
func (l *Locator) Locate(ctx context.Context) (*Handle, error) {
	for _, candidate := range []string{PrimaryName, FallbackName} {
		path, err := l.lookPath(candidate)
		if err != nil {
			continue
		}

		return &Handle{
			Name:    candidate,
			Path:    path,
			Version: l.readVersion(ctx, path),
			Primary: candidate == PrimaryName,
		}, nil
	}

	return nil, issue.NewErrorContext().
		WithOperation("locate python runtime").
		WithSuggestion("Install Python from " + DownloadURL).
		WithSuggestion("Ensure python3 (or python) is on your PATH").
		Wrap(ErrRuntimeMissing).
		BuildError()
}

// LocateExplicit resolves an operator-specified interpreter path or name
// instead of probing the candidate list. The override must still resolve to
// an executable.
func (l *Locator) LocateExplicit(ctx context.Context, pathOrName string) (*Handle, error) {
	path, err := l.lookPath(pathOrName)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("locate python runtime").
			WithResource(pathOrName).
			WithSuggestion("Check the configured python path").
			Wrap(ErrRuntimeMissing).
			BuildError()
	}

	return &Handle{
		Name:    pathOrName,
		Path:    path,
		Version: l.readVersion(ctx, path),
		Primary: true,
	}, nil
}

// readVersion asks the interpreter for its version string. Older interpreters
// print it to stderr, so both streams are consulted. Failure to read the
// version is diagnostic-only and never fatal.
func (l *Locator) readVersion(ctx context.Context, path string) string {
	result := l.runner.RunCapture(ctx, execx.Spec{
		Path: path,
		Args: []string{"--version"},
	})
	if !result.Ok() {
		return "unknown"
	}

	version := strings.TrimSpace(result.Output)
	if version == "" {
		version = strings.TrimSpace(result.ErrOutput)
	}
	if version == "" {
		return "unknown"
	}
	return version
}
