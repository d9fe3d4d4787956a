// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

type (
	// Spec describes one external process invocation.
	Spec struct {
		// Path is the resolved executable path.
		Path string
		// Args are the arguments passed to the executable (argv[1:]).
		Args []string
		// Dir is the working directory ("" means inherit).
		Dir string
		// Env is the full environment for the process. Nil inherits the
		// parent environment unchanged.
		Env []string
		// Stdout and Stderr receive the process output when set.
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result contains the outcome of one external process invocation.
	Result struct {
		// ExitCode is the process exit code. Zero means success.
		ExitCode int
		// Output is captured stdout (capture calls only).
		Output string
		// ErrOutput is captured stderr (capture calls only).
		ErrOutput string
		// Err is set for infrastructure failures (binary not found,
		// context canceled), not for plain non-zero exits.
		Err error
	}

	// Runner executes external processes. The production implementation is
	// ExecRunner; tests substitute a recording double.
	Runner interface {
		// Run executes the spec, streaming output to the spec's writers.
		Run(ctx context.Context, spec Spec) *Result
		// RunCapture executes the spec and captures stdout/stderr into
		// the result.
		RunCapture(ctx context.Context, spec Spec) *Result
	}

	// ExecRunner is the os/exec backed Runner.
	ExecRunner struct{}
)

// NewRunner creates the default os/exec backed runner.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Ok reports whether the invocation completed with exit code 0 and no
// infrastructure error.
func (r *Result) Ok() bool {
	return r.Err == nil && r.ExitCode == 0
}

// ErrOrExit returns the infrastructure error if present, otherwise an error
// describing the non-zero exit. Returns nil for successful results.
func (r *Result) ErrOrExit() error {
	if r.Err != nil {
		return r.Err
	}
	if r.ExitCode != 0 {
		return fmt.Errorf("exit status %d", r.ExitCode)
	}
	return nil
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code int, err error) *Result {
	return &Result{ExitCode: code, Err: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// Run executes the spec, streaming output to the spec's writers.
func (e *ExecRunner) Run(ctx context.Context, spec Spec) *Result {
	cmd := e.build(ctx, spec)
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	return resultFromRun(cmd.Run(), nil, nil)
}

// RunCapture executes the spec and captures stdout/stderr into the result.
func (e *ExecRunner) RunCapture(ctx context.Context, spec Spec) *Result {
	cmd := e.build(ctx, spec)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	return resultFromRun(cmd.Run(), &stdout, &stderr)
}

func (e *ExecRunner) build(ctx context.Context, spec Spec) *exec.Cmd {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	if spec.Env != nil {
		cmd.Env = spec.Env
	}
	return cmd
}

func resultFromRun(err error, stdout, stderr *bytes.Buffer) *Result {
	result := &Result{}
	if stdout != nil {
		result.Output = stdout.String()
	}
	if stderr != nil {
		result.ErrOutput = stderr.String()
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
			result.Err = fmt.Errorf("failed to execute command: %w", err)
		}
	}

	return result
}
